// Package diag defines the diagnostic shapes both analysis passes emit.
//
// spec.md §6 specifies the diagnostic sink as a callback accepting
// (line, column int, message string) with bit-exact message text. We
// model a Diagnostic as plain data — not a wrapped Go error — because
// spec.md §8's testable properties compare ordered diagnostic triples
// directly; wrapping them in error strings (the teacher's own
// fmt.Errorf("%s: %s", pos, msg) approach) would force tests to parse
// text back out instead of comparing structured values.
package diag

import "github.com/baselang/semantic/internal/pos"

// Diagnostic is one semantic error: a position and a bit-exact message.
type Diagnostic struct {
	Line    int
	Column  int
	Message string
}

// Sink is the callback interface consumed downstream (spec.md §6). A
// *Collector provides one via its Sink method, but callers may supply
// any compatible function — e.g. to stream diagnostics straight to an
// editor's problems pane instead of buffering them.
type Sink func(line, column int, message string)

// Collector accumulates diagnostics in the order they're reported —
// spec.md §7 requires "natural AST walk order (pre-order, left-to-right
// across sibling lists)," so Collector never sorts or dedupes.
type Collector struct {
	diags []Diagnostic
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Report records one diagnostic at the given position.
func (c *Collector) Report(p pos.Position, message string) {
	c.diags = append(c.diags, Diagnostic{Line: p.Line, Column: p.Column, Message: message})
}

// Sink adapts the collector to the Sink callback shape.
func (c *Collector) Sink() Sink {
	return func(line, column int, message string) {
		c.diags = append(c.diags, Diagnostic{Line: line, Column: column, Message: message})
	}
}

// Diagnostics returns the accumulated diagnostics in report order.
func (c *Collector) Diagnostics() []Diagnostic {
	return c.diags
}

// Len reports how many diagnostics have been collected.
func (c *Collector) Len() int {
	return len(c.diags)
}
