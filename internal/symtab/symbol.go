// Package symtab implements Base's symbol table: the scope-stack name
// resolver uses for declare/lookup, and the symbol shapes it hands out.
//
// DESIGN PHILOSOPHY (kept from the teacher's symtab package): one struct
// per symbol with a Kind tag rather than an interface hierarchy — Base's
// four symbol kinds (spec.md §3.2) share enough fields that a single
// struct is simpler than four types behind an interface, and it matches
// how the teacher represents variables/functions/structs/fields/packages
// in one Symbol struct.
package symtab

import (
	"github.com/baselang/semantic/internal/pos"
	"github.com/baselang/semantic/internal/types"
)

// Kind discriminates what a Sym represents.
type Kind int

const (
	// KindVar is an ordinary variable: carries a scalar Type.
	KindVar Kind = iota

	// KindFunc is a function: carries ordered parameter types and a
	// return type (via Type, a *types.Function).
	KindFunc

	// KindTupleVar is a variable whose declared type is a named tuple:
	// carries the tuple's nominal type and a link to its definition
	// symbol, so field access can reach the definition's field scope.
	KindTupleVar

	// KindTupleDef is a tuple *definition name* in the type namespace:
	// carries its own field SymTable (spec.md §3.2, §3.3).
	KindTupleDef
)

// Sym is a bound name's semantic record (spec.md §3.2).
type Sym struct {
	Name string
	Kind Kind
	Type types.Type
	Pos  pos.Position

	// Def links a tuple-variable symbol to its tuple-definition symbol.
	// Nil for every kind except KindTupleVar.
	Def *Sym

	// Fields is the field scope owned by a tuple-definition symbol — a
	// SymTable independent of the main scope stack (spec.md §3.3). Nil
	// for every kind except KindTupleDef.
	Fields *SymTable

	// Used marks whether lookup_local/lookup_global ever returned this
	// symbol. Additive bookkeeping for downstream tooling (SPEC_FULL.md
	// §2); it does not affect any diagnostic from spec.md §6.
	Used bool
}

// MarkUsed records that this symbol was returned by a lookup.
func (s *Sym) MarkUsed() {
	s.Used = true
}
