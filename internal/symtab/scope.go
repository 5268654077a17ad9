package symtab

import (
	"fmt"
	"sort"
	"strings"
)

// ErrKind classifies a SymTable invariant failure (spec.md §3.3).
type ErrKind int

const (
	// ErrDuplicateName: declare() with a name already bound in the top scope.
	ErrDuplicateName ErrKind = iota
	// ErrEmptyTable: an operation was attempted on a table with no open scopes.
	ErrEmptyTable
	// ErrIllegalArgument: declare() was called with an empty name or a nil symbol.
	ErrIllegalArgument
)

// Error reports a SymTable invariant failure. Every one of these is an
// internal-invariant breach per spec.md §7.2 — a well-formed resolver
// never triggers ErrEmptyTable or ErrIllegalArgument, and always checks
// LookupLocal itself before calling Declare to produce the user-facing
// MultiplyDeclared diagnostic rather than relying on ErrDuplicateName.
type Error struct {
	Kind    ErrKind
	Message string
}

func (e *Error) Error() string { return e.Message }

// SymTable is an ordered stack of scopes, innermost last (spec.md §3.3).
//
// DESIGN CHOICE: a stack of maps rather than the teacher's parent-pointer
// scope tree. spec.md §3.3/§4.3 specify open_scope/close_scope as explicit
// push/pop operations with an EmptyTable failure mode on imbalance; a
// slice expresses that directly; a tree would need a separate "current"
// pointer threaded alongside it, which is exactly the shape the resolver
// already manages on its own call stack when it swaps in a tuple
// definition's field table (spec.md §5) — no need to duplicate it inside
// the table itself.
type SymTable struct {
	scopes []map[string]*Sym
}

// New returns an empty SymTable with no open scopes.
func New() *SymTable {
	return &SymTable{}
}

// OpenScope pushes a new, empty scope.
func (t *SymTable) OpenScope() {
	t.scopes = append(t.scopes, make(map[string]*Sym))
}

// CloseScope pops the innermost scope. Fails with ErrEmptyTable if no
// scope is open — a well-formed walker never lets this happen (every
// OpenScope is paired with exactly one CloseScope).
func (t *SymTable) CloseScope() error {
	if len(t.scopes) == 0 {
		return &Error{Kind: ErrEmptyTable, Message: "close_scope: table is empty"}
	}
	t.scopes = t.scopes[:len(t.scopes)-1]
	return nil
}

// Depth reports how many scopes are currently open.
func (t *SymTable) Depth() int {
	return len(t.scopes)
}

// Declare inserts sym into the innermost scope under name.
//
// Fails with ErrIllegalArgument if name is empty or sym is nil, with
// ErrEmptyTable if no scope is open, and with ErrDuplicateName if name is
// already bound in the innermost scope (spec.md §3.3). Callers that want
// the user-facing MultiplyDeclared diagnostic should check LookupLocal
// themselves first — Declare's ErrDuplicateName is a last-resort guard,
// not the resolver's primary duplicate-detection path.
func (t *SymTable) Declare(name string, sym *Sym) error {
	if name == "" || sym == nil {
		return &Error{Kind: ErrIllegalArgument, Message: "declare: name and symbol must be non-empty"}
	}
	if len(t.scopes) == 0 {
		return &Error{Kind: ErrEmptyTable, Message: "declare: table is empty"}
	}
	top := t.scopes[len(t.scopes)-1]
	if _, exists := top[name]; exists {
		return &Error{Kind: ErrDuplicateName, Message: fmt.Sprintf("declare: %q already declared in this scope", name)}
	}
	top[name] = sym
	return nil
}

// LookupLocal returns the symbol bound to name in the innermost scope
// only, marking it used, or nil if absent. Fails with ErrEmptyTable if no
// scope is open.
func (t *SymTable) LookupLocal(name string) (*Sym, error) {
	if len(t.scopes) == 0 {
		return nil, &Error{Kind: ErrEmptyTable, Message: "lookup_local: table is empty"}
	}
	sym := t.scopes[len(t.scopes)-1][name]
	if sym != nil {
		sym.MarkUsed()
	}
	return sym, nil
}

// LookupGlobal searches from the innermost scope outward and returns the
// first match, marking it used. Returns nil if not found anywhere. Fails
// with ErrEmptyTable if no scope is open.
//
// (The name "global" is spec.md's own terminology for "search every
// enclosing scope," §3.3 — it does not mean "only the outermost scope".)
func (t *SymTable) LookupGlobal(name string) (*Sym, error) {
	if len(t.scopes) == 0 {
		return nil, &Error{Kind: ErrEmptyTable, Message: "lookup_global: table is empty"}
	}
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if sym, ok := t.scopes[i][name]; ok {
			sym.MarkUsed()
			return sym, nil
		}
	}
	return nil, nil
}

// LookupOutermost returns the symbol bound to name in the outermost
// (program) scope only, ignoring every scope nested above it. This is
// distinct from LookupGlobal: tuple type names are resolved against the
// single program scope regardless of how deeply the declaration using
// them is nested (spec.md §4.3), never against whatever scope happens to
// be innermost when the lookup runs.
func (t *SymTable) LookupOutermost(name string) (*Sym, error) {
	if len(t.scopes) == 0 {
		return nil, &Error{Kind: ErrEmptyTable, Message: "lookup_outermost: table is empty"}
	}
	return t.scopes[0][name], nil
}

// AllLocal returns every symbol declared in the innermost scope, for
// debug dumps and downstream tooling (SPEC_FULL.md §2).
func (t *SymTable) AllLocal() map[string]*Sym {
	if len(t.scopes) == 0 {
		return nil
	}
	return t.scopes[len(t.scopes)-1]
}

// DebugString renders the table in the format the test fixtures compare
// against verbatim (spec.md §4.2): a header line, one line per scope from
// innermost to outermost printing that scope's {name=type, ...} mapping,
// and a trailing footer. Names within a scope are sorted for determinism
// since map iteration order is not stable.
func (t *SymTable) DebugString() string {
	var b strings.Builder
	b.WriteString("++++ SYMBOL TABLE\n")
	for i := len(t.scopes) - 1; i >= 0; i-- {
		scope := t.scopes[i]
		names := make([]string, 0, len(scope))
		for name := range scope {
			names = append(names, name)
		}
		sort.Strings(names)
		pairs := make([]string, len(names))
		for j, name := range names {
			pairs[j] = fmt.Sprintf("%s=%s", name, scope[name].Type.String())
		}
		b.WriteString("{")
		b.WriteString(strings.Join(pairs, ", "))
		b.WriteString("}\n")
	}
	b.WriteString("++++ END TABLE")
	return b.String()
}

// UnusedInScope returns the names never returned by a lookup in the
// innermost scope — additive lint-style tooling, not a spec.md diagnostic.
func (t *SymTable) UnusedInScope() []string {
	top := t.AllLocal()
	unused := make([]string, 0, len(top))
	for name, sym := range top {
		if !sym.Used {
			unused = append(unused, name)
		}
	}
	return unused
}
