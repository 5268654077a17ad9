// Package resolver implements Base's name-resolution pass: the first of
// the two sequential AST walks (spec.md §2). It opens and closes scopes,
// binds declarations, rejects duplicates and undeclared uses, validates
// tuple type references, resolves chained tuple field access, and
// attaches symbol links to identifier and tuple-field-access nodes.
//
// DESIGN PHILOSOPHY (kept from the teacher): the resolver implements
// ast.Visitor directly rather than a separate traversal function, so the
// tree is walked exactly once and every node kind has one obvious place
// to add its binding rule.
package resolver

import (
	"github.com/baselang/semantic/internal/ast"
	"github.com/baselang/semantic/internal/diag"
	"github.com/baselang/semantic/internal/pos"
	"github.com/baselang/semantic/internal/symtab"
	"github.com/baselang/semantic/internal/types"
)

// Resolver walks an AST performing name resolution. One instance is good
// for exactly one Resolve call; construct a fresh Resolver per run.
type Resolver struct {
	sink diag.Sink

	// active is the scope stack the walker currently reads and writes.
	// It is ordinary instance state, not a thread-local or package-level
	// singleton (spec.md §9's design note prefers this), and the only
	// place it is ever swapped wholesale is around a tuple definition's
	// field-declaration walk — see VisitTupleDef.
	active *symtab.SymTable

	// programScope is the program's single outermost scope. Tuple type
	// names are always resolved against it directly (spec.md §4.3's
	// "global scope" for type names), regardless of what active happens
	// to be at the time — including while active has been swapped to a
	// tuple definition's own field scope.
	programScope *symtab.SymTable
}

// New returns a Resolver that reports diagnostics to sink.
func New(sink diag.Sink) *Resolver {
	return &Resolver{sink: sink}
}

func (r *Resolver) report(p pos.Position, message string) {
	r.sink(p.Line, p.Column, message)
}

// closeScope pops a scope, panicking on ErrEmptyTable — an internal
// invariant breach that a well-formed walk never triggers (spec.md §4.7).
func (r *Resolver) closeScope() {
	if err := r.active.CloseScope(); err != nil {
		panic(err)
	}
}

// Resolve runs name resolution over prog. It opens the program's single
// outermost scope, walks the declaration list in order, and leaves the
// scope open for downstream inspection (spec.md §4.3) — the returned
// table is the program's symbol environment.
func (r *Resolver) Resolve(prog *ast.Program) *symtab.SymTable {
	table := symtab.New()
	table.OpenScope()
	r.active = table
	r.programScope = table

	for _, d := range prog.Decls {
		_ = d.Accept(r)
	}
	return table
}

// scalarTypeOf maps a scalar type keyword to its lattice member.
func scalarTypeOf(name string) types.Type {
	switch name {
	case "integer":
		return types.Integer
	case "logical":
		return types.Logical
	case "string":
		return types.Str
	case "void":
		return types.Void
	default:
		return types.Error
	}
}

// resolveType computes the declared type named by t, reporting
// InvalidTupleType against an unresolvable tuple reference.
func (r *Resolver) resolveType(t ast.TypeNode) types.Type {
	switch tt := t.(type) {
	case *ast.ScalarType:
		return scalarTypeOf(tt.Name)
	case *ast.TupleTypeRef:
		defSym, _ := r.programScope.LookupOutermost(tt.Name)
		if defSym == nil || defSym.Kind != symtab.KindTupleDef {
			r.report(tt.NamePos, diag.InvalidTupleType)
			return types.Error
		}
		return types.NewTupleVar(tt.Name)
	default:
		return types.Error
	}
}

// declareVar binds name at the given position with the declared type,
// applying the void and duplicate rules common to variable declarations,
// formal parameters, and tuple fields (spec.md §4.3). It inserts into
// whatever scope is currently active — the program scope for a top-level
// VarDecl, a function's formal scope for a Param, or a tuple's field
// scope for a field declaration. Returns the resolved type, or
// types.Error if nothing was declared.
func (r *Resolver) declareVar(name string, namePos pos.Position, typeNode ast.TypeNode) types.Type {
	if scalar, ok := typeNode.(*ast.ScalarType); ok && scalar.Name == "void" {
		r.report(namePos, diag.VoidDeclaration)
		return types.Error
	}
	if existing, _ := r.active.LookupLocal(name); existing != nil {
		r.report(namePos, diag.MultiplyDeclared)
		return types.Error
	}

	t := r.resolveType(typeNode)
	if types.IsError(t) {
		return types.Error
	}

	sym := &symtab.Sym{Name: name, Type: t, Pos: namePos, Kind: symtab.KindVar}
	if tv, ok := t.(*types.TupleVar); ok {
		sym.Kind = symtab.KindTupleVar
		sym.Def, _ = r.programScope.LookupOutermost(tv.Name)
	}
	_ = r.active.Declare(name, sym)
	return t
}

func (r *Resolver) VisitVarDecl(d *ast.VarDecl) error {
	r.declareVar(d.Name, d.NamePos, d.Type)
	return nil
}

func (r *Resolver) VisitFuncDecl(d *ast.FuncDecl) error {
	var sym *symtab.Sym
	if existing, _ := r.active.LookupLocal(d.Name); existing != nil {
		r.report(d.NamePos, diag.MultiplyDeclared)
	} else {
		sym = &symtab.Sym{Name: d.Name, Kind: symtab.KindFunc, Pos: d.NamePos}
		_ = r.active.Declare(d.Name, sym)
	}

	// The duplicate check above only suppresses the binding: the formal
	// scope and body are still walked unconditionally so inner
	// diagnostics are still produced (spec.md §4.3 ordering rule).
	r.active.OpenScope()
	paramTypes := make([]types.Type, 0, len(d.Params))
	for _, p := range d.Params {
		paramTypes = append(paramTypes, r.declareVar(p.Name, p.NamePos, p.Type))
	}
	retType := r.resolveType(d.ReturnType)
	_ = d.Body.Accept(r)
	r.closeScope()

	if sym != nil {
		sym.Type = types.NewFunction(paramTypes, retType)
		d.Symbol = sym
	}
	return nil
}

func (r *Resolver) VisitTupleDef(d *ast.TupleDef) error {
	duplicate := false
	if existing, _ := r.active.LookupLocal(d.Name); existing != nil {
		r.report(d.NamePos, diag.MultiplyDeclared)
		duplicate = true
	}

	// Field declarations live in a fresh SymTable of their own, entirely
	// separate from the main scope stack (spec.md §3.3). Field types that
	// name a tuple are still resolved against the program scope, not
	// this new table — resolveType always consults r.programScope, never
	// r.active, so swapping r.active here cannot affect that lookup.
	fields := symtab.New()
	fields.OpenScope()
	saved := r.active
	r.active = fields
	for _, f := range d.Fields {
		r.declareVar(f.Name, f.NamePos, f.Type)
	}
	r.active = saved

	if !duplicate {
		sym := &symtab.Sym{Name: d.Name, Kind: symtab.KindTupleDef, Type: types.NewTupleDef(d.Name), Pos: d.NamePos, Fields: fields}
		_ = r.active.Declare(d.Name, sym)
	}
	return nil
}

func (r *Resolver) VisitBlock(b *ast.Block) error {
	r.active.OpenScope()
	for _, s := range b.Statements {
		_ = s.Accept(r)
	}
	r.closeScope()
	return nil
}

func (r *Resolver) VisitAssignStmt(s *ast.AssignStmt) error {
	_, _ = s.Lhs.Accept(r)
	_, _ = s.Rhs.Accept(r)
	return nil
}

func (r *Resolver) VisitIncDecStmt(s *ast.IncDecStmt) error {
	_, _ = s.Target.Accept(r)
	return nil
}

func (r *Resolver) VisitIfStmt(s *ast.IfStmt) error {
	_, _ = s.Cond.Accept(r)
	_ = s.Then.Accept(r)
	if s.Else != nil {
		_ = s.Else.Accept(r)
	}
	return nil
}

func (r *Resolver) VisitWhileStmt(s *ast.WhileStmt) error {
	_, _ = s.Cond.Accept(r)
	_ = s.Body.Accept(r)
	return nil
}

func (r *Resolver) VisitReadStmt(s *ast.ReadStmt) error {
	_, _ = s.Operand.Accept(r)
	return nil
}

func (r *Resolver) VisitWriteStmt(s *ast.WriteStmt) error {
	_, _ = s.Operand.Accept(r)
	return nil
}

func (r *Resolver) VisitCallStmt(s *ast.CallStmt) error {
	_, _ = s.Call.Accept(r)
	return nil
}

func (r *Resolver) VisitReturnStmt(s *ast.ReturnStmt) error {
	if s.Value != nil {
		_, _ = s.Value.Accept(r)
	}
	return nil
}

// Literals need no resolution; they carry no name.
func (r *Resolver) VisitBoolLit(e *ast.BoolLit) (interface{}, error) { return nil, nil }

func (r *Resolver) VisitIntLit(e *ast.IntLit) (interface{}, error) { return nil, nil }

func (r *Resolver) VisitStringLit(e *ast.StringLit) (interface{}, error) { return nil, nil }

func (r *Resolver) VisitIdentifier(e *ast.Identifier) (interface{}, error) {
	sym, _ := r.active.LookupGlobal(e.Name)
	if sym == nil {
		r.report(e.NamePos, diag.Undeclared)
		return nil, nil
	}
	e.Symbol = sym
	return sym, nil
}

// resolveChainStep resolves one link of a tuple field-access chain — an
// identifier for the leftmost link, or a nested TupleFieldExpr for every
// link after it — and validates that it names a tuple variable, the
// precondition for continuing the chain into its field scope (spec.md
// §4.4). It returns ok=false, with a diagnostic already reported, the
// moment any step fails; the caller abandons the rest of the chain
// silently, as the spec requires.
func (r *Resolver) resolveChainStep(e ast.Expr) (*symtab.Sym, bool) {
	switch step := e.(type) {
	case *ast.Identifier:
		sym, _ := r.active.LookupGlobal(step.Name)
		if sym == nil {
			r.report(step.NamePos, diag.Undeclared)
			return nil, false
		}
		step.Symbol = sym
		return r.requireTupleVar(sym, step.NamePos)
	case *ast.TupleFieldExpr:
		result, _ := r.VisitTupleFieldExpr(step)
		sym, _ := result.(*symtab.Sym)
		if sym == nil {
			return nil, false
		}
		return r.requireTupleVar(sym, step.FieldPos)
	default:
		r.report(e.Pos(), diag.BadTupleAccess)
		return nil, false
	}
}

func (r *Resolver) requireTupleVar(sym *symtab.Sym, p pos.Position) (*symtab.Sym, bool) {
	if sym.Kind != symtab.KindTupleVar || sym.Def == nil {
		r.report(p, diag.BadTupleAccess)
		return nil, false
	}
	return sym, true
}

func (r *Resolver) VisitTupleFieldExpr(t *ast.TupleFieldExpr) (interface{}, error) {
	base, ok := r.resolveChainStep(t.Base)
	if !ok {
		return nil, nil
	}

	field, err := base.Def.Fields.LookupGlobal(t.Field)
	if err != nil {
		panic(err)
	}
	if field == nil {
		r.report(t.FieldPos, diag.InvalidTupleField)
		return nil, nil
	}
	t.Symbol = field
	return field, nil
}

func (r *Resolver) VisitAssignExpr(a *ast.AssignExpr) (interface{}, error) {
	_, _ = a.Lhs.Accept(r)
	_, _ = a.Rhs.Accept(r)
	return nil, nil
}

func (r *Resolver) VisitCallExpr(c *ast.CallExpr) (interface{}, error) {
	_, _ = c.Callee.Accept(r)
	for _, arg := range c.Args {
		_, _ = arg.Accept(r)
	}
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(u *ast.UnaryExpr) (interface{}, error) {
	_, _ = u.Operand.Accept(r)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(b *ast.BinaryExpr) (interface{}, error) {
	_, _ = b.Left.Accept(r)
	_, _ = b.Right.Accept(r)
	return nil, nil
}
