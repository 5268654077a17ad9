package ast

import "github.com/baselang/semantic/internal/pos"

// AssignStmt is a bare `lhs = rhs.` statement. AssignExpr covers the
// expression form; this is the statement form spec.md §3.4 lists
// separately among Base's statement kinds.
type AssignStmt struct {
	StmtPos pos.Position
	Lhs     Expr
	Rhs     Expr
}

func (a *AssignStmt) Pos() pos.Position { return a.StmtPos }
func (a *AssignStmt) stmtNode()         {}
func (a *AssignStmt) Accept(v Visitor) error {
	return v.VisitAssignStmt(a)
}

// IncDecOp distinguishes post-increment from post-decrement.
type IncDecOp int

const (
	OpInc IncDecOp = iota
	OpDec
)

// IncDecStmt is a post-increment/decrement statement: `x++.` / `x--.`.
// Base has no prefix form (spec.md §3.4 lists only "post-inc/dec").
type IncDecStmt struct {
	StmtPos pos.Position
	Target  Expr
	Op      IncDecOp
}

func (i *IncDecStmt) Pos() pos.Position { return i.StmtPos }
func (i *IncDecStmt) stmtNode()         {}
func (i *IncDecStmt) Accept(v Visitor) error {
	return v.VisitIncDecStmt(i)
}

// IfStmt is `if cond [ then ] else [ alt ]`, with Else nil when there is
// no else branch. Then and Else each get their own scope during name
// resolution (spec.md §9).
type IfStmt struct {
	StmtPos pos.Position
	Cond    Expr
	Then    *Block
	Else    *Block
}

func (i *IfStmt) Pos() pos.Position { return i.StmtPos }
func (i *IfStmt) stmtNode()         {}
func (i *IfStmt) Accept(v Visitor) error {
	return v.VisitIfStmt(i)
}

// WhileStmt is `while cond [ body ]`. Body gets its own scope (spec.md
// §9).
type WhileStmt struct {
	StmtPos pos.Position
	Cond    Expr
	Body    *Block
}

func (w *WhileStmt) Pos() pos.Position { return w.StmtPos }
func (w *WhileStmt) stmtNode()         {}
func (w *WhileStmt) Accept(v Visitor) error {
	return v.VisitWhileStmt(w)
}

// ReadStmt is `>> operand.` — reads a value into operand.
type ReadStmt struct {
	StmtPos pos.Position
	Operand Expr
}

func (r *ReadStmt) Pos() pos.Position { return r.StmtPos }
func (r *ReadStmt) stmtNode()         {}
func (r *ReadStmt) Accept(v Visitor) error {
	return v.VisitReadStmt(r)
}

// WriteStmt is `<< operand.` — writes operand's value out.
type WriteStmt struct {
	StmtPos pos.Position
	Operand Expr
}

func (w *WriteStmt) Pos() pos.Position { return w.StmtPos }
func (w *WriteStmt) stmtNode()         {}
func (w *WriteStmt) Accept(v Visitor) error {
	return v.VisitWriteStmt(w)
}

// CallStmt is a call expression used as a bare statement: `f(a, b).`
// discarding any return value.
type CallStmt struct {
	Call *CallExpr
}

func (c *CallStmt) Pos() pos.Position { return c.Call.Pos() }
func (c *CallStmt) stmtNode()         {}
func (c *CallStmt) Accept(v Visitor) error {
	return v.VisitCallStmt(c)
}

// ReturnStmt is `return.` or `return expr.`. Value is nil for the
// valueless form; a missing-value diagnostic against a valueless return
// is reported at (0,0) since there is no expression to probe (spec.md
// §4.6).
type ReturnStmt struct {
	StmtPos pos.Position
	Value   Expr
}

func (r *ReturnStmt) Pos() pos.Position { return r.StmtPos }
func (r *ReturnStmt) stmtNode()         {}
func (r *ReturnStmt) Accept(v Visitor) error {
	return v.VisitReturnStmt(r)
}
