package ast

import (
	"github.com/baselang/semantic/internal/pos"
	"github.com/baselang/semantic/internal/symtab"
)

// BoolLit is a `True` or `False` literal (spec.md §3.4).
type BoolLit struct {
	LitPos pos.Position
	Value  bool
}

func (b *BoolLit) Pos() pos.Position { return b.LitPos }
func (b *BoolLit) exprNode()         {}
func (b *BoolLit) Accept(v Visitor) (interface{}, error) {
	return v.VisitBoolLit(b)
}

// IntLit is an integer literal.
type IntLit struct {
	LitPos pos.Position
	Value  int64
}

func (i *IntLit) Pos() pos.Position { return i.LitPos }
func (i *IntLit) exprNode()         {}
func (i *IntLit) Accept(v Visitor) (interface{}, error) {
	return v.VisitIntLit(i)
}

// StringLit is a string literal: legal only as a write operand, but typed
// like any other expression (spec.md §3.1).
type StringLit struct {
	LitPos pos.Position
	Value  string
}

func (s *StringLit) Pos() pos.Position { return s.LitPos }
func (s *StringLit) exprNode()         {}
func (s *StringLit) Accept(v Visitor) (interface{}, error) {
	return v.VisitStringLit(s)
}

// TupleFieldExpr is one step of a left-associative chained field access
// a:b:c:d... (spec.md §4.4). The chain is represented as a left-leaning
// tree: `a:b:c` parses as TupleFieldExpr{Base: TupleFieldExpr{Base: a,
// Field: b}, Field: c}, with the leftmost Base ultimately an *Identifier.
type TupleFieldExpr struct {
	Base     Expr
	FieldPos pos.Position
	Field    string

	// Symbol is the resolved field's symbol, set by name resolution. Nil
	// if any step of the chain failed to resolve.
	Symbol *symtab.Sym
}

func (t *TupleFieldExpr) Pos() pos.Position { return t.Base.Pos() }
func (t *TupleFieldExpr) exprNode()         {}
func (t *TupleFieldExpr) Accept(v Visitor) (interface{}, error) {
	return v.VisitTupleFieldExpr(t)
}

// AssignExpr is `lhs = rhs` used as an expression (spec.md §4.6) — it may
// appear nested inside a larger expression, unlike AssignStmt which is a
// bare statement form.
type AssignExpr struct {
	Lhs Expr
	Rhs Expr
}

func (a *AssignExpr) Pos() pos.Position { return a.Lhs.Pos() }
func (a *AssignExpr) exprNode()         {}
func (a *AssignExpr) Accept(v Visitor) (interface{}, error) {
	return v.VisitAssignExpr(a)
}

// CallExpr invokes a function by name with an ordered argument list.
type CallExpr struct {
	Callee *Identifier
	Args   []Expr
}

func (c *CallExpr) Pos() pos.Position { return c.Callee.Pos() }
func (c *CallExpr) exprNode()         {}
func (c *CallExpr) Accept(v Visitor) (interface{}, error) {
	return v.VisitCallExpr(c)
}

// UnaryOp enumerates Base's two unary operators (spec.md §4.6).
type UnaryOp int

const (
	UnaryMinus UnaryOp = iota
	UnaryNot
)

// UnaryExpr is a prefix unary operation: `-x` or `!x`.
type UnaryExpr struct {
	OpPos   pos.Position
	Op      UnaryOp
	Operand Expr
}

func (u *UnaryExpr) Pos() pos.Position { return u.OpPos }
func (u *UnaryExpr) exprNode()         {}
func (u *UnaryExpr) Accept(v Visitor) (interface{}, error) {
	return v.VisitUnaryExpr(u)
}

// BinaryOp enumerates Base's binary operators: arithmetic, relational,
// logical, and equality (spec.md §4.6).
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpLt
	OpLe
	OpGt
	OpGe
	OpAnd
	OpOr
	OpEq
	OpNeq
)

// IsArithmetic reports whether op is one of + - * /.
func (op BinaryOp) IsArithmetic() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	default:
		return false
	}
}

// IsRelational reports whether op is one of < <= > >=.
func (op BinaryOp) IsRelational() bool {
	switch op {
	case OpLt, OpLe, OpGt, OpGe:
		return true
	default:
		return false
	}
}

// IsLogical reports whether op is one of & |.
func (op BinaryOp) IsLogical() bool {
	return op == OpAnd || op == OpOr
}

// IsEquality reports whether op is one of == ~=.
func (op BinaryOp) IsEquality() bool {
	return op == OpEq || op == OpNeq
}

// BinaryExpr is a single binary operation: left op right. A single node
// type for every operator, distinguished by Op, rather than a node per
// operator — the typing rule (spec.md §4.6) dispatches on Op anyway, so a
// type switch over a dozen node kinds would buy nothing.
type BinaryExpr struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
}

func (b *BinaryExpr) Pos() pos.Position { return b.Left.Pos() }
func (b *BinaryExpr) exprNode()         {}
func (b *BinaryExpr) Accept(v Visitor) (interface{}, error) {
	return v.VisitBinaryExpr(b)
}
