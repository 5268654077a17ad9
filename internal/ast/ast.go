// Package ast defines the Base language's abstract syntax tree.
//
// DESIGN PHILOSOPHY (kept from the teacher): a closed set of node types,
// dispatched through the visitor pattern rather than type switches in
// every pass. Base has two independent passes over the same tree — name
// resolution, then type checking (spec.md §2) — so both are just
// different Visitor implementations Accept()-ed against the same nodes,
// exactly as the teacher's Analyzer is a single Visitor implementation
// over its own (richer) object language.
//
// Lexing and parsing are out of scope (spec.md §1): nothing in this
// package builds or rewrites source text, it only describes the node
// shapes a parser would hand to the resolver and type checker.
package ast

import (
	"github.com/baselang/semantic/internal/pos"
	"github.com/baselang/semantic/internal/symtab"
)

// Node is the base interface every AST node implements.
type Node interface {
	Pos() pos.Position
}

// Expr is any node that produces a value.
type Expr interface {
	Node
	Accept(v Visitor) (interface{}, error)
	exprNode()
}

// Stmt is any node that performs an action.
type Stmt interface {
	Node
	Accept(v Visitor) error
	stmtNode()
}

// Decl is a top-level declaration. Base has no nested declarations other
// than a function's parameters, which are *Param and not Decl, and a
// tuple's fields, which are *VarDecl values held in TupleDef.Fields rather
// than in the program's declaration list (spec.md §3.4).
type Decl interface {
	Stmt
	declNode()
}

// Visitor is the dispatch interface both the name resolver and the type
// checker implement. Expression methods return (interface{}, error): the
// resolver returns the resolved *symtab.Sym for identifier and tuple
// field-access nodes (nil for the rest), the type checker returns a
// types.Type.
// Statement and declaration methods return only error, matching the
// teacher's split between value-producing and action-performing nodes.
type Visitor interface {
	// Expressions
	VisitBoolLit(e *BoolLit) (interface{}, error)
	VisitIntLit(e *IntLit) (interface{}, error)
	VisitStringLit(e *StringLit) (interface{}, error)
	VisitIdentifier(e *Identifier) (interface{}, error)
	VisitTupleFieldExpr(e *TupleFieldExpr) (interface{}, error)
	VisitAssignExpr(e *AssignExpr) (interface{}, error)
	VisitCallExpr(e *CallExpr) (interface{}, error)
	VisitUnaryExpr(e *UnaryExpr) (interface{}, error)
	VisitBinaryExpr(e *BinaryExpr) (interface{}, error)

	// Statements
	VisitBlock(s *Block) error
	VisitAssignStmt(s *AssignStmt) error
	VisitIncDecStmt(s *IncDecStmt) error
	VisitIfStmt(s *IfStmt) error
	VisitWhileStmt(s *WhileStmt) error
	VisitReadStmt(s *ReadStmt) error
	VisitWriteStmt(s *WriteStmt) error
	VisitCallStmt(s *CallStmt) error
	VisitReturnStmt(s *ReturnStmt) error

	// Declarations
	VisitVarDecl(d *VarDecl) error
	VisitFuncDecl(d *FuncDecl) error
	VisitTupleDef(d *TupleDef) error
}

// Program is the AST root: a single translation unit (spec.md Non-goals —
// no module system), a flat list of top-level declarations.
type Program struct {
	Decls []Decl
}

func (p *Program) Pos() pos.Position {
	if len(p.Decls) == 0 {
		return pos.Position{}
	}
	return p.Decls[0].Pos()
}

// Block is a brace-delimited statement list: a function body, or an
// if/while branch body. Every block gets its own scope during name
// resolution (spec.md §9, "fresh scope per if-then branch, per if-else
// branch, and per while body").
type Block struct {
	BlockPos   pos.Position
	Statements []Stmt
}

func (b *Block) Pos() pos.Position { return b.BlockPos }
func (b *Block) stmtNode()         {}
func (b *Block) Accept(v Visitor) error {
	return v.VisitBlock(b)
}

// TypeNode is either a scalar type keyword or a nominal tuple type
// reference ("tuple T"). It is not itself an Expr or Stmt — it only
// appears in declaration position (spec.md §3.4).
type TypeNode interface {
	Pos() pos.Position
	typeNode()
}

// ScalarType names one of Base's built-in type keywords: integer,
// logical, string, or void. Resolving which keyword maps to which
// types.Type is the resolver's job (internal/resolver), not the AST's.
type ScalarType struct {
	KeywordPos pos.Position
	Name       string // "integer", "logical", "string", or "void"
}

func (s *ScalarType) Pos() pos.Position { return s.KeywordPos }
func (s *ScalarType) typeNode()         {}

// TupleTypeRef names a tuple definition used as a variable's or field's
// type: "tuple T". The name is resolved against the global scope only
// (spec.md §4.3, §9 open question #2), never the active local scope.
type TupleTypeRef struct {
	TuplePos pos.Position
	NamePos  pos.Position
	Name     string
}

func (t *TupleTypeRef) Pos() pos.Position { return t.TuplePos }
func (t *TupleTypeRef) typeNode()         {}

// Identifier names a declared entity: a variable, function, tuple
// variable, tuple definition, or formal parameter, depending on context.
// Symbol is nil until name resolution sets it; it remains nil forever for
// an identifier that failed to resolve, in which case the type checker
// reads it as types.Error (spec.md §3.4 lifecycle, §4.5).
type Identifier struct {
	NamePos pos.Position
	Name    string
	Symbol  *symtab.Sym
}

func (i *Identifier) Pos() pos.Position { return i.NamePos }
func (i *Identifier) exprNode()         {}
func (i *Identifier) Accept(v Visitor) (interface{}, error) {
	return v.VisitIdentifier(i)
}
