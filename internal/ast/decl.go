package ast

import (
	"github.com/baselang/semantic/internal/pos"
	"github.com/baselang/semantic/internal/symtab"
)

// VarDecl declares an ordinary variable: `integer x.`, `tuple T t.`.
type VarDecl struct {
	DeclPos pos.Position
	Name    string
	NamePos pos.Position
	Type    TypeNode
}

func (d *VarDecl) Pos() pos.Position { return d.DeclPos }
func (d *VarDecl) stmtNode()         {}
func (d *VarDecl) declNode()         {}
func (d *VarDecl) Accept(v Visitor) error {
	return v.VisitVarDecl(d)
}

// Param is a function's formal parameter: same void/duplicate rules as
// VarDecl apply to it during resolution (spec.md §4.3), but it is not
// itself a Decl — it only appears inside a FuncDecl's Params list.
type Param struct {
	DeclPos pos.Position
	Name    string
	NamePos pos.Position
	Type    TypeNode
}

func (p *Param) Pos() pos.Position { return p.DeclPos }

// FuncDecl declares a function: its name, formal parameters, declared
// return type, and body.
type FuncDecl struct {
	DeclPos    pos.Position
	Name       string
	NamePos    pos.Position
	Params     []*Param
	ReturnType TypeNode
	Body       *Block

	// Symbol is the function's own symbol, set by name resolution unless
	// the declaration was a duplicate (spec.md §4.3). The type checker
	// reads its signature directly rather than re-resolving parameter
	// and return types.
	Symbol *symtab.Sym
}

func (d *FuncDecl) Pos() pos.Position { return d.DeclPos }
func (d *FuncDecl) stmtNode()         {}
func (d *FuncDecl) declNode()         {}
func (d *FuncDecl) Accept(v Visitor) error {
	return v.VisitFuncDecl(d)
}

// TupleDef declares a tuple (record) type: `tuple T { integer a. ... }`.
// Fields share VarDecl's shape but live in the tuple's own independent
// field scope rather than the main scope stack (spec.md §3.3, §4.3).
type TupleDef struct {
	DeclPos pos.Position
	Name    string
	NamePos pos.Position
	Fields  []*VarDecl
}

func (d *TupleDef) Pos() pos.Position { return d.DeclPos }
func (d *TupleDef) stmtNode()         {}
func (d *TupleDef) declNode()         {}
func (d *TupleDef) Accept(v Visitor) error {
	return v.VisitTupleDef(d)
}
