// Package fixture builds small ASTs by hand for tests, standing in for
// the parser that spec.md §1 treats as an external collaborator. Each
// helper for a node that carries its own position takes a line/column
// pair directly rather than parsing source text (Bin, Call and Program
// take none: their nodes report a child's position), which keeps test fixtures terse and keeps position fidelity
// (spec.md §8's "Position fidelity" property) explicit at the call site.
package fixture

import (
	"github.com/baselang/semantic/internal/ast"
	"github.com/baselang/semantic/internal/pos"
)

// P is shorthand for a 1-based line/column position.
func P(line, col int) pos.Position {
	return pos.Position{Line: line, Column: col}
}

// Int builds an integer literal.
func Int(line, col int, value int64) *ast.IntLit {
	return &ast.IntLit{LitPos: P(line, col), Value: value}
}

// Bool builds a boolean literal.
func Bool(line, col int, value bool) *ast.BoolLit {
	return &ast.BoolLit{LitPos: P(line, col), Value: value}
}

// Str builds a string literal.
func Str(line, col int, value string) *ast.StringLit {
	return &ast.StringLit{LitPos: P(line, col), Value: value}
}

// Ident builds an unresolved identifier reference.
func Ident(line, col int, name string) *ast.Identifier {
	return &ast.Identifier{NamePos: P(line, col), Name: name}
}

// Scalar builds a scalar type node: "integer", "logical", "string", or
// "void".
func Scalar(line, col int, name string) *ast.ScalarType {
	return &ast.ScalarType{KeywordPos: P(line, col), Name: name}
}

// TupleRef builds a nominal tuple type reference: "tuple T".
func TupleRef(line, col int, name string) *ast.TupleTypeRef {
	return &ast.TupleTypeRef{TuplePos: P(line, col), NamePos: P(line, col), Name: name}
}

// Var builds a top-level variable declaration.
func Var(line, col int, name string, typeNode ast.TypeNode) *ast.VarDecl {
	return &ast.VarDecl{DeclPos: P(line, col), Name: name, NamePos: P(line, col), Type: typeNode}
}

// Param builds a function formal parameter.
func Param(line, col int, name string, typeNode ast.TypeNode) *ast.Param {
	return &ast.Param{DeclPos: P(line, col), Name: name, NamePos: P(line, col), Type: typeNode}
}

// Func builds a function declaration.
func Func(line, col int, name string, params []*ast.Param, ret ast.TypeNode, body *ast.Block) *ast.FuncDecl {
	return &ast.FuncDecl{DeclPos: P(line, col), Name: name, NamePos: P(line, col), Params: params, ReturnType: ret, Body: body}
}

// Tuple builds a tuple type definition.
func Tuple(line, col int, name string, fields []*ast.VarDecl) *ast.TupleDef {
	return &ast.TupleDef{DeclPos: P(line, col), Name: name, NamePos: P(line, col), Fields: fields}
}

// Block builds a statement block opening its own scope during
// resolution.
func Block(line, col int, stmts ...ast.Stmt) *ast.Block {
	return &ast.Block{BlockPos: P(line, col), Statements: stmts}
}

// Field builds one step of a tuple field access: Field(a, l, c, "b")
// builds a:b, and Field(Field(a, l1, c1, "b"), l2, c2, "c") builds a:b:c.
func Field(base ast.Expr, line, col int, name string) *ast.TupleFieldExpr {
	return &ast.TupleFieldExpr{Base: base, FieldPos: P(line, col), Field: name}
}

// Assign builds an assignment statement.
func Assign(line, col int, lhs, rhs ast.Expr) *ast.AssignStmt {
	return &ast.AssignStmt{StmtPos: P(line, col), Lhs: lhs, Rhs: rhs}
}

// Return builds a return statement; pass a nil value for a bare
// `return.`.
func Return(line, col int, value ast.Expr) *ast.ReturnStmt {
	return &ast.ReturnStmt{StmtPos: P(line, col), Value: value}
}

// If builds an if statement; pass a nil elseBlock for no else branch.
func If(line, col int, cond ast.Expr, then, elseBlock *ast.Block) *ast.IfStmt {
	return &ast.IfStmt{StmtPos: P(line, col), Cond: cond, Then: then, Else: elseBlock}
}

// While builds a while statement.
func While(line, col int, cond ast.Expr, body *ast.Block) *ast.WhileStmt {
	return &ast.WhileStmt{StmtPos: P(line, col), Cond: cond, Body: body}
}

// Bin builds a binary expression.
func Bin(left ast.Expr, op ast.BinaryOp, right ast.Expr) *ast.BinaryExpr {
	return &ast.BinaryExpr{Left: left, Op: op, Right: right}
}

// Unary builds a unary expression.
func Unary(line, col int, op ast.UnaryOp, operand ast.Expr) *ast.UnaryExpr {
	return &ast.UnaryExpr{OpPos: P(line, col), Op: op, Operand: operand}
}

// Call builds a call expression.
func Call(callee *ast.Identifier, args ...ast.Expr) *ast.CallExpr {
	return &ast.CallExpr{Callee: callee, Args: args}
}

// Program wraps top-level declarations into a program root.
func Program(decls ...ast.Decl) *ast.Program {
	return &ast.Program{Decls: decls}
}
