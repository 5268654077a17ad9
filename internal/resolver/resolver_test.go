package resolver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/baselang/semantic/internal/ast"
	"github.com/baselang/semantic/internal/diag"
	"github.com/baselang/semantic/internal/fixture"
)

func TestResolve_MultiplyDeclaredVariable(t *testing.T) {
	prog := fixture.Program(
		fixture.Var(1, 9, "x", fixture.Scalar(1, 1, "integer")),
		fixture.Var(1, 21, "x", fixture.Scalar(1, 13, "integer")),
	)

	collector := diag.NewCollector()
	New(collector.Sink()).Resolve(prog)

	require.Len(t, collector.Diagnostics(), 1)
	require.Equal(t, diag.Diagnostic{Line: 1, Column: 21, Message: diag.MultiplyDeclared}, collector.Diagnostics()[0])
}

func TestResolve_VoidVariableDeclarationSuppressesInsertion(t *testing.T) {
	prog := fixture.Program(
		fixture.Var(1, 1, "v", fixture.Scalar(1, 1, "void")),
	)

	collector := diag.NewCollector()
	table := New(collector.Sink()).Resolve(prog)

	require.Len(t, collector.Diagnostics(), 1)
	require.Equal(t, diag.VoidDeclaration, collector.Diagnostics()[0].Message)

	sym, err := table.LookupLocal("v")
	require.NoError(t, err)
	require.Nil(t, sym, "void declaration must not insert a symbol")
}

func TestResolve_UndeclaredIdentifierUse(t *testing.T) {
	body := fixture.Block(1, 10, fixture.Return(1, 12, fixture.Ident(1, 19, "y")))
	prog := fixture.Program(
		fixture.Func(1, 1, "f", nil, fixture.Scalar(1, 1, "void"), body),
	)

	collector := diag.NewCollector()
	New(collector.Sink()).Resolve(prog)

	require.Len(t, collector.Diagnostics(), 1)
	require.Equal(t, diag.Diagnostic{Line: 1, Column: 19, Message: diag.Undeclared}, collector.Diagnostics()[0])
}

func TestResolve_TupleVariableDeclarationRequiresGlobalTupleDef(t *testing.T) {
	prog := fixture.Program(
		fixture.Var(1, 1, "t", fixture.TupleRef(1, 1, "Missing")),
	)

	collector := diag.NewCollector()
	New(collector.Sink()).Resolve(prog)

	require.Len(t, collector.Diagnostics(), 1)
	require.Equal(t, diag.InvalidTupleType, collector.Diagnostics()[0].Message)
}

func TestResolve_ChainedTupleFieldAccessResolves(t *testing.T) {
	inner := fixture.Tuple(1, 1, "Inner", []*ast.VarDecl{
		fixture.Var(1, 1, "v", fixture.Scalar(1, 1, "integer")),
	})
	outer := fixture.Tuple(2, 1, "Outer", []*ast.VarDecl{
		fixture.Var(2, 1, "in", fixture.TupleRef(2, 1, "Inner")),
	})
	tVar := fixture.Var(3, 1, "t", fixture.TupleRef(3, 1, "Outer"))

	base := fixture.Ident(4, 1, "t")
	step1 := fixture.Field(base, 4, 3, "in")
	chain := fixture.Field(step1, 4, 6, "v")

	stmt := &ast.WriteStmt{StmtPos: fixture.P(4, 1), Operand: chain}
	body := fixture.Block(5, 1, stmt)
	fn := fixture.Func(6, 1, "use", nil, fixture.Scalar(6, 1, "void"), body)

	prog := fixture.Program(inner, outer, tVar, fn)

	collector := diag.NewCollector()
	New(collector.Sink()).Resolve(prog)

	require.Empty(t, collector.Diagnostics())
	require.NotNil(t, chain.Symbol)
	require.Equal(t, "v", chain.Symbol.Name)
}

func TestResolve_BadTupleAccessOnNonTupleVariable(t *testing.T) {
	scalarVar := fixture.Var(1, 1, "x", fixture.Scalar(1, 1, "integer"))
	access := fixture.Field(fixture.Ident(2, 1, "x"), 2, 3, "f")
	stmt := &ast.WriteStmt{StmtPos: fixture.P(2, 1), Operand: access}
	body := fixture.Block(3, 1, stmt)
	fn := fixture.Func(4, 1, "use", nil, fixture.Scalar(4, 1, "void"), body)

	prog := fixture.Program(scalarVar, fn)
	collector := diag.NewCollector()
	New(collector.Sink()).Resolve(prog)

	require.Len(t, collector.Diagnostics(), 1)
	require.Equal(t, diag.Diagnostic{Line: 2, Column: 1, Message: diag.BadTupleAccess}, collector.Diagnostics()[0])
}

func TestResolve_InvalidTupleFieldName(t *testing.T) {
	def := fixture.Tuple(1, 1, "T", []*ast.VarDecl{
		fixture.Var(1, 1, "a", fixture.Scalar(1, 1, "integer")),
	})
	tVar := fixture.Var(2, 1, "t", fixture.TupleRef(2, 1, "T"))
	access := fixture.Field(fixture.Ident(3, 1, "t"), 3, 3, "b")
	stmt := &ast.WriteStmt{StmtPos: fixture.P(3, 1), Operand: access}
	body := fixture.Block(4, 1, stmt)
	fn := fixture.Func(5, 1, "use", nil, fixture.Scalar(5, 1, "void"), body)

	prog := fixture.Program(def, tVar, fn)
	collector := diag.NewCollector()
	New(collector.Sink()).Resolve(prog)

	require.Len(t, collector.Diagnostics(), 1)
	require.Equal(t, diag.Diagnostic{Line: 3, Column: 3, Message: diag.InvalidTupleField}, collector.Diagnostics()[0])
}

func TestResolve_DuplicateTupleDefStillWalksFields(t *testing.T) {
	first := fixture.Tuple(1, 1, "T", nil)
	second := fixture.Tuple(2, 1, "T", []*ast.VarDecl{
		fixture.Var(2, 5, "a", fixture.Scalar(2, 1, "void")),
	})

	prog := fixture.Program(first, second)
	collector := diag.NewCollector()
	New(collector.Sink()).Resolve(prog)

	diags := collector.Diagnostics()
	require.Len(t, diags, 2)
	require.Equal(t, diag.MultiplyDeclared, diags[0].Message)
	require.Equal(t, diag.VoidDeclaration, diags[1].Message)
}

func TestResolve_DuplicateFunctionStillWalksBody(t *testing.T) {
	first := fixture.Func(1, 1, "f", nil, fixture.Scalar(1, 1, "void"), fixture.Block(1, 5))
	secondBody := fixture.Block(2, 5, fixture.Return(2, 6, fixture.Ident(2, 12, "zz")))
	second := fixture.Func(2, 1, "f", nil, fixture.Scalar(2, 1, "void"), secondBody)

	prog := fixture.Program(first, second)
	collector := diag.NewCollector()
	New(collector.Sink()).Resolve(prog)

	diags := collector.Diagnostics()
	require.Len(t, diags, 2)
	require.Equal(t, diag.MultiplyDeclared, diags[0].Message)
	require.Equal(t, diag.Diagnostic{Line: 2, Column: 12, Message: diag.Undeclared}, diags[1])
}

func TestResolve_ParamShadowsOuterVariable(t *testing.T) {
	outer := fixture.Var(1, 1, "x", fixture.Scalar(1, 1, "integer"))
	params := []*ast.Param{fixture.Param(2, 5, "x", fixture.Scalar(2, 1, "logical"))}
	body := fixture.Block(2, 20, &ast.WriteStmt{StmtPos: fixture.P(2, 21), Operand: fixture.Ident(2, 22, "x")})
	fn := fixture.Func(2, 1, "f", params, fixture.Scalar(2, 1, "void"), body)

	prog := fixture.Program(outer, fn)
	collector := diag.NewCollector()
	New(collector.Sink()).Resolve(prog)

	require.Empty(t, collector.Diagnostics())
	require.Equal(t, "x", fn.Body.Statements[0].(*ast.WriteStmt).Operand.(*ast.Identifier).Symbol.Name)
	require.Equal(t, params[0].NamePos, fn.Body.Statements[0].(*ast.WriteStmt).Operand.(*ast.Identifier).Symbol.Pos)
}
