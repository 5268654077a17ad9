package typecheck

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/baselang/semantic/internal/ast"
	"github.com/baselang/semantic/internal/diag"
	"github.com/baselang/semantic/internal/fixture"
	"github.com/baselang/semantic/internal/resolver"
	"github.com/baselang/semantic/internal/types"
)

// analyze runs both passes in sequence, exactly as a caller must (spec.md
// §2: resolution completes over the entire tree before type checking
// begins), and returns every diagnostic from both.
func analyze(prog *ast.Program) []diag.Diagnostic {
	collector := diag.NewCollector()
	resolver.New(collector.Sink()).Resolve(prog)
	New(collector.Sink()).Check(prog)
	return collector.Diagnostics()
}

func TestCheck_ReturnWithValueInVoidFunction(t *testing.T) {
	y := fixture.Var(1, 1, "y", fixture.Scalar(1, 1, "integer"))
	body := fixture.Block(1, 20, fixture.Return(1, 23, fixture.Ident(1, 30, "y")))
	f := fixture.Func(1, 25, "f", nil, fixture.Scalar(1, 25, "void"), body)

	diags := analyze(fixture.Program(y, f))

	require.Len(t, diags, 1)
	require.Equal(t, diag.Diagnostic{Line: 1, Column: 30, Message: diag.ReturnWithValue}, diags[0])
}

func TestCheck_MissingReturnValueReportsZeroZero(t *testing.T) {
	body := fixture.Block(1, 10, fixture.Return(1, 15, nil))
	g := fixture.Func(1, 1, "g", nil, fixture.Scalar(1, 1, "integer"), body)

	diags := analyze(fixture.Program(g))

	require.Len(t, diags, 1)
	require.Equal(t, diag.Diagnostic{Line: 0, Column: 0, Message: diag.MissingReturnValue}, diags[0])
}

func TestCheck_ArithmeticOperandErrorAbsorbsConditionCheck(t *testing.T) {
	b := fixture.Var(1, 1, "b", fixture.Scalar(1, 1, "logical"))
	n := fixture.Var(1, 12, "n", fixture.Scalar(1, 12, "integer"))
	cond := fixture.Bin(fixture.Ident(1, 24, "b"), ast.OpAdd, fixture.Ident(1, 28, "n"))
	ifStmt := fixture.If(1, 22, cond, fixture.Block(1, 31), nil)
	body := fixture.Block(1, 20, ifStmt)
	main := fixture.Func(1, 18, "main", nil, fixture.Scalar(1, 18, "void"), body)

	diags := analyze(fixture.Program(b, n, main))

	require.Len(t, diags, 1, "the if-condition check must be suppressed once + absorbs an Error operand")
	require.Equal(t, diag.Diagnostic{Line: 1, Column: 24, Message: diag.NonIntArithOperand}, diags[0])
}

func TestCheck_WrongArgCount(t *testing.T) {
	fBody := fixture.Block(1, 12, fixture.Return(1, 13, fixture.Ident(1, 20, "a")))
	fParams := []*ast.Param{fixture.Param(1, 5, "a", fixture.Scalar(1, 5, "integer"))}
	fdecl := fixture.Func(1, 1, "f", fParams, fixture.Scalar(1, 1, "integer"), fBody)

	m := fixture.Var(2, 1, "m", fixture.Scalar(2, 1, "integer"))
	call := fixture.Call(fixture.Ident(3, 5, "f"), fixture.Int(3, 7, 1), fixture.Int(3, 9, 2))
	assignStmt := fixture.Assign(3, 1, fixture.Ident(3, 1, "m"), call)
	mainBody := fixture.Block(3, 15, assignStmt)
	main := fixture.Func(3, 13, "main", nil, fixture.Scalar(3, 13, "void"), mainBody)

	diags := analyze(fixture.Program(fdecl, m, main))

	require.Len(t, diags, 1)
	require.Equal(t, diag.WrongArgCount, diags[0].Message)
	require.Equal(t, 3, diags[0].Line)
	require.Equal(t, 5, diags[0].Column)
}

func TestCheck_EqualityOnScalarsYieldsLogical(t *testing.T) {
	checker := New(func(int, int, string) {})
	bin := &ast.BinaryExpr{
		Left:  &ast.IntLit{Value: 1},
		Op:    ast.OpEq,
		Right: &ast.IntLit{Value: 2},
	}

	result, err := checker.VisitBinaryExpr(bin)
	require.NoError(t, err)
	require.True(t, types.Logical.Equals(result.(types.Type)))
}

func TestCheck_EqualityOnFunctionNamesIsRejected(t *testing.T) {
	fBody := fixture.Block(1, 10)
	fdecl := fixture.Func(1, 1, "f", nil, fixture.Scalar(1, 1, "void"), fBody)
	gBody := fixture.Block(2, 10)
	gdecl := fixture.Func(2, 1, "g", nil, fixture.Scalar(2, 1, "void"), gBody)

	bin := fixture.Bin(fixture.Ident(3, 1, "f"), ast.OpEq, fixture.Ident(3, 5, "g"))
	body := fixture.Block(3, 10, &ast.WriteStmt{StmtPos: fixture.P(3, 1), Operand: bin})
	main := fixture.Func(3, 1, "main", nil, fixture.Scalar(3, 1, "void"), body)

	diags := analyze(fixture.Program(fdecl, gdecl, main))

	require.Len(t, diags, 1)
	require.Equal(t, diag.Diagnostic{Line: 3, Column: 1, Message: diag.EqualityOnFunction}, diags[0])
}

func TestCheck_AssignmentToTupleVariableRejected(t *testing.T) {
	def := fixture.Tuple(1, 1, "T", nil)
	t1 := fixture.Var(2, 1, "t1", fixture.TupleRef(2, 1, "T"))
	t2 := fixture.Var(2, 10, "t2", fixture.TupleRef(2, 10, "T"))
	assignStmt := fixture.Assign(3, 1, fixture.Ident(3, 1, "t1"), fixture.Ident(3, 6, "t2"))
	body := fixture.Block(3, 10, assignStmt)
	main := fixture.Func(3, 1, "main", nil, fixture.Scalar(3, 1, "void"), body)

	diags := analyze(fixture.Program(def, t1, t2, main))

	require.Len(t, diags, 1)
	require.Equal(t, diag.Diagnostic{Line: 3, Column: 1, Message: diag.AssignToTupleVar}, diags[0])
}

func TestCheck_WriteOfVoidCallIsRejected(t *testing.T) {
	fBody := fixture.Block(1, 10)
	fdecl := fixture.Func(1, 1, "f", nil, fixture.Scalar(1, 1, "void"), fBody)

	call := fixture.Call(fixture.Ident(2, 4, "f"))
	writeStmt := &ast.WriteStmt{StmtPos: fixture.P(2, 1), Operand: call}
	body := fixture.Block(2, 10, writeStmt)
	main := fixture.Func(2, 1, "main", nil, fixture.Scalar(2, 1, "void"), body)

	diags := analyze(fixture.Program(fdecl, main))

	require.Len(t, diags, 1)
	require.Equal(t, diag.Diagnostic{Line: 2, Column: 4, Message: diag.WriteOfVoid}, diags[0])
}
