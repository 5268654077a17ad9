package fixture

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/baselang/semantic/internal/ast"
)

func parseScenario(t *testing.T, src string) *Scenario {
	t.Helper()
	var s Scenario
	require.NoError(t, yaml.Unmarshal([]byte(src), &s))
	return &s
}

func TestScenario_BuildProducesTupleVarFuncInOrder(t *testing.T) {
	s := parseScenario(t, `
name: point
tuples:
  - name: Point
    fields:
      - name: x
        type: integer
vars:
  - name: origin
    type: tuple:Point
funcs:
  - name: main
    return: void
    params: []
    body:
      - write: {ident: origin}
`)

	prog := s.Build()
	require.Len(t, prog.Decls, 3)

	tuple, ok := prog.Decls[0].(*ast.TupleDef)
	require.True(t, ok)
	require.Equal(t, "Point", tuple.Name)
	require.Len(t, tuple.Fields, 1)
	require.Equal(t, "x", tuple.Fields[0].Name)

	v, ok := prog.Decls[1].(*ast.VarDecl)
	require.True(t, ok)
	require.Equal(t, "origin", v.Name)
	ref, ok := v.Type.(*ast.TupleTypeRef)
	require.True(t, ok)
	require.Equal(t, "Point", ref.Name)

	fn, ok := prog.Decls[2].(*ast.FuncDecl)
	require.True(t, ok)
	require.Equal(t, "main", fn.Name)
	require.Len(t, fn.Body.Statements, 1)
	write, ok := fn.Body.Statements[0].(*ast.WriteStmt)
	require.True(t, ok)
	ident, ok := write.Operand.(*ast.Identifier)
	require.True(t, ok)
	require.Equal(t, "origin", ident.Name)
}

func TestScenario_BuildAssignsIncreasingPositions(t *testing.T) {
	s := parseScenario(t, `
funcs:
  - name: f
    return: void
    params: []
    body:
      - write: {int: 1}
      - write: {int: 2}
`)

	prog := s.Build()
	fn := prog.Decls[0].(*ast.FuncDecl)
	first := fn.Body.Statements[0].Pos().Line
	second := fn.Body.Statements[1].Pos().Line
	require.Less(t, first, second)
}

func TestScenario_BuildChainedFieldAccess(t *testing.T) {
	s := parseScenario(t, `
tuples:
  - name: Inner
    fields:
      - name: v
        type: integer
  - name: Outer
    fields:
      - name: in
        type: tuple:Inner
vars:
  - name: t
    type: tuple:Outer
funcs:
  - name: use
    return: void
    params: []
    body:
      - write: {field: {base: {field: {base: {ident: t}, name: in}}, name: v}}
`)

	prog := s.Build()
	fn := prog.Decls[len(prog.Decls)-1].(*ast.FuncDecl)
	write := fn.Body.Statements[0].(*ast.WriteStmt)
	outer, ok := write.Operand.(*ast.TupleFieldExpr)
	require.True(t, ok)
	require.Equal(t, "v", outer.Field)
	inner, ok := outer.Base.(*ast.TupleFieldExpr)
	require.True(t, ok)
	require.Equal(t, "in", inner.Field)
}

func TestScenario_BuildBareReturn(t *testing.T) {
	s := parseScenario(t, `
funcs:
  - name: f
    return: void
    params: []
    body:
      - return: {}
`)

	prog := s.Build()
	fn := prog.Decls[0].(*ast.FuncDecl)
	ret, ok := fn.Body.Statements[0].(*ast.ReturnStmt)
	require.True(t, ok)
	require.Nil(t, ret.Value)
}
