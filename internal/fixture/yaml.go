package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/baselang/semantic/internal/ast"
	"github.com/baselang/semantic/internal/pos"
)

// Scenario is the YAML shape `cmd/baseanalyze`'s driver loads its demo
// and end-to-end test programs from (SPEC_FULL.md's "end-to-end
// scenarios" table): a tiny Base-subset program expressed as data
// instead of Go fixture calls, so a new scenario is a new file rather
// than a new function.
//
// Positions are not read from the YAML; Build assigns each node
// the next line in file order via an internal counter, so every node in
// a loaded scenario still carries a distinct, ordered position for
// diagnostics to anchor to.
type Scenario struct {
	Name   string      `yaml:"name"`
	Vars   []varYAML   `yaml:"vars"`
	Tuples []tupleYAML `yaml:"tuples"`
	Funcs  []funcYAML  `yaml:"funcs"`
}

type varYAML struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type tupleYAML struct {
	Name   string    `yaml:"name"`
	Fields []varYAML `yaml:"fields"`
}

type paramYAML struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type funcYAML struct {
	Name   string      `yaml:"name"`
	Params []paramYAML `yaml:"params"`
	Return string      `yaml:"return"`
	Body   []stmtYAML  `yaml:"body"`
}

// stmtYAML is a tagged union: exactly one field should be set per entry.
type stmtYAML struct {
	Write  *exprYAML   `yaml:"write"`
	Read   *exprYAML   `yaml:"read"`
	Assign *assignYAML `yaml:"assign"`
	IncDec *incDecYAML `yaml:"incdec"`
	If     *ifYAML     `yaml:"if"`
	While  *whileYAML  `yaml:"while"`
	Return *exprYAML   `yaml:"return"`
	Call   *callYAML   `yaml:"call"`
}

type assignYAML struct {
	Lhs exprYAML `yaml:"lhs"`
	Rhs exprYAML `yaml:"rhs"`
}

type incDecYAML struct {
	Target exprYAML `yaml:"target"`
	Op     string   `yaml:"op"` // "inc" or "dec"
}

type ifYAML struct {
	Cond exprYAML   `yaml:"cond"`
	Then []stmtYAML `yaml:"then"`
	Else []stmtYAML `yaml:"else"`
}

type whileYAML struct {
	Cond exprYAML   `yaml:"cond"`
	Body []stmtYAML `yaml:"body"`
}

// exprYAML is a tagged union over every expression shape a scenario can
// need; exactly one field is set per node.
type exprYAML struct {
	Ident *string     `yaml:"ident"`
	Int   *int64      `yaml:"int"`
	Bool  *bool       `yaml:"bool"`
	Str   *string     `yaml:"str"`
	Field *fieldYAML  `yaml:"field"`
	Bin   *binYAML    `yaml:"bin"`
	Unary *unaryYAML  `yaml:"unary"`
	Call  *callYAML   `yaml:"call"`
}

type fieldYAML struct {
	Base exprYAML `yaml:"base"`
	Name string   `yaml:"name"`
}

type binYAML struct {
	Op    string   `yaml:"op"`
	Left  exprYAML `yaml:"left"`
	Right exprYAML `yaml:"right"`
}

type unaryYAML struct {
	Op      string   `yaml:"op"`
	Operand exprYAML `yaml:"operand"`
}

type callYAML struct {
	Func string     `yaml:"func"`
	Args []exprYAML `yaml:"args"`
}

var binOps = map[string]ast.BinaryOp{
	"add": ast.OpAdd, "sub": ast.OpSub, "mul": ast.OpMul, "div": ast.OpDiv,
	"lt": ast.OpLt, "le": ast.OpLe, "gt": ast.OpGt, "ge": ast.OpGe,
	"and": ast.OpAnd, "or": ast.OpOr, "eq": ast.OpEq, "neq": ast.OpNeq,
}

// posCounter hands out increasing line numbers, one per AST node built
// from a scenario, so diagnostics against a YAML-loaded program still
// sort and print sensibly despite the source having no real lexer.
type posCounter struct{ line int }

func (c *posCounter) next() pos.Position {
	c.line++
	return pos.Position{Line: c.line, Column: 1}
}

// LoadScenarioFile reads and decodes a Scenario from path.
func LoadScenarioFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return &s, nil
}

// Build converts a decoded Scenario into an *ast.Program using the same
// constructors the hand-written Go fixtures use, in declaration order:
// tuples first, then vars, then funcs — the order a Base source file
// would naturally declare them in.
func (s *Scenario) Build() *ast.Program {
	c := &posCounter{}
	var decls []ast.Decl

	for _, td := range s.Tuples {
		fields := make([]*ast.VarDecl, 0, len(td.Fields))
		for _, f := range td.Fields {
			p := c.next()
			fields = append(fields, Var(p.Line, p.Column, f.Name, buildType(c, f.Type)))
		}
		p := c.next()
		decls = append(decls, Tuple(p.Line, p.Column, td.Name, fields))
	}

	for _, v := range s.Vars {
		p := c.next()
		decls = append(decls, Var(p.Line, p.Column, v.Name, buildType(c, v.Type)))
	}

	for _, fn := range s.Funcs {
		params := make([]*ast.Param, 0, len(fn.Params))
		for _, pr := range fn.Params {
			p := c.next()
			params = append(params, Param(p.Line, p.Column, pr.Name, buildType(c, pr.Type)))
		}
		body := buildBlock(c, fn.Body)
		p := c.next()
		decls = append(decls, Func(p.Line, p.Column, fn.Name, params, buildType(c, fn.Return), body))
	}

	return Program(decls...)
}

func buildType(c *posCounter, name string) ast.TypeNode {
	p := c.next()
	if len(name) > 6 && name[:6] == "tuple:" {
		return TupleRef(p.Line, p.Column, name[6:])
	}
	return Scalar(p.Line, p.Column, name)
}

func buildBlock(c *posCounter, stmts []stmtYAML) *ast.Block {
	p := c.next()
	built := make([]ast.Stmt, 0, len(stmts))
	for _, s := range stmts {
		built = append(built, buildStmt(c, s))
	}
	return Block(p.Line, p.Column, built...)
}

func buildStmt(c *posCounter, s stmtYAML) ast.Stmt {
	p := c.next()
	switch {
	case s.Write != nil:
		return &ast.WriteStmt{StmtPos: p, Operand: buildExpr(c, *s.Write)}
	case s.Read != nil:
		return &ast.ReadStmt{StmtPos: p, Operand: buildExpr(c, *s.Read)}
	case s.Assign != nil:
		return Assign(p.Line, p.Column, buildExpr(c, s.Assign.Lhs), buildExpr(c, s.Assign.Rhs))
	case s.IncDec != nil:
		op := ast.OpInc
		if s.IncDec.Op == "dec" {
			op = ast.OpDec
		}
		return &ast.IncDecStmt{StmtPos: p, Target: buildExpr(c, s.IncDec.Target), Op: op}
	case s.If != nil:
		cond := buildExpr(c, s.If.Cond)
		then := buildBlock(c, s.If.Then)
		var els *ast.Block
		if len(s.If.Else) > 0 {
			els = buildBlock(c, s.If.Else)
		}
		return If(p.Line, p.Column, cond, then, els)
	case s.While != nil:
		return While(p.Line, p.Column, buildExpr(c, s.While.Cond), buildBlock(c, s.While.Body))
	case s.Return != nil:
		if s.Return.Ident == nil && s.Return.Int == nil && s.Return.Bool == nil && s.Return.Str == nil &&
			s.Return.Field == nil && s.Return.Bin == nil && s.Return.Unary == nil && s.Return.Call == nil {
			return Return(p.Line, p.Column, nil)
		}
		return Return(p.Line, p.Column, buildExpr(c, *s.Return))
	case s.Call != nil:
		return &ast.CallStmt{Call: buildCall(c, *s.Call)}
	default:
		return Return(p.Line, p.Column, nil)
	}
}

func buildExpr(c *posCounter, e exprYAML) ast.Expr {
	p := c.next()
	switch {
	case e.Ident != nil:
		return Ident(p.Line, p.Column, *e.Ident)
	case e.Int != nil:
		return Int(p.Line, p.Column, *e.Int)
	case e.Bool != nil:
		return Bool(p.Line, p.Column, *e.Bool)
	case e.Str != nil:
		return Str(p.Line, p.Column, *e.Str)
	case e.Field != nil:
		base := buildExpr(c, e.Field.Base)
		return Field(base, p.Line, p.Column, e.Field.Name)
	case e.Bin != nil:
		left := buildExpr(c, e.Bin.Left)
		right := buildExpr(c, e.Bin.Right)
		return Bin(left, binOps[e.Bin.Op], right)
	case e.Unary != nil:
		op := ast.UnaryMinus
		if e.Unary.Op == "not" {
			op = ast.UnaryNot
		}
		return Unary(p.Line, p.Column, op, buildExpr(c, e.Unary.Operand))
	case e.Call != nil:
		return buildCall(c, *e.Call)
	default:
		return Ident(p.Line, p.Column, "")
	}
}

func buildCall(c *posCounter, call callYAML) *ast.CallExpr {
	p := c.next()
	callee := Ident(p.Line, p.Column, call.Func)
	args := make([]ast.Expr, 0, len(call.Args))
	for _, a := range call.Args {
		args = append(args, buildExpr(c, a))
	}
	return Call(callee, args...)
}
