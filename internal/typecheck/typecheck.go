// Package typecheck implements Base's type-checking pass: the second of
// the two sequential AST walks (spec.md §2). It assumes name resolution
// has already run, computes expression types, validates statement-level
// constraints, and propagates a scalar error status through the Error
// type so one failure never cascades into a flood of derived diagnostics.
package typecheck

import (
	"github.com/baselang/semantic/internal/ast"
	"github.com/baselang/semantic/internal/diag"
	"github.com/baselang/semantic/internal/pos"
	"github.com/baselang/semantic/internal/types"
)

// Checker walks an AST computing and checking expression types. One
// instance is good for exactly one Check call.
type Checker struct {
	sink diag.Sink

	// currentReturn is the declared return type of the function whose
	// body is currently being walked, nil at the top level where a
	// return statement cannot legally appear.
	currentReturn types.Type
}

// New returns a Checker that reports diagnostics to sink.
func New(sink diag.Sink) *Checker {
	return &Checker{sink: sink}
}

func (c *Checker) report(p pos.Position, message string) {
	c.sink(p.Line, p.Column, message)
}

// Check runs type checking over every top-level declaration.
func (c *Checker) Check(prog *ast.Program) {
	for _, d := range prog.Decls {
		_ = d.Accept(c)
	}
}

func exprType(v interface{}) types.Type {
	t, ok := v.(types.Type)
	if !ok || t == nil {
		return types.Error
	}
	return t
}

func (c *Checker) typeOf(e ast.Expr) types.Type {
	v, _ := e.Accept(c)
	return exprType(v)
}

// VisitVarDecl and VisitTupleDef do nothing: declarations carry no
// expression to type-check, and their symbols were already fully formed
// during name resolution.
func (c *Checker) VisitVarDecl(d *ast.VarDecl) error { return nil }

func (c *Checker) VisitTupleDef(d *ast.TupleDef) error { return nil }

// VisitFuncDecl checks a function's body against its declared return
// type. A function whose own declaration was a duplicate never got a
// symbol attached during resolution, so its body is still walked (for
// inner diagnostics) with the return type treated as Error, which
// silently absorbs every return statement's check.
func (c *Checker) VisitFuncDecl(d *ast.FuncDecl) error {
	saved := c.currentReturn
	if fn, ok := funcType(d); ok {
		c.currentReturn = fn.Return
	} else {
		c.currentReturn = types.Error
	}
	_ = d.Body.Accept(c)
	c.currentReturn = saved
	return nil
}

func funcType(d *ast.FuncDecl) (*types.Function, bool) {
	if d.Symbol == nil {
		return nil, false
	}
	fn, ok := d.Symbol.Type.(*types.Function)
	return fn, ok
}

func (c *Checker) VisitBlock(b *ast.Block) error {
	for _, s := range b.Statements {
		_ = s.Accept(c)
	}
	return nil
}

func (c *Checker) VisitAssignStmt(s *ast.AssignStmt) error {
	c.checkAssign(s.Lhs, s.Rhs, s.StmtPos)
	return nil
}

func (c *Checker) VisitIncDecStmt(s *ast.IncDecStmt) error {
	c.typeOf(s.Target)
	return nil
}

func (c *Checker) VisitIfStmt(s *ast.IfStmt) error {
	condType := c.typeOf(s.Cond)
	if !types.IsError(condType) && !condType.Equals(types.Logical) {
		c.report(s.Cond.Pos(), diag.NonLogicalIf)
	}
	_ = s.Then.Accept(c)
	if s.Else != nil {
		_ = s.Else.Accept(c)
	}
	return nil
}

func (c *Checker) VisitWhileStmt(s *ast.WhileStmt) error {
	condType := c.typeOf(s.Cond)
	if !types.IsError(condType) && !condType.Equals(types.Logical) {
		c.report(s.Cond.Pos(), diag.NonLogicalWhile)
	}
	_ = s.Body.Accept(c)
	return nil
}

func (c *Checker) VisitReadStmt(s *ast.ReadStmt) error {
	t := c.typeOf(s.Operand)
	switch {
	case types.IsError(t):
	case t.Equals(types.Integer), t.Equals(types.Logical):
	default:
		switch t.(type) {
		case *types.Function:
			c.report(s.Operand.Pos(), diag.ReadOfFunction)
		case *types.TupleVar:
			c.report(s.Operand.Pos(), diag.ReadOfTupleVar)
		case *types.TupleDef:
			c.report(s.Operand.Pos(), diag.ReadOfTupleDef)
			// String and Void fall through silently (spec.md §4.6, §9).
		}
	}
	return nil
}

func (c *Checker) VisitWriteStmt(s *ast.WriteStmt) error {
	t := c.typeOf(s.Operand)
	switch {
	case types.IsError(t):
	case t.Equals(types.Integer), t.Equals(types.Logical), t.Equals(types.Str):
	default:
		switch t.(type) {
		case *types.Function:
			c.report(s.Operand.Pos(), diag.WriteOfFunction)
		case *types.TupleVar:
			c.report(s.Operand.Pos(), diag.WriteOfTupleVar)
		case *types.TupleDef:
			c.report(s.Operand.Pos(), diag.WriteOfTupleDef)
		default:
			if t.Equals(types.Void) {
				c.report(s.Operand.Pos(), diag.WriteOfVoid)
			}
		}
	}
	return nil
}

func (c *Checker) VisitCallStmt(s *ast.CallStmt) error {
	c.typeOf(s.Call)
	return nil
}

func (c *Checker) VisitReturnStmt(s *ast.ReturnStmt) error {
	ret := c.currentReturn
	if ret == nil {
		ret = types.Error
	}

	if s.Value == nil {
		if !types.IsError(ret) && !ret.Equals(types.Void) {
			c.report(pos.Position{}, diag.MissingReturnValue)
		}
		return nil
	}

	valueType := c.typeOf(s.Value)
	if types.IsError(ret) {
		return nil
	}
	if ret.Equals(types.Void) {
		c.report(s.Value.Pos(), diag.ReturnWithValue)
		return nil
	}
	if types.IsError(valueType) {
		return nil
	}
	if !valueType.Equals(ret) {
		c.report(s.Value.Pos(), diag.WrongReturnType)
	}
	return nil
}

func (c *Checker) VisitBoolLit(e *ast.BoolLit) (interface{}, error) {
	return types.Logical, nil
}

func (c *Checker) VisitIntLit(e *ast.IntLit) (interface{}, error) {
	return types.Integer, nil
}

func (c *Checker) VisitStringLit(e *ast.StringLit) (interface{}, error) {
	return types.Str, nil
}

func (c *Checker) VisitIdentifier(e *ast.Identifier) (interface{}, error) {
	if e.Symbol == nil {
		return types.Error, nil
	}
	return e.Symbol.Type, nil
}

func (c *Checker) VisitTupleFieldExpr(e *ast.TupleFieldExpr) (interface{}, error) {
	if e.Symbol == nil {
		return types.Error, nil
	}
	return e.Symbol.Type, nil
}

// checkAssign implements the shared assignment rule for both the
// statement form (AssignStmt) and the expression form (AssignExpr):
// spec.md §4.6.
func (c *Checker) checkAssign(lhs, rhs ast.Expr, mismatchPos pos.Position) types.Type {
	lt := c.typeOf(lhs)
	rt := c.typeOf(rhs)
	if types.IsError(lt) || types.IsError(rt) {
		return types.Error
	}
	if !lt.Equals(rt) {
		c.report(lhs.Pos(), diag.MismatchedType)
		return types.Error
	}
	switch lt.(type) {
	case *types.Function:
		c.report(lhs.Pos(), diag.AssignToFunction)
		return types.Error
	case *types.TupleVar:
		c.report(lhs.Pos(), diag.AssignToTupleVar)
		return types.Error
	case *types.TupleDef:
		c.report(lhs.Pos(), diag.AssignToTupleDef)
		return types.Error
	default:
		return lt
	}
}

func (c *Checker) VisitAssignExpr(a *ast.AssignExpr) (interface{}, error) {
	return c.checkAssign(a.Lhs, a.Rhs, a.Pos()), nil
}

func (c *Checker) VisitCallExpr(call *ast.CallExpr) (interface{}, error) {
	calleeType := c.typeOf(call.Callee)
	fn, ok := calleeType.(*types.Function)
	if !ok {
		if !types.IsError(calleeType) {
			c.report(call.Callee.Pos(), diag.CallOfNonFunction)
		}
		for _, arg := range call.Args {
			c.typeOf(arg)
		}
		return types.Error, nil
	}

	if len(call.Args) != len(fn.Params) {
		c.report(call.Callee.Pos(), diag.WrongArgCount)
		for _, arg := range call.Args {
			c.typeOf(arg)
		}
		return fn.Return, nil
	}

	for i, arg := range call.Args {
		argType := c.typeOf(arg)
		paramType := fn.Params[i]
		if types.IsError(argType) || types.IsError(paramType) {
			continue
		}
		if !argType.Equals(paramType) {
			c.report(arg.Pos(), diag.ArgTypeMismatch)
		}
	}
	return fn.Return, nil
}

func (c *Checker) VisitUnaryExpr(u *ast.UnaryExpr) (interface{}, error) {
	operand := c.typeOf(u.Operand)
	if types.IsError(operand) {
		return types.Error, nil
	}
	switch u.Op {
	case ast.UnaryMinus:
		if !operand.Equals(types.Integer) {
			c.report(u.Operand.Pos(), diag.NonIntArithOperand)
			return types.Error, nil
		}
		return types.Integer, nil
	case ast.UnaryNot:
		if !operand.Equals(types.Logical) {
			c.report(u.Operand.Pos(), diag.NonLogicalOperand)
			return types.Error, nil
		}
		return types.Logical, nil
	default:
		return types.Error, nil
	}
}

func (c *Checker) VisitBinaryExpr(b *ast.BinaryExpr) (interface{}, error) {
	if b.Op.IsEquality() {
		return c.checkEquality(b)
	}

	lt := c.typeOf(b.Left)
	rt := c.typeOf(b.Right)

	switch {
	case b.Op.IsArithmetic():
		return c.checkOperandPair(lt, rt, b.Left.Pos(), b.Right.Pos(), types.Integer, diag.NonIntArithOperand, types.Integer), nil
	case b.Op.IsRelational():
		return c.checkOperandPair(lt, rt, b.Left.Pos(), b.Right.Pos(), types.Integer, diag.NonIntRelOperand, types.Logical), nil
	case b.Op.IsLogical():
		return c.checkOperandPair(lt, rt, b.Left.Pos(), b.Right.Pos(), types.Logical, diag.NonLogicalOperand, types.Logical), nil
	default:
		return types.Error, nil
	}
}

// checkOperandPair implements the shared per-operand diagnostic shape for
// arithmetic, relational, and logical binary operators: each operand
// must have type want; a non-Error operand that doesn't emits message at
// its own position; the whole expression is Error if either operand
// failed, otherwise result.
func (c *Checker) checkOperandPair(lt, rt types.Type, lpos, rpos pos.Position, want types.Type, message string, result types.Type) types.Type {
	ok := true
	if !types.IsError(lt) && !lt.Equals(want) {
		c.report(lpos, message)
		ok = false
	}
	if !types.IsError(rt) && !rt.Equals(want) {
		c.report(rpos, message)
		ok = false
	}
	if types.IsError(lt) || types.IsError(rt) || !ok {
		return types.Error
	}
	return result
}

// checkEquality implements spec.md §4.6's equality rule, including the
// spec-fixed result of Logical for two equal scalar operands (rather
// than the operand's own type, which one source variant used).
func (c *Checker) checkEquality(b *ast.BinaryExpr) (interface{}, error) {
	lt := c.typeOf(b.Left)
	rt := c.typeOf(b.Right)
	if types.IsError(lt) || types.IsError(rt) {
		return types.Error, nil
	}
	if !lt.Equals(rt) {
		c.report(b.Left.Pos(), diag.MismatchedType)
		return types.Error, nil
	}
	switch lt.(type) {
	case *types.Function:
		c.report(b.Left.Pos(), diag.EqualityOnFunction)
		return types.Error, nil
	case *types.TupleDef:
		c.report(b.Left.Pos(), diag.EqualityOnTupleDef)
		return types.Error, nil
	case *types.TupleVar:
		c.report(b.Left.Pos(), diag.EqualityOnTupleVar)
		return types.Error, nil
	default:
		if lt.Equals(types.Void) {
			c.report(b.Left.Pos(), diag.EqualityOnVoidCall)
			return types.Error, nil
		}
		return types.Logical, nil
	}
}
