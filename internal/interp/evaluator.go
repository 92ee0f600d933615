package interp

import (
	"strings"

	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/errs"
	"github.com/papagiannakis/glossa/internal/interp/runtime"
)

// eval is the expression evaluator: a function over an AST expression
// node and an Environment that returns a Value. Its only possible side
// effects are nested function calls invoking I/O, so it additionally
// threads through the Interpreter to reach the routine dispatcher and
// I/O adapter.
func (i *Interpreter) eval(node ast.Expr, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.NumberLit:
		if n.IsReal {
			return runtime.Real(n.Real), nil
		}
		return runtime.Integer(n.Int), nil
	case *ast.StringLit:
		return runtime.String(n.Value), nil
	case *ast.BoolLit:
		return runtime.Boolean(n.Value), nil
	case *ast.VariableRef:
		return env.GetScalar(n.Name, n.Line)
	case *ast.ArrayRef:
		return i.evalArrayRef(n, env)
	case *ast.FunctionCall:
		return i.callFunction(n, env)
	case *ast.UnaryOp:
		return i.evalUnary(n, env)
	case *ast.BinaryOp:
		return i.evalBinary(n, env)
	default:
		return nil, errs.NewRuntimeError(node.NodeLine(), "Μη υποστηριζόμενη έκφραση")
	}
}

func (i *Interpreter) evalArrayRef(n *ast.ArrayRef, env *runtime.Environment) (runtime.Value, error) {
	arr, err := env.Array(n.Name, n.Line)
	if err != nil {
		return nil, err
	}
	indices, err := i.evalIndices(n.Indices, env)
	if err != nil {
		return nil, err
	}
	return arr.Get(n.Name, indices, n.Line)
}

// evalIndices evaluates and coerces each index expression, left to right.
func (i *Interpreter) evalIndices(exprs []ast.Expr, env *runtime.Environment) ([]int, error) {
	indices := make([]int, len(exprs))
	for idx, e := range exprs {
		v, err := i.eval(e, env)
		if err != nil {
			return nil, err
		}
		n, err := runtime.CoerceIndex(v, e.NodeLine())
		if err != nil {
			return nil, err
		}
		indices[idx] = n
	}
	return indices, nil
}

func (i *Interpreter) evalUnary(n *ast.UnaryOp, env *runtime.Environment) (runtime.Value, error) {
	v, err := i.eval(n.Expr, env)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "NOT":
		return runtime.Boolean(!truthy(v)), nil
	case "MINUS":
		return negate(v, n.Line)
	case "PLUS":
		return numericIdentity(v, n.Line)
	default:
		return nil, errs.NewRuntimeError(n.Line, "Άγνωστος μονοσήμαντος τελεστής")
	}
}

func negate(v runtime.Value, line int) (runtime.Value, error) {
	switch x := v.(type) {
	case runtime.Integer:
		return -x, nil
	case runtime.Real:
		return -x, nil
	default:
		return nil, errs.NewRuntimeError(line, "Αναμενόταν αριθμητική τιμή")
	}
}

func numericIdentity(v runtime.Value, line int) (runtime.Value, error) {
	switch v.(type) {
	case runtime.Integer, runtime.Real:
		return v, nil
	default:
		return nil, errs.NewRuntimeError(line, "Αναμενόταν αριθμητική τιμή")
	}
}

func truthy(v runtime.Value) bool {
	if b, ok := v.(runtime.Boolean); ok {
		return bool(b)
	}
	return false
}

func (i *Interpreter) evalBinary(n *ast.BinaryOp, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.eval(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.eval(n.Right, env)
	if err != nil {
		return nil, err
	}
	line := n.Line
	switch n.Op {
	case "AND":
		return runtime.Boolean(truthy(left) && truthy(right)), nil
	case "OR":
		return runtime.Boolean(truthy(left) || truthy(right)), nil
	case "PLUS":
		return arith(left, right, line, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })
	case "MINUS":
		return arith(left, right, line, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
	case "MUL":
		return arith(left, right, line, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
	case "DIVIDE":
		return divide(left, right, line)
	case "DIV":
		return intDiv(left, right, line)
	case "MOD", "MOD_SYM":
		return mod(left, right, line)
	case "EQ":
		return equals(left, right, line)
	case "NE":
		eq, err := equals(left, right, line)
		if err != nil {
			return nil, err
		}
		return runtime.Boolean(!bool(eq.(runtime.Boolean))), nil
	case "LT", "LE", "GT", "GE":
		return compare(n.Op, left, right, line)
	default:
		return nil, errs.NewRuntimeError(line, "Άγνωστος τελεστής %s", n.Op)
	}
}

// numericPair widens both operands to float64 when either is real;
// otherwise returns them as int64. isReal reports which case applied.
func numericPair(left, right runtime.Value, line int) (li, ri int64, lf, rf float64, isReal bool, err error) {
	lInt, lIsInt := left.(runtime.Integer)
	rInt, rIsInt := right.(runtime.Integer)
	lReal, lIsReal := left.(runtime.Real)
	rReal, rIsReal := right.(runtime.Real)

	if !((lIsInt || lIsReal) && (rIsInt || rIsReal)) {
		err = errs.NewRuntimeError(line, "Αναμενόταν αριθμητικές τιμές")
		return
	}
	if lIsReal || rIsReal {
		isReal = true
		if lIsReal {
			lf = float64(lReal)
		} else {
			lf = float64(lInt)
		}
		if rIsReal {
			rf = float64(rReal)
		} else {
			rf = float64(rInt)
		}
		return
	}
	li, ri = int64(lInt), int64(rInt)
	return
}

func arith(left, right runtime.Value, line int, intOp func(a, b int64) int64, realOp func(a, b float64) float64) (runtime.Value, error) {
	li, ri, lf, rf, isReal, err := numericPair(left, right, line)
	if err != nil {
		return nil, err
	}
	if isReal {
		return runtime.Real(realOp(lf, rf)), nil
	}
	return runtime.Integer(intOp(li, ri)), nil
}

func divide(left, right runtime.Value, line int) (runtime.Value, error) {
	_, _, lf, rf, isReal, err := numericPair(left, right, line)
	if err != nil {
		return nil, err
	}
	if !isReal {
		li, _ := left.(runtime.Integer)
		ri, _ := right.(runtime.Integer)
		lf, rf = float64(li), float64(ri)
	}
	if rf == 0 {
		return nil, errs.NewRuntimeError(line, "Διαίρεση με το μηδέν")
	}
	return runtime.Real(lf / rf), nil
}

func asInt64(v runtime.Value, line int) (int64, error) {
	switch x := v.(type) {
	case runtime.Integer:
		return int64(x), nil
	case runtime.Real:
		return int64(x), nil
	case runtime.Boolean:
		if x {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, errs.NewRuntimeError(line, "Αναμενόταν αριθμητική τιμή")
	}
}

func intDiv(left, right runtime.Value, line int) (runtime.Value, error) {
	l, err := asInt64(left, line)
	if err != nil {
		return nil, err
	}
	r, err := asInt64(right, line)
	if err != nil {
		return nil, err
	}
	if r == 0 {
		return nil, errs.NewRuntimeError(line, "Διαίρεση με το μηδέν")
	}
	return runtime.Integer(l / r), nil
}

func mod(left, right runtime.Value, line int) (runtime.Value, error) {
	l, err := asInt64(left, line)
	if err != nil {
		return nil, err
	}
	r, err := asInt64(right, line)
	if err != nil {
		return nil, err
	}
	if r == 0 {
		return nil, errs.NewRuntimeError(line, "Υπόλοιπο με το μηδέν")
	}
	return runtime.Integer(l % r), nil
}

// equals works for any two values, of any types: cross-family comparisons
// (e.g. an integer against a string) are simply unequal, not an error —
// unlike ordering, equality never rejects a comparison.
func equals(left, right runtime.Value, line int) (runtime.Value, error) {
	switch l := left.(type) {
	case runtime.Integer, runtime.Real:
		_, rIsNum := right.(runtime.Integer)
		_, rIsReal := right.(runtime.Real)
		if !rIsNum && !rIsReal {
			return runtime.Boolean(false), nil
		}
		li, ri, lf, rf, isReal, err := numericPair(left, right, line)
		if err != nil {
			return nil, err
		}
		if isReal {
			return runtime.Boolean(lf == rf), nil
		}
		return runtime.Boolean(li == ri), nil
	case runtime.String:
		r, ok := right.(runtime.String)
		if !ok {
			return runtime.Boolean(false), nil
		}
		return runtime.Boolean(l == r), nil
	case runtime.Boolean:
		r, ok := right.(runtime.Boolean)
		if !ok {
			return runtime.Boolean(false), nil
		}
		return runtime.Boolean(l == r), nil
	default:
		return runtime.Boolean(false), nil
	}
}

// compare implements ordering: numeric-with-numeric or string-with-string
// only; mixed-type ordering is a runtime error.
func compare(op string, left, right runtime.Value, line int) (runtime.Value, error) {
	if lStr, ok := left.(runtime.String); ok {
		rStr, ok := right.(runtime.String)
		if !ok {
			return nil, errs.NewRuntimeError(line, "Δεν είναι δυνατή η σύγκριση τιμών διαφορετικού τύπου")
		}
		return runtime.Boolean(compareStrings(op, string(lStr), string(rStr))), nil
	}
	li, ri, lf, rf, isReal, err := numericPair(left, right, line)
	if err != nil {
		return nil, err
	}
	if isReal {
		return runtime.Boolean(compareFloats(op, lf, rf)), nil
	}
	return runtime.Boolean(compareInts(op, li, ri)), nil
}

func compareInts(op string, a, b int64) bool {
	switch op {
	case "LT":
		return a < b
	case "LE":
		return a <= b
	case "GT":
		return a > b
	case "GE":
		return a >= b
	}
	return false
}

func compareFloats(op string, a, b float64) bool {
	switch op {
	case "LT":
		return a < b
	case "LE":
		return a <= b
	case "GT":
		return a > b
	case "GE":
		return a >= b
	}
	return false
}

func compareStrings(op, a, b string) bool {
	switch op {
	case "LT":
		return strings.Compare(a, b) < 0
	case "LE":
		return strings.Compare(a, b) <= 0
	case "GT":
		return strings.Compare(a, b) > 0
	case "GE":
		return strings.Compare(a, b) >= 0
	}
	return false
}
