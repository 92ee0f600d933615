package interp

import (
	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/errs"
	"github.com/papagiannakis/glossa/internal/interp/runtime"
)

// bindArgs evaluates args left to right against params, coercing each to
// its declared parameter type.
func (i *Interpreter) bindArgs(name string, params []ast.Param, args []ast.Expr, callEnv *runtime.Environment, line int) ([]runtime.Value, error) {
	if len(args) != len(params) {
		return nil, errs.NewRuntimeError(line, "Η '%s' αναμένει %d παραμέτρους, δόθηκαν %d", name, len(params), len(args))
	}
	bound := make([]runtime.Value, len(params))
	for idx, a := range args {
		v, err := i.eval(a, callEnv)
		if err != nil {
			return nil, err
		}
		coerced, err := runtime.Coerce(params[idx].Type, v, a.NodeLine())
		if err != nil {
			return nil, err
		}
		bound[idx] = coerced
	}
	return bound, nil
}

func paramDecls(params []ast.Param) []ast.VarDecl {
	decls := make([]ast.VarDecl, len(params))
	for i, p := range params {
		decls[i] = ast.VarDecl{Name: p.Name, Type: p.Type}
	}
	return decls
}

// callProcedure dispatches a ΚΑΛΕΣΕ statement: arity-checks, binds arguments, runs the body in a fresh
// environment parented to root, and rejects a value-carrying return.
func (i *Interpreter) callProcedure(call *ast.ProcedureCall, callEnv *runtime.Environment) (signal, error) {
	proc, ok := callEnv.Procedure(call.Name)
	if !ok {
		return noSignal, errs.NewRuntimeError(call.Line, "Άγνωστη διαδικασία '%s'", call.Name)
	}
	bound, err := i.bindArgs(call.Name, proc.Params, call.Args, callEnv, call.Line)
	if err != nil {
		return noSignal, err
	}
	locals := append(paramDecls(proc.Params), proc.Locals...)
	routineEnv := runtime.NewChildEnvironment(i.root, locals)
	for idx, p := range proc.Params {
		if err := routineEnv.SetScalar(p.Name, bound[idx], call.Line); err != nil {
			return noSignal, err
		}
	}
	sig, err := i.execStatements(proc.Body, routineEnv)
	if err != nil {
		return noSignal, err
	}
	if sig.isReturn() && sig.value != nil {
		return noSignal, errs.NewRuntimeError(call.Line, "Η διαδικασία '%s' δεν μπορεί να επιστρέψει τιμή", call.Name)
	}
	return noSignal, nil
}

// callFunction dispatches a function-call expression: arity-checks, binds
// arguments, runs the body in a fresh environment parented to root, and
// requires the body to reach a ΕΠΙΣΤΡΕΨΕ with a value, which is then
// coerced to the declared return type.
func (i *Interpreter) callFunction(call *ast.FunctionCall, callEnv *runtime.Environment) (runtime.Value, error) {
	fn, ok := callEnv.Function(call.Name)
	if !ok {
		return nil, errs.NewRuntimeError(call.Line, "Άγνωστη συνάρτηση '%s'", call.Name)
	}
	bound, err := i.bindArgs(call.Name, fn.Params, call.Args, callEnv, call.Line)
	if err != nil {
		return nil, err
	}
	locals := append(paramDecls(fn.Params), fn.Locals...)
	routineEnv := runtime.NewChildEnvironment(i.root, locals)
	for idx, p := range fn.Params {
		if err := routineEnv.SetScalar(p.Name, bound[idx], call.Line); err != nil {
			return nil, err
		}
	}
	sig, err := i.execStatements(fn.Body, routineEnv)
	if err != nil {
		return nil, err
	}
	if !sig.isReturn() || sig.value == nil {
		return nil, errs.NewRuntimeError(call.Line, "Η συνάρτηση '%s' δεν επέστρεψε τιμή", call.Name)
	}
	return runtime.Coerce(fn.ReturnType, sig.value, call.Line)
}
