package interp

import (
	"fmt"
	"strings"

	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/errs"
	"github.com/papagiannakis/glossa/internal/interp/runtime"
)

// execStatements runs a statement list in order, bracketing each one with
// the Debugger Hook (if present) and stopping at the first ΕΠΙΣΤΡΕΨΕ
// signal or error (a debugger-requested stop is returned as errStop).
func (i *Interpreter) execStatements(stmts []ast.Stmt, env *runtime.Environment) (signal, error) {
	for _, stmt := range stmts {
		if i.hook != nil {
			if stop := i.hook.Before(stmt, env); stop {
				return noSignal, errStop
			}
		}
		sig, err := i.execStatement(stmt, env)
		if err != nil {
			return noSignal, err
		}
		if i.hook != nil {
			i.hook.After(stmt, env)
		}
		if !sig.isNone() {
			return sig, nil
		}
	}
	return noSignal, nil
}

func (i *Interpreter) execStatement(stmt ast.Stmt, env *runtime.Environment) (signal, error) {
	switch s := stmt.(type) {
	case *ast.Assignment:
		return noSignal, i.execAssignment(s, env)
	case *ast.Write:
		return noSignal, i.execWrite(s, env)
	case *ast.Read:
		return noSignal, i.execRead(s, env)
	case *ast.If:
		return i.execIf(s, env)
	case *ast.While:
		return i.execWhile(s, env)
	case *ast.Repeat:
		return i.execRepeat(s, env)
	case *ast.For:
		return i.execFor(s, env)
	case *ast.Select:
		return i.execSelect(s, env)
	case *ast.ProcedureCall:
		_, err := i.callProcedure(s, env)
		return noSignal, err
	case *ast.Return:
		return i.execReturn(s, env)
	default:
		return noSignal, errs.NewRuntimeError(stmt.NodeLine(), "Μη υποστηριζόμενη εντολή")
	}
}

func (i *Interpreter) execAssignment(s *ast.Assignment, env *runtime.Environment) error {
	val, err := i.eval(s.Expr, env)
	if err != nil {
		return err
	}
	if s.Indices == nil {
		decl, err := env.Declaration(s.Name, s.Line)
		if err != nil {
			return err
		}
		coerced, err := runtime.Coerce(decl.Type, val, s.Line)
		if err != nil {
			return err
		}
		return env.SetScalar(s.Name, coerced, s.Line)
	}
	arr, err := env.Array(s.Name, s.Line)
	if err != nil {
		return err
	}
	indices, err := i.evalIndices(s.Indices, env)
	if err != nil {
		return err
	}
	decl, err := env.Declaration(s.Name, s.Line)
	if err != nil {
		return err
	}
	coerced, err := runtime.Coerce(decl.Type, val, s.Line)
	if err != nil {
		return err
	}
	return arr.Set(s.Name, indices, coerced, s.Line)
}

// execWrite evaluates each operand and emits one space-joined line.
// Boolean renders as ΑΛΗΘΗΣ/ΨΕΥΔΗΣ via Value.String, directly usable
// without special-casing here.
func (i *Interpreter) execWrite(s *ast.Write, env *runtime.Environment) error {
	parts := make([]string, len(s.Exprs))
	for idx, e := range s.Exprs {
		v, err := i.eval(e, env)
		if err != nil {
			return err
		}
		parts[idx] = v.String()
	}
	i.io.Write(strings.Join(parts, " "))
	return nil
}

func (i *Interpreter) execRead(s *ast.Read, env *runtime.Environment) error {
	for _, target := range s.Targets {
		raw, err := i.io.Read()
		if err != nil {
			return err
		}
		decl, err := env.Declaration(target.Name, target.Line)
		if err != nil {
			return err
		}
		val, err := parseInput(raw, decl.Type, target.Line)
		if err != nil {
			return err
		}
		if target.Indices == nil {
			if err := env.SetScalar(target.Name, val, target.Line); err != nil {
				return err
			}
			continue
		}
		arr, err := env.Array(target.Name, target.Line)
		if err != nil {
			return err
		}
		indices, err := i.evalIndices(target.Indices, env)
		if err != nil {
			return err
		}
		if err := arr.Set(target.Name, indices, val, target.Line); err != nil {
			return err
		}
	}
	return nil
}

// parseInput parses one raw ΔΙΑΒΑΣΕ input line into the declared base
// type: integer and real use their usual literal forms, boolean is true
// iff the trimmed, upper-cased text is ΑΛΗΘΗΣ, TRUE, or 1 (false for
// anything else, never an error), string is taken verbatim.
func parseInput(raw string, target ast.BaseType, line int) (runtime.Value, error) {
	trimmed := strings.TrimSpace(raw)
	switch target {
	case ast.IntegerType:
		var n int64
		if _, err := fmt.Sscanf(trimmed, "%d", &n); err != nil {
			return nil, errs.NewRuntimeError(line, "Μη έγκυρος ακέραιος: '%s'", raw)
		}
		return runtime.Integer(n), nil
	case ast.RealType:
		var f float64
		if _, err := fmt.Sscanf(trimmed, "%g", &f); err != nil {
			return nil, errs.NewRuntimeError(line, "Μη έγκυρος πραγματικός: '%s'", raw)
		}
		return runtime.Real(f), nil
	case ast.BooleanType:
		switch strings.ToUpper(trimmed) {
		case "ΑΛΗΘΗΣ", "TRUE", "1":
			return runtime.Boolean(true), nil
		default:
			return runtime.Boolean(false), nil
		}
	case ast.StringType:
		return runtime.String(raw), nil
	default:
		return nil, errs.NewRuntimeError(line, "Άγνωστος τύπος")
	}
}

func (i *Interpreter) execIf(s *ast.If, env *runtime.Environment) (signal, error) {
	cond, err := i.eval(s.Cond, env)
	if err != nil {
		return noSignal, err
	}
	if truthy(cond) {
		return i.execStatements(s.Then, env)
	}
	if s.HasElse {
		return i.execStatements(s.Else, env)
	}
	return noSignal, nil
}

func (i *Interpreter) execWhile(s *ast.While, env *runtime.Environment) (signal, error) {
	for {
		cond, err := i.eval(s.Cond, env)
		if err != nil {
			return noSignal, err
		}
		if !truthy(cond) {
			return noSignal, nil
		}
		sig, err := i.execStatements(s.Body, env)
		if err != nil {
			return noSignal, err
		}
		if !sig.isNone() {
			return sig, nil
		}
	}
}

func (i *Interpreter) execRepeat(s *ast.Repeat, env *runtime.Environment) (signal, error) {
	for {
		sig, err := i.execStatements(s.Body, env)
		if err != nil {
			return noSignal, err
		}
		if !sig.isNone() {
			return sig, nil
		}
		cond, err := i.eval(s.Cond, env)
		if err != nil {
			return noSignal, err
		}
		if truthy(cond) {
			return noSignal, nil
		}
	}
}

// execFor implements ΓΙΑ ... ΑΠΟ ... ΜΕΧΡΙ ... [ΜΕ_ΒΗΜΑ ...]: start/end/step
// are each evaluated once, coerced to integer, and the loop runs while the
// ascending-or-descending comparison holds depending on step's sign. A
// step of exactly zero is not guarded against: if start<=end the loop
// never terminates.
func (i *Interpreter) execFor(s *ast.For, env *runtime.Environment) (signal, error) {
	startVal, err := i.eval(s.Start, env)
	if err != nil {
		return noSignal, err
	}
	start, err := asInt64(startVal, s.Line)
	if err != nil {
		return noSignal, err
	}
	endVal, err := i.eval(s.End, env)
	if err != nil {
		return noSignal, err
	}
	end, err := asInt64(endVal, s.Line)
	if err != nil {
		return noSignal, err
	}
	step := int64(1)
	if s.Step != nil {
		stepVal, err := i.eval(s.Step, env)
		if err != nil {
			return noSignal, err
		}
		step, err = asInt64(stepVal, s.Line)
		if err != nil {
			return noSignal, err
		}
	}

	decl, err := env.Declaration(s.Var, s.Line)
	if err != nil {
		return noSignal, err
	}

	setVar := func(v int64) error {
		coerced, err := runtime.Coerce(decl.Type, runtime.Integer(v), s.Line)
		if err != nil {
			return err
		}
		return env.SetScalar(s.Var, coerced, s.Line)
	}
	currentVar := func() (int64, error) {
		v, err := env.GetScalar(s.Var, s.Line)
		if err != nil {
			return 0, err
		}
		return asInt64(v, s.Line)
	}

	if err := setVar(start); err != nil {
		return noSignal, err
	}

	ascending := step >= 0
	for {
		v, err := currentVar()
		if err != nil {
			return noSignal, err
		}
		if ascending && v > end {
			break
		}
		if !ascending && v < end {
			break
		}
		sig, err := i.execStatements(s.Body, env)
		if err != nil {
			return noSignal, err
		}
		if !sig.isNone() {
			return sig, nil
		}
		v, err = currentVar()
		if err != nil {
			return noSignal, err
		}
		if err := setVar(v + step); err != nil {
			return noSignal, err
		}
	}
	return noSignal, nil
}

// execSelect implements ΕΠΙΛΕΞΕ: arms are tried in textual order, the
// first matching ΠΕΡΙΠΤΩΣΗ wins; ΠΕΡΙΠΤΩΣΗ ΑΛΛΙΩΣ, if present, is
// guaranteed by the parser to be the last arm and runs when nothing else
// matched.
func (i *Interpreter) execSelect(s *ast.Select, env *runtime.Environment) (signal, error) {
	scrutinee, err := i.eval(s.Scrutinee, env)
	if err != nil {
		return noSignal, err
	}
	for _, c := range s.Cases {
		for _, valExpr := range c.Values {
			val, err := i.eval(valExpr, env)
			if err != nil {
				return noSignal, err
			}
			eq, err := equals(scrutinee, val, s.Line)
			if err != nil {
				return noSignal, err
			}
			if bool(eq.(runtime.Boolean)) {
				return i.execStatements(c.Body, env)
			}
		}
	}
	if s.HasDefault {
		return i.execStatements(s.Default, env)
	}
	return noSignal, nil
}

func (i *Interpreter) execReturn(s *ast.Return, env *runtime.Environment) (signal, error) {
	if s.Expr == nil {
		return returnSignal(nil), nil
	}
	v, err := i.eval(s.Expr, env)
	if err != nil {
		return noSignal, err
	}
	return returnSignal(v), nil
}
