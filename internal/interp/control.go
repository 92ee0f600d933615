// Package interp implements the expression evaluator, statement executor,
// and routine dispatcher for Glossa programs, plus an optional debugger
// hook.
//
// Function returns and debugger-requested stops are internal control flow,
// not panics. A ΕΠΙΣΤΡΕΨΕ travels as a sum-type result, [signal], threaded
// explicitly through every statement-executing method's return value; a
// debugger stop travels as the sentinel error [errStop]. Neither escapes
// this package undetected — a return signal reaching the top level is
// reported as a *errs.RuntimeError, and a stop reaching the public entry
// point is reported as clean cancellation, not an error.
package interp

import (
	"errors"

	"github.com/papagiannakis/glossa/internal/interp/runtime"
)

type signalKind int

const (
	signalNone signalKind = iota
	signalReturn
)

// signal is the internal control-flow result of executing a statement or
// statement list: either nothing happened, or a ΕΠΙΣΤΡΕΨΕ unwound to the
// caller (carrying its value, which may be nil for a value-less return).
type signal struct {
	kind  signalKind
	value runtime.Value
}

var noSignal = signal{kind: signalNone}

func returnSignal(v runtime.Value) signal { return signal{kind: signalReturn, value: v} }

func (s signal) isNone() bool   { return s.kind == signalNone }
func (s signal) isReturn() bool { return s.kind == signalReturn }

// errStop is the sentinel that carries a Debugger Hook's cooperative stop
// request through ordinary Go error returns — unlike a return signal, a
// stop must unwind through expression evaluation too (a stop requested
// deep inside a function body called from within an expression), which
// the [signal] type cannot reach since eval only returns (Value, error).
// The top-level Interpreter entry point recognises errStop and reports
// clean cancellation rather than a runtime error.
var errStop = errors.New("glossa: η εκτέλεση διακόπηκε")

// IsStopRequest reports whether err is (or wraps) a debugger stop request.
func IsStopRequest(err error) bool { return errors.Is(err, errStop) }
