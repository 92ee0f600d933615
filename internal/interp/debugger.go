package interp

import (
	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/interp/runtime"
)

// Hook is the optional debugger observer. It is notified synchronously
// around every statement executed, in any environment (top-level or
// inside a routine call), exactly once each, in program order. Absence of
// a Hook (a nil *Interpreter.hook) disables bracketing entirely — zero
// per-statement overhead.
//
// Before may cooperatively block — e.g. waiting on a channel supplied by
// an embedding debugger UI — to implement single-step pausing; that
// blocking happens only between statements, never mid-statement. Before
// may also signal a stop request by returning true, in which case the
// executor unwinds the run immediately, without calling After for that
// statement and without executing any further statement.
type Hook interface {
	Before(stmt ast.Stmt, env *runtime.Environment) (stop bool)
	After(stmt ast.Stmt, env *runtime.Environment)
}
