package interp

import (
	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/errs"
	"github.com/papagiannakis/glossa/internal/interp/runtime"
	"github.com/papagiannakis/glossa/internal/ioadapter"
)

// Interpreter bundles the root Environment, the I/O Adapter, and an
// optional Debugger Hook into the one stateful object the Statement
// Executor and Routine Dispatcher close over.
type Interpreter struct {
	root *runtime.Environment
	io   ioadapter.Adapter
	hook Hook
}

// New builds an Interpreter over a parsed program and an I/O Adapter. A
// nil hook disables debugger bracketing entirely.
func New(prog *ast.Program, io ioadapter.Adapter, hook Hook) *Interpreter {
	root := runtime.NewRootEnvironment(prog.Globals, prog.Procedures, prog.Functions)
	return &Interpreter{root: root, io: io, hook: hook}
}

// Root exposes the global Environment, e.g. for a REPL or debugger UI
// that wants to inspect variable state between runs.
func (i *Interpreter) Root() *runtime.Environment { return i.root }

// Run executes a program's top-level statements in the root environment.
// A stray ΕΠΙΣΤΡΕΨΕ reaching the top level is reported as a runtime
// error; a debugger-requested stop is reported as clean cancellation,
// not an error.
func (i *Interpreter) Run(prog *ast.Program) error {
	sig, err := i.execStatements(prog.Statements, i.root)
	if err != nil {
		if IsStopRequest(err) {
			return nil
		}
		return err
	}
	if sig.isReturn() {
		return errs.NewRuntimeError(prog.Line, "Το ΕΠΙΣΤΡΕΨΕ επιτρέπεται μόνο μέσα σε συνάρτηση ή διαδικασία")
	}
	return nil
}
