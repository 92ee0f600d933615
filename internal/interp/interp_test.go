package interp

import (
	"testing"

	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/interp/runtime"
	"github.com/papagiannakis/glossa/internal/ioadapter"
	"github.com/papagiannakis/glossa/internal/parser"
)

func mustParse(t *testing.T, source string) *ast.Program {
	t.Helper()
	prog, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return prog
}

// recordingHook counts Before/After calls and records every statement's
// line, to verify that every statement is visited exactly once, in
// program order.
type recordingHook struct {
	before []int
	after  []int
	stopAt int // stop when this many Before calls have been made; 0 disables
}

func (h *recordingHook) Before(stmt ast.Stmt, env *runtime.Environment) bool {
	h.before = append(h.before, stmt.NodeLine())
	return h.stopAt > 0 && len(h.before) >= h.stopAt
}

func (h *recordingHook) After(stmt ast.Stmt, env *runtime.Environment) {
	h.after = append(h.after, stmt.NodeLine())
}

func TestHookBracketsEveryStatementOnce(t *testing.T) {
	prog := mustParse(t, `
ΠΡΟΓΡΑΜΜΑ Τεστ
ΜΕΤΑΒΛΗΤΕΣ
  ΑΚΕΡΑΙΕΣ: χ
ΑΡΧΗ
  χ <- 1
  χ <- χ + 1
  ΓΡΑΨΕ χ
ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ`)

	hook := &recordingHook{}
	io := ioadapter.NewQueueIO(nil)
	interpreter := New(prog, io, hook)
	if err := interpreter.Run(prog); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(hook.before) != 3 || len(hook.after) != 3 {
		t.Fatalf("got %d Before, %d After calls, want 3 each", len(hook.before), len(hook.after))
	}
}

func TestHookStopRequestUnwindsCleanly(t *testing.T) {
	prog := mustParse(t, `
ΠΡΟΓΡΑΜΜΑ Τεστ
ΜΕΤΑΒΛΗΤΕΣ
  ΑΚΕΡΑΙΕΣ: χ
ΑΡΧΗ
  χ <- 1
  χ <- 2
  χ <- 3
ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ`)

	hook := &recordingHook{stopAt: 2}
	io := ioadapter.NewQueueIO(nil)
	interpreter := New(prog, io, hook)
	if err := interpreter.Run(prog); err != nil {
		t.Fatalf("a debugger stop must not surface as an error: %v", err)
	}
	if len(hook.before) != 2 {
		t.Fatalf("got %d Before calls, want exactly 2 (stop requested on the 2nd)", len(hook.before))
	}
	if len(hook.after) != 1 {
		t.Fatalf("got %d After calls, want 1 (the stopped statement gets no After)", len(hook.after))
	}
}

func TestNoHookMeansNoBracketing(t *testing.T) {
	prog := mustParse(t, `
ΠΡΟΓΡΑΜΜΑ Τεστ
ΑΡΧΗ
  ΓΡΑΨΕ "ok"
ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ`)
	io := ioadapter.NewQueueIO(nil)
	interpreter := New(prog, io, nil)
	if err := interpreter.Run(prog); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if io.Outputs[0] != "ok" {
		t.Fatalf("got %v", io.Outputs)
	}
}

func TestModOperatorTakesSignOfLeftOperand(t *testing.T) {
	prog := mustParse(t, `
ΠΡΟΓΡΑΜΜΑ Τεστ
ΜΕΤΑΒΛΗΤΕΣ
  ΑΚΕΡΑΙΕΣ: χ
ΑΡΧΗ
  χ <- -7 MOD 3
  ΓΡΑΨΕ χ
ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ`)
	io := ioadapter.NewQueueIO(nil)
	interpreter := New(prog, io, nil)
	if err := interpreter.Run(prog); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if io.Outputs[0] != "-1" {
		t.Fatalf("got %q, want -1", io.Outputs[0])
	}
}

func TestRealDivisionAlwaysYieldsReal(t *testing.T) {
	prog := mustParse(t, `
ΠΡΟΓΡΑΜΜΑ Τεστ
ΜΕΤΑΒΛΗΤΕΣ
  ΠΡΑΓΜΑΤΙΚΕΣ: ρ
ΑΡΧΗ
  ρ <- 7 / 2
  ΓΡΑΨΕ ρ
ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ`)
	io := ioadapter.NewQueueIO(nil)
	interpreter := New(prog, io, nil)
	if err := interpreter.Run(prog); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if io.Outputs[0] != "3.5" {
		t.Fatalf("got %q, want 3.5", io.Outputs[0])
	}
}

func TestMixedTypeOrderingErrors(t *testing.T) {
	prog := mustParse(t, `
ΠΡΟΓΡΑΜΜΑ Τεστ
ΜΕΤΑΒΛΗΤΕΣ
  ΑΚΕΡΑΙΕΣ: χ
  ΧΑΡΑΚΤΗΡΕΣ: σ
ΑΡΧΗ
  σ <- "κείμενο"
  ΑΝ χ < σ ΤΟΤΕ
    ΓΡΑΨΕ "ποτέ"
  ΤΕΛΟΣ_ΑΝ
ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ`)
	io := ioadapter.NewQueueIO(nil)
	interpreter := New(prog, io, nil)
	if err := interpreter.Run(prog); err == nil {
		t.Fatal("expected an error ordering an integer against a string")
	}
}

func TestMixedTypeEqualityIsFalseNotError(t *testing.T) {
	prog := mustParse(t, `
ΠΡΟΓΡΑΜΜΑ Τεστ
ΜΕΤΑΒΛΗΤΕΣ
  ΑΚΕΡΑΙΕΣ: χ
  ΧΑΡΑΚΤΗΡΕΣ: σ
ΑΡΧΗ
  σ <- "κείμενο"
  ΑΝ χ = σ ΤΟΤΕ
    ΓΡΑΨΕ "ποτέ"
  ΑΛΛΙΩΣ
    ΓΡΑΨΕ "όχι ίσα"
  ΤΕΛΟΣ_ΑΝ
ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ`)
	io := ioadapter.NewQueueIO(nil)
	interpreter := New(prog, io, nil)
	if err := interpreter.Run(prog); err != nil {
		t.Fatalf("cross-family equality must not error: %v", err)
	}
	if len(io.Outputs) != 1 || io.Outputs[0] != "όχι ίσα" {
		t.Fatalf("got %v, want a single \"όχι ίσα\" line", io.Outputs)
	}
}

func TestProcedureCannotReturnValue(t *testing.T) {
	prog := mustParse(t, `
ΠΡΟΓΡΑΜΜΑ Τεστ
ΑΡΧΗ
  ΚΑΛΕΣΕ Κ()
ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ
ΔΙΑΔΙΚΑΣΙΑ Κ()
ΑΡΧΗ
  ΕΠΙΣΤΡΕΨΕ 1
ΤΕΛΟΣ_ΔΙΑΔΙΚΑΣΙΑΣ`)
	io := ioadapter.NewQueueIO(nil)
	interpreter := New(prog, io, nil)
	if err := interpreter.Run(prog); err == nil {
		t.Fatal("expected an error: a procedure cannot return a value")
	}
}

func TestFunctionMustReturnAValue(t *testing.T) {
	prog := mustParse(t, `
ΠΡΟΓΡΑΜΜΑ Τεστ
ΜΕΤΑΒΛΗΤΕΣ
  ΑΚΕΡΑΙΕΣ: χ
ΑΡΧΗ
  χ <- Κ()
ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ
ΣΥΝΑΡΤΗΣΗ Κ(): ΑΚΕΡΑΙΕΣ
ΑΡΧΗ
  χ <- 1
ΤΕΛΟΣ_ΣΥΝΑΡΤΗΣΗΣ`)
	io := ioadapter.NewQueueIO(nil)
	interpreter := New(prog, io, nil)
	if err := interpreter.Run(prog); err == nil {
		t.Fatal("expected an error: function reached its end without returning a value")
	}
}

func TestRoutineEnvironmentDoesNotSeeCallerLocals(t *testing.T) {
	prog := mustParse(t, `
ΠΡΟΓΡΑΜΜΑ Τεστ
ΜΕΤΑΒΛΗΤΕΣ
  ΑΚΕΡΑΙΕΣ: χ
ΑΡΧΗ
  χ <- 5
  ΚΑΛΕΣΕ Κ()
ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ
ΔΙΑΔΙΚΑΣΙΑ Κ()
ΜΕΤΑΒΛΗΤΕΣ
  ΑΚΕΡΑΙΕΣ: χ
ΑΡΧΗ
  ΓΡΑΨΕ χ
ΤΕΛΟΣ_ΔΙΑΔΙΚΑΣΙΑΣ`)
	io := ioadapter.NewQueueIO(nil)
	interpreter := New(prog, io, nil)
	if err := interpreter.Run(prog); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if io.Outputs[0] != "0" {
		t.Fatalf("got %q, want 0 (the procedure's own default-initialised χ, not the caller's 5)", io.Outputs[0])
	}
}
