package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/interp/runtime"
)

// stepHook is a minimal interp.Hook that implements --step: it prints the
// line about to execute and blocks on a line of input before continuing.
// Typing "q" requests a stop.
//
// in must be the same *bufio.Reader the ΔΙΑΒΑΣΕ adapter reads from — two
// independent readers wrapping the same stdin would each buffer ahead on
// their own, silently stealing bytes from one another.
type stepHook struct {
	in  *bufio.Reader
	out io.Writer
}

func newStepHook(in *bufio.Reader, out io.Writer) *stepHook {
	return &stepHook{in: in, out: out}
}

func (h *stepHook) Before(stmt ast.Stmt, env *runtime.Environment) bool {
	fmt.Fprintf(h.out, "-- γραμμή %d -- (Enter για συνέχεια, q για διακοπή) ", stmt.NodeLine())
	line, _ := h.in.ReadString('\n')
	return line == "q\n" || line == "q\r\n" || line == "q"
}

func (h *stepHook) After(stmt ast.Stmt, env *runtime.Environment) {}
