// Package glossa is the public facade over the lexer, parser, and
// interpreter.
package glossa

import (
	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/interp"
	"github.com/papagiannakis/glossa/internal/ioadapter"
	"github.com/papagiannakis/glossa/internal/lexer"
	"github.com/papagiannakis/glossa/internal/parser"
	"github.com/papagiannakis/glossa/internal/token"
)

// Token is the lexer's public token type, re-exported so callers need not
// import internal/token directly.
type Token = token.Token

// Program is the parsed AST root.
type Program = ast.Program

// Hook is the debugger hook contract: Before runs ahead of every
// statement and may request a cooperative stop; After runs once it has
// completed.
type Hook = interp.Hook

// Lex tokenizes source and returns its token sequence, or a *errs.ScanError.
func Lex(source string) ([]Token, error) {
	return lexer.Lex(source)
}

// Parse tokenizes and parses source into a *Program, or a
// *errs.ScanError / *errs.ParseError.
func Parse(source string) (*Program, error) {
	return parser.Parse(source)
}

// Run executes an already-parsed program against the given I/O Adapter,
// with an optional Debugger Hook (nil disables bracketing).
func Run(prog *Program, io ioadapter.Adapter, hook Hook) error {
	return interp.New(prog, io, hook).Run(prog)
}

// CompileAndRun lexes, parses, and runs source against a finite,
// pre-scripted list of input lines, returning every line written by
// ΓΡΑΨΕ in order. This is the one-shot convenience entry point for
// embedders and tests.
func CompileAndRun(source string, inputs ...string) ([]string, error) {
	prog, err := Parse(source)
	if err != nil {
		return nil, err
	}
	io := ioadapter.NewQueueIO(inputs)
	if err := Run(prog, io, nil); err != nil {
		return io.Outputs, err
	}
	return io.Outputs, nil
}

// NewQueueIO builds a finite, ordered-input Adapter, exposed so callers
// outside this module can drive Run directly.
func NewQueueIO(inputs []string) *ioadapter.QueueIO {
	return ioadapter.NewQueueIO(inputs)
}
