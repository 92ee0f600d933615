package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/interp"
	"github.com/papagiannakis/glossa/internal/ioadapter"
	"github.com/papagiannakis/glossa/internal/parser"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
	step     bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Glossa program",
	Long: `Execute a Glossa program from a file or inline source.

Examples:
  # Run a program file
  glossa run πρόγραμμα.glo

  # Evaluate inline source
  glossa run -e "ΠΡΟΓΡΑΜΜΑ Χ ΑΡΧΗ ΓΡΑΨΕ 1 ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ"

  # Dump the parsed AST before running
  glossa run --dump-ast πρόγραμμα.glo

  # Pause before every statement, waiting on stdin between steps
  glossa run --step πρόγραμμα.glo`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run inline source instead of reading a file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print global, statement, and routine counts before running")
	runCmd.Flags().BoolVar(&step, "step", false, "pause before every statement, reading a line from stdin to continue")
}

func runProgram(cmd *cobra.Command, args []string) error {
	input, filename, err := resolveInput(evalExpr, args)
	if err != nil {
		return err
	}

	program, err := parser.Parse(input)
	if err != nil {
		return fmt.Errorf("αποτυχία ανάλυσης του %s: %w", filename, err)
	}

	if dumpAST {
		dumpProgram(program)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintf(os.Stderr, "Εκτέλεση: %s\n", filename)
	}

	stdin := bufio.NewReader(os.Stdin)

	var hook interp.Hook
	if step {
		hook = newStepHook(stdin, os.Stderr)
	}

	io := &stdioAdapter{out: os.Stdout, in: stdin}
	interpreter := interp.New(program, io, hook)
	if err := interpreter.Run(program); err != nil {
		return fmt.Errorf("σφάλμα εκτέλεσης: %w", err)
	}
	return nil
}

func dumpProgram(program *ast.Program) {
	fmt.Printf("Πρόγραμμα: %s\n", program.Name)
	fmt.Printf("  Καθολικές μεταβλητές: %d\n", len(program.Globals))
	fmt.Printf("  Εντολές: %d\n", len(program.Statements))
	fmt.Printf("  Διαδικασίες: %d\n", len(program.Procedures))
	fmt.Printf("  Συναρτήσεις: %d\n", len(program.Functions))
	fmt.Println()
}

// stdioAdapter is the ioadapter.Adapter used by the CLI: output goes to
// stdout, ΔΙΑΒΑΣΕ reads one line at a time from stdin.
type stdioAdapter struct {
	out *os.File
	in  *bufio.Reader
}

func (a *stdioAdapter) Write(line string) {
	fmt.Fprintln(a.out, line)
}

func (a *stdioAdapter) Read() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, nil
}

var _ ioadapter.Adapter = (*stdioAdapter)(nil)
