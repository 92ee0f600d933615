package cmd

import (
	"fmt"
	"sort"

	"github.com/papagiannakis/glossa/internal/ast"
	"github.com/papagiannakis/glossa/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Glossa program and print its structure",
	Long: `Parse a Glossa program and print a summary of its declarations,
routines, and top-level statement count, without running it.

Examples:
  glossa parse πρόγραμμα.glo
  glossa parse -e "ΠΡΟΓΡΑΜΜΑ Χ ΑΡΧΗ ΓΡΑΨΕ 1 ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ"`,
	Args: cobra.MaximumNArgs(1),
	RunE: parseProgram,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline source instead of reading a file")
}

func parseProgram(cmd *cobra.Command, args []string) error {
	input, filename, err := resolveInput(evalExpr, args)
	if err != nil {
		return err
	}

	program, err := parser.Parse(input)
	if err != nil {
		return fmt.Errorf("αποτυχία ανάλυσης του %s: %w", filename, err)
	}

	fmt.Printf("ΠΡΟΓΡΑΜΜΑ %s\n", program.Name)
	fmt.Printf("  μεταβλητές (%d):\n", len(program.Globals))
	for _, d := range program.Globals {
		printDecl(d)
	}
	fmt.Printf("  διαδικασίες (%d): %s\n", len(program.Procedures), routineNames(procNames(program.Procedures)))
	fmt.Printf("  συναρτήσεις (%d): %s\n", len(program.Functions), routineNames(funcNames(program.Functions)))
	fmt.Printf("  εντολές: %d\n", len(program.Statements))
	return nil
}

func printDecl(d ast.VarDecl) {
	if d.IsArray() {
		fmt.Printf("    %s: %s %v\n", d.Name, d.Type, d.Dims)
	} else {
		fmt.Printf("    %s: %s\n", d.Name, d.Type)
	}
}

func procNames(m map[string]*ast.Procedure) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func funcNames(m map[string]*ast.Function) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func routineNames(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	out := names[0]
	for _, n := range names[1:] {
		out += ", " + n
	}
	return out
}
