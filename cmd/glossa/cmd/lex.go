package cmd

import (
	"fmt"

	"github.com/papagiannakis/glossa/internal/lexer"
	"github.com/papagiannakis/glossa/internal/token"
	"github.com/spf13/cobra"
)

var (
	showPos  bool
	showKind bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Glossa program",
	Long: `Tokenize a Glossa program and print the resulting tokens.

Examples:
  # Tokenize a file
  glossa lex πρόγραμμα.glo

  # Tokenize inline source
  glossa lex -e "ΑΚΕΡΑΙΕΣ: χ, ψ"

  # Show token kinds and positions
  glossa lex --show-kind --show-pos πρόγραμμα.glo`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexProgram,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline source instead of reading a file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show the source line for each token")
	lexCmd.Flags().BoolVar(&showKind, "show-kind", false, "show the token kind name")
}

func lexProgram(cmd *cobra.Command, args []string) error {
	input, _, err := resolveInput(evalExpr, args)
	if err != nil {
		return err
	}

	tokens, err := lexer.Lex(input)
	if err != nil {
		return fmt.Errorf("αποτυχία ανάλυσης λεξικού: %w", err)
	}

	for _, tok := range tokens {
		printToken(tok)
	}
	return nil
}

func printToken(tok token.Token) {
	var out string
	if showKind {
		out = fmt.Sprintf("[%-12s] ", tok.Kind)
	}
	if tok.Value != nil {
		out += fmt.Sprintf("%v", tok.Value)
	} else {
		out += tok.Kind.String()
	}
	if showPos {
		out += fmt.Sprintf(" @γραμμή %d", tok.Line)
	}
	fmt.Println(out)
}
