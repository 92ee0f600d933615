package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "glossa",
	Short: "Glossa interpreter",
	Long: `glossa is a Go implementation of the Glossa teaching pseudocode language.

Glossa is a small, Greek-keyword structured language used to teach
introductory programming: ΠΡΟΓΡΑΜΜΑ/ΑΡΧΗ/ΤΕΛΟΣ_ΠΡΟΓΡΑΜΜΑΤΟΣ blocks, typed
variable and array declarations, ΑΝ/ΟΣΟ/ΓΙΑ/ΕΠΙΛΕΞΕ control flow, and
ΔΙΑΔΙΚΑΣΙΑ/ΣΥΝΑΡΤΗΣΗ routines.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

// resolveInput determines the source text and a display filename from
// either the --eval flag or a file argument.
func resolveInput(evalExpr string, args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("αδυναμία ανάγνωσης του αρχείου %s: %w", args[0], readErr)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("δώσε είτε διαδρομή αρχείου είτε τη σημαία -e για ενσωματωμένο κώδικα")
}
