package main

import (
	"fmt"
	"os"

	"github.com/papagiannakis/glossa/cmd/glossa/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
