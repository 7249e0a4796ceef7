package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/vrmiguel/porquinho/internal/commands"
)

// exitFailure is the status of any run that ends in an error.
const exitFailure = 127

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "Error:")
		fmt.Fprintf(os.Stderr, " %v\n", err)
		os.Exit(exitFailure)
	}
}
