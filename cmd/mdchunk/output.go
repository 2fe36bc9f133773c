package main

import (
	"fmt"
	"os"

	"github.com/jwalton/gchalk"
	"github.com/wyvernzora/mdchunk/pkg/mdchunk"
)

// printValidation writes a colored one-line (or multi-line, on failure)
// validation summary to stderr.
func printValidation(relPath string, result *mdchunk.ValidationResult) {
	if result.Valid && len(result.Warnings) == 0 {
		fmt.Fprintf(os.Stderr, "  %s %s\n", gchalk.Green("✓"), relPath)
		return
	}

	if result.Valid {
		fmt.Fprintf(os.Stderr, "  %s %s %s\n", gchalk.Yellow("⚠"), relPath,
			gchalk.Dim(fmt.Sprintf("(%d warning(s))", len(result.Warnings))))
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "      %s\n", gchalk.Dim(w))
		}
		return
	}

	fmt.Fprintf(os.Stderr, "  %s %s %s\n", gchalk.WithRed().WithBold().Paint("✗"), relPath,
		gchalk.Red(fmt.Sprintf("(%d error(s))", len(result.Errors))))
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "      %s\n", gchalk.Red(e.Error()))
	}
}
