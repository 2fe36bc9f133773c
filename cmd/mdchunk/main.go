// Command mdchunk runs the chunking engine against one or more markdown
// files from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

var version = "dev"

func main() {
	var c CLI

	ctx := kong.Parse(&c,
		kong.Name("mdchunk"),
		kong.Description("Markdown document chunking for embedding and RAG pipelines"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)

	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}
