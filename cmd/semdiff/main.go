// Command semdiff prints a human-friendly diff of two text files.
package main

import (
	"os"

	"github.com/di-graph/semdiff/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		os.Exit(1)
	}
}
