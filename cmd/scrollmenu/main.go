// Command scrollmenu runs the scrollable menu bar demo and config helpers.
package main

import (
	"fmt"
	"os"

	"github.com/rshade/scrollmenu/internal/cli"
	"github.com/rshade/scrollmenu/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps errors to the process exit code.
// Split from main for testability.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
