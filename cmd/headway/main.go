// Command headway recommends a following distance for a given speed.
package main

import (
	"fmt"
	"os"

	"github.com/rshade/headway/internal/cli"
	"github.com/rshade/headway/pkg/version"
)

// Exit codes.
const (
	exitOK                   = 0
	exitError                = 1
	exitInvalidConfiguration = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string) int {
	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)

	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return exitCode(err)
}

// exitCode maps a command error to a process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case cli.IsConfigurationError(err):
		return exitInvalidConfiguration
	default:
		return exitError
	}
}
