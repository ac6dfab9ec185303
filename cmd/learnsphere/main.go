package main

import (
	"fmt"
	"os"

	"github.com/learnsphere-dev/learnsphere/internal/command"
)

// Set through -ldflags at release time.
var (
	version = "dev"
	commit  = ""
)

func main() {
	err := command.Execute(os.Args, os.Stdout, os.Stderr, command.BuildArgs{Version: version, Commit: commit})
	if err != nil && err.Error() != "" {
		fmt.Fprintln(os.Stderr, "learnsphere:", err)
	}
	os.Exit(command.ExitCode(err))
}
