package main

import (
	"fmt"
	"os"

	"view3d/internal/cli"
)

// Injected via ldflags at build time.
var (
	version string
	commit  string
)

func main() {
	cli.SetVersion(version, commit)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "view3d:", err)
		os.Exit(1)
	}
}
