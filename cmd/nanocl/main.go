// Package main is the entry point for the nanocl CLI.
//
// nanocl drives a nanocld daemon. Its apply command converges the daemon to
// a declarative namespace document: the namespace, its clusters with their
// proxy templates, variables and networks, the cargoes and the joins that
// attach cargoes to cluster networks.
//
// Commands: apply, run, version, completion.
//
// For detailed usage information, run:
//
//	nanocl --help
package main

import (
	"fmt"
	"os"

	"github.com/nxthat/nanocl/cmd/nanocl/commands"
)

// Version information set at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
