package handlers

import (
	"context"
	"fmt"
)

// BuildInfo describes the CLI binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Version prints the CLI build information followed by the daemon version.
// The CLI part is printed even when the daemon cannot be reached.
func Version(ctx context.Context, globals GlobalOptions, info BuildInfo) error {
	fmt.Fprintf(stdout, "nanocl %s\n", info.Version)
	fmt.Fprintf(stdout, "  commit: %s\n", info.Commit)
	fmt.Fprintf(stdout, "  built:  %s\n", info.Date)

	settings, _, client, err := connect(globals)
	if err != nil {
		return err
	}

	daemon, err := client.Version(ctx)
	if err != nil {
		return fmt.Errorf("failed to get daemon version from %s: %w", settings.Host, err)
	}

	fmt.Fprintf(stdout, "nanocld %s\n", daemon.Version)
	fmt.Fprintf(stdout, "  commit: %s\n", daemon.CommitID)
	fmt.Fprintf(stdout, "  arch:   %s\n", daemon.Arch)
	return nil
}
