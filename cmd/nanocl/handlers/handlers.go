// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/nxthat/nanocl/internal/config"
	"github.com/nxthat/nanocl/internal/platform/nanocld"
	"github.com/nxthat/nanocl/internal/provisioning"
)

// Log formats accepted by --log-format.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// GlobalOptions holds the persistent flags of the root command.
// Zero values leave the environment settings untouched.
type GlobalOptions struct {
	Host        string
	LogFormat   string
	StrictProbe bool
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadSettings reads runtime settings from the environment.
	loadSettings = config.LoadSettings

	// newClient creates the daemon client. Retries are reported through observer.
	newClient = func(settings *config.Settings, observer provisioning.Observer) (nanocld.Client, error) {
		client, err := nanocld.NewRealClient(settings.Host,
			nanocld.WithRequestTimeout(settings.RequestTimeout),
			nanocld.WithRetry(settings.RetryCount(), settings.RetryInitialDelay),
			nanocld.WithRetryMaxDelay(settings.RetryMaxDelay),
			nanocld.WithRetryHook(func(operation string, attempt int, err error) {
				observer.Printf("Retrying %s (retry %d/%d): %v", operation, attempt, settings.RetryCount(), err)
			}),
		)
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	// stdout receives command output.
	stdout io.Writer = os.Stdout

	// stderr receives observer output in JSON mode.
	stderr io.Writer = os.Stderr

	// isTerminal reports whether stdout is an interactive terminal.
	isTerminal = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
)

// resolveSettings loads settings from the environment and applies flag overrides.
func resolveSettings(globals GlobalOptions) *config.Settings {
	settings := loadSettings()
	if globals.Host != "" {
		settings.Host = globals.Host
	}
	if globals.StrictProbe {
		settings.StrictProbe = true
	}
	return settings
}

// newObserver returns the observer for the requested log format.
func newObserver(format string) (provisioning.Observer, error) {
	switch format {
	case "", LogFormatText:
		return provisioning.NewConsoleObserver(), nil
	case LogFormatJSON:
		return provisioning.NewJSONObserver(stderr), nil
	default:
		return nil, fmt.Errorf("unsupported log format %q (expected %s or %s)", format, LogFormatText, LogFormatJSON)
	}
}

// connect resolves settings, the observer and the daemon client of a command.
func connect(globals GlobalOptions) (*config.Settings, provisioning.Observer, nanocld.Client, error) {
	observer, err := newObserver(globals.LogFormat)
	if err != nil {
		return nil, nil, nil, err
	}
	settings := resolveSettings(globals)
	client, err := newClient(settings, observer)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create nanocld client: %w", err)
	}
	return settings, observer, client, nil
}
