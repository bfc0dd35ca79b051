package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nxthat/nanocl/internal/platform/nanocld"
)

// Settings holds runtime options for talking to the daemon.
// These values can be customized via environment variables and are
// overridden by command line flags.
type Settings struct {
	Host              string        // Daemon address, unix:// or http(s)://
	RequestTimeout    time.Duration // Per request timeout, zero means none
	RetryMaxAttempts  int           // Total attempts of read only calls, first try included
	RetryInitialDelay time.Duration // Initial delay between retries
	RetryMaxDelay     time.Duration // Cap on the delay between retries
	StrictProbe       bool          // Only a 404 means an entity is absent
	MaxConcurrency    int           // Cap on sibling tasks per fan-out, zero means unbounded
	TraceTasks        bool          // Log start and completion of every fan-out task
}

// LoadSettings loads runtime settings from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - NANOCL_HOST (default: unix:///run/nanocl/nanocl.sock)
//   - NANOCL_TIMEOUT_REQUEST (default: 0, no timeout)
//   - NANOCL_RETRY_MAX_ATTEMPTS (default: 3)
//   - NANOCL_RETRY_INITIAL_DELAY (default: 200ms)
//   - NANOCL_RETRY_MAX_DELAY (default: 5s)
//   - NANOCL_STRICT_PROBE (default: false)
//   - NANOCL_MAX_CONCURRENCY (default: 0, unbounded)
//   - NANOCL_TRACE_TASKS (default: false)
func LoadSettings() *Settings {
	return &Settings{
		Host:              parseString("NANOCL_HOST", nanocld.DefaultHost),
		RequestTimeout:    parseDuration("NANOCL_TIMEOUT_REQUEST", 0),
		RetryMaxAttempts:  parseInt("NANOCL_RETRY_MAX_ATTEMPTS", 3),
		RetryInitialDelay: parseDuration("NANOCL_RETRY_INITIAL_DELAY", 200*time.Millisecond),
		RetryMaxDelay:     parseDuration("NANOCL_RETRY_MAX_DELAY", 5*time.Second),
		StrictProbe:       parseBool("NANOCL_STRICT_PROBE", false),
		MaxConcurrency:    parseInt("NANOCL_MAX_CONCURRENCY", 0),
		TraceTasks:        parseBool("NANOCL_TRACE_TASKS", false),
	}
}

// RetryCount returns the number of retries after the first attempt.
// Zero or one attempt means no retry.
func (s *Settings) RetryCount() int {
	return max(s.RetryMaxAttempts-1, 0)
}

func parseString(envVar, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(envVar)); val != "" {
		return val
	}
	return defaultVal
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil || d < 0 {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil || i < 0 {
		return defaultVal
	}

	return i
}

// parseBool parses a boolean from an environment variable.
func parseBool(envVar string, defaultVal bool) bool {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}

	return b
}
