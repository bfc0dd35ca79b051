// Package retry provides exponential backoff retry logic for transient failures.
//
// [Do] retries an operation while a caller supplied predicate reports the
// error as retryable. The nanocld client uses it for read-only lookups that
// fail before reaching the daemon.
package retry
