package nanocld

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned when the daemon answers with a non-2xx status.
type APIError struct {
	Operation string
	Status    int
	Message   string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("nanocld: %s: status %d", e.Operation, e.Status)
	}
	return fmt.Sprintf("nanocld: %s: status %d: %s", e.Operation, e.Status, e.Message)
}

// TransportError is returned when a request did not produce a response.
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("nanocld: %s: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// isAPIStatus checks if the error is a daemon API error with one of the given statuses.
func isAPIStatus(err error, statuses ...int) bool {
	if err == nil {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		for _, status := range statuses {
			if apiErr.Status == status {
				return true
			}
		}
	}
	return false
}

// IsNotFound checks if an error indicates a resource was not found.
func IsNotFound(err error) bool {
	return isAPIStatus(err, http.StatusNotFound)
}

// IsConflict checks if an error indicates the entity or association already exists.
func IsConflict(err error) bool {
	return isAPIStatus(err, http.StatusConflict)
}

// IsTransport checks if an error happened before the daemon answered.
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// IgnoreConflict returns nil for conflict errors and err otherwise.
func IgnoreConflict(err error) error {
	if IsConflict(err) {
		return nil
	}
	return err
}
