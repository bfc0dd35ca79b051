package config

import (
	"errors"
	"fmt"
)

// ErrorKind classifies configuration failures.
type ErrorKind string

// Error kinds
const (
	// KindIO means the document could not be read.
	KindIO ErrorKind = "io"
	// KindParse means the document is not valid YAML for its schema.
	KindParse ErrorKind = "parse"
	// KindType means the document type is missing or not supported.
	KindType ErrorKind = "type"
	// KindValidation means the document parsed but declares an invalid state.
	KindValidation ErrorKind = "validation"
)

// ErrUnsupportedType is wrapped by KindType errors for known but unapplyable
// or unknown document types.
var ErrUnsupportedType = errors.New("unsupported config type")

// Error is returned by every loader in this package.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	var action string
	switch e.Kind {
	case KindIO:
		action = "failed to read config file"
	case KindParse:
		action = "failed to parse config"
	case KindType:
		action = "invalid config type"
	default:
		action = "configuration validation failed"
	}
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", action, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", action, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsIOError reports whether err comes from reading the document.
func IsIOError(err error) bool {
	var cfgErr *Error
	return errors.As(err, &cfgErr) && cfgErr.Kind == KindIO
}

// IsConfigError reports whether err comes from a malformed document.
func IsConfigError(err error) bool {
	var cfgErr *Error
	return errors.As(err, &cfgErr) && cfgErr.Kind != KindIO
}
