package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// header is decoded first to select the document schema.
type header struct {
	Type string `yaml:"type"`
}

// DetectType returns the type declared by a document.
func DetectType(data []byte) (Type, error) {
	var h header
	if err := yaml.Unmarshal(data, &h); err != nil {
		return "", &Error{Kind: KindParse, Err: err}
	}

	switch t := Type(strings.ToLower(strings.TrimSpace(h.Type))); t {
	case "":
		return "", &Error{Kind: KindType, Err: fmt.Errorf("%w: missing type field", ErrUnsupportedType)}
	case TypeNamespace, TypeCargo:
		return t, nil
	default:
		return "", &Error{Kind: KindType, Err: fmt.Errorf("%w: %q", ErrUnsupportedType, h.Type)}
	}
}

// LoadFile reads a namespace document from path and validates it.
func LoadFile(path string) (*NamespaceConfig, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: KindIO, Path: path, Err: err}
	}

	cfg, err := LoadFromBytes(data)
	if err != nil {
		if cfgErr, ok := err.(*Error); ok {
			cfgErr.Path = path
		}
		return nil, err
	}
	return cfg, nil
}

// LoadFromBytes parses and validates a namespace document.
func LoadFromBytes(data []byte) (*NamespaceConfig, error) {
	t, err := DetectType(data)
	if err != nil {
		return nil, err
	}
	if t != TypeNamespace {
		return nil, &Error{Kind: KindType, Err: fmt.Errorf("%w: %q documents cannot be applied", ErrUnsupportedType, t)}
	}

	var cfg NamespaceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &Error{Kind: KindParse, Err: err}
	}
	cfg.Type = TypeNamespace
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, &Error{Kind: KindValidation, Err: err}
	}

	return &cfg, nil
}
