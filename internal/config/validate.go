package config

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/mcpconf/internal/errors"
	"github.com/thoreinstein/mcpconf/internal/schema"
)

// ErrInvalidPath indicates a path value is malformed.
var ErrInvalidPath = errors.New("invalid path")

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	// Only version 1 exists
	if cfg.Version != 1 {
		errs = append(errs, errors.Newf("unsupported config version: %d", cfg.Version))
	}

	if cfg.DefaultClient != "" && !schema.ValidClientID(cfg.DefaultClient) {
		errs = append(errs, errors.Newf("invalid default client: %s", cfg.DefaultClient))
	}

	for id, override := range cfg.Clients {
		if !schema.ValidClientID(id) {
			errs = append(errs, errors.Newf("invalid client override key: %s", id))
			continue
		}
		if override.ConfigPath != "" {
			if err := validatePath(override.ConfigPath); err != nil {
				errs = append(errs, &PathError{
					Field: id + ".config_path",
					Path:  override.ConfigPath,
					Err:   err,
				})
			}
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	// Check for null bytes which are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	// Clean the path and check it's not empty after cleaning
	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
