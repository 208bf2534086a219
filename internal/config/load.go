package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Load reads and validates a treesync manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	if errs := Validate(&m); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &m, nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("manifest validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Manifest for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(m *Manifest) []string {
	var errs []string

	if m.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported version %d — only version 1 is supported", m.Version))
	}

	if len(m.Pairs) == 0 {
		errs = append(errs, "at least one pair is required")
	}

	for i, p := range m.Pairs {
		prefix := fmt.Sprintf("pair[%d]", i)

		if p.Left == "" {
			errs = append(errs, fmt.Sprintf("%s: 'left' is required", prefix))
		} else if !filepath.IsAbs(p.Left) {
			errs = append(errs, fmt.Sprintf("%s: 'left' must be an absolute path, got '%s'", prefix, p.Left))
		}

		if p.Right == "" {
			errs = append(errs, fmt.Sprintf("%s: 'right' is required", prefix))
		} else if !filepath.IsAbs(p.Right) {
			errs = append(errs, fmt.Sprintf("%s: 'right' must be an absolute path, got '%s'", prefix, p.Right))
		}

		if p.Left != "" && p.Left == p.Right {
			errs = append(errs, fmt.Sprintf("%s: 'left' and 'right' are the same path", prefix))
		}

		errs = append(errs, validateGlobs(p.Excludes, prefix)...)
	}

	errs = append(errs, validateGlobs(m.Excludes, "manifest")...)

	return errs
}

func validateGlobs(globs []string, prefix string) []string {
	var errs []string
	for _, g := range globs {
		if !doublestar.ValidatePattern(g) {
			errs = append(errs, fmt.Sprintf("%s: invalid exclude pattern '%s'", prefix, g))
		}
	}
	return errs
}
