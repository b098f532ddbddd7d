package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyTag indicates a missing search tag
	ErrEmptyTag = errors.New("empty tag")

	// ErrInvalidFormat indicates an unsupported output format
	ErrInvalidFormat = errors.New("invalid output format")

	// ErrInvalidExtension indicates a malformed source extension
	ErrInvalidExtension = errors.New("invalid extension")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validateScan(&cfg.Scan); err != nil {
		errs = append(errs, err)
	}

	if err := validateOutput(&cfg.Output); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateScan(cfg *ScanConfig) error {
	var errs []error

	if strings.TrimSpace(cfg.Tag) == "" {
		errs = append(errs, fmt.Errorf("%w: scan.tag is required", ErrEmptyTag))
	}

	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			errs = append(errs, fmt.Errorf("%w: %q must start with a dot, e.g. \".py\"", ErrInvalidExtension, ext))
		}
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateOutput(cfg *OutputConfig) error {
	format := strings.ToLower(cfg.Format)
	if format != "markdown" && format != "plain" {
		return fmt.Errorf("%w: must be 'markdown' or 'plain', got '%s'", ErrInvalidFormat, cfg.Format)
	}
	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
