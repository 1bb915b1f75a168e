package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/fjglira/opml2org/internal/domain"
)

// Validate checks the Config for required fields and valid values.
func Validate(cfg *Config) error {
	var errs []string

	// Header validation
	for i, h := range cfg.Headers {
		if strings.TrimSpace(h.Field) == "" {
			errs = append(errs, fmt.Sprintf("headers[%d].field must not be empty", i))
		}
		if strings.ContainsAny(h.Export, " \t:") {
			errs = append(errs, fmt.Sprintf("headers[%d].export must not contain spaces or colons (got %q)", i, h.Export))
		}
	}

	switch cfg.Properties.Order {
	case "", "document", "sorted":
	default:
		errs = append(errs, fmt.Sprintf("properties.order must be one of: document, sorted (got %q)", cfg.Properties.Order))
	}

	// Input validation
	if len(cfg.Input.Directories) == 0 {
		errs = append(errs, "input.directories must not be empty")
	}
	if len(cfg.Input.Include) == 0 {
		errs = append(errs, "input.include must not be empty")
	}

	// Output validation
	if cfg.Output.Encoding == "" {
		errs = append(errs, "output.encoding must not be empty")
	} else if _, err := htmlindex.Get(cfg.Output.Encoding); err != nil {
		errs = append(errs, fmt.Sprintf("output.encoding %q is not a known encoding", cfg.Output.Encoding))
	}
	if cfg.Output.Directory == "" {
		errs = append(errs, "output.directory must not be empty")
	}
	if !strings.HasPrefix(cfg.Output.Extension, ".") {
		errs = append(errs, "output.extension must start with a dot")
	}

	// Validate logging level
	if cfg.Logging.Level != "" {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[cfg.Logging.Level] {
			errs = append(errs, fmt.Sprintf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
		}
	}

	if len(errs) > 0 {
		return domain.NewError("config", "", 0, fmt.Sprintf("validation failed: %s", strings.Join(errs, "; ")), nil)
	}

	return nil
}
