package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"text": true, "json": true}
)

// Validate checks the config for:
//   - Required fields (input, output, source)
//   - A non-empty destination set, inside the generated data set when
//     the generator is on
//   - Generator size and log settings
//   - Names the edge-list format cannot carry (embedded whitespace)
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Input == "" {
		errs = append(errs, "input is required")
	}
	if cfg.Output == "" {
		errs = append(errs, "output is required")
	}
	if cfg.Input != "" && cfg.Input == cfg.Output {
		errs = append(errs, fmt.Sprintf("input and output must differ (both %q)", cfg.Input))
	}
	if cfg.Source == "" {
		errs = append(errs, "source is required")
	} else if strings.ContainsFunc(cfg.Source, unicode.IsSpace) {
		errs = append(errs, fmt.Sprintf("source %q contains whitespace", cfg.Source))
	}

	if len(cfg.Destinations) == 0 {
		if cfg.Range.From < 0 || cfg.Range.To < cfg.Range.From {
			errs = append(errs, fmt.Sprintf("range: need 0 ≤ from ≤ to, got from=%d to=%d", cfg.Range.From, cfg.Range.To))
		} else if cfg.Generate.Enabled && cfg.Range.To > cfg.Generate.Vertices {
			errs = append(errs, fmt.Sprintf("range: to=%d exceeds generate.vertices=%d; the generated graph has vertices 0..%d",
				cfg.Range.To, cfg.Generate.Vertices, cfg.Generate.Vertices))
		}
	}
	for i, d := range cfg.Destinations {
		if d == "" || strings.ContainsFunc(d, unicode.IsSpace) {
			errs = append(errs, fmt.Sprintf("destinations[%d]: %q is not a valid vertex name", i, d))
		}
	}

	if cfg.Generate.Enabled && cfg.Generate.Vertices < 1 {
		errs = append(errs, fmt.Sprintf("generate.vertices must be ≥ 1, got %d", cfg.Generate.Vertices))
	}
	if !validLevels[strings.ToLower(cfg.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level %q: want debug, info, warn or error", cfg.Log.Level))
	}
	if !validFormats[strings.ToLower(cfg.Log.Format)] {
		errs = append(errs, fmt.Sprintf("log.format %q: want text or json", cfg.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(errs, "\n  - "))
	}
	return nil
}
