// =============================================================================
// Entry Form Tool - Configuration Module
// =============================================================================
//
// Loads the optional YAML tool configuration. The configuration carries
// site-wide defaults so operators who process the same kind of file every
// week do not have to repeat flags:
//   - default export format
//   - banner and validation toggles
//   - batch-fill presets (field values stamped onto a record range)
//
// A missing configuration file is not an error; the tool runs on defaults.
// Command-line flags always override configuration values.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hualiu-nbu/entryform/internal/schema"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the tool configuration.
type Config struct {
	// ExportFormat is the default output format when the destination
	// extension is ambiguous or a format is forced.
	// Valid values: "csv", "xlsx", "json". Default: "csv".
	ExportFormat string `yaml:"export_format"`

	// SkipBanner disables the descriptive banner on the CSV target.
	// Default: false (banner on).
	SkipBanner bool `yaml:"skip_banner"`

	// SkipValidation disables pre-export validation.
	// Default: false (validation on).
	SkipValidation bool `yaml:"skip_validation"`

	// Fill contains batch-fill presets: canonical field key -> value.
	// Applied by the process command before export. Empty values are
	// rejected at load time; a fill never clears a field.
	Fill map[string]string `yaml:"fill"`

	// FillFrom is the 1-based record number the fill starts at.
	// Default: 1 (every record).
	FillFrom int `yaml:"fill_from"`
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load reads a configuration file. A nonexistent path yields the default
// configuration; a present but malformed file is an error.
func Load(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyDefaults(&config)
			return &config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *Config) {
	if config.ExportFormat == "" {
		config.ExportFormat = "csv"
	}
	if config.FillFrom == 0 {
		config.FillFrom = 1
	}
}

// validate checks the configuration for values the pipeline would reject.
func validate(config *Config) error {
	switch config.ExportFormat {
	case "csv", "xlsx", "json":
	default:
		return fmt.Errorf("unknown export_format %q", config.ExportFormat)
	}

	if config.FillFrom < 1 {
		return fmt.Errorf("fill_from must be at least 1, got %d", config.FillFrom)
	}

	for key, value := range config.Fill {
		if !schema.IsCanonicalKey(key) {
			return fmt.Errorf("fill references unknown field %q", key)
		}
		if value == "" {
			return fmt.Errorf("fill value for %q is empty; a fill never clears a field", key)
		}
	}

	return nil
}
