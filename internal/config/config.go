// Package config provides configuration loading and validation for the
// statement converter.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure, loadable from YAML. All
// fields have working defaults; a config file is optional.
type Config struct {
	Selector SelectorConfig `yaml:"selector"`
	Metadata MetadataConfig `yaml:"metadata"`
	Output   OutputConfig   `yaml:"output"`

	// Workers is the number of documents processed concurrently.
	// Output order is always input order regardless of this setting.
	Workers int `yaml:"workers"`
}

// SelectorConfig controls candidate-line selection. When StartAnchor is
// set the parser only considers the text span between the anchors and
// requires each line to begin with a date token.
type SelectorConfig struct {
	StartAnchor string `yaml:"start_anchor,omitempty"`
	EndAnchor   string `yaml:"end_anchor,omitempty"`
}

// MetadataConfig controls document-level summary extraction.
type MetadataConfig struct {
	Enabled bool `yaml:"enabled"`
}

// OutputConfig controls the workbook/CSV writer.
type OutputConfig struct {
	// Format is "xlsx" or "csv".
	Format    string `yaml:"format"`
	SheetName string `yaml:"sheet_name"`
	// FreezeHeader keeps the header row visible while scrolling.
	FreezeHeader bool `yaml:"freeze_header"`
	// Column widths are sized to content, clamped to this range.
	MinColWidth int `yaml:"min_col_width"`
	MaxColWidth int `yaml:"max_col_width"`
}

// Load reads and validates a configuration file, applying defaults for
// anything the file omits.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	switch cfg.Output.Format {
	case "xlsx", "csv":
	default:
		return fmt.Errorf("output.format: %q is not supported (use xlsx or csv)", cfg.Output.Format)
	}

	if cfg.Output.SheetName == "" {
		return errors.New("output.sheet_name: must not be empty")
	}
	if cfg.Output.MinColWidth < 1 || cfg.Output.MaxColWidth < cfg.Output.MinColWidth {
		return errors.New("output: column width clamp must satisfy 1 <= min <= max")
	}

	if cfg.Workers < 1 {
		return errors.New("workers: must be at least 1")
	}

	if cfg.Selector.EndAnchor != "" && cfg.Selector.StartAnchor == "" {
		return errors.New("selector: end_anchor requires start_anchor")
	}

	return nil
}
