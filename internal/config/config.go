// =============================================================================
// Route to PLN Converter - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file. The
// configuration covers output placement and naming plus the flight-plan
// metadata overrides; none of it is ever derived from the route text itself.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked for when --config is not given.
const DefaultPath = "config.yaml"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// OutputDir is the directory where generated .pln files are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// FilenameFormat defines output file names. Placeholders:
	//   {uuid}        - a random UUID
	//   {timestamp}   - current timestamp (YYYYMMDD_HHMMSS)
	//   {date}        - current date (YYYYMMDD)
	//   {time}        - current time (HHMMSS)
	//   {departure}   - departure identifier from the plan
	//   {destination} - destination identifier from the plan
	//   {original}    - input file name without extension
	// Default: "{departure}-{destination}_{uuid}.pln"
	FilenameFormat string `yaml:"filename_format"`

	// LogLevel controls logging verbosity: debug, info, warn, error.
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// Plan holds flight-plan metadata overrides.
	Plan PlanConfig `yaml:"plan"`
}

// PlanConfig overrides the fixed flight-plan metadata fields. Zero values
// mean the stock settings (VFR, Direct, 3500 ft, "<dep> to <arr>" title).
type PlanConfig struct {
	// Title overrides the plan title for every generated plan.
	Title string `yaml:"title,omitempty"`

	// FPType is the flight-plan type: "VFR" or "IFR".
	FPType string `yaml:"fp_type,omitempty"`

	// RouteType is the routing type, e.g. "Direct".
	RouteType string `yaml:"route_type,omitempty"`

	// CruisingAlt is the cruising altitude in feet.
	CruisingAlt int `yaml:"cruising_alt,omitempty"`
}

// =============================================================================
// LOADING
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the configuration from a YAML file.
//
// A missing file at the default path is not an error: the built-in defaults
// apply. An explicitly requested path that cannot be read is.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.FilenameFormat == "" {
		cfg.FilenameFormat = "{departure}-{destination}_{uuid}.pln"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Plan.FPType == "" {
		cfg.Plan.FPType = "VFR"
	}
	if cfg.Plan.RouteType == "" {
		cfg.Plan.RouteType = "Direct"
	}
	if cfg.Plan.CruisingAlt == 0 {
		cfg.Plan.CruisingAlt = 3500
	}
}

// validate checks the loaded configuration.
func validate(cfg *Config) error {
	if cfg.Plan.FPType != "VFR" && cfg.Plan.FPType != "IFR" {
		return fmt.Errorf("fp_type must be VFR or IFR, got %q", cfg.Plan.FPType)
	}
	if cfg.Plan.CruisingAlt < 0 {
		return fmt.Errorf("cruising_alt must not be negative, got %d", cfg.Plan.CruisingAlt)
	}
	return nil
}
