// Package config holds the analysis parameters and their validation.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is a singleton validator instance
var validate = validator.New()

// Default analysis parameters, matching the canonical synthetic
// friendship-network scenario.
const (
	DefaultNodes           = 50
	DefaultEdgeProbability = 0.08
	DefaultSeed            = 42
	DefaultTopK            = 5
)

// LayoutConfig holds canvas parameters for the visualization layouts.
type LayoutConfig struct {
	Width      float64 `yaml:"width" validate:"gt=0"`
	Height     float64 `yaml:"height" validate:"gt=0"`
	Iterations int     `yaml:"iterations" validate:"gt=0"`
	Padding    float64 `yaml:"padding" validate:"gte=0"`
}

// Config holds all parameters for one analysis run.
type Config struct {
	Nodes           int          `yaml:"nodes" validate:"gt=0"`
	EdgeProbability float64      `yaml:"edge_probability" validate:"gte=0,lte=1"`
	Seed            int64        `yaml:"seed"`
	TopK            int          `yaml:"top_k" validate:"gt=0"`
	LogLevel        string       `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Layout          LayoutConfig `yaml:"layout"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Nodes:           DefaultNodes,
		EdgeProbability: DefaultEdgeProbability,
		Seed:            DefaultSeed,
		TopK:            DefaultTopK,
		LogLevel:        "info",
		Layout: LayoutConfig{
			Width:      800,
			Height:     600,
			Iterations: 50,
			Padding:    50,
		},
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks all parameter ranges.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	for _, e := range validationErrs {
		return fmt.Errorf("config field %s failed %s validation (value %v)", e.Field(), e.Tag(), e.Value())
	}
	return err
}
