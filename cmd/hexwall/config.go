package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrConfigTooLarge = errors.New("config exceeds maximum size")
)

// maxConfigSize limits config input to prevent memory exhaustion.
const maxConfigSize = 1 << 20

// Config holds file-based configuration. Flags take precedence over every
// field here.
type Config struct {
	Images     []string          `yaml:"images"`
	Packages   []string          `yaml:"packages"`
	Class      []string          `yaml:"class"`
	Attrs      map[string]string `yaml:"attrs"`
	Stylesheet string            `yaml:"stylesheet"`
	Assets     AssetsConfig      `yaml:"assets"`
	Library    []string          `yaml:"library"`
	Output     string            `yaml:"output"`
}

// AssetsConfig defines stylesheet override options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded stylesheet
}

// LoadConfig loads configuration from a YAML file, rejecting unknown fields.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > maxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), maxConfigSize)
	}

	var cfg Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}
