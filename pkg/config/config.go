// Package config loads engine configuration from TOML, YAML, or JSON files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration options for scry.
type Config struct {
	// Limits bound one analysis batch.
	Limits LimitsConfig `koanf:"limits"`

	// Rules are the default rule thresholds applied when a request does
	// not carry its own rule configuration.
	Rules RulesConfig `koanf:"rules"`

	// Exclude controls which files the scanner skips.
	Exclude ExcludeConfig `koanf:"exclude"`

	// Output controls CLI output formatting.
	Output OutputConfig `koanf:"output"`
}

// LimitsConfig bounds the size of a batch. Violations fail the whole batch
// before any parsing starts.
type LimitsConfig struct {
	MaxFiles    int `koanf:"max_files"`
	MaxFileSize int `koanf:"max_file_size"` // bytes
}

// RulesConfig defines default rule thresholds.
type RulesConfig struct {
	ComplexityThreshold     int  `koanf:"complexity_threshold"`
	MaxFunctionLength       int  `koanf:"max_function_length"`
	EnableSecurityRules     bool `koanf:"enable_security_rules"`
	EnableDeadCodeDetection bool `koanf:"enable_dead_code_detection"`
}

// ExcludeConfig defines file exclusion patterns for the scanner.
type ExcludeConfig struct {
	Patterns  []string `koanf:"patterns"`
	Dirs      []string `koanf:"dirs"`
	Gitignore bool     `koanf:"gitignore"`
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format  string `koanf:"format"` // text, json
	Color   bool   `koanf:"color"`
	Verbose bool   `koanf:"verbose"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			MaxFiles:    100,
			MaxFileSize: 1024 * 1024,
		},
		Rules: RulesConfig{
			ComplexityThreshold:     10,
			MaxFunctionLength:       50,
			EnableSecurityRules:     true,
			EnableDeadCodeDetection: true,
		},
		Exclude: ExcludeConfig{
			Patterns: []string{
				"*.min.js",
				"*.d.ts",
			},
			Dirs: []string{
				"vendor",
				"node_modules",
				".git",
				"dist",
				"build",
				"__pycache__",
			},
			Gitignore: true,
		},
		Output: OutputConfig{
			Format:  "text",
			Color:   true,
			Verbose: false,
		},
	}
}

// Load loads configuration from a file, with the parser chosen by
// extension.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault tries standard config locations and falls back to defaults.
func LoadOrDefault() *Config {
	configNames := []string{
		"scry.toml",
		"scry.yaml",
		"scry.yml",
		"scry.json",
		".scry.toml",
		".scry.yaml",
		".scry.yml",
		".scry.json",
	}

	for _, name := range configNames {
		path := filepath.Join(".", name)
		if _, err := os.Stat(path); err == nil {
			if cfg, err := Load(path); err == nil {
				return cfg
			}
		}
	}

	return DefaultConfig()
}
