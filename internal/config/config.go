// Package config provides configuration loading and validation for the CLIs.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. CV_BANK_CV_DIR
	EnvPrefix = "CV_BANK"
	// FileName is the config file name searched for in the working directory
	FileName = "cv-bank"

	// DefaultCVDir is the directory holding the CV sources
	DefaultCVDir = "cv-bank"
	// DefaultRenderer is the renderer command looked up on PATH
	DefaultRenderer = "rendercv"
	// DefaultLocalRenderer is the project-local renderer installation
	DefaultLocalRenderer = "venv/bin/rendercv"
)

// Config represents the CLI configuration.
// Values come from defaults, an optional config file, then CV_BANK_* environment variables.
type Config struct {
	CVDir          string   `mapstructure:"cv_dir"`          // Directory holding the YAML CVs
	Renderer       string   `mapstructure:"renderer"`        // Renderer command or path
	LocalRenderers []string `mapstructure:"local_renderers"` // Local installations preferred over Renderer
	LogLevel       string   `mapstructure:"log_level"`       // debug, info, warn, error
	LogFormat      string   `mapstructure:"log_format"`      // text or json
}

// Overrides holds CLI flag values; empty values leave the config untouched
type Overrides struct {
	CVDir    string
	Renderer string
}

// Load reads configuration. An explicit path must exist; without one, a
// cv-bank.{yaml,json,toml} file in the working directory is used when present.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("cv_dir", DefaultCVDir)
	v.SetDefault("renderer", DefaultRenderer)
	v.SetDefault("local_renderers", []string{DefaultLocalRenderer})
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if strings.TrimSpace(c.CVDir) == "" {
		return fmt.Errorf("config error: 'cv_dir' must not be empty")
	}
	if strings.TrimSpace(c.Renderer) == "" {
		return fmt.Errorf("config error: 'renderer' must not be empty")
	}

	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: 'log_level' must be one of debug, info, warn, error")
	}

	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("config error: 'log_format' must be text or json")
	}

	return nil
}

// ApplyOverrides returns a copy of the config with non-empty flag values applied.
// An explicit renderer also disables the local installation lookup.
func (c *Config) ApplyOverrides(o Overrides) Config {
	result := *c

	if o.CVDir != "" {
		result.CVDir = o.CVDir
	}
	if o.Renderer != "" {
		result.Renderer = o.Renderer
		result.LocalRenderers = nil
	}

	return result
}
