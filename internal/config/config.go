// Package config handles converter configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/fireconv/internal/export"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all converter settings.
type Config struct {
	Paths   PathsConfig   `yaml:"paths"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// PathsConfig holds input and output locations.
type PathsConfig struct {
	AssetPath     string `yaml:"asset_path"`     // Prefix prepended to every resolved asset path
	CreatorAssets string `yaml:"creator_assets"` // Editor built-in assets (temp dir)
	OutputDir     string `yaml:"output_dir"`
}

// OutputConfig holds rendering settings.
type OutputConfig struct {
	Format       string  `yaml:"format"` // json or code
	DesignWidth  float64 `yaml:"design_width"`
	DesignHeight float64 `yaml:"design_height"`
	Indent       int     `yaml:"indent"` // 0 writes compact JSON
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"` // Rotation threshold for log_file
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			AssetPath:     "",
			CreatorAssets: "creator_project/temp/",
			OutputDir:     "json/",
		},
		Output: OutputConfig{
			Format:       "json",
			DesignWidth:  960,
			DesignHeight: 640,
			Indent:       export.DefaultIndent,
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 30,
			Compress:   true,
		},
	}
}

// Validate checks values the converter cannot work with.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "json", "code":
	default:
		return fmt.Errorf("%w: output format %q (want json or code)", ErrInvalidConfig, c.Output.Format)
	}
	if c.Output.DesignWidth <= 0 || c.Output.DesignHeight <= 0 {
		return fmt.Errorf("%w: design resolution %gx%g", ErrInvalidConfig, c.Output.DesignWidth, c.Output.DesignHeight)
	}
	if c.Output.Indent < 0 {
		return fmt.Errorf("%w: negative indent %d", ErrInvalidConfig, c.Output.Indent)
	}
	if c.Logging.MaxSizeMB < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAgeDays < 0 {
		return fmt.Errorf("%w: negative log rotation setting", ErrInvalidConfig)
	}
	if c.Paths.OutputDir == "" {
		return fmt.Errorf("%w: empty output directory", ErrInvalidConfig)
	}
	return nil
}
