// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the config file for Load.
const EnvironmentVariable = "HOSTENV_CONFIG"

// Environment identifies where the tests are running.
type Environment string

const (
	// Development is an interactive workstation.
	Development Environment = "development"
	// CI is an unattended build agent.
	CI Environment = "ci"
)

// Log output formats.
const (
	// FormatClassic renders LEVEL:FUNCTION:MESSAGE lines.
	FormatClassic = "classic"
	// FormatText is slog's key=value text handler.
	FormatText = "text"
	// FormatJSON is slog's JSON handler.
	FormatJSON = "json"
)

// Config is the hostenv configuration.
type Config struct {
	// Environment selects the override section (development, ci).
	Environment Environment `yaml:"environment" json:"environment"`

	// Debug configures the debugger hook.
	Debug DebugConfig `yaml:"debug" json:"debug"`

	// Logging configures the process-wide logger.
	Logging LoggingConfig `yaml:"logging" json:"logging"`

	// Distro configures distribution detection.
	Distro DistroConfig `yaml:"distro" json:"distro"`

	// Per-environment overrides, applied after the base config.
	Development *ConfigOverrides `yaml:"development,omitempty" json:"development,omitempty"`
	CI          *ConfigOverrides `yaml:"ci,omitempty" json:"ci,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Debug   *DebugConfig   `yaml:"debug,omitempty" json:"debug,omitempty"`
	Logging *LoggingConfig `yaml:"logging,omitempty" json:"logging,omitempty"`
	Distro  *DistroConfig  `yaml:"distro,omitempty" json:"distro,omitempty"`
}

// DebugConfig configures the debugger hook.
type DebugConfig struct {
	// Variable is the environment variable that enables the hook.
	// Default: DEBUG
	Variable string `yaml:"variable" json:"variable"`

	// Wait is how long a breakpoint waits for a debugger to attach, as
	// a Go duration. "0s" disables waiting.
	// Default: 2m (development), 0s (ci)
	Wait string `yaml:"wait" json:"wait"`
}

// LoggingConfig configures the process-wide logger.
type LoggingConfig struct {
	// Level is the minimum severity: debug, info, warn, error.
	// Default: info
	Level string `yaml:"level" json:"level"`

	// Format is classic, text, or json.
	// Default: classic
	Format string `yaml:"format" json:"format"`
}

// DistroConfig configures distribution detection.
type DistroConfig struct {
	// Root is the filesystem root containing etc/os-release.
	// Default: /
	Root string `yaml:"root" json:"root"`
}

// Default returns the default configuration. These values apply to
// every field the config file does not set.
func Default() *Config {
	return &Config{
		Environment: Development,
		Debug: DebugConfig{
			Variable: "DEBUG",
			Wait:     "2m",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: FormatClassic,
		},
		Distro: DistroConfig{
			Root: "/",
		},
	}
}

// Load loads configuration from the file named by HOSTENV_CONFIG.
// Fails if the variable is not set.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your hostenv.yaml config file, or use --config flag",
			EnvironmentVariable)
	}

	return LoadFile(configPath)
}

// LoadOrDefault loads the file named by HOSTENV_CONFIG, or returns
// Default when the variable is unset. A set variable naming a missing
// or invalid file is still an error.
func LoadOrDefault() (*Config, error) {
	if os.Getenv(EnvironmentVariable) == "" {
		cfg := Default()
		cfg.applyEnvironmentOverrides()
		return cfg, nil
	}
	return Load()
}

// LoadFile loads configuration from a specific file path.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	return cfg, nil
}

// loadFile merges a single configuration file into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return json.Unmarshal(jsonc.ToJSON(data), c)
	default:
		return yaml.Unmarshal(data, c)
	}
}

// applyEnvironmentOverrides applies the section matching Environment.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case CI:
		overrides = c.CI
		// CI default: never block on a debugger.
		if overrides == nil {
			overrides = &ConfigOverrides{
				Debug: &DebugConfig{Wait: "0s"},
			}
		}
	}

	if overrides == nil {
		return
	}

	if overrides.Debug != nil {
		if overrides.Debug.Variable != "" {
			c.Debug.Variable = overrides.Debug.Variable
		}
		if overrides.Debug.Wait != "" {
			c.Debug.Wait = overrides.Debug.Wait
		}
	}

	if overrides.Logging != nil {
		if overrides.Logging.Level != "" {
			c.Logging.Level = overrides.Logging.Level
		}
		if overrides.Logging.Format != "" {
			c.Logging.Format = overrides.Logging.Format
		}
	}

	if overrides.Distro != nil {
		if overrides.Distro.Root != "" {
			c.Distro.Root = overrides.Distro.Root
		}
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	c.Distro.Root = expandVars(c.Distro.Root, vars)
}

// varPattern matches ${VAR} and ${VAR:-default}.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != CI {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if c.Debug.Variable == "" {
		errs = append(errs, fmt.Errorf("debug.variable is required"))
	}
	if wait, err := time.ParseDuration(c.Debug.Wait); err != nil {
		errs = append(errs, fmt.Errorf("debug.wait: %w", err))
	} else if wait < 0 {
		errs = append(errs, fmt.Errorf("debug.wait must not be negative, got %s", c.Debug.Wait))
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	formats := []string{FormatClassic, FormatText, FormatJSON}
	if !slices.Contains(formats, c.Logging.Format) {
		errs = append(errs, fmt.Errorf("logging.format must be one of: %v", formats))
	}

	if !filepath.IsAbs(c.Distro.Root) {
		errs = append(errs, fmt.Errorf("distro.root must be an absolute path, got %q", c.Distro.Root))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// DebugWait returns debug.wait as a duration, or 0 if it does not
// parse. Call Validate first to surface parse errors.
func (c *Config) DebugWait() time.Duration {
	wait, err := time.ParseDuration(c.Debug.Wait)
	if err != nil {
		return 0
	}
	return wait
}

// LogLevel returns logging.level as a slog.Level, or INFO if it does
// not parse.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}
