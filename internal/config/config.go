// Package config loads and saves uaview preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by DefaultOutput.
const (
	OutputText = "text"
	OutputCSV  = "csv"
	OutputHTML = "html"
	OutputJSON = "json"
)

// Config holds persisted preferences.
type Config struct {
	// LoadAtStartup loads the entries of the configured hive when the
	// viewer starts without an explicit input.
	LoadAtStartup bool   `yaml:"load_at_startup"`
	StartupInput  string `yaml:"startup_input,omitempty"`

	DefaultOutput string   `yaml:"default_output"`
	ShowUTC       bool     `yaml:"show_utc"`
	ClassesHive   string   `yaml:"classes_hive,omitempty"` // UsrClass.dat or SOFTWARE used for CLSID lookup
	Highlight     []string `yaml:"highlight,omitempty"`    // regular expressions
}

// DefaultConfig returns the built-in preferences.
func DefaultConfig() *Config {
	return &Config{
		LoadAtStartup: false,
		DefaultOutput: OutputText,
		ShowUTC:       false,
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".uaview", "config.yaml")
	}
	return filepath.Join(dir, "uaview", "config.yaml")
}

// Load reads the config at path. A missing file yields defaults. On a read or
// parse failure the defaults are returned together with the error so callers
// can report it and carry on.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the config to path, replacing any previous file atomically.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.DefaultOutput {
	case OutputText, OutputCSV, OutputHTML, OutputJSON:
	default:
		return fmt.Errorf("invalid default_output %q", c.DefaultOutput)
	}
	for _, expr := range c.Highlight {
		if _, err := regexp.Compile(expr); err != nil {
			return fmt.Errorf("invalid highlight %q: %w", expr, err)
		}
	}
	return nil
}

// Set assigns a field by its YAML name. Highlight values are comma separated.
func (c *Config) Set(key, value string) error {
	switch key {
	case "load_at_startup", "show_utc":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if key == "show_utc" {
			c.ShowUTC = b
		} else {
			c.LoadAtStartup = b
		}
	case "startup_input":
		c.StartupInput = value
	case "default_output":
		c.DefaultOutput = strings.ToLower(value)
	case "classes_hive":
		c.ClassesHive = value
	case "highlight":
		c.Highlight = nil
		for _, v := range strings.Split(value, ",") {
			if v = strings.TrimSpace(v); v != "" {
				c.Highlight = append(c.Highlight, v)
			}
		}
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return c.Validate()
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("UAVIEW_CLASSES_HIVE"); path != "" {
		c.ClassesHive = path
	}
}
