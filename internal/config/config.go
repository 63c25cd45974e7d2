// Package config loads user defaults for textalign from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"go.abhg.dev/textalign/align"
	"gopkg.in/yaml.v3"
)

// Newline names accepted in the configuration file and on the command line.
const (
	NewlineLF     = "lf"
	NewlineCRLF   = "crlf"
	NewlineNative = "native"
)

// Config holds textalign defaults.
//
// Configuration merging: When loading from a file, zero values ("", nil)
// are treated as "not set" and default values are preserved.
type Config struct {
	// Mode is the alignment mode used by the align command.
	// Default: leftmost.
	Mode *align.Mode `yaml:"mode"`

	// Mark is the default marker character for mark alignment.
	// Default: "|".
	Mark string `yaml:"mark"`

	// Newline is the line terminator: lf, crlf, or native.
	// Default: native.
	Newline string `yaml:"newline"`

	// Header reports whether the first line of input is a header
	// to be discarded.
	// Default: true.
	Header *bool `yaml:"header"`
}

// DefaultMark is the marker character used when none is configured.
const DefaultMark = "|"

// DefaultMode is the alignment mode used when none is configured.
const DefaultMode = align.ModeLeftmost

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	header := true
	mode := DefaultMode
	return &Config{
		Mode:    &mode,
		Mark:    DefaultMark,
		Newline: NewlineNative,
		Header:  &header,
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "textalign", "config.yaml")
}

// LoadConfig loads configuration from the given path.
// If the file does not exist, returns the default configuration.
//
// File values override defaults only when set.
// The returned configuration is validated.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if fileCfg.Mode != nil {
		cfg.Mode = fileCfg.Mode
	}
	if fileCfg.Mark != "" {
		cfg.Mark = fileCfg.Mark
	}
	if fileCfg.Newline != "" {
		cfg.Newline = fileCfg.Newline
	}
	if fileCfg.Header != nil {
		cfg.Header = fileCfg.Header
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Mode != nil {
		if _, err := c.Mode.MarshalText(); err != nil {
			return err
		}
	}
	if utf8.RuneCountInString(c.Mark) != 1 {
		return fmt.Errorf("mark must be a single character, got %q", c.Mark)
	}
	if _, err := ParseNewline(c.Newline); err != nil {
		return err
	}
	return nil
}

// ParseNewline maps a newline name to the line terminator it stands for.
// The native newline maps to the empty string,
// which the aligner resolves to the host convention.
func ParseNewline(name string) (string, error) {
	switch name {
	case NewlineLF:
		return "\n", nil
	case NewlineCRLF:
		return "\r\n", nil
	case NewlineNative, "":
		return "", nil
	default:
		return "", fmt.Errorf("newline must be one of lf, crlf, native, got %q", name)
	}
}
