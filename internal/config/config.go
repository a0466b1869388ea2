package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete generator configuration.
type Config struct {
	Pad     PadConfig     `yaml:"pad"`
	HTTP    HTTPConfig    `yaml:"http"`
	Show    ShowConfig    `yaml:"show"`
	Logging LoggingConfig `yaml:"logging"`
}

// PadConfig contains the DLS output configuration.
type PadConfig struct {
	// Output is the DLS file path read by ODR-PadEnc.
	Output string `yaml:"output"`

	// Format is the DL Plus message template, e.g.
	// "Now playing: {ITEM.ARTIST} - {ITEM.TITLE}".
	Format string `yaml:"format"`

	// WriteInterval is the refresh interval for the DLS file in seconds.
	// Zero disables periodic rewrites; the file is then only written on
	// track updates.
	WriteInterval int `yaml:"write_interval"`
}

// HTTPConfig contains HTTP API server configuration.
type HTTPConfig struct {
	Port    int    `yaml:"port"`
	Address string `yaml:"address"`
	Enabled bool   `yaml:"enabled"`
}

// ShowConfig contains the broadcast show defaults.
type ShowConfig struct {
	// Name is the name of the currently scheduled show.
	Name string `yaml:"name"`

	// DefaultDuration is the assumed show length in minutes when the
	// schedule provides no end time.
	DefaultDuration int `yaml:"default_duration"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate performs validation of the complete configuration.
func (c *Config) Validate() error {
	if err := c.Pad.Validate(); err != nil {
		return fmt.Errorf("pad config: %w", err)
	}

	if err := c.HTTP.Validate(); err != nil {
		return fmt.Errorf("http config: %w", err)
	}

	if err := c.Show.Validate(); err != nil {
		return fmt.Errorf("show config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// Validate validates the DLS output configuration.
func (p *PadConfig) Validate() error {
	if p.Output == "" {
		return fmt.Errorf("output cannot be empty")
	}

	if p.Format == "" {
		return fmt.Errorf("format cannot be empty")
	}

	if p.WriteInterval < 0 {
		return fmt.Errorf("write_interval cannot be negative, got %d", p.WriteInterval)
	}

	return nil
}

// Validate validates the HTTP configuration.
func (h *HTTPConfig) Validate() error {
	if h.Enabled {
		if h.Port < 1 || h.Port > 65535 {
			return fmt.Errorf("http port must be between 1 and 65535, got %d", h.Port)
		}

		if h.Address == "" {
			return fmt.Errorf("http address cannot be empty when HTTP is enabled")
		}
	}

	return nil
}

// Validate validates the show configuration.
func (s *ShowConfig) Validate() error {
	if s.DefaultDuration < 0 {
		return fmt.Errorf("default_duration cannot be negative, got %d", s.DefaultDuration)
	}

	return nil
}

// Validate validates the logging configuration.
func (l *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[l.Level] {
		return fmt.Errorf("level must be one of [debug, info, warn, error], got '%s'", l.Level)
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("format must be 'json' or 'text', got '%s'", l.Format)
	}

	// Output accepts "stdout", "stderr" or a file path; nothing to check
	// beyond that here.
	return nil
}

// GetWriteInterval returns the DLS refresh interval as a time.Duration.
func (p *PadConfig) GetWriteInterval() time.Duration {
	return time.Duration(p.WriteInterval) * time.Second
}

// GetDefaultDuration returns the default show length as a time.Duration.
func (s *ShowConfig) GetDefaultDuration() time.Duration {
	return time.Duration(s.DefaultDuration) * time.Minute
}
