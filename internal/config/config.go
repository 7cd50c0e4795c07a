package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/dotdash/internal/converter"
	"gopkg.in/yaml.v3"
)

// Mode names accepted in the config file.
const (
	ModeShift = "shift"
	ModeMorse = "morse"
)

type Config struct {
	Mode      string          `yaml:"mode"`
	Assistant AssistantConfig `yaml:"assistant,omitempty"`
	History   HistoryConfig   `yaml:"history"`
	Logging   LoggingConfig   `yaml:"logging"`
	Key       int             `yaml:"key"`
}

type AssistantConfig struct {
	Hints []string `yaml:"hints,omitempty"`
}

type HistoryConfig struct {
	Enabled    bool `yaml:"enabled"`
	MaxEntries int  `yaml:"max_entries"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	MaxSize    int    `yaml:"max_size,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
	MaxAge     int    `yaml:"max_age,omitempty"`
}

// Load reads the config at path. A missing file yields DefaultConfig; keys
// absent from the file keep their default values.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return LoadFromYAML(data)
}

// LoadFromYAML loads config from YAML bytes on top of the defaults
func LoadFromYAML(data []byte) (*Config, error) {
	config := DefaultConfig()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Save writes the config as YAML, creating the parent directory.
func (c *Config) Save(fs afero.Fs, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := afero.WriteFile(fs, path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate performs config validation
func (c *Config) Validate() error {
	if _, err := converter.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("invalid mode '%s': must be one of: %s, %s", c.Mode, ModeShift, ModeMorse)
	}

	for i, hint := range c.Assistant.Hints {
		if strings.TrimSpace(hint) == "" {
			return fmt.Errorf("assistant hint %d cannot be empty", i+1)
		}
	}

	if c.History.MaxEntries < 0 {
		return errors.New("history max_entries cannot be negative")
	}

	if c.Logging.MaxSize < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAge < 0 {
		return errors.New("logging limits cannot be negative")
	}

	return nil
}
