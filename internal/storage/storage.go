// Package storage provides XDG-compliant storage path management for dotdash.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
)

const (
	// AppName is the application name used for XDG directory paths
	AppName = "dotdash"

	// LogFilename is the rotating log file name.
	LogFilename = "dotdash.log"

	// HistoryFilename is the conversion history database file name.
	HistoryFilename = "history.db"

	// ConfigFilename is the default config file name.
	ConfigFilename = "config.yml"
)

// Manager handles storage operations with filesystem abstraction
type Manager struct {
	fs        afero.Fs
	dataHome  string
	configDir string
}

// New creates a new storage manager rooted at the XDG base directories
func New(fs afero.Fs) *Manager {
	return NewWithRoots(fs, xdg.DataHome, xdg.ConfigHome)
}

// NewWithRoots creates a storage manager with explicit base directories,
// mostly for tests.
func NewWithRoots(fs afero.Fs, dataHome, configHome string) *Manager {
	return &Manager{
		fs:        fs,
		dataHome:  filepath.Join(dataHome, AppName),
		configDir: filepath.Join(configHome, AppName),
	}
}

// GetDataDir returns the data directory for dotdash, creating it if necessary
func (m *Manager) GetDataDir() (string, error) {
	if err := m.fs.MkdirAll(m.dataHome, 0o750); err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", m.dataHome, err)
	}
	return m.dataHome, nil
}

// GetLogPath returns the full path to the log file
func (m *Manager) GetLogPath() (string, error) {
	dataDir, err := m.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, LogFilename), nil
}

// GetHistoryPath returns the full path to the history database
func (m *Manager) GetHistoryPath() (string, error) {
	dataDir, err := m.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, HistoryFilename), nil
}

// GetConfigPath returns the default config file path. The directory is not
// created until the config is saved.
func (m *Manager) GetConfigPath() string {
	return filepath.Join(m.configDir, ConfigFilename)
}
