// Package config loads the command line defaults from a YAML file.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// AppName names the configuration directory below the XDG config home.
const AppName = "arcreader"

// DefaultConfigFile is looked up in the working directory.
const DefaultConfigFile = ".arcreader.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File mirrors the command line flags. Zero values mean "not set".
type File struct {
	URL              string        `yaml:"url"`
	MinTextLength    int           `yaml:"minTextLength"`
	RetryLength      int           `yaml:"retryLength"`
	PositiveKeywords []string      `yaml:"positiveKeywords"`
	NegativeKeywords []string      `yaml:"negativeKeywords"`
	Fragment         *bool         `yaml:"fragment"`
	Format           string        `yaml:"format"`
	Verbose          bool          `yaml:"verbose"`
	Timeout          time.Duration `yaml:"timeout"`
}

// ConfigDir returns the XDG configuration directory of the tool.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// LoadConfigFile reads path. A missing file yields ErrConfigNotFound so
// callers can decide whether that matters.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user supplied path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in this order:
// 1. configPath, when given
// 2. .arcreader.yaml in the current directory
// 3. config.yaml in the XDG config directory
//
// It returns "" when none exists.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	xdgConfig := filepath.Join(ConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}
	return ""
}
