package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".wikilex.yml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML shape of a configuration file. Zero values mean "keep
// the default"; only set fields are applied.
type File struct {
	// BaseURL is the site root articles are fetched from.
	BaseURL string `yaml:"base_url"`

	// Topics lists seed pages in crawl order.
	Topics []string `yaml:"topics"`

	// Vocabulary overrides the built-in term list when non-empty.
	Vocabulary []string `yaml:"vocabulary"`

	// DataDir is where data files and the history database live.
	DataDir string `yaml:"data_dir"`

	// Timeout is the per-request fetch timeout as a duration string,
	// e.g. "60s" or "2m".
	Timeout string `yaml:"timeout"`
}

// LoadConfigFile loads a configuration file from the given path.
// If the file does not exist, it returns ErrConfigNotFound so callers can
// decide whether a missing file matters based on whether the path was
// explicitly requested.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .wikilex.yml in the current directory
//  3. Look for .wikilex.yml in the user's home directory
//
// Returns the path if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

// ApplyTo overlays the file's set fields onto the configuration.
func (f *File) ApplyTo(cfg *Config) error {
	if f.BaseURL != "" {
		cfg.BaseURL = f.BaseURL
	}
	if len(f.Topics) > 0 {
		cfg.Topics = append([]string(nil), f.Topics...)
	}
	if len(f.Vocabulary) > 0 {
		cfg.Vocabulary = append([]string(nil), f.Vocabulary...)
	}
	if f.DataDir != "" {
		cfg.DataDir = f.DataDir
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("parse timeout %q: %w", f.Timeout, err)
		}
		cfg.Timeout = d
	}
	return nil
}
