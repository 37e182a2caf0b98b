package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	configDir  = ".alertkit"
	configFile = ".alertkit/config.json"

	DefaultJournalFile = ".alertkit/journal.db"
	DefaultLogFile     = ".alertkit/alertkit.log"
)

// Config holds CLI defaults. Flags override every field.
type Config struct {
	Category        string `json:"category,omitempty"`
	Animation       string `json:"animation,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
	ThemeFile       string `json:"theme_file,omitempty"`
	JournalPath     string `json:"journal_path,omitempty"`
	LogFile         string `json:"log_file,omitempty"`
}

// Dir returns the config directory under baseDir.
func Dir(baseDir string) string {
	return filepath.Join(baseDir, configDir)
}

// File returns the config file path under baseDir.
func File(baseDir string) string {
	return filepath.Join(baseDir, configFile)
}

// Load reads the config from disk. A missing file yields defaults.
func Load(baseDir string) (*Config, error) {
	configPath := File(baseDir)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *Config) error {
	configPath := File(baseDir)

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// JournalFile returns the journal path, resolved against baseDir.
func (c *Config) JournalFile(baseDir string) string {
	return resolve(baseDir, c.JournalPath, DefaultJournalFile)
}

// Theme returns the theme path, or "" when none is configured.
func (c *Config) Theme(baseDir string) string {
	if c.ThemeFile == "" {
		return ""
	}
	return resolve(baseDir, c.ThemeFile, "")
}

// Log returns the log file path.
func (c *Config) Log(baseDir string) string {
	return resolve(baseDir, c.LogFile, DefaultLogFile)
}

func resolve(baseDir, p, fallback string) string {
	if p == "" {
		p = fallback
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}
