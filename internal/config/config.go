// Package config handles the escriba configuration file and defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/escriba/internal/env"
)

// Config represents the flat escriba configuration.
type Config struct {
	Version       string `json:"version"`
	DBPath        string `json:"db_path,omitempty"`        // ledger database file
	ArchivePath   string `json:"archive_path,omitempty"`   // per-case attachment folders
	TemplatesPath string `json:"templates_path,omitempty"` // checklist templates YAML
}

// LoadConfig reads .escriba/config.json from the specified directory.
// Returns an error if no config is found - callers fall back to defaults.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".escriba", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to the directory.
func SaveConfig(dir string, cfg *Config) error {
	escribaDir := filepath.Join(dir, ".escriba")
	if err := os.MkdirAll(escribaDir, 0755); err != nil {
		return fmt.Errorf("failed to create .escriba dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(escribaDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Paths holds the fully resolved locations the application uses.
type Paths struct {
	DB        string
	Archive   string
	Templates string // empty means built-in templates
}

// ResolvePaths merges environment overrides, the config file, and defaults.
// Precedence: ESCRIBA_* env vars, then config values, then ~/.escriba.
func ResolvePaths(cfg *Config) (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("failed to get home directory: %w", err)
	}

	var fileDB, fileArchive, fileTemplates string
	if cfg != nil {
		fileDB = cfg.DBPath
		fileArchive = cfg.ArchivePath
		fileTemplates = cfg.TemplatesPath
	}

	p := Paths{
		DB:        env.GetString("ESCRIBA_DB", fileDB),
		Archive:   env.GetString("ESCRIBA_ARCHIVE", fileArchive),
		Templates: env.GetString("ESCRIBA_TEMPLATES", fileTemplates),
	}
	if p.DB == "" {
		p.DB = filepath.Join(home, ".escriba", "escriba.db")
	}
	if p.Archive == "" {
		p.Archive = filepath.Join(home, ".escriba", "archive")
	}

	return p, nil
}
