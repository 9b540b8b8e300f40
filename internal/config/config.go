// Package config loads and validates the site configuration from YAML and the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Content ContentConfig `yaml:"content"`
	Server  ServerConfig  `yaml:"server"`
	Site    SiteConfig    `yaml:"site"`
}

// ContentConfig holds the connection parameters for the content store.
type ContentConfig struct {
	ProjectID  string `yaml:"project_id"`
	Dataset    string `yaml:"dataset"`
	APIVersion string `yaml:"api_version"`
	Token      string `yaml:"token,omitempty"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
	// Offline serves content from the local SQLite store instead of the remote API.
	Offline bool `yaml:"offline,omitempty"`
	// LocalDB is the SQLite database path used in offline mode and by `seed --local`.
	LocalDB string `yaml:"local_db,omitempty"`
	// Dev reloads templates from disk on change instead of using the embedded set.
	Dev bool `yaml:"dev,omitempty"`
}

// SiteConfig holds site-wide presentation settings that are not editorial content.
type SiteConfig struct {
	BaseURL string `yaml:"base_url,omitempty"`
}

// DefaultConfig returns a configuration with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{
			Dataset:    "production",
			APIVersion: "2024-01-01",
		},
		Server: ServerConfig{
			Addr:    ":8080",
			LocalDB: "emberoak.db",
		},
	}
}

// Load reads configuration from the given YAML file, expands ${VAR} references,
// applies environment overrides and defaults, and validates the result.
func Load(path string) (*Config, error) {
	// Load .env if present so ${SANITY_TOKEN} style references resolve.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to environment-only
// configuration when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		_ = godotenv.Load()
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		applyDefaults(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return Load(path)
}

func applyDefaults(cfg *Config) {
	if cfg.Content.Dataset == "" {
		cfg.Content.Dataset = "production"
	}
	if cfg.Content.APIVersion == "" {
		cfg.Content.APIVersion = "2024-01-01"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.LocalDB == "" {
		cfg.Server.LocalDB = "emberoak.db"
	}
}

// Validate checks the configuration for fatal problems. A missing project ID is
// fatal unless the server runs offline against the local store.
func (c *Config) Validate() error {
	if c.Content.ProjectID == "" && !c.Server.Offline {
		return fmt.Errorf("content.project_id is required (set EMBEROAK_PROJECT_ID or enable offline mode)")
	}
	return nil
}
