// Package config reads and writes tillbook.yaml.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file.
const FileName = "tillbook.yaml"

// Config represents the top-level tillbook.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Report   ReportConfig   `yaml:"report"`
	Store    StoreConfig    `yaml:"store"`
}

// BusinessConfig identifies the tenant.
type BusinessConfig struct {
	Name           string `yaml:"name"`
	Tenant         string `yaml:"tenant"`
	CurrencySymbol string `yaml:"currency_symbol"`
}

// ReportConfig holds report defaults.
type ReportConfig struct {
	// DefaultWindowDays sets the window when --from/--to are omitted:
	// the last N days through today.
	DefaultWindowDays int `yaml:"default_window_days"`
}

// StoreConfig locates the sqlite database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// Load reads a tillbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if p := os.Getenv("TILLBOOK_DB"); p != "" {
		cfg.Store.Path = p
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName, tenant string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:           businessName,
			Tenant:         tenant,
			CurrencySymbol: "₹",
		},
		Report: ReportConfig{
			DefaultWindowDays: 30,
		},
		Store: StoreConfig{
			Path: "tillbook.db",
		},
	}
}
