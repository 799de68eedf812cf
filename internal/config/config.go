// ABOUTME: Configuration loading and parsing for the showcase client
// ABOUTME: Supports YAML files with environment variable expansion and defaults

package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config represents the complete showcase client configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Admin    AdminConfig    `yaml:"admin"`
	Identity IdentityConfig `yaml:"identity"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig holds backend address configuration
type ServerConfig struct {
	// BaseURL is the showcase backend root, e.g. http://localhost:8000
	BaseURL string `yaml:"base_url"`
}

// AdminConfig holds admin panel configuration
type AdminConfig struct {
	// LeadLimit caps the page size of the admin lead fetch
	LeadLimit int `yaml:"lead_limit"`
	// ExportPath is where the CSV export artifact is written
	ExportPath string `yaml:"export_path"`
}

// IdentityConfig holds host identity configuration
type IdentityConfig struct {
	// InitDataFile overrides the default init-data file location
	InitDataFile string `yaml:"init_data_file"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File receives log output while the TUI owns the terminal
	File string `yaml:"file"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL: "http://localhost:8000",
		},
		Admin: AdminConfig{
			LeadLimit:  200,
			ExportPath: "leads.csv",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a configuration file from the given path and returns a parsed Config.
// Environment variables in the format ${VAR_NAME} are expanded. Fields left
// unset fall back to the Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the raw YAML content
	expandedData := expandEnvVars(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expandedData), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if c.Server.BaseURL == "" {
		return fmt.Errorf("server.base_url is required")
	}

	if c.Admin.LeadLimit <= 0 {
		return fmt.Errorf("admin.lead_limit must be positive, got %d", c.Admin.LeadLimit)
	}

	if c.Admin.ExportPath == "" {
		return fmt.Errorf("admin.export_path is required")
	}

	return nil
}
