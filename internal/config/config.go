// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort             string `yaml:"server_port"`
	LogLevel               string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat              string `yaml:"log_format"` // json or text
	SeedDemoCards          bool   `yaml:"seed_demo_cards"`
	PromoteDefaultOnDelete bool   `yaml:"promote_default_on_delete"`
	UserName               string `yaml:"user_name"` // Name shown in the home greeting
}

// Default returns the configuration used when nothing is set.
func Default() *AppConfig {
	return &AppConfig{
		ServerPort: "8080",
		LogLevel:   "info",
		LogFormat:  "json",
		UserName:   "Hasan",
	}
}

// LoadConfig loads configuration from the YAML file named by CONFIG_FILE (if any)
// and then from environment variables.
func LoadConfig() (*AppConfig, error) {
	return LoadConfigFile(os.Getenv("CONFIG_FILE"))
}

// LoadConfigFile loads defaults, overlays the YAML file at path when path is
// not empty, then applies environment overrides.
func LoadConfigFile(path string) (*AppConfig, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if v := os.Getenv("SERVER_PORT"); v != "" {
		cfg.ServerPort = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("DASHBOARD_USER_NAME"); v != "" {
		cfg.UserName = v
	}

	var err error
	if cfg.SeedDemoCards, err = envBool("SEED_DEMO_CARDS", cfg.SeedDemoCards); err != nil {
		return nil, err
	}
	if cfg.PromoteDefaultOnDelete, err = envBool("PROMOTE_DEFAULT_ON_DELETE", cfg.PromoteDefaultOnDelete); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *AppConfig) Validate() error {
	port, err := strconv.Atoi(c.ServerPort)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid SERVER_PORT %q", c.ServerPort)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: want json or text", c.LogFormat)
	}
	return nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
