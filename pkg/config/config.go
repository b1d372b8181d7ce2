package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"social-news-go/pkg/utils"

	"github.com/pelletier/go-toml/v2"
)

// DefaultBaseURL is the public host of the social news API.
const DefaultBaseURL = "https://social-news-webapp-toy.herokuapp.com"

type Config struct {
	// CLI
	CLI struct {
		BaseURL        string `toml:"base_url"`        // Host serving /api/news and /api/link
		RequestTimeout int    `toml:"request_timeout"` // Seconds; 0 disables the client timeout
	} `toml:"cli"`

	// Logging
	Log struct {
		Level string `toml:"level"`
		Dir   string `toml:"dir"`
	} `toml:"log"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.CLI.BaseURL = DefaultBaseURL
	cfg.CLI.RequestTimeout = 0
	cfg.Log.Level = "info"
	cfg.Log.Dir = "tmp"
	return cfg
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.CLI.RequestTimeout <= 0 {
		return 0
	}
	return time.Duration(c.CLI.RequestTimeout) * time.Second
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, ".config", "social-news")
	return filepath.Join(configDir, "config.toml"), nil
}

// Load reads configuration from ~/.config/social-news/config.toml
// Creates the file with defaults if it doesn't exist. The result holds file
// values only; see Effective for environment overrides.
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := Save(cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	// Read existing config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Merge with defaults for any missing values
	defaultCfg := DefaultConfig()
	if cfg.CLI.BaseURL == "" {
		cfg.CLI.BaseURL = defaultCfg.CLI.BaseURL
	}
	if cfg.CLI.RequestTimeout < 0 {
		cfg.CLI.RequestTimeout = defaultCfg.CLI.RequestTimeout
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultCfg.Log.Level
	}
	if cfg.Log.Dir == "" {
		cfg.Log.Dir = defaultCfg.Log.Dir
	}

	return &cfg, nil
}

// Effective returns a copy of c with BASE_URL and LOG_LEVEL applied.
// The copy is for this run only and must not be saved.
func (c *Config) Effective() (*Config, error) {
	eff := *c
	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		v, err := utils.ValidateBaseURL(baseURL)
		if err != nil {
			return nil, fmt.Errorf("BASE_URL: %w", err)
		}
		eff.CLI.BaseURL = v
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		eff.Log.Level = level
	}
	return &eff, nil
}

// Save writes the configuration to the config file
func Save(cfg *Config) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal to TOML
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
