package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"social-news-go/pkg/config"
	"social-news-go/pkg/utils"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

// ShowConfig displays the current configuration
func (a *App) ShowConfig(w io.Writer) error {
	data, err := toml.Marshal(a.cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// SetConfig sets a configuration value
// Format: section.key=value (e.g., "cli.base_url=http://localhost:3000")
// Only the file values are saved; environment and flag overrides of the
// running App are not written back.
func (a *App) SetConfig(setStr string) error {
	parts := strings.SplitN(setStr, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid format: expected 'section.key=value'")
	}

	keyPath := strings.Split(parts[0], ".")
	value := parts[1]

	if len(keyPath) != 2 {
		return fmt.Errorf("invalid key format: expected 'section.key'")
	}

	fileCfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := setValue(fileCfg, keyPath[0], keyPath[1], value); err != nil {
		return err
	}
	if err := config.Save(fileCfg); err != nil {
		return err
	}

	// The new value also takes effect for the rest of this run.
	if err := setValue(a.cfg, keyPath[0], keyPath[1], value); err != nil {
		return err
	}
	a.client = nil
	return nil
}

func setValue(cfg *config.Config, section, key, value string) error {
	switch section {
	case "cli":
		switch key {
		case "base_url":
			baseURL, err := utils.ValidateBaseURL(value)
			if err != nil {
				return err
			}
			cfg.CLI.BaseURL = baseURL
		case "request_timeout":
			timeout, err := strconv.Atoi(value)
			if err != nil || timeout < 0 {
				return fmt.Errorf("invalid request_timeout value: %s", value)
			}
			cfg.CLI.RequestTimeout = timeout
		default:
			return fmt.Errorf("unknown cli key: %s", key)
		}
	case "log":
		switch key {
		case "level":
			if _, err := zerolog.ParseLevel(value); err != nil || value == "" {
				return fmt.Errorf("invalid log level: %s", value)
			}
			cfg.Log.Level = value
		case "dir":
			cfg.Log.Dir = value
		default:
			return fmt.Errorf("unknown log key: %s", key)
		}
	default:
		return fmt.Errorf("unknown section: %s", section)
	}
	return nil
}
