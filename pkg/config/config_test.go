package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("BASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	return home
}

func TestLoad_CreatesDefaultFile(t *testing.T) {
	home := withHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CLI.BaseURL != DefaultBaseURL {
		t.Errorf("base url = %q, want %q", cfg.CLI.BaseURL, DefaultBaseURL)
	}
	if cfg.Timeout() != 0 {
		t.Errorf("timeout = %v, want none", cfg.Timeout())
	}

	path := filepath.Join(home, ".config", "social-news", "config.toml")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

func TestLoad_MergesDefaults(t *testing.T) {
	home := withHome(t)
	dir := filepath.Join(home, ".config", "social-news")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	data := "[cli]\nbase_url = \"http://localhost:3000\"\nrequest_timeout = 5\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CLI.BaseURL != "http://localhost:3000" {
		t.Errorf("base url = %q", cfg.CLI.BaseURL)
	}
	if cfg.Timeout() != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", cfg.Timeout())
	}
	if cfg.Log.Level != "info" || cfg.Log.Dir != "tmp" {
		t.Errorf("log defaults not merged: %+v", cfg.Log)
	}
}

func TestEffective_EnvOverrides(t *testing.T) {
	withHome(t)
	t.Setenv("BASE_URL", "http://localhost:3000/")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CLI.BaseURL != DefaultBaseURL || cfg.Log.Level != "info" {
		t.Errorf("Load applied env overrides: %+v", cfg)
	}

	eff, err := cfg.Effective()
	if err != nil {
		t.Fatalf("Effective: %v", err)
	}
	if eff.CLI.BaseURL != "http://localhost:3000" {
		t.Errorf("base url = %q, want env override", eff.CLI.BaseURL)
	}
	if eff.Log.Level != "debug" {
		t.Errorf("log level = %q, want env override", eff.Log.Level)
	}
	if cfg.CLI.BaseURL != DefaultBaseURL {
		t.Error("Effective modified the file config")
	}
}

func TestLoad_DefaultFileIgnoresEnv(t *testing.T) {
	home := withHome(t)
	t.Setenv("BASE_URL", "http://transient.example:9999")

	if _, err := Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(home, ".config", "social-news", "config.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "transient.example") {
		t.Errorf("env override written to config file:\n%s", data)
	}
}

func TestEffective_RejectsInvalidBaseURL(t *testing.T) {
	withHome(t)
	t.Setenv("BASE_URL", "ftp://example.com")

	if _, err := DefaultConfig().Effective(); err == nil {
		t.Error("expected error for non-http BASE_URL")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	withHome(t)
	cfg := DefaultConfig()
	cfg.CLI.RequestTimeout = 12
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.CLI.RequestTimeout != 12 {
		t.Errorf("request timeout = %d, want 12", loaded.CLI.RequestTimeout)
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	home := withHome(t)
	dir := filepath.Join(home, ".config", "social-news")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[cli\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected parse error")
	}
}
