package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
environment: test
backend:
  base_url: http://localhost:9000
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if c.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", c.Server.Port)
	}
	if c.Logging.Level != "info" || c.Logging.Format != "json" {
		t.Errorf("logging defaults = %s/%s", c.Logging.Level, c.Logging.Format)
	}
	if c.Views.RestaurantLimit != 5 || c.Views.VideoLimit != 6 {
		t.Errorf("view limits = %d/%d", c.Views.RestaurantLimit, c.Views.VideoLimit)
	}
	if c.Views.DefaultCuisine != "asian" {
		t.Errorf("default cuisine = %q", c.Views.DefaultCuisine)
	}
	if c.Cache.ActionsTTL != 5*time.Minute {
		t.Errorf("actions TTL = %v, want 5m", c.Cache.ActionsTTL)
	}
}

func TestLoadExplicitValuesWin(t *testing.T) {
	path := writeConfig(t, `
environment: production
server:
  port: 9090
backend:
  base_url: https://backend.internal
  timeout: 3s
views:
  restaurant_limit: 10
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if c.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", c.Server.Port)
	}
	if c.Backend.Timeout != 3*time.Second {
		t.Errorf("backend timeout = %v, want 3s", c.Backend.Timeout)
	}
	if c.Views.RestaurantLimit != 10 {
		t.Errorf("restaurant limit = %d, want 10", c.Views.RestaurantLimit)
	}
}

func TestLoadRejectsMissingBackendURL(t *testing.T) {
	path := writeConfig(t, `
environment: test
`)

	if _, err := Load(path); err == nil {
		t.Fatal("Load() expected error for missing backend.base_url")
	}
}

func TestLoadRejectsRelativeBackendURL(t *testing.T) {
	path := writeConfig(t, `
environment: test
backend:
  base_url: localhost:9000
`)

	if _, err := Load(path); err == nil {
		t.Fatal("Load() expected error for non-absolute backend.base_url")
	}
}

func TestLoadWithEnvOverridesBackendURL(t *testing.T) {
	path := writeConfig(t, `
environment: test
backend:
  base_url: http://localhost:9000
`)

	t.Setenv("PORTAL_BACKEND_URL", "http://override:7000")
	t.Setenv("PORTAL_PORT", "9191")
	c, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("LoadWithEnv() error: %v", err)
	}
	if c.Backend.BaseURL != "http://override:7000" {
		t.Errorf("base URL = %q, want override", c.Backend.BaseURL)
	}
	if c.Server.Port != 9191 {
		t.Errorf("port = %d, want 9191", c.Server.Port)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}
