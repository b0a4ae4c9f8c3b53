package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tmalley/taskdeck/internal/config"
)

func setupTestHome(t *testing.T) string {
	t.Helper()

	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)
	t.Setenv(config.EnvDataDir, "")
	return homeDir
}

func writeConfig(t *testing.T, homeDir, content string) {
	t.Helper()

	configDir := filepath.Join(homeDir, ".config", "taskdeck")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	homeDir := setupTestHome(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := filepath.Join(homeDir, ".local", "share", "taskdeck")
	if cfg.DataDir != want {
		t.Errorf("expected default data dir %q, got %q", want, cfg.DataDir)
	}
	if cfg.NoColor {
		t.Error("expected NoColor to default to false")
	}
}

func TestLoad_Full(t *testing.T) {
	homeDir := setupTestHome(t)

	writeConfig(t, homeDir, `
data-dir = "/srv/tasks"
no-color = true
`)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.DataDir != "/srv/tasks" {
		t.Errorf("expected data dir /srv/tasks, got %q", cfg.DataDir)
	}
	if !cfg.NoColor {
		t.Error("expected NoColor true")
	}
}

func TestLoad_EnvOverridesConfig(t *testing.T) {
	homeDir := setupTestHome(t)

	writeConfig(t, homeDir, `data-dir = "/srv/tasks"`)
	t.Setenv(config.EnvDataDir, "/tmp/override")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.DataDir != "/tmp/override" {
		t.Errorf("expected env override, got %q", cfg.DataDir)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	homeDir := setupTestHome(t)

	writeConfig(t, homeDir, `data-dir = [`)

	if _, err := config.Load(); err == nil {
		t.Fatal("expected parse error")
	}
}
