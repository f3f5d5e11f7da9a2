package config

import (
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.Storage.Backend != "json" {
		t.Errorf("Expected default backend json, got %s", cfg.Storage.Backend)
	}
	if cfg.Storage.Path == "" {
		t.Error("Expected a default store path")
	}
	if cfg.Reminders.IntervalMinutes != 1 {
		t.Errorf("Expected default reminder interval 1, got %d", cfg.Reminders.IntervalMinutes)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Storage.Backend = "sqlite"
	cfg.Storage.Path = "/tmp/tasks.db"
	cfg.Notify.Backend = "desktop"
	cfg.Reminders.IntervalMinutes = 5

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if loaded.Storage.Backend != "sqlite" {
		t.Errorf("Expected backend sqlite, got %s", loaded.Storage.Backend)
	}
	if loaded.Storage.Path != "/tmp/tasks.db" {
		t.Errorf("Expected path /tmp/tasks.db, got %s", loaded.Storage.Path)
	}
	if loaded.Notify.Backend != "desktop" {
		t.Errorf("Expected notifier desktop, got %s", loaded.Notify.Backend)
	}
	if loaded.Reminders.IntervalMinutes != 5 {
		t.Errorf("Expected interval 5, got %d", loaded.Reminders.IntervalMinutes)
	}
}

func TestInvalidIntervalFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Reminders.IntervalMinutes = -3
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Reminders.IntervalMinutes != 1 {
		t.Errorf("Expected interval clamped to 1, got %d", loaded.Reminders.IntervalMinutes)
	}
}
