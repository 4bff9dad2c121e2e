package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOrCreateWritesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if cfg.DeadlinesFile != DefaultDataFileName {
		t.Fatalf("DeadlinesFile = %q, want default %q", cfg.DeadlinesFile, DefaultDataFileName)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file was not created: %v", err)
	}
}

func TestLoadOrCreateReadsExistingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`deadlines_file = "/data/deadlines.json"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DeadlinesFile != "/data/deadlines.json" {
		t.Fatalf("DeadlinesFile = %q", cfg.DeadlinesFile)
	}
}

func TestLoadOrCreateFillsBlankPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`deadlines_file = ""`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DeadlinesFile != DefaultDataFileName {
		t.Fatalf("blank path not defaulted: %q", cfg.DeadlinesFile)
	}
}

func TestLoadOrCreateRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("deadlines_file = [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadOrCreate(path); err == nil {
		t.Fatal("expected an error for malformed TOML")
	}
}
