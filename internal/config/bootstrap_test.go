package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"jobsweep/internal/config"
)

func TestEnsureUserConfigSeedsOnFirstRun(t *testing.T) {
	dir := t.TempDir()
	defaultPath := filepath.Join(dir, "default.yml")
	if err := os.WriteFile(defaultPath, []byte("search:\n  keywords: go\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	dataDir := filepath.Join(dir, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatal(err)
	}

	path, err := config.EnsureUserConfig(dataDir, defaultPath)
	if err != nil {
		t.Fatalf("EnsureUserConfig: %v", err)
	}
	if path != filepath.Join(dataDir, "config.yml") {
		t.Errorf("path = %q, want config.yml under the data dir", path)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading seeded config: %v", err)
	}
	if string(got) != "search:\n  keywords: go\n" {
		t.Errorf("seeded config = %q, want the default contents", got)
	}
}

func TestEnsureUserConfigKeepsUserEdits(t *testing.T) {
	dir := t.TempDir()
	defaultPath := filepath.Join(dir, "default.yml")
	if err := os.WriteFile(defaultPath, []byte("default\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	userPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(userPath, []byte("edited by hand\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	path, err := config.EnsureUserConfig(dir, defaultPath)
	if err != nil {
		t.Fatalf("EnsureUserConfig: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "edited by hand\n" {
		t.Errorf("user config was overwritten: %q", got)
	}
}

func TestEnsureUserConfigMissingDefault(t *testing.T) {
	dir := t.TempDir()
	if _, err := config.EnsureUserConfig(dir, filepath.Join(dir, "nope.yml")); err == nil {
		t.Fatal("expected error when the default config is missing")
	}
}
