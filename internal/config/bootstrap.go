package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureUserConfig makes sure dataDir holds a config.yml, seeding it
// from the packaged default on first run, and returns its path. An
// existing file is never touched, so user edits survive.
func EnsureUserConfig(dataDir, defaultPath string) (string, error) {
	path := filepath.Join(dataDir, "config.yml")

	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	def, err := os.ReadFile(defaultPath)
	if err != nil {
		return "", fmt.Errorf("reading default config: %w", err)
	}
	if err := os.WriteFile(path, def, 0o644); err != nil {
		return "", fmt.Errorf("seeding %s: %w", path, err)
	}
	return path, nil
}
