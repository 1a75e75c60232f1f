package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileName is the name of the gateway config file.
const DefaultFileName = "cachegate.yaml"

// ConfigDir returns the path to the cachegate config directory (~/.cachegate).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".cachegate"), nil
}

// DefaultPath returns the config file to load when none is given on the
// command line, and whether it exists. ./cachegate.yaml wins over
// ~/.cachegate/cachegate.yaml.
func DefaultPath() (string, bool) {
	if _, err := os.Stat(DefaultFileName); err == nil {
		return DefaultFileName, true
	}

	dir, err := ConfigDir()
	if err != nil {
		return "", false
	}
	p := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(p); err == nil {
		return p, true
	}
	return p, false
}
