package config

import (
	"os"
	"path/filepath"
)

func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "habits", "config.yaml")
}

// DefaultDBPath returns the database file used by the file-backed backends.
func DefaultDBPath(backend string) string {
	name := "habits.db"
	if backend == BackendSQLite {
		name = "habits.sqlite"
	}
	return filepath.Join(XDGDataHome(), "habits", name)
}
