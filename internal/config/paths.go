package config

import (
	"os"
	"path/filepath"
)

// Dir returns the configuration directory path (~/.config/pizzasearch).
// It can be overridden with the PIZZASEARCH_CONFIG_DIR environment variable.
func Dir() string {
	if d := os.Getenv("PIZZASEARCH_CONFIG_DIR"); d != "" {
		return d
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "pizzasearch")
	}
	return filepath.Join(home, ".config", "pizzasearch")
}

// ConfigFile returns the path to the config.yaml file.
func ConfigFile() string {
	return filepath.Join(Dir(), "config.yaml")
}

// LogFile returns the default log file path.
func LogFile() string {
	return filepath.Join(Dir(), "pizzasearch.log")
}
