package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName    = "taskpick"
	configFile = "config.toml"
)

// ConfigDir returns the platform-specific configuration directory for taskpick.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir() //nolint:errcheck
		return filepath.Join(home, "Library", "Application Support", appName)
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), appName)
	default: // linux and others
		// Respect XDG_CONFIG_HOME if set
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName)
		}
		home, _ := os.UserHomeDir() //nolint:errcheck
		return filepath.Join(home, ".config", appName)
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), configFile)
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	return os.MkdirAll(ConfigDir(), 0755)
}
