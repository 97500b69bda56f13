package config

import (
	"os"
	"path/filepath"

	"github.com/hooklint/hooklint/internal/manifest"
)

// Default values
const (
	DefaultManifestPath = manifest.ConfigFileName
	DefaultStrict       = false

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hooklint"
	}
	return filepath.Join(home, ".hooklint")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Manifest: ManifestConfig{
			Path: DefaultManifestPath,
		},
		Validation: ValidationConfig{
			Strict: DefaultStrict,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
