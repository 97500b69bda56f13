package config

// Config represents the application configuration
type Config struct {
	Manifest   ManifestConfig   `mapstructure:"manifest" yaml:"manifest"`
	Validation ValidationConfig `mapstructure:"validation" yaml:"validation"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
}

// ManifestConfig contains manifest location settings
type ManifestConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// ValidationConfig contains validation policy settings
type ValidationConfig struct {
	// Strict promotes warning-severity violations to failures.
	Strict bool `mapstructure:"strict" yaml:"strict"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate normalizes invalid values back to their defaults
func (c *Config) Validate() error {
	if c.Manifest.Path == "" {
		c.Manifest.Path = DefaultManifestPath
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		c.Logging.Level = DefaultLogLevel
	}
	switch c.Logging.Format {
	case "pretty", "json":
	default:
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}
