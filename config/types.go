package config

// Config represents the complete configuration structure
type Config struct {
	Makuwro MakuwroConfig `mapstructure:"makuwro"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// MakuwroConfig holds API connection details
type MakuwroConfig struct {
	Environment    string `mapstructure:"environment"`
	Token          string `mapstructure:"token"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
