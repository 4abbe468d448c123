package logger

// LoggerConfig defines logging configuration.
type LoggerConfig struct {
	Level            string `yaml:"level" env:"BOARSCAPE_LOG_LEVEL"`
	Format           string `yaml:"format" env:"BOARSCAPE_LOG_FORMAT"` // json or console
	EnableSampling   bool   `yaml:"enable_sampling" env:"BOARSCAPE_LOG_SAMPLING"`
	SampleInitial    int    `yaml:"sample_initial" env:"BOARSCAPE_LOG_SAMPLE_INITIAL"`
	SampleThereafter int    `yaml:"sample_thereafter" env:"BOARSCAPE_LOG_SAMPLE_THEREAFTER"`
	Development      bool   `yaml:"development" env:"BOARSCAPE_LOG_DEVELOPMENT"`
}

// DefaultConfig returns production defaults: sampled json at info level.
func DefaultConfig() LoggerConfig {
	return LoggerConfig{
		Level:            "info",
		Format:           "json",
		EnableSampling:   true,
		SampleInitial:    100,
		SampleThereafter: 1000,
		Development:      false,
	}
}

// DevelopmentConfig returns a human-readable console setup at debug level.
func DevelopmentConfig() LoggerConfig {
	return LoggerConfig{
		Level:            "debug",
		Format:           "console",
		EnableSampling:   false,
		SampleInitial:    0,
		SampleThereafter: 0,
		Development:      true,
	}
}
