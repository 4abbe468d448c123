package logger

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// NewFromEnv creates a logger configured from BOARSCAPE_* environment
// variables. Anything other than BOARSCAPE_ENV=production gets the
// development setup.
func NewFromEnv() (Logger, error) {
	return NewZapLogger(configFromEnv())
}

// NewWithComponent creates an env-configured logger with a component field
// pre-set.
func NewWithComponent(component string) (Logger, error) {
	logger, err := NewFromEnv()
	if err != nil {
		return nil, err
	}
	return logger.With(Field{Key: "component", Value: component}), nil
}

// Nop returns a logger that discards everything. It stands in wherever an
// optional logger was not provided.
func Nop() Logger {
	return &ZapLogger{zap: zap.NewNop()}
}

func configFromEnv() LoggerConfig {
	cfg := DefaultConfig()
	if strings.ToLower(os.Getenv("BOARSCAPE_ENV")) != "production" {
		cfg = DevelopmentConfig()
	}

	if level := os.Getenv("BOARSCAPE_LOG_LEVEL"); level != "" {
		cfg.Level = level
	}
	if format := os.Getenv("BOARSCAPE_LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	if sampling := os.Getenv("BOARSCAPE_LOG_SAMPLING"); sampling != "" {
		cfg.EnableSampling = strings.ToLower(sampling) == "true"
	}
	if initial := os.Getenv("BOARSCAPE_LOG_SAMPLE_INITIAL"); initial != "" {
		if val, err := strconv.Atoi(initial); err == nil {
			cfg.SampleInitial = val
		}
	}
	if thereafter := os.Getenv("BOARSCAPE_LOG_SAMPLE_THEREAFTER"); thereafter != "" {
		if val, err := strconv.Atoi(thereafter); err == nil {
			cfg.SampleThereafter = val
		}
	}
	if dev := os.Getenv("BOARSCAPE_LOG_DEVELOPMENT"); dev != "" {
		cfg.Development = strings.ToLower(dev) == "true"
	}
	return cfg
}
