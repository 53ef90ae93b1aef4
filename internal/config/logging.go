package config

import (
	"fmt"

	"github.com/creasty/defaults"
	"go.uber.org/zap/zapcore"
)

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level       string `default:"info"`
	Development bool   `default:"false"`
}

// LoadLoggingConfig loads logging configuration from environment variables
func LoadLoggingConfig(getenv func(string) string) (*LoggingConfig, error) {
	config := &LoggingConfig{}
	if err := defaults.Set(config); err != nil {
		return nil, fmt.Errorf("failed to apply logging defaults: %w", err)
	}

	overlay(&config.Level, getenv("LOG_LEVEL"))
	if _, err := zapcore.ParseLevel(config.Level); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", config.Level, err)
	}

	switch getenv("LOG_DEVELOPMENT") {
	case "true", "1":
		config.Development = true
	}

	return config, nil
}
