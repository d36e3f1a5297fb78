// Package cli wires configuration, logging and dataset sources into the
// ledgerq commands.
package cli

import (
	"fmt"

	"github.com/joho/godotenv"

	"ledgerq/internal/config"
	"ledgerq/internal/log"
)

// SetupLogger initializes structured logging and installs it as the
// default logger.
func SetupLogger(level string) *log.Logger {
	logger := log.New(log.Config{
		Level:     log.ParseLevel(level),
		Component: log.ComponentApp,
	})
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development. Errors are
// ignored silently as the file is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration from the environment and
// validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}

// LoadAndValidateConfigWithFlags loads configuration from the
// environment, applies the persistent flag overrides and validates the
// result.
func LoadAndValidateConfigWithFlags() (*config.Config, error) {
	cfg := config.Load()
	if flagSource != "" {
		cfg.DataSource = flagSource
	}
	if flagPath != "" {
		cfg.DataPath = flagPath
	}
	if flagStrict {
		cfg.StrictIngest = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}
