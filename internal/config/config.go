package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Source names accepted for DATA_SOURCE.
var ValidSources = []string{"sample", "csv", "json", "yaml", "xlsx", "sqlite"}

type Config struct {
	// Dataset
	DataSource string // sample, csv, json, yaml, xlsx, sqlite
	DataPath   string // input file for the file-backed sources

	// SQLite
	SQLiteDBPath string

	// Ingestion
	StrictIngest bool // reject the whole file on a malformed record instead of skipping it

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		DataSource:   getEnv("DATA_SOURCE", "sample"),
		DataPath:     getEnv("DATA_PATH", ""),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/ledgerq.db"),
		StrictIngest: getEnvBool("STRICT_INGEST", false),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	isValidSource := false
	for _, s := range ValidSources {
		if c.DataSource == s {
			isValidSource = true
			break
		}
	}
	if !isValidSource {
		errs = append(errs, fmt.Sprintf("invalid data source '%s': must be one of %v", c.DataSource, ValidSources))
	}

	switch c.DataSource {
	case "csv", "json", "yaml", "xlsx":
		if c.DataPath == "" {
			errs = append(errs, fmt.Sprintf("DATA_PATH is required for the %s source", c.DataSource))
		} else if _, err := os.Stat(c.DataPath); os.IsNotExist(err) {
			errs = append(errs, fmt.Sprintf("data file does not exist: %s", c.DataPath))
		}
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errs = append(errs, "SQLite database path cannot be empty when using sqlite source")
		} else {
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errs = append(errs, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid log level '%s': must be debug, info, warn or error", c.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
