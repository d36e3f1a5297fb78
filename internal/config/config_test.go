package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DATA_SOURCE", "DATA_PATH", "SQLITE_DB_PATH", "STRICT_INGEST", "LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()
	if cfg.DataSource != "sample" {
		t.Fatalf("expected default source 'sample', got %q", cfg.DataSource)
	}
	if cfg.DataPath != "" {
		t.Fatalf("expected empty default data path, got %q", cfg.DataPath)
	}
	if cfg.SQLiteDBPath != "./data/ledgerq.db" {
		t.Fatalf("unexpected default sqlite path: %q", cfg.SQLiteDBPath)
	}
	if cfg.StrictIngest {
		t.Fatal("expected strict ingest disabled by default")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level 'info', got %q", cfg.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATA_SOURCE", "csv")
	t.Setenv("DATA_PATH", "/tmp/txs.csv")
	t.Setenv("STRICT_INGEST", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.DataSource != "csv" || cfg.DataPath != "/tmp/txs.csv" {
		t.Fatalf("env values not picked up: %+v", cfg)
	}
	if !cfg.StrictIngest {
		t.Fatal("expected strict ingest enabled")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level 'debug', got %q", cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "txs.csv")
	if err := os.WriteFile(dataFile, []byte("header\n"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cases := []struct {
		name    string
		cfg     Config
		wantErr string // substring; empty means valid
	}{
		{
			name: "sample source needs nothing else",
			cfg:  Config{DataSource: "sample", LogLevel: "info"},
		},
		{
			name: "file source with existing file",
			cfg:  Config{DataSource: "csv", DataPath: dataFile, LogLevel: "info"},
		},
		{
			name:    "unknown source",
			cfg:     Config{DataSource: "ftp", LogLevel: "info"},
			wantErr: "invalid data source",
		},
		{
			name:    "file source without path",
			cfg:     Config{DataSource: "json", LogLevel: "info"},
			wantErr: "DATA_PATH is required",
		},
		{
			name:    "file source with missing file",
			cfg:     Config{DataSource: "yaml", DataPath: "/nonexistent/txs.yaml", LogLevel: "info"},
			wantErr: "does not exist",
		},
		{
			name:    "sqlite source without db path",
			cfg:     Config{DataSource: "sqlite", LogLevel: "info"},
			wantErr: "database path cannot be empty",
		},
		{
			name:    "bad log level",
			cfg:     Config{DataSource: "sample", LogLevel: "loud"},
			wantErr: "invalid log level",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Config{DataSource: "ftp", LogLevel: "loud"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "invalid data source") || !strings.Contains(msg, "invalid log level") {
		t.Fatalf("expected both errors reported, got %v", err)
	}
}
