package dataset

import (
	"fmt"
	"log/slog"

	"ledgerq/internal/config"
	"ledgerq/internal/storage"
)

// CleanupFunc releases resources held by a source.
type CleanupFunc func() error

// Factory builds a Source from the application configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// CreateSource returns the configured source and an optional cleanup
// function. Cleanup is nil for sources without resources to release.
func (f *Factory) CreateSource(cfg *config.Config) (Source, CleanupFunc, error) {
	switch cfg.DataSource {
	case "sample":
		f.logger.Info("Using built-in sample dataset", "source", cfg.DataSource)
		return SampleSource{}, nil, nil
	case "csv":
		f.logger.Info("Using CSV dataset", "path", cfg.DataPath, "strict", cfg.StrictIngest)
		return CSVSource{Path: cfg.DataPath, Strict: cfg.StrictIngest}, nil, nil
	case "json":
		f.logger.Info("Using JSON dataset", "path", cfg.DataPath, "strict", cfg.StrictIngest)
		return JSONSource{Path: cfg.DataPath, Strict: cfg.StrictIngest}, nil, nil
	case "yaml":
		f.logger.Info("Using YAML dataset", "path", cfg.DataPath, "strict", cfg.StrictIngest)
		return YAMLSource{Path: cfg.DataPath, Strict: cfg.StrictIngest}, nil, nil
	case "xlsx":
		f.logger.Info("Using XLSX dataset", "path", cfg.DataPath, "strict", cfg.StrictIngest)
		return XLSXSource{Path: cfg.DataPath, Strict: cfg.StrictIngest}, nil, nil
	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize sqlite source: %w", err)
		}
		f.logger.Info("Using SQLite dataset", "path", cfg.SQLiteDBPath)
		return repo, repo.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownSource, cfg.DataSource)
	}
}
