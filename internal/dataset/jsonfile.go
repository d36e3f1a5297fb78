package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"ledgerq/internal/core"
)

// JSONSource reads transactions from a JSON file holding an array of
// record objects.
type JSONSource struct {
	Path   string
	Strict bool
}

func (s JSONSource) Name() string { return "json:" + s.Path }

func (s JSONSource) Load(ctx context.Context) ([]core.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read json file: %w", err)
	}

	var raw []rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse json records: %w", err)
	}

	txs, skipped, err := build(raw, s.Strict)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	logSkipped(ctx, s.Name(), skipped)
	return txs, nil
}
