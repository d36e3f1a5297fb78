package dataset

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ledgerq/internal/core"
)

// YAMLSource reads transactions from a YAML file holding a sequence of
// record mappings.
type YAMLSource struct {
	Path   string
	Strict bool
}

func (s YAMLSource) Name() string { return "yaml:" + s.Path }

func (s YAMLSource) Load(ctx context.Context) ([]core.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read yaml file: %w", err)
	}

	var raw []rawRecord
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml records: %w", err)
	}

	txs, skipped, err := build(raw, s.Strict)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	logSkipped(ctx, s.Name(), skipped)
	return txs, nil
}
