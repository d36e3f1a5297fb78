package dataset

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"ledgerq/internal/core"
)

// LoadAll loads every source concurrently and concatenates the results
// in source order. Any failing source fails the whole load.
func LoadAll(ctx context.Context, sources ...Source) ([]core.Transaction, error) {
	if len(sources) == 0 {
		return nil, nil
	}

	parts := make([][]core.Transaction, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			txs, err := src.Load(ctx)
			if err != nil {
				return fmt.Errorf("load %s: %w", src.Name(), err)
			}
			parts[i] = txs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []core.Transaction
	for _, part := range parts {
		out = append(out, part...)
	}
	return out, nil
}
