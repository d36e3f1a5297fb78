package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"ledgerq/internal/core"
)

// CSVSource reads transactions from a header-mapped CSV file. Column
// order is free; the header row names the columns.
type CSVSource struct {
	Path   string
	Strict bool
}

func (s CSVSource) Name() string { return "csv:" + s.Path }

func (s CSVSource) Load(ctx context.Context) ([]core.Transaction, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var raw []rawRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		raw = append(raw, recordFromRow(row, cols))
	}

	txs, skipped, err := build(raw, s.Strict)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	logSkipped(ctx, s.Name(), skipped)
	return txs, nil
}

// mapColumns resolves header names to column indexes. Every required
// column must be present; extra columns are ignored.
func mapColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{colID, colDate, colAmount, colType, colDescription, colMerchant, colCardType} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingHeader, required)
		}
	}
	return cols, nil
}

func recordFromRow(row []string, cols map[string]int) rawRecord {
	cell := func(name string) string {
		i := cols[name]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}
	return rawRecord{
		ID:          cell(colID),
		Date:        cell(colDate),
		Amount:      flexAmount(cell(colAmount)),
		Type:        cell(colType),
		Description: cell(colDescription),
		Merchant:    cell(colMerchant),
		CardType:    cell(colCardType),
	}
}
