package dataset

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"ledgerq/internal/core"
)

// XLSXSource reads transactions from the first sheet of a spreadsheet.
// The first row is the header, mapped the same way as CSV columns.
type XLSXSource struct {
	Path   string
	Strict bool
}

func (s XLSXSource) Name() string { return "xlsx:" + s.Path }

func (s XLSXSource) Load(ctx context.Context) ([]core.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets: %s", s.Path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty sheet", ErrMissingHeader)
	}

	cols, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	raw := make([]rawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		raw = append(raw, recordFromRow(row, cols))
	}

	txs, skipped, err := build(raw, s.Strict)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	logSkipped(ctx, s.Name(), skipped)
	return txs, nil
}
