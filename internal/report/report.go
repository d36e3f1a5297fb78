// Package report renders the full query sweep over a transaction
// collection to a console sink. It is the reference consumer of the
// query API: every core query function is exercised exactly once.
package report

import (
	"fmt"
	"io"
	"strings"

	"ledgerq/internal/core"
	"ledgerq/internal/log"
)

// Options carries the query parameters used by the sweep.
type Options struct {
	Merchant   string
	RangeStart core.Date
	RangeEnd   core.Date
	MinAmount  core.Money
	MaxAmount  core.Money
	Before     core.Date
	LookupID   string
	DateFilter core.DateFilter
}

// DefaultOptions matches the demo dataset: January 2019 ranges, the
// SuperMart merchant and a mid-range amount window.
func DefaultOptions() Options {
	return Options{
		Merchant:   "SuperMart",
		RangeStart: core.NewDate(2019, 1, 1),
		RangeEnd:   core.NewDate(2019, 1, 31),
		MinAmount:  core.Money{Cents: 5000},
		MaxAmount:  core.Money{Cents: 15000},
		Before:     core.NewDate(2019, 2, 5),
		LookupID:   "3",
		DateFilter: core.DateFilter{Year: 2019, Month: 1},
	}
}

// Report runs the query sweep and writes one section per operation.
type Report struct {
	opts   Options
	logger *log.Logger
}

func New(opts Options, logger *log.Logger) *Report {
	if logger == nil {
		logger = log.New(log.DefaultConfig()).WithComponent(log.ComponentReport)
	}
	return &Report{opts: opts, logger: logger}
}

// Render writes the sweep for the given collection. The writer receives
// plain text; callers pick the sink.
func (r *Report) Render(w io.Writer, txs []core.Transaction) error {
	o := r.opts
	r.logger.Info("Rendering query report",
		log.FieldRecordCount, len(txs),
		log.FieldMerchant, o.Merchant)

	sections := []struct {
		title string
		body  func(io.Writer) error
	}{
		{"Unique transaction types", func(w io.Writer) error {
			types := core.UniqueTypes(txs)
			names := make([]string, len(types))
			for i, t := range types {
				names[i] = t.String()
			}
			_, err := fmt.Fprintf(w, "  %s\n", strings.Join(names, ", "))
			return err
		}},
		{"Total amount", func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "  %s\n", core.TotalAmount(txs))
			return err
		}},
		{fmt.Sprintf("Total amount for %s", describeFilter(o.DateFilter)), func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "  %s\n", core.TotalAmountByDate(txs, o.DateFilter))
			return err
		}},
		{"Debit transactions", func(w io.Writer) error {
			return writeTransactions(w, core.ByType(txs, core.Debit))
		}},
		{fmt.Sprintf("Transactions from %s to %s", o.RangeStart.ISO(), o.RangeEnd.ISO()), func(w io.Writer) error {
			return writeTransactions(w, core.InDateRange(txs, o.RangeStart, o.RangeEnd))
		}},
		{fmt.Sprintf("Transactions at %q", o.Merchant), func(w io.Writer) error {
			return writeTransactions(w, core.ByMerchant(txs, o.Merchant))
		}},
		{"Average amount", func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "  %s\n", core.AverageAmount(txs))
			return err
		}},
		{fmt.Sprintf("Transactions between %s and %s", o.MinAmount, o.MaxAmount), func(w io.Writer) error {
			return writeTransactions(w, core.ByAmountRange(txs, o.MinAmount, o.MaxAmount))
		}},
		{"Total debit amount", func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "  %s\n", core.TotalDebitAmount(txs))
			return err
		}},
		{"Month with most transactions", func(w io.Writer) error {
			month, ok := core.MonthWithMostTransactions(txs)
			return writeMonth(w, month, ok)
		}},
		{"Month with most debit transactions", func(w io.Writer) error {
			month, ok := core.MonthWithMostDebits(txs)
			return writeMonth(w, month, ok)
		}},
		{"Dominant transaction type", func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "  %s\n", core.DominantType(txs))
			return err
		}},
		{fmt.Sprintf("Transactions before %s", o.Before.ISO()), func(w io.Writer) error {
			return writeTransactions(w, core.BeforeDate(txs, o.Before))
		}},
		{fmt.Sprintf("Transaction %q", o.LookupID), func(w io.Writer) error {
			tx, ok := core.FindByID(txs, o.LookupID)
			if !ok {
				_, err := fmt.Fprintln(w, "  not found")
				return err
			}
			return writeTransactions(w, []core.Transaction{tx})
		}},
		{"Descriptions", func(w io.Writer) error {
			for _, d := range core.Descriptions(txs) {
				if _, err := fmt.Fprintf(w, "  %s\n", d); err != nil {
					return err
				}
			}
			return nil
		}},
	}

	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "%s:\n", s.title); err != nil {
			return fmt.Errorf("write section %q: %w", s.title, err)
		}
		if err := s.body(w); err != nil {
			return fmt.Errorf("write section %q: %w", s.title, err)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func writeTransactions(w io.Writer, txs []core.Transaction) error {
	if len(txs) == 0 {
		_, err := fmt.Fprintln(w, "  (none)")
		return err
	}
	for _, tx := range txs {
		_, err := fmt.Fprintf(w, "  %s  %s  %8s  %-6s  %s (%s)\n",
			tx.ID, tx.Date.ISO(), tx.Amount, tx.Type, tx.Description, tx.Merchant)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeMonth(w io.Writer, month int, ok bool) error {
	if !ok {
		_, err := fmt.Fprintln(w, "  none")
		return err
	}
	_, err := fmt.Fprintf(w, "  %d\n", month)
	return err
}

func describeFilter(f core.DateFilter) string {
	if f == (core.DateFilter{}) {
		return "all dates"
	}
	parts := []string{}
	if f.Year != 0 {
		parts = append(parts, fmt.Sprintf("year %d", f.Year))
	}
	if f.Month != 0 {
		parts = append(parts, fmt.Sprintf("month %d", f.Month))
	}
	if f.Day != 0 {
		parts = append(parts, fmt.Sprintf("day %d", f.Day))
	}
	return strings.Join(parts, ", ")
}
