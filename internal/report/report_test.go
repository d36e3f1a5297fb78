package report

import (
	"strings"
	"testing"

	"ledgerq/internal/dataset"
)

func TestRenderSampleDataset(t *testing.T) {
	var buf strings.Builder
	r := New(DefaultOptions(), nil)
	if err := r.Render(&buf, dataset.Sample()); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	// One section per query operation.
	for _, want := range []string{
		"Unique transaction types:",
		"Total amount:",
		"Total amount for year 2019, month 1:",
		"Debit transactions:",
		"Transactions from 2019-01-01 to 2019-01-31:",
		`Transactions at "SuperMart":`,
		"Average amount:",
		"Transactions between 50.00 and 150.00:",
		"Total debit amount:",
		"Month with most transactions:",
		"Month with most debit transactions:",
		"Dominant transaction type:",
		"Transactions before 2019-02-05:",
		`Transaction "3":`,
		"Descriptions:",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing section %q in output:\n%s", want, out)
		}
	}

	// Aggregate values from the demo dataset.
	for _, want := range []string{
		"Total amount:\n  580.00",
		"Total debit amount:\n  430.00",
		"Average amount:\n  116.00",
		"Total amount for year 2019, month 1:\n  250.00",
		"Dominant transaction type:\n  debit",
		"Month with most debit transactions:\n  2",
		"debit, credit",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing value %q in output:\n%s", want, out)
		}
	}
}

func TestRenderEmptyCollection(t *testing.T) {
	var buf strings.Builder
	r := New(DefaultOptions(), nil)
	if err := r.Render(&buf, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Total amount:\n  0.00") {
		t.Fatalf("expected zero total, got:\n%s", out)
	}
	if !strings.Contains(out, "Month with most transactions:\n  none") {
		t.Fatalf("expected 'none' month, got:\n%s", out)
	}
	if !strings.Contains(out, "Dominant transaction type:\n  equal") {
		t.Fatalf("expected 'equal' dominance, got:\n%s", out)
	}
	if !strings.Contains(out, "not found") {
		t.Fatalf("expected not-found lookup, got:\n%s", out)
	}
}
