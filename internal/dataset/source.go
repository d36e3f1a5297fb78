// Package dataset constructs transaction collections for the query core.
// Parsing and validation of raw records happens here; the core assumes
// well-formed input and never re-checks it.
package dataset

import (
	"context"
	"errors"

	"ledgerq/internal/core"
)

// Source produces an immutable transaction collection. Implementations
// return a fresh slice on every call and retain no ownership of it.
type Source interface {
	// Name identifies the source in logs and reports.
	Name() string

	// Load reads, validates and converts the underlying records.
	Load(ctx context.Context) ([]core.Transaction, error)
}

var (
	ErrMalformedRecord = errors.New("malformed record")
	ErrMissingHeader   = errors.New("missing required column")
	ErrUnknownSource   = errors.New("unknown data source")
)

// Column names shared by the tabular formats (CSV, XLSX) and the field
// names used by JSON and YAML records.
const (
	colID          = "transaction_id"
	colDate        = "transaction_date"
	colAmount      = "transaction_amount"
	colType        = "transaction_type"
	colDescription = "transaction_description"
	colMerchant    = "merchant_name"
	colCardType    = "card_type"
)
