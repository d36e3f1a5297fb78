package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"ledgerq/internal/core"
)

// rawRecord is the wire shape shared by the file-backed sources. All
// fields arrive as text; conversion and validation happen in build.
type rawRecord struct {
	ID          string     `json:"transaction_id" yaml:"transaction_id"`
	Date        string     `json:"transaction_date" yaml:"transaction_date"`
	Amount      flexAmount `json:"transaction_amount" yaml:"transaction_amount"`
	Type        string     `json:"transaction_type" yaml:"transaction_type"`
	Description string     `json:"transaction_description" yaml:"transaction_description"`
	Merchant    string     `json:"merchant_name" yaml:"merchant_name"`
	CardType    string     `json:"card_type" yaml:"card_type"`
}

// flexAmount accepts an amount as either a number or a string, since
// exported files are inconsistent about quoting monetary columns.
type flexAmount string

func (a *flexAmount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = flexAmount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a number or string: %w", err)
	}
	*a = flexAmount(n.String())
	return nil
}

func (a *flexAmount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("amount must be a scalar, got %v", node.Kind)
	}
	*a = flexAmount(node.Value)
	return nil
}

// toTransaction converts one raw record, generating an id when the
// input has none.
func (r rawRecord) toTransaction() (core.Transaction, error) {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		id = uuid.NewString()
	}

	date, err := core.ParseDate(r.Date)
	if err != nil {
		return core.Transaction{}, err
	}

	amount, err := core.ParseMoney(string(r.Amount))
	if err != nil {
		return core.Transaction{}, fmt.Errorf("%w: %q", core.ErrInvalidAmount, r.Amount)
	}

	tx := core.Transaction{
		ID:          id,
		Date:        date,
		Amount:      amount,
		Type:        core.TransactionType(strings.ToLower(strings.TrimSpace(r.Type))),
		Description: r.Description,
		Merchant:    r.Merchant,
		CardType:    core.TransactionType(strings.ToLower(strings.TrimSpace(r.CardType))),
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}
	return tx, nil
}

// logSkipped reports records dropped by a lenient load.
func logSkipped(ctx context.Context, source string, skipped int) {
	if skipped > 0 {
		slog.WarnContext(ctx, "Skipped malformed records",
			"source", source,
			"skipped_count", skipped)
	}
}

// build converts raw records to transactions. In strict mode the first
// malformed record fails the whole load; otherwise malformed records are
// skipped and counted.
func build(raw []rawRecord, strict bool) (txs []core.Transaction, skipped int, err error) {
	for i, r := range raw {
		tx, err := r.toTransaction()
		if err != nil {
			if strict {
				return nil, 0, fmt.Errorf("%w %d: %v", ErrMalformedRecord, i+1, err)
			}
			skipped++
			continue
		}
		txs = append(txs, tx)
	}
	return txs, skipped, nil
}
