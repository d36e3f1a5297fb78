package dataset

import (
	"context"

	"ledgerq/internal/core"
)

// Sample returns the built-in five-record demo dataset used by the CLI
// and the tests. Callers receive a fresh slice on every call.
func Sample() []core.Transaction {
	return []core.Transaction{
		{
			ID:          "1",
			Date:        core.NewDate(2019, 1, 10),
			Amount:      core.Money{Cents: 10000},
			Type:        core.Debit,
			Description: "Grocery run",
			Merchant:    "SuperMart",
			CardType:    core.Debit,
		},
		{
			ID:          "2",
			Date:        core.NewDate(2019, 1, 15),
			Amount:      core.Money{Cents: 15000},
			Type:        core.Credit,
			Description: "Refund for returned blender",
			Merchant:    "SuperMart",
			CardType:    core.Credit,
		},
		{
			ID:          "3",
			Date:        core.NewDate(2019, 2, 5),
			Amount:      core.Money{Cents: 5000},
			Type:        core.Debit,
			Description: "Fuel top-up",
			Merchant:    "GasPoint",
			CardType:    core.Debit,
		},
		{
			ID:          "4",
			Date:        core.NewDate(2019, 2, 20),
			Amount:      core.Money{Cents: 20000},
			Type:        core.Debit,
			Description: "Electricity bill",
			Merchant:    "City Power",
			CardType:    core.Debit,
		},
		{
			ID:          "5",
			Date:        core.NewDate(2019, 3, 10),
			Amount:      core.Money{Cents: 8000},
			Type:        core.Debit,
			Description: "Dinner out",
			Merchant:    "Pasta Palace",
			CardType:    core.Credit,
		},
	}
}

// SampleSource serves the built-in dataset through the Source interface.
type SampleSource struct{}

func (SampleSource) Name() string { return "sample" }

func (SampleSource) Load(_ context.Context) ([]core.Transaction, error) {
	return Sample(), nil
}
