package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"ledgerq/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository serves transaction collections from a SQLite file.
// It is a read-oriented source: the only write path is SeedSample, a
// convenience for demos and tests. The query core never touches it.
type SQLiteRepository struct {
	db   *sql.DB
	path string
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db, path: dbPath}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Name implements dataset.Source.
func (r *SQLiteRepository) Name() string { return "sqlite:" + r.path }

// Load implements dataset.Source. Rows come back in insertion order.
func (r *SQLiteRepository) Load(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, tx_date, amount_cents, tx_type, description, merchant, card_type
		FROM transactions
		ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var (
			id, rawDate, typ, desc, merchant, cardType string
			cents                                      int64
		)
		if err := rows.Scan(&id, &rawDate, &cents, &typ, &desc, &merchant, &cardType); err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		date, err := core.ParseDate(rawDate)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", id, err)
		}
		txs = append(txs, core.Transaction{
			ID:          id,
			Date:        date,
			Amount:      core.Money{Cents: cents},
			Type:        core.TransactionType(typ),
			Description: desc,
			Merchant:    merchant,
			CardType:    core.TransactionType(cardType),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}

	slog.InfoContext(ctx, "Loaded transactions from SQLite",
		"path", r.path,
		"record_count", len(txs))

	return txs, nil
}

// SeedSample replaces the table contents with the given collection.
func (r *SQLiteRepository) SeedSample(ctx context.Context, txs []core.Transaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (id, tx_date, amount_cents, tx_type, description, merchant, card_type)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range txs {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("refuse to seed transaction %s: %w", t.ID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			t.ID, t.Date.ISO(), t.Amount.Cents, string(t.Type),
			t.Description, t.Merchant, string(t.CardType)); err != nil {
			return fmt.Errorf("insert transaction %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	slog.InfoContext(ctx, "Seeded transactions", "path", r.path, "record_count", len(txs))
	return nil
}
