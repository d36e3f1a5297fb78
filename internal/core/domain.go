package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	Debit  TransactionType = "debit"
	Credit TransactionType = "credit"
)

const (
	DominantDebit  Dominance = "debit"
	DominantCredit Dominance = "credit"
	DominantEqual  Dominance = "equal"
)

type (
	// TransactionType is the direction of a transaction, debit or credit.
	TransactionType string

	// Dominance reports which transaction type outnumbers the other
	// in a collection.
	Dominance string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Transaction is one financial event. Values are immutable by
	// convention: query functions never modify their input.
	Transaction struct {
		ID          string
		Date        Date
		Amount      Money
		Type        TransactionType
		Description string
		Merchant    string
		CardType    TransactionType
	}
)

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrInvalidCardType = errors.New("invalid card type")
	ErrEmptyID         = errors.New("empty transaction id")
)

// IsValid reports whether t is one of the recognized transaction types.
func (t TransactionType) IsValid() bool {
	return t == Debit || t == Credit
}

func (t TransactionType) String() string {
	return string(t)
}

// NewDate creates a Date from year, month, day at midnight UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

// ISO returns the date in zero-padded YYYY-MM-DD form. Lexicographic
// order of ISO strings matches calendar order.
func (d Date) ISO() string {
	return d.Format("2006-01-02")
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the calendar month as 1-12.
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year.
func (d Date) Year() int {
	return d.Time.Year()
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Validate checks a record at the ingestion boundary. Query functions
// assume well-formed records and never re-validate.
func (tx Transaction) Validate() error {
	if strings.TrimSpace(tx.ID) == "" {
		return ErrEmptyID
	}
	if err := tx.Date.Validate(); err != nil {
		return err
	}
	if err := tx.Amount.Validate(); err != nil {
		return err
	}
	if !tx.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, tx.Type)
	}
	if !tx.CardType.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCardType, tx.CardType)
	}
	return nil
}
