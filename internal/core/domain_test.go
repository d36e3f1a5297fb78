package core

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in  string
		out Date
		ok  bool
	}{
		{"2019-01-15", NewDate(2019, 1, 15), true},
		{" 2019-12-31 ", NewDate(2019, 12, 31), true},
		{"2019-1-5", Date{}, false}, // not zero-padded
		{"2019-13-01", Date{}, false},
		{"not-a-date", Date{}, false},
		{"", Date{}, false},
	}
	for i, tc := range cases {
		got, err := ParseDate(tc.in)
		if tc.ok {
			if err != nil || !got.Equal(tc.out.Time) {
				t.Fatalf("case %d: %q expected %v, got %v (err=%v)", i, tc.in, tc.out, got, err)
			}
			continue
		}
		if err == nil {
			t.Fatalf("case %d: %q expected error", i, tc.in)
		}
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("case %d: expected ErrInvalidDate, got %v", i, err)
		}
	}
}

func TestDateISO(t *testing.T) {
	if got := NewDate(2019, 2, 5).ISO(); got != "2019-02-05" {
		t.Fatalf("expected 2019-02-05, got %q", got)
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		ID:          "1",
		Date:        NewDate(2019, 1, 10),
		Amount:      Money{Cents: 10000},
		Type:        Debit,
		Description: "ok",
		Merchant:    "SuperMart",
		CardType:    Debit,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name string
		mut  func(*Transaction)
		want error
	}{
		{"empty id", func(tx *Transaction) { tx.ID = "  " }, ErrEmptyID},
		{"zero date", func(tx *Transaction) { tx.Date = Date{Time: time.Time{}} }, ErrInvalidDate},
		{"negative amount", func(tx *Transaction) { tx.Amount.Cents = -1 }, ErrInvalidAmount},
		{"bad type", func(tx *Transaction) { tx.Type = "transfer" }, ErrInvalidType},
		{"bad card type", func(tx *Transaction) { tx.CardType = "" }, ErrInvalidCardType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tx := good
			tc.mut(&tx)
			err := tx.Validate()
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	// Zero amount is allowed: amounts are non-negative, not positive.
	zero := good
	zero.Amount = Money{}
	if err := zero.Validate(); err != nil {
		t.Fatalf("zero amount should validate, got %v", err)
	}
}

func TestTransactionTypeIsValid(t *testing.T) {
	if !Debit.IsValid() || !Credit.IsValid() {
		t.Fatal("debit and credit must be valid")
	}
	if TransactionType("wire").IsValid() {
		t.Fatal("unexpected valid type")
	}
}
