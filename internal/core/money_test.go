package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"0", 0, true}, // zero amounts are legal
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"580.0", 58000, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestFromFloat(t *testing.T) {
	got, err := FromFloat(116.0)
	if err != nil || got.Cents != 11600 {
		t.Fatalf("expected 11600, got %d (err=%v)", got.Cents, err)
	}
	got, err = FromFloat(0.1 + 0.2) // 0.30000000000000004
	if err != nil || got.Cents != 30 {
		t.Fatalf("expected 30, got %d (err=%v)", got.Cents, err)
	}
	if _, err := FromFloat(-1); err == nil {
		t.Fatal("expected error for negative amount")
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{1, "0.01"},
		{11600, "116.00"},
		{58000, "580.00"},
		{12345, "123.45"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).String(); got != tc.want {
			t.Fatalf("%d cents expected %q, got %q", tc.cents, tc.want, got)
		}
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 0}).Validate(); err != nil {
		t.Fatalf("zero should be valid, got %v", err)
	}
	if err := (Money{Cents: -5}).Validate(); err == nil {
		t.Fatal("expected error for negative cents")
	}
}
