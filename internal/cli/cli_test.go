package cli

import (
	"strings"
	"testing"
)

func resetReportFlags(t *testing.T) {
	t.Helper()
	orig := []struct {
		ptr *string
		val string
	}{
		{&flagMerchant, flagMerchant},
		{&flagFrom, flagFrom},
		{&flagTo, flagTo},
		{&flagMin, flagMin},
		{&flagMax, flagMax},
		{&flagBefore, flagBefore},
		{&flagLookupID, flagLookupID},
	}
	t.Cleanup(func() {
		for _, o := range orig {
			*o.ptr = o.val
		}
	})
}

func TestOptionsFromFlagsDefaults(t *testing.T) {
	resetReportFlags(t)

	opts, err := optionsFromFlags()
	if err != nil {
		t.Fatalf("defaults must parse: %v", err)
	}
	if opts.Merchant != "SuperMart" {
		t.Fatalf("unexpected merchant: %q", opts.Merchant)
	}
	if opts.RangeStart.ISO() != "2019-01-01" || opts.RangeEnd.ISO() != "2019-01-31" {
		t.Fatalf("unexpected range: %s..%s", opts.RangeStart.ISO(), opts.RangeEnd.ISO())
	}
	if opts.MinAmount.Cents != 5000 || opts.MaxAmount.Cents != 15000 {
		t.Fatalf("unexpected amount bounds: %d..%d", opts.MinAmount.Cents, opts.MaxAmount.Cents)
	}
	if opts.DateFilter.Year != 2019 || opts.DateFilter.Month != 1 || opts.DateFilter.Day != 0 {
		t.Fatalf("unexpected date filter: %+v", opts.DateFilter)
	}
}

func TestOptionsFromFlagsRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		mut  func()
		want string
	}{
		{"bad from date", func() { flagFrom = "01/02/2019" }, "--from"},
		{"bad to date", func() { flagTo = "never" }, "--to"},
		{"bad before date", func() { flagBefore = "2019-1-1" }, "--before"},
		{"negative min", func() { flagMin = "-5" }, "--min"},
		{"garbage max", func() { flagMax = "lots" }, "--max"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resetReportFlags(t)
			tc.mut()
			_, err := optionsFromFlags()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error naming %s, got %v", tc.want, err)
			}
		})
	}
}

func TestConfigFlagOverrides(t *testing.T) {
	t.Setenv("DATA_SOURCE", "sample")
	origSource, origStrict := flagSource, flagStrict
	t.Cleanup(func() { flagSource, flagStrict = origSource, origStrict })

	flagSource = "sample"
	flagStrict = true
	cfg, err := LoadAndValidateConfigWithFlags()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DataSource != "sample" || !cfg.StrictIngest {
		t.Fatalf("flag overrides not applied: %+v", cfg)
	}
}
