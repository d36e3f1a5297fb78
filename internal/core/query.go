package core

// Query functions over transaction collections. Every function is a pure
// linear scan: it never mutates its input and returns either a freshly
// allocated slice or a scalar. Edge cases resolve to sentinel values
// (zero Money, empty slice, false, DominantEqual) instead of errors.

// DateFilter matches a date against its provided parts. A zero part
// matches every value, so the zero DateFilter matches all dates.
type DateFilter struct {
	Year  int
	Month int // 1-12
	Day   int // day of month
}

// Matches reports whether d satisfies every provided part of the filter.
func (f DateFilter) Matches(d Date) bool {
	if f.Year != 0 && d.Year() != f.Year {
		return false
	}
	if f.Month != 0 && d.Month() != f.Month {
		return false
	}
	if f.Day != 0 && d.Day() != f.Day {
		return false
	}
	return true
}

// UniqueTypes returns the distinct transaction types in first-seen order.
func UniqueTypes(txs []Transaction) []TransactionType {
	seen := make(map[TransactionType]struct{}, 2)
	var out []TransactionType
	for _, tx := range txs {
		if _, ok := seen[tx.Type]; ok {
			continue
		}
		seen[tx.Type] = struct{}{}
		out = append(out, tx.Type)
	}
	return out
}

// TotalAmount sums all transaction amounts. Zero for an empty collection.
func TotalAmount(txs []Transaction) Money {
	var cents int64
	for _, tx := range txs {
		cents += tx.Amount.Cents
	}
	return Money{Cents: cents}
}

// TotalAmountByDate sums amounts over transactions whose date matches
// every provided part of the filter. Zero when nothing matches.
func TotalAmountByDate(txs []Transaction, f DateFilter) Money {
	var cents int64
	for _, tx := range txs {
		if f.Matches(tx.Date) {
			cents += tx.Amount.Cents
		}
	}
	return Money{Cents: cents}
}

// ByType returns the transactions of the given type, preserving the
// original relative order.
func ByType(txs []Transaction, t TransactionType) []Transaction {
	var out []Transaction
	for _, tx := range txs {
		if tx.Type == t {
			out = append(out, tx)
		}
	}
	return out
}

// InDateRange returns the transactions with start <= date <= end,
// bounds inclusive. When start is after end the result is empty by
// construction, not an error.
func InDateRange(txs []Transaction, start, end Date) []Transaction {
	var out []Transaction
	for _, tx := range txs {
		if tx.Date.Before(start.Time) || tx.Date.After(end.Time) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// ByMerchant returns the transactions whose merchant name matches
// exactly, case sensitive.
func ByMerchant(txs []Transaction, merchant string) []Transaction {
	var out []Transaction
	for _, tx := range txs {
		if tx.Merchant == merchant {
			out = append(out, tx)
		}
	}
	return out
}

// AverageAmount returns the mean transaction amount, half-up rounded to
// whole cents. Zero for an empty collection.
func AverageAmount(txs []Transaction) Money {
	if len(txs) == 0 {
		return Money{}
	}
	n := int64(len(txs))
	total := TotalAmount(txs).Cents
	return Money{Cents: (total + n/2) / n}
}

// ByAmountRange returns the transactions with min <= amount <= max,
// bounds inclusive. Empty when min exceeds max.
func ByAmountRange(txs []Transaction, min, max Money) []Transaction {
	var out []Transaction
	for _, tx := range txs {
		if tx.Amount.Cents < min.Cents || tx.Amount.Cents > max.Cents {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// TotalDebitAmount sums the amounts of debit transactions only.
func TotalDebitAmount(txs []Transaction) Money {
	return TotalAmount(ByType(txs, Debit))
}

// MonthWithMostTransactions returns the calendar month (1-12) with the
// highest transaction count. Ties resolve to the smallest month number.
// The second result is false for an empty collection.
func MonthWithMostTransactions(txs []Transaction) (int, bool) {
	return busiestMonth(txs)
}

// MonthWithMostDebits is MonthWithMostTransactions restricted to debit
// transactions.
func MonthWithMostDebits(txs []Transaction) (int, bool) {
	return busiestMonth(ByType(txs, Debit))
}

func busiestMonth(txs []Transaction) (int, bool) {
	if len(txs) == 0 {
		return 0, false
	}
	var counts [13]int
	for _, tx := range txs {
		counts[tx.Date.Month()]++
	}
	best := 0
	month := 0
	for m := 1; m <= 12; m++ {
		if counts[m] > best {
			best = counts[m]
			month = m
		}
	}
	return month, true
}

// DominantType compares debit and credit counts. DominantEqual covers
// ties, including the empty collection.
func DominantType(txs []Transaction) Dominance {
	var debits, credits int
	for _, tx := range txs {
		switch tx.Type {
		case Debit:
			debits++
		case Credit:
			credits++
		}
	}
	switch {
	case debits > credits:
		return DominantDebit
	case credits > debits:
		return DominantCredit
	default:
		return DominantEqual
	}
}

// BeforeDate returns the transactions strictly before the given date.
func BeforeDate(txs []Transaction, d Date) []Transaction {
	var out []Transaction
	for _, tx := range txs {
		if tx.Date.Before(d.Time) {
			out = append(out, tx)
		}
	}
	return out
}

// FindByID returns the first transaction with the given id. The second
// result is false when no transaction matches; id uniqueness is assumed,
// not enforced.
func FindByID(txs []Transaction, id string) (Transaction, bool) {
	for _, tx := range txs {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// Descriptions projects the description of every transaction,
// preserving order.
func Descriptions(txs []Transaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.Description
	}
	return out
}
