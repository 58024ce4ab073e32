package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single recorded expense. Values are treated as immutable
// once constructed.
type Transaction struct {
	Amount    decimal.Decimal
	Category  Category
	Timestamp time.Time
	Reference string // source row key for imported expenses, empty for manual entries
}

// Equal reports whether two transactions hold the same values.
func (t Transaction) Equal(other Transaction) bool {
	return t.Amount.Equal(other.Amount) &&
		t.Category == other.Category &&
		t.Timestamp.Equal(other.Timestamp) &&
		t.Reference == other.Reference
}

// BankTransaction represents a parsed bank CSV row.
type BankTransaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = expense, positive = income
	Reference   string          // stable per source row; identical rows get a "#n" suffix
}
