package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput is wrapped by every amount or category validation failure.
var ErrInvalidInput = errors.New("invalid input")

// DefaultMaxAmount is the largest accepted single expense.
var DefaultMaxAmount = decimal.NewFromInt(1000)

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// ParseAmount parses s as a decimal amount and validates it against limit.
func ParseAmount(s string, limit decimal.Decimal) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, invalidInput("parsing amount %q: %v", s, err)
	}
	if err := ValidateAmount(amount, limit); err != nil {
		return decimal.Decimal{}, err
	}
	return amount, nil
}

// ValidateAmount requires 0 < amount <= limit with at most two decimal places.
func ValidateAmount(amount, limit decimal.Decimal) error {
	if !amount.IsPositive() {
		return invalidInput("amount %s must be greater than 0", amount)
	}
	if amount.GreaterThan(limit) {
		return invalidInput("amount %s exceeds maximum %s", amount, limit)
	}
	hundred := decimal.NewFromInt(100)
	if !amount.Mul(hundred).Equal(amount.Mul(hundred).Floor()) {
		return invalidInput("amount %s has more than 2 decimal places", amount)
	}
	return nil
}
