// Package filter selects transactions and reports their positions, which the
// tracker stores as matched filter indices.
package filter

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/expense-tracker/internal/model"
)

// Filter decides whether a transaction matches.
type Filter interface {
	Matches(t model.Transaction) bool
}

// CategoryFilter matches transactions of a single category.
type CategoryFilter struct {
	Category model.Category
}

// Matches compares categories case-insensitively.
func (f CategoryFilter) Matches(t model.Transaction) bool {
	return strings.EqualFold(string(t.Category), string(f.Category))
}

// AmountFilter matches amounts within [Min, Max]. An unset bound is open.
type AmountFilter struct {
	Min decimal.NullDecimal
	Max decimal.NullDecimal
}

// Matches reports whether t.Amount lies within the bounds.
func (f AmountFilter) Matches(t model.Transaction) bool {
	if f.Min.Valid && t.Amount.LessThan(f.Min.Decimal) {
		return false
	}
	if f.Max.Valid && t.Amount.GreaterThan(f.Max.Decimal) {
		return false
	}
	return true
}

type all []Filter

func (fs all) Matches(t model.Transaction) bool {
	for _, f := range fs {
		if !f.Matches(t) {
			return false
		}
	}
	return true
}

// All returns a Filter matching only transactions every filter matches.
// With no filters it matches everything.
func All(filters ...Filter) Filter {
	return all(filters)
}

// Apply returns the positions in txns that f matches, in ascending order.
// The result is never nil.
func Apply(f Filter, txns []model.Transaction) []int {
	indices := []int{}
	for i, t := range txns {
		if f.Matches(t) {
			indices = append(indices, i)
		}
	}
	return indices
}

// FromFlags builds a Filter from command-line values. Empty values are
// ignored; it returns nil if all are empty.
func FromFlags(category, minAmount, maxAmount string) (Filter, error) {
	var filters []Filter

	if category != "" {
		c, err := model.ParseCategory(category)
		if err != nil {
			return nil, err
		}
		filters = append(filters, CategoryFilter{Category: c})
	}

	if minAmount != "" || maxAmount != "" {
		var af AmountFilter
		var err error
		if af.Min, err = parseBound("min", minAmount); err != nil {
			return nil, err
		}
		if af.Max, err = parseBound("max", maxAmount); err != nil {
			return nil, err
		}
		if af.Min.Valid && af.Max.Valid && af.Min.Decimal.GreaterThan(af.Max.Decimal) {
			return nil, fmt.Errorf("min amount %s exceeds max amount %s", af.Min.Decimal, af.Max.Decimal)
		}
		filters = append(filters, af)
	}

	switch len(filters) {
	case 0:
		return nil, nil
	case 1:
		return filters[0], nil
	default:
		return All(filters...), nil
	}
}

// parseBound parses an optional, non-negative amount bound. An empty value
// yields an unset bound.
func parseBound(name, value string) (decimal.NullDecimal, error) {
	if value == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("parsing %s amount %q: %w", name, value, err)
	}
	if d.IsNegative() {
		return decimal.NullDecimal{}, fmt.Errorf("%s amount %s must not be negative", name, d)
	}
	return decimal.NewNullDecimal(d), nil
}
