package filter

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/expense-tracker/internal/model"
)

func sample() []model.Transaction {
	ts := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	mk := func(amount string, c model.Category) model.Transaction {
		return model.Transaction{Amount: decimal.RequireFromString(amount), Category: c, Timestamp: ts}
	}
	return []model.Transaction{
		mk("12.00", model.CategoryFood),
		mk("250.00", model.CategoryTravel),
		mk("40.00", model.CategoryFood),
		mk("80.00", model.CategoryBills),
		mk("5.50", model.CategoryEntertainment),
	}
}

func bound(n int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(n))
}

func TestApply(t *testing.T) {
	txns := sample()

	tests := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{"category", CategoryFilter{Category: model.CategoryFood}, []int{0, 2}},
		{"category case-insensitive", CategoryFilter{Category: "FOOD"}, []int{0, 2}},
		{"no match", CategoryFilter{Category: model.CategoryOther}, []int{}},
		{"amount range", AmountFilter{Min: bound(10), Max: bound(80)}, []int{0, 2, 3}},
		{"amount min only", AmountFilter{Min: bound(50)}, []int{1, 3}},
		{"amount max only", AmountFilter{Max: bound(12)}, []int{0, 4}},
		{"amount zero max", AmountFilter{Max: bound(0)}, []int{}},
		{"amount unbounded", AmountFilter{}, []int{0, 1, 2, 3, 4}},
		{"combined", All(CategoryFilter{Category: model.CategoryFood}, AmountFilter{Min: bound(20)}), []int{2}},
		{"empty conjunction", All(), []int{0, 1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.filter, txns))
		})
	}
}

func TestFromFlags(t *testing.T) {
	txns := sample()

	f, err := FromFlags("", "", "")
	require.NoError(t, err)
	assert.Nil(t, f)

	f, err = FromFlags("food", "", "")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, Apply(f, txns))

	f, err = FromFlags("", "40", "250")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, Apply(f, txns))

	f, err = FromFlags("food", "20", "")
	require.NoError(t, err)
	assert.Equal(t, []int{2}, Apply(f, txns))

	f, err = FromFlags("", "0", "0")
	require.NoError(t, err)
	assert.Empty(t, Apply(f, txns), "a zero max is a bound, not an open end")

	f, err = FromFlags("", "", "0")
	require.NoError(t, err)
	af, ok := f.(AmountFilter)
	require.True(t, ok)
	assert.False(t, af.Min.Valid)
	require.True(t, af.Max.Valid)
	assert.True(t, af.Max.Decimal.IsZero())
}

func TestFromFlags_Errors(t *testing.T) {
	tests := []struct {
		name               string
		category, min, max string
	}{
		{"unknown category", "rent", "", ""},
		{"bad min", "", "ten", ""},
		{"bad max", "", "", "x"},
		{"negative", "", "-1", ""},
		{"inverted", "", "50", "10"},
		{"max below min", "", "5", "0"},
		{"negative max", "", "", "-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromFlags(tt.category, tt.min, tt.max)
			require.Error(t, err)
		})
	}
}
