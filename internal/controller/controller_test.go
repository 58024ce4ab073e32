package controller

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/expense-tracker/internal/filter"
	"github.com/cleared-dev/expense-tracker/internal/model"
	"github.com/cleared-dev/expense-tracker/internal/tracker"
)

type counter struct {
	updates int
	last    []model.Transaction
}

func (c *counter) Update(m *tracker.Model) {
	c.updates++
	c.last = m.Transactions()
}

var fixedNow = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

func newTestController(t *testing.T) (*Controller, *counter) {
	t.Helper()
	m := tracker.NewModel()
	l := &counter{}
	require.True(t, m.Register(l))
	return New(m, WithClock(func() time.Time { return fixedNow })), l
}

func TestAddTransaction(t *testing.T) {
	c, l := newTestController(t)

	txn, err := c.AddTransaction("19.99", "Food")
	require.NoError(t, err)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("19.99")))
	assert.Equal(t, model.CategoryFood, txn.Category)
	assert.Equal(t, fixedNow, txn.Timestamp)

	assert.Equal(t, 1, l.updates)
	require.Len(t, l.last, 1)
	assert.True(t, l.last[0].Equal(txn))
}

func TestAddTransaction_Invalid(t *testing.T) {
	c, l := newTestController(t)

	for _, tc := range []struct{ amount, category string }{
		{"0", "food"},
		{"1001", "food"},
		{"abc", "food"},
		{"10", "rent"},
	} {
		_, err := c.AddTransaction(tc.amount, tc.category)
		assert.ErrorIs(t, err, model.ErrInvalidInput, "amount=%q category=%q", tc.amount, tc.category)
	}
	assert.Zero(t, l.updates)
	assert.Empty(t, c.Model().Transactions())
}

func TestWithMaxAmount(t *testing.T) {
	m := tracker.NewModel()
	c := New(m, WithMaxAmount(decimal.NewFromInt(50)))

	_, err := c.AddTransaction("50", "bills")
	require.NoError(t, err)
	_, err = c.AddTransaction("50.01", "bills")
	require.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestRemoveTransaction(t *testing.T) {
	c, l := newTestController(t)
	_, err := c.AddTransaction("10", "food")
	require.NoError(t, err)
	second, err := c.AddTransaction("20", "travel")
	require.NoError(t, err)

	removed, err := c.RemoveTransaction(1)
	require.NoError(t, err)
	assert.True(t, removed.Equal(second))
	assert.Equal(t, 3, l.updates)
	assert.Len(t, c.Model().Transactions(), 1)

	_, err = c.RemoveTransaction(5)
	require.ErrorIs(t, err, tracker.ErrInvalidArgument)
	_, err = c.RemoveTransaction(-1)
	require.ErrorIs(t, err, tracker.ErrInvalidArgument)
	assert.Equal(t, 3, l.updates)
}

func TestApplyAndClearFilter(t *testing.T) {
	c, l := newTestController(t)
	for _, in := range []struct{ amount, category string }{
		{"10", "food"}, {"300", "travel"}, {"15", "food"},
	} {
		_, err := c.AddTransaction(in.amount, in.category)
		require.NoError(t, err)
	}

	require.NoError(t, c.ApplyFilter(filter.CategoryFilter{Category: model.CategoryFood}))
	assert.Equal(t, []int{0, 2}, c.Model().MatchedFilterIndices())
	assert.Equal(t, 4, l.updates)

	c.ClearFilter()
	assert.Empty(t, c.Model().MatchedFilterIndices())
	assert.Equal(t, 5, l.updates)

	require.ErrorIs(t, c.ApplyFilter(nil), ErrNoFilter)
	assert.Equal(t, 5, l.updates)
}

func TestLoad(t *testing.T) {
	c, l := newTestController(t)
	txns := []model.Transaction{
		{Amount: decimal.NewFromInt(1), Category: model.CategoryOther, Timestamp: fixedNow},
		{Amount: decimal.NewFromInt(2), Category: model.CategoryBills, Timestamp: fixedNow},
	}

	require.NoError(t, c.Load(txns))
	assert.Equal(t, 1, l.updates, "bulk load notifies once")
	assert.Len(t, l.last, 2)
}

func TestImport_SkipsKnownReferences(t *testing.T) {
	c, l := newTestController(t)
	coffee := model.Transaction{Amount: decimal.RequireFromString("6.75"), Category: model.CategoryFood, Timestamp: fixedNow, Reference: "chase:2025-06-01:COFFEE:-6.75"}
	flight := model.Transaction{Amount: decimal.RequireFromString("412.30"), Category: model.CategoryTravel, Timestamp: fixedNow, Reference: "chase:2025-06-01:AIRLINES:-412.30"}
	manual := model.Transaction{Amount: decimal.RequireFromString("3"), Category: model.CategoryOther, Timestamp: fixedNow}

	added, err := c.Import([]model.Transaction{coffee, manual})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	added, err = c.Import([]model.Transaction{coffee, flight, flight, manual})
	require.NoError(t, err)
	assert.Equal(t, 2, added, "known and repeated references are skipped; unreferenced rows are kept")

	txns := c.Model().Transactions()
	require.Len(t, txns, 4)
	assert.True(t, txns[2].Equal(flight))
	assert.True(t, txns[3].Equal(manual))
	assert.Equal(t, 2, l.updates, "one notification per import")
}
