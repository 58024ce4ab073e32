// Package controller turns user intent into Model mutations followed by a
// single state-change notification.
package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/expense-tracker/internal/filter"
	"github.com/cleared-dev/expense-tracker/internal/model"
	"github.com/cleared-dev/expense-tracker/internal/tracker"
)

// ErrNoFilter is returned by ApplyFilter when given a nil filter.
var ErrNoFilter = errors.New("no filter given")

// Controller validates user input and drives a tracker.Model.
type Controller struct {
	model     *tracker.Model
	maxAmount decimal.Decimal
	now       func() time.Time
}

// Option customizes a Controller.
type Option func(*Controller)

// WithMaxAmount overrides the largest accepted expense.
func WithMaxAmount(limit decimal.Decimal) Option {
	return func(c *Controller) { c.maxAmount = limit }
}

// WithClock sets the source of transaction timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New creates a Controller over m.
func New(m *tracker.Model, opts ...Option) *Controller {
	c := &Controller{
		model:     m,
		maxAmount: model.DefaultMaxAmount,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the controlled model.
func (c *Controller) Model() *tracker.Model {
	return c.model
}

// Load adds txns in order and notifies listeners once.
func (c *Controller) Load(txns []model.Transaction) error {
	for i := range txns {
		if err := c.model.AddTransaction(&txns[i]); err != nil {
			return fmt.Errorf("loading transaction %d: %w", i, err)
		}
	}
	c.model.StateChanged()
	return nil
}

// Import adds the txns whose Reference is not already recorded, in order,
// and notifies listeners once. Transactions without a Reference are always
// added. It returns how many were added.
func (c *Controller) Import(txns []model.Transaction) (int, error) {
	seen := make(map[string]bool)
	for _, t := range c.model.Transactions() {
		if t.Reference != "" {
			seen[t.Reference] = true
		}
	}

	added := 0
	for i := range txns {
		ref := txns[i].Reference
		if ref != "" && seen[ref] {
			continue
		}
		if err := c.model.AddTransaction(&txns[i]); err != nil {
			return added, fmt.Errorf("importing transaction %d: %w", i, err)
		}
		if ref != "" {
			seen[ref] = true
		}
		added++
	}
	c.model.StateChanged()
	return added, nil
}

// AddTransaction validates amount and category, records a new transaction
// stamped with the current time, and notifies listeners.
func (c *Controller) AddTransaction(amount, category string) (model.Transaction, error) {
	amt, err := model.ParseAmount(amount, c.maxAmount)
	if err != nil {
		return model.Transaction{}, err
	}
	cat, err := model.ParseCategory(category)
	if err != nil {
		return model.Transaction{}, err
	}

	t := model.Transaction{Amount: amt, Category: cat, Timestamp: c.now()}
	if err := c.model.AddTransaction(&t); err != nil {
		return model.Transaction{}, err
	}
	c.model.StateChanged()
	return t, nil
}

// RemoveTransaction removes the transaction at index and notifies listeners.
func (c *Controller) RemoveTransaction(index int) (model.Transaction, error) {
	txns := c.model.Transactions()
	if index < 0 || index >= len(txns) {
		return model.Transaction{}, fmt.Errorf("%w: no transaction at index %d", tracker.ErrInvalidArgument, index)
	}
	removed := txns[index]
	c.model.RemoveTransaction(&removed)
	c.model.StateChanged()
	return removed, nil
}

// ApplyFilter stores the positions matched by f and notifies listeners.
func (c *Controller) ApplyFilter(f filter.Filter) error {
	if f == nil {
		return ErrNoFilter
	}
	indices := filter.Apply(f, c.model.Transactions())
	if err := c.model.SetMatchedFilterIndices(indices); err != nil {
		return fmt.Errorf("applying filter: %w", err)
	}
	c.model.StateChanged()
	return nil
}

// ClearFilter drops the matched indices and notifies listeners.
func (c *Controller) ClearFilter() {
	// An empty slice always passes index validation.
	_ = c.model.SetMatchedFilterIndices([]int{})
	c.model.StateChanged()
}
