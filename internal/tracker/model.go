// Package tracker holds the observable in-memory state of the expense
// tracker: the transaction list, the indices matched by the last filter, and
// the listeners notified when that state changes.
package tracker

import (
	"errors"
	"fmt"

	"github.com/cleared-dev/expense-tracker/internal/model"
)

// ErrInvalidArgument is wrapped by every rejected Model call.
var ErrInvalidArgument = errors.New("invalid argument")

// Listener is notified by StateChanged. Implementations must be comparable
// (typically pointers) so that registration can detect duplicates.
type Listener interface {
	Update(m *Model)
}

// Model owns the transactions, matched filter indices and listeners. It is
// not safe for concurrent use. The zero value is ready to use.
type Model struct {
	transactions []model.Transaction
	matched      []int
	listeners    []Listener
}

// NewModel returns an empty Model.
func NewModel() *Model {
	return &Model{
		transactions: []model.Transaction{},
		matched:      []int{},
		listeners:    []Listener{},
	}
}

// AddTransaction appends t and clears the matched filter indices.
// Listeners are not notified; call StateChanged for that.
func (m *Model) AddTransaction(t *model.Transaction) error {
	if t == nil {
		return fmt.Errorf("%w: transaction must be non-nil", ErrInvalidArgument)
	}
	m.transactions = append(m.transactions, *t)
	m.matched = m.matched[:0]
	return nil
}

// RemoveTransaction removes the first transaction equal to t, if any. The
// matched filter indices are cleared either way.
func (m *Model) RemoveTransaction(t *model.Transaction) {
	if t != nil {
		for i, existing := range m.transactions {
			if existing.Equal(*t) {
				m.transactions = append(m.transactions[:i], m.transactions[i+1:]...)
				break
			}
		}
	}
	m.matched = m.matched[:0]
}

// Transactions returns a copy of the transaction list in insertion order.
func (m *Model) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(m.transactions))
	copy(out, m.transactions)
	return out
}

// SetMatchedFilterIndices replaces the matched filter indices with a copy of
// indices. Every index must address an existing transaction; on error the
// previous indices are kept.
func (m *Model) SetMatchedFilterIndices(indices []int) error {
	if indices == nil {
		return fmt.Errorf("%w: matched filter indices must be non-nil", ErrInvalidArgument)
	}
	for _, idx := range indices {
		if idx < 0 || idx > len(m.transactions)-1 {
			return fmt.Errorf("%w: matched filter index %d not in [0, %d)", ErrInvalidArgument, idx, len(m.transactions))
		}
	}
	m.matched = append(m.matched[:0], indices...)
	return nil
}

// MatchedFilterIndices returns a copy of the current matched filter indices.
func (m *Model) MatchedFilterIndices() []int {
	out := make([]int, len(m.matched))
	copy(out, m.matched)
	return out
}

// Register adds l to the listeners. It returns false if l is nil or already
// registered.
func (m *Model) Register(l Listener) bool {
	if l == nil || m.ContainsListener(l) {
		return false
	}
	m.listeners = append(m.listeners, l)
	return true
}

// NumberOfListeners returns how many listeners are registered.
func (m *Model) NumberOfListeners() int {
	if m.listeners == nil {
		return 0
	}
	return len(m.listeners)
}

// ContainsListener reports whether l is registered.
func (m *Model) ContainsListener(l Listener) bool {
	for _, registered := range m.listeners {
		if registered == l {
			return true
		}
	}
	return false
}

// StateChanged calls Update on every listener in registration order.
// A panicking listener stops the loop and the panic reaches the caller.
func (m *Model) StateChanged() {
	for _, l := range m.listeners {
		l.Update(m)
	}
}
