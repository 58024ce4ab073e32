package logging

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/cleared-dev/expense-tracker/internal/tracker"
)

var _ tracker.Listener = (*StateLogger)(nil)

// StateLogger is a tracker.Listener that logs a summary of every state change.
type StateLogger struct {
	log *logrus.Logger
}

// NewStateLogger returns a StateLogger writing to log at debug level.
func NewStateLogger(log *logrus.Logger) *StateLogger {
	return &StateLogger{log: log}
}

// Update logs the transaction count, the matched count and the total amount
// of m.
func (s *StateLogger) Update(m *tracker.Model) {
	txns := m.Transactions()
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(t.Amount)
	}
	s.log.WithFields(logrus.Fields{
		"transactions": len(txns),
		"matched":      len(m.MatchedFilterIndices()),
		"total":        total.StringFixed(2),
	}).Debug("Model.StateChanged")
}
