// Package view renders the tracker state for a terminal.
package view

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/expense-tracker/internal/tracker"
)

const timestampFormat = "2006-01-02 15:04"

var _ tracker.Listener = (*Table)(nil)

// Table is a tracker.Listener that prints the transaction list on every
// update. Rows matched by the current filter are marked with '*'.
type Table struct {
	out io.Writer
	err error
}

// NewTable returns a Table writing to out.
func NewTable(out io.Writer) *Table {
	return &Table{out: out}
}

// Err returns the first write error encountered by Update, if any.
func (t *Table) Err() error {
	return t.err
}

// Update renders m.
func (t *Table) Update(m *tracker.Model) {
	if err := Render(t.out, m); err != nil && t.err == nil {
		t.err = err
	}
}

// Render writes the transaction table for m to w.
func Render(w io.Writer, m *tracker.Model) error {
	txns := m.Transactions()
	matched := make(map[int]bool)
	for _, idx := range m.MatchedFilterIndices() {
		matched[idx] = true
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, " \t#\tDate\tCategory\tAmount\t")

	total := decimal.Zero
	for i, txn := range txns {
		mark := ""
		if matched[i] {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t\n", mark, i, txn.Timestamp.Format(timestampFormat), txn.Category, txn.Amount.StringFixed(2))
		total = total.Add(txn.Amount)
	}
	fmt.Fprintf(tw, " \t\t\tTotal\t%s\t\n", total.StringFixed(2))

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	return nil
}
