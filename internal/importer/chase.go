package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/expense-tracker/internal/model"
)

// ChaseParser parses Chase bank checking CSV exports. Columns are located by
// header name, so reordered or extra columns are tolerated.
type ChaseParser struct{}

const chaseDateFormat = "01/02/2006"

var chaseRequired = []string{"posting date", "description", "amount"}

type chaseColumns struct {
	date, desc, amount int
}

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Parse reads a Chase CSV and returns BankTransactions. Each row gets a
// reference built from its date, description and amount; repeats of an
// identical row within the file are numbered so every row stays distinct.
func (p *ChaseParser) Parse(r io.Reader) ([]model.BankTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 0

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chase CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	cols, err := chaseHeader(records[0])
	if err != nil {
		return nil, err
	}

	var txns []model.BankTransaction
	seen := make(map[string]int)
	for i, rec := range records[1:] {
		txn, err := cols.parse(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		seen[txn.Reference]++
		if n := seen[txn.Reference]; n > 1 {
			txn.Reference = fmt.Sprintf("%s#%d", txn.Reference, n)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func chaseHeader(header []string) (chaseColumns, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range chaseRequired {
		if _, ok := index[name]; !ok {
			return chaseColumns{}, fmt.Errorf("chase CSV header missing %q column", name)
		}
	}
	return chaseColumns{
		date:   index["posting date"],
		desc:   index["description"],
		amount: index["amount"],
	}, nil
}

func (c chaseColumns) parse(rec []string) (model.BankTransaction, error) {
	date, err := time.Parse(chaseDateFormat, strings.TrimSpace(rec[c.date]))
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing date %q: %w", rec[c.date], err)
	}

	// Exports opened in a spreadsheet come back with "$1,234.00" amounts.
	raw := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(rec[c.amount]))
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing amount %q: %w", rec[c.amount], err)
	}

	desc := strings.Join(strings.Fields(rec[c.desc]), " ")
	return model.BankTransaction{
		Date:        date,
		Description: desc,
		Amount:      amount,
		Reference:   fmt.Sprintf("chase:%s:%s:%s", date.Format("2006-01-02"), strings.ToUpper(desc), amount.StringFixed(2)),
	}, nil
}
