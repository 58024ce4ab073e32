// Package store persists the transaction list as a CSV file.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cleared-dev/expense-tracker/internal/model"
)

// Load reads transactions from path. A missing file yields an empty list.
func Load(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening transactions %s: %w", path, err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading transactions %s: %w", path, err)
	}
	return txns, nil
}

// Save writes txns to path, replacing any previous contents. The file is
// written beside path and renamed into place, so a failed write leaves the
// previous contents intact.
func Save(path string, txns []model.Transaction) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating transactions file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := WriteTransactions(tmp, txns); err != nil {
		return fmt.Errorf("writing transactions: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("writing transactions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing transactions file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing transactions file: %w", err)
	}
	return nil
}
