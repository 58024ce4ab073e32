package commands

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/expense-tracker/internal/importer"
	"github.com/cleared-dev/expense-tracker/internal/logging"
	"github.com/cleared-dev/expense-tracker/internal/model"
)

func newImportCommand(flags *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file-or-directory>",
		Short: "Import the debits of bank CSV exports as expenses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return logging.Wrap(p.log, "import", func() error {
				return runImport(p, args[0], format)
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "chase", "bank export format")

	return cmd
}

func runImport(p *project, path, format string) error {
	files := []string{path}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading import path: %w", err)
	}
	if info.IsDir() {
		if files, err = importer.Scan(path); err != nil {
			return err
		}
	}

	registry := importer.DefaultRegistry()
	var imported []model.Transaction
	for _, file := range files {
		txns, err := registry.ImportFile(file, format)
		if err != nil {
			return err
		}
		imported = append(imported, txns...)
	}

	added, err := p.ctrl.Import(imported)
	if err != nil {
		return err
	}

	p.log.WithFields(logrus.Fields{
		"files":   len(files),
		"rows":    len(imported),
		"added":   added,
		"skipped": len(imported) - added,
	}).Info("Import finished")
	if added == 0 {
		return nil
	}
	return p.save(fmt.Sprintf("import: %d transactions from %d files", added, len(files)))
}
