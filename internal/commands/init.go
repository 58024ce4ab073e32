package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/expense-tracker/internal/config"
	"github.com/cleared-dev/expense-tracker/internal/gitops"
	"github.com/cleared-dev/expense-tracker/internal/model"
	"github.com/cleared-dev/expense-tracker/internal/store"
)

func newInitCommand() *cobra.Command {
	var useGit bool
	var maxAmount string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new expense-tracker project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(absDir, maxAmount, useGit); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized expense-tracker project at %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().BoolVar(&useGit, "git", false, "initialize a git repository and commit every change")
	cmd.Flags().StringVar(&maxAmount, "max-amount", "", "largest accepted expense (default 1000)")

	return cmd
}

func runInit(dir, maxAmount string, useGit bool) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking config: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	cfg := config.Default()
	if maxAmount != "" {
		cfg.Validation.MaxAmount = maxAmount
		if _, err := cfg.MaxAmount(); err != nil {
			return err
		}
	}
	cfg.Git.AutoCommit = useGit
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	dataFile := cfg.Data.TransactionsFile
	if err := store.Save(filepath.Join(dir, dataFile), []model.Transaction{}); err != nil {
		return fmt.Errorf("writing transactions: %w", err)
	}

	if !useGit {
		return nil
	}
	if !gitops.IsRepo(dir) {
		if err := gitops.Init(dir); err != nil {
			return err
		}
	}
	author := gitops.Author{Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
	if _, err := gitops.Commit(dir, "init: expense-tracker project", author, config.FileName, dataFile); err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}
	return nil
}
