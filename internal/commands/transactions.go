package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/expense-tracker/internal/filter"
	"github.com/cleared-dev/expense-tracker/internal/logging"
	"github.com/cleared-dev/expense-tracker/internal/view"
)

func newAddCommand(flags *globalFlags) *cobra.Command {
	var amount, category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return logging.Wrap(p.log, "add", func() error {
				txn, err := p.ctrl.AddTransaction(amount, category)
				if err != nil {
					return err
				}
				return p.save(fmt.Sprintf("add: %s %s", txn.Category, txn.Amount.StringFixed(2)))
			})
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "expense amount (required)")
	cmd.Flags().StringVar(&category, "category", "", "food, travel, bills, entertainment or other (required)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newRemoveCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <index>",
		Short: "Remove the expense at a list position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing index %q: %w", args[0], err)
			}
			p, err := openProject(flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return logging.Wrap(p.log, "remove", func() error {
				txn, err := p.ctrl.RemoveTransaction(index)
				if err != nil {
					return err
				}
				return p.save(fmt.Sprintf("remove: %s %s", txn.Category, txn.Amount.StringFixed(2)))
			})
		},
	}
}

func newListCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return logging.Wrap(p.log, "list", func() error {
				return view.Render(cmd.OutOrStdout(), p.model())
			})
		},
	}
}

func newFilterCommand(flags *globalFlags) *cobra.Command {
	var category, minAmount, maxAmount string

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Show all expenses, marking those that match with '*'",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := filter.FromFlags(category, minAmount, maxAmount)
			if err != nil {
				return err
			}
			if f == nil {
				return fmt.Errorf("at least one of --category, --min or --max is required")
			}
			p, err := openProject(flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return logging.Wrap(p.log, "filter", func() error {
				if err := p.ctrl.ApplyFilter(f); err != nil {
					return err
				}
				return p.table.Err()
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "match this category")
	cmd.Flags().StringVar(&minAmount, "min", "", "match amounts of at least this value")
	cmd.Flags().StringVar(&maxAmount, "max", "", "match amounts of at most this value")

	return cmd
}
