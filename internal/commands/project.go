package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/cleared-dev/expense-tracker/internal/config"
	"github.com/cleared-dev/expense-tracker/internal/controller"
	"github.com/cleared-dev/expense-tracker/internal/gitops"
	"github.com/cleared-dev/expense-tracker/internal/logging"
	"github.com/cleared-dev/expense-tracker/internal/store"
	"github.com/cleared-dev/expense-tracker/internal/tracker"
	"github.com/cleared-dev/expense-tracker/internal/view"
)

// project is an opened expense-tracker directory with its model loaded.
type project struct {
	dir   string
	cfg   *config.Config
	log   *logrus.Logger
	ctrl  *controller.Controller
	table *view.Table
}

func openProject(flags *globalFlags, stdout, stderr io.Writer) (*project, error) {
	dir, err := filepath.Abs(flags.dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("loading project (run init first?): %w", err)
	}

	level := cfg.Log.Level
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	log, err := logging.New(stderr, level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	limit, err := cfg.MaxAmount()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	p := &project{dir: dir, cfg: cfg, log: log}

	txns, err := store.Load(p.dataPath())
	if err != nil {
		return nil, err
	}

	m := tracker.NewModel()
	m.Register(logging.NewStateLogger(log))
	p.ctrl = controller.New(m, controller.WithMaxAmount(limit))
	if err := p.ctrl.Load(txns); err != nil {
		return nil, err
	}

	// Registered after loading so the table prints only for the command's own change.
	p.table = view.NewTable(stdout)
	m.Register(p.table)

	return p, nil
}

func (p *project) model() *tracker.Model {
	return p.ctrl.Model()
}

func (p *project) dataPath() string {
	return filepath.Join(p.dir, p.cfg.Data.TransactionsFile)
}

// save persists the transactions and, when enabled, commits them.
func (p *project) save(message string) error {
	if err := p.table.Err(); err != nil {
		return err
	}
	if err := store.Save(p.dataPath(), p.model().Transactions()); err != nil {
		return err
	}

	if !p.cfg.Git.AutoCommit || !gitops.IsRepo(p.dir) {
		return nil
	}
	author := gitops.Author{Name: p.cfg.Git.AuthorName, Email: p.cfg.Git.AuthorEmail}
	hash, err := gitops.Commit(p.dir, message, author, p.cfg.Data.TransactionsFile)
	if err != nil {
		return fmt.Errorf("committing transactions: %w", err)
	}
	if hash != "" {
		p.log.WithField("commit", hash).Info("Transactions committed")
	}
	return nil
}
