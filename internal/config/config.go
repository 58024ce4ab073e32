package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up in the project dir.
const FileName = "expense-tracker.yaml"

// Config represents the top-level expense-tracker.yaml configuration.
type Config struct {
	Data       DataConfig       `yaml:"data"`
	Validation ValidationConfig `yaml:"validation"`
	Log        LogConfig        `yaml:"log"`
	Git        GitConfig        `yaml:"git"`
}

// DataConfig locates the transactions file, relative to the project dir.
type DataConfig struct {
	TransactionsFile string `yaml:"transactions_file"`
}

// ValidationConfig bounds user-entered amounts.
type ValidationConfig struct {
	MaxAmount string `yaml:"max_amount"` // decimal string, e.g. "1000"
}

// LogConfig controls logger output.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// MaxAmount parses Validation.MaxAmount.
func (c *Config) MaxAmount() (decimal.Decimal, error) {
	limit, err := decimal.NewFromString(c.Validation.MaxAmount)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing max_amount %q: %w", c.Validation.MaxAmount, err)
	}
	if !limit.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("max_amount %s must be positive", limit)
	}
	return limit, nil
}

// Load reads an expense-tracker.yaml file from disk. Missing keys keep
// their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			TransactionsFile: "transactions.csv",
		},
		Validation: ValidationConfig{
			MaxAmount: "1000",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Expense Tracker",
			AuthorEmail: "tracker@expense-tracker.local",
		},
	}
}
