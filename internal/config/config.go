// Package config loads the application configuration from defaults, an
// optional YAML file and JET_* environment variables, in that order of
// increasing precedence.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
}

// LoggingConfig contains logging configuration. Defaults come from
// Default(), not from envconfig tags, so env processing never clobbers
// values set by the YAML file.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// ReportConfig contains the analytic parameters of a run.
type ReportConfig struct {
	// ClearlyTrivial is the CTT threshold used by the materiality bands.
	ClearlyTrivial float64 `yaml:"clearly_trivial" envconfig:"CLEARLY_TRIVIAL" validate:"gte=0"`
	// PerformanceMateriality is the PM threshold used by the materiality bands.
	PerformanceMateriality float64 `yaml:"performance_materiality" envconfig:"PERFORMANCE_MATERIALITY" validate:"gte=0"`
	// TopTransactions is the row cap of the top-transactions listing.
	TopTransactions int `yaml:"top_transactions" envconfig:"TOP_TRANSACTIONS" validate:"gte=1"`
	// TopRevenueExpense is the row cap of the revenue and expense listings.
	TopRevenueExpense int `yaml:"top_revenue_expense" envconfig:"TOP_REVENUE_EXPENSE" validate:"gte=1"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
	LogsDir   string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/jetaudit.log",
		},
		Report: ReportConfig{
			TopTransactions:   40,
			TopRevenueExpense: 10,
		},
		Paths: PathsConfig{
			OutputDir: ".",
			LogsDir:   "logs",
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path if
// it exists, then JET_* environment variables. An empty path skips the
// file step entirely.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process("JET", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
