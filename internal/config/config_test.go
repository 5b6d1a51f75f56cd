package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 40, cfg.Report.TopTransactions)
	assert.Equal(t, 10, cfg.Report.TopRevenueExpense)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logging:
  level: debug
  output: file
  file_path: out/run.log
report:
  clearly_trivial: 500000
  performance_materiality: 12000000
  top_transactions: 25
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "file", cfg.Logging.Output)
	assert.Equal(t, "out/run.log", cfg.Logging.FilePath)
	assert.Equal(t, 500000.0, cfg.Report.ClearlyTrivial)
	assert.Equal(t, 12000000.0, cfg.Report.PerformanceMateriality)
	assert.Equal(t, 25, cfg.Report.TopTransactions)
	// untouched fields keep their defaults
	assert.Equal(t, 10, cfg.Report.TopRevenueExpense)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0644))

	t.Setenv("JET_LOGGING_LEVEL", "error")
	t.Setenv("JET_REPORT_TOP_TRANSACTIONS", "15")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, 15, cfg.Report.TopTransactions)
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad log level", "logging:\n  level: loud\n"},
		{"negative threshold", "report:\n  clearly_trivial: -1\n"},
		{"zero top n", "report:\n  top_transactions: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [not a map"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
