package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs", "config.toml")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = os.Stat(path)
	require.NoError(t, err, "default config should be written to disk")

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestLoadConfigFillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[output]
path = "out/fixtures.xlsx"

[generate]
seed = 42
account_count = 7
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "out/fixtures.xlsx", cfg.Output.Path)
	assert.Equal(t, DefaultTableStyle, cfg.Output.TableStyle)
	assert.Equal(t, uint64(42), cfg.Generate.Seed)
	assert.Equal(t, 7, cfg.Generate.AccountCount)
	assert.Equal(t, DefaultAllocationCount, cfg.Generate.AllocationCount)
	assert.Equal(t, DefaultDateStart, cfg.Generate.DateStart)
	assert.Equal(t, DefaultDateSpanDays, cfg.Generate.DateSpanDays)
	assert.Equal(t, DefaultRowsPerPage, cfg.UI.RowsPerPage)
}

func TestLoadConfigRejectsBadDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[generate]\ndate_start = \"01/02/2026\"\n"), 0644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "invalid date_start")
}

func TestStartDate(t *testing.T) {
	start, err := Default().Generate.StartDate()
	require.NoError(t, err)
	assert.Equal(t, 2026, start.Year())
	assert.Equal(t, 1, int(start.Month()))
	assert.Equal(t, 1, start.Day())
}
