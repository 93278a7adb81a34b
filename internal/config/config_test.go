package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "xlsx", cfg.RateSource)
	assert.Equal(t, "RATEEXPIDR", cfg.RateSheet)
	assert.Equal(t, "IDR", cfg.BaseCurrency)
	assert.Equal(t, "USD", cfg.TargetCurrency)
	assert.True(t, cfg.EnableLogging)
	assert.Empty(t, cfg.Origins())
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Zero(t, cfg.SourceOptions().SnapshotTTL)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	content := "PORT=9090\nRATE_SOURCE=sql\nDATABASE_URL=rates.db\nREDIS_SNAPSHOT_TTL=30m\nALLOW_ORIGINS=http://a.test, http://b.test\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.env"), []byte(content), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "sql", cfg.RateSource)
	assert.Equal(t, "rates.db", cfg.SourceOptions().DatabaseURL)
	assert.Equal(t, 30*time.Minute, cfg.SourceOptions().SnapshotTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Origins())
}

func TestLoadConfig_EnvironmentWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.env"), []byte("RATE_SHEET=FROMFILE\n"), 0o644))
	t.Setenv("RATE_SHEET", "FROMENV")
	t.Setenv("ENABLE_LOGGING", "false")
	t.Setenv("RATE_FILE", "/data/rates.xlsx")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "FROMENV", cfg.RateSheet)
	assert.False(t, cfg.EnableLogging)

	opts := cfg.SourceOptions()
	assert.Equal(t, "FROMENV", opts.Sheet)
	assert.Equal(t, "/data/rates.xlsx", opts.File)
}
