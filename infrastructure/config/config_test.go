package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "effix.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadReadsFile(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
  shutdown_timeout: 5s
locale:
  default: ar
currency:
  code: EUR
  symbol: "€"
log:
  level: debug
  development: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Server.Addr)
	require.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, "ar", cfg.Locale.Default)
	require.Equal(t, "en", cfg.Locale.NumberFormat)
	require.Equal(t, "EUR", cfg.Currency.Code)
	require.Equal(t, "€", cfg.Currency.Symbol)
	require.True(t, cfg.Log.Development)
	require.Equal(t, ":memory:", cfg.SQLite.Path)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":7070")
	t.Setenv("SQLITE_PATH", "/tmp/effix.db")
	t.Setenv("EFFIX_LANG", "ar")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.Server.Addr)
	require.Equal(t, "/tmp/effix.db", cfg.SQLite.Path)
	require.Equal(t, "ar", cfg.Locale.Default)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadNormalizesLocaleCase(t *testing.T) {
	t.Setenv("EFFIX_LANG", " EN ")
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "en", cfg.Locale.Default)

	path := writeConfig(t, "locale:\n  default: Ar\n")
	t.Setenv("EFFIX_LANG", "")
	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, "ar", cfg.Locale.Default)
}

func TestLoadRejectsUnknownCurrency(t *testing.T) {
	path := writeConfig(t, "currency:\n  code: XXQ\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsUnsupportedLocale(t *testing.T) {
	path := writeConfig(t, "locale:\n  default: fr\n")
	_, err := Load(path)
	require.ErrorContains(t, err, "not supported")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "server: [unclosed\n")
	_, err := Load(path)
	require.ErrorContains(t, err, "decode config")
}
