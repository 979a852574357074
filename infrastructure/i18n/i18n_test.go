package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := LoadCatalog(Options{NumberFormat: "en", CurrencyCode: "USD", CurrencySymbol: "$"})
	require.NoError(t, err)
	return c
}

func TestLocaleTablesHaveSameKeys(t *testing.T) {
	c := newCatalog(t)
	require.Equal(t, c.Keys(English), c.Keys(Arabic))
	require.NotEmpty(t, c.Keys(English))
}

func TestTranslateFallsBackToKey(t *testing.T) {
	c := newCatalog(t)
	en := c.Translator(English)
	require.Equal(t, "Leads", en.T("leads.title"))
	require.Equal(t, "missing.key", en.T("missing.key"))
	require.Equal(t, "missing.key", c.Translator(Arabic).T("missing.key"))
}

func TestArabicIsRightToLeft(t *testing.T) {
	c := newCatalog(t)
	ar := c.Translator(Arabic)
	require.True(t, ar.IsRTL())
	require.Equal(t, "rtl", ar.Dir())
	require.Equal(t, "العملاء", ar.T("customers.title"))

	en := c.Translator(English)
	require.False(t, en.IsRTL())
	require.Equal(t, "ltr", en.Dir())
}

func TestUnsupportedLocaleFallsBackToEnglish(t *testing.T) {
	c := newCatalog(t)
	require.Equal(t, English, c.Translator(Locale("fr")).Locale())
}

func TestParseLocale(t *testing.T) {
	loc, ok := ParseLocale(" AR ")
	require.True(t, ok)
	require.Equal(t, Arabic, loc)

	_, ok = ParseLocale("de")
	require.False(t, ok)
}

func TestMoneyDoesNotDependOnLocale(t *testing.T) {
	c := newCatalog(t)
	require.Equal(t, "$1,234.50", c.Translator(English).Money(123450))
	require.Equal(t, "$1,234.50", c.Translator(Arabic).Money(123450))
	require.Equal(t, "$0.00", c.Translator(English).Money(0))
	require.Equal(t, "-$9.05", c.Translator(English).Money(-905))
}

func TestNumberAndThousands(t *testing.T) {
	c := newCatalog(t)
	en := c.Translator(English)
	require.Equal(t, "12,800", en.Number(12800))
	require.Equal(t, "$128K", en.MoneyThousands(12_800_000))
	require.Equal(t, "$1K", en.MoneyThousands(50_000))
	require.Equal(t, "$128K", en.MoneyThousands(12_849_950))
	require.Equal(t, "$129K", en.MoneyThousands(12_850_000))
	require.Equal(t, "$0K", en.MoneyThousands(49_999))
}

func TestDate(t *testing.T) {
	c := newCatalog(t)
	en := c.Translator(English)
	require.Equal(t, "10-04-2025", en.Date(time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, "", en.Date(time.Time{}))
}

func TestTf(t *testing.T) {
	c := newCatalog(t)
	require.Equal(t, "60% completion rate", c.Translator(English).Tf("kpi.completion.rate", 60))
}

func TestLoadCatalogRejectsBadCurrency(t *testing.T) {
	_, err := LoadCatalog(Options{CurrencyCode: "NOPE"})
	require.Error(t, err)
}

func TestSymbolDefaultsToCurrencyCode(t *testing.T) {
	c, err := LoadCatalog(Options{CurrencyCode: "EUR"})
	require.NoError(t, err)
	require.Equal(t, "EUR1.00", c.Translator(English).Money(100))
}
