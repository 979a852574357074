// Package i18n holds the en/ar string tables and the locale-bound Translator
// that every view receives.
package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFiles embed.FS

// Locale is a supported UI language.
type Locale string

const (
	English Locale = "en"
	Arabic  Locale = "ar"
)

// Supported lists the locales in switcher order.
var Supported = []Locale{English, Arabic}

// ParseLocale accepts a supported locale code, case-insensitively.
func ParseLocale(s string) (Locale, bool) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, true
	case Arabic:
		return Arabic, true
	}
	return "", false
}

// DateLayout is the day-month-year layout used for every displayed date.
const DateLayout = "02-01-2006"

// Options configures number and currency rendering. Both are shared by all
// locales so switching language never changes how amounts read.
type Options struct {
	NumberFormat   string
	CurrencyCode   string
	CurrencySymbol string
}

// Catalog is the immutable set of string tables plus the shared number printer.
type Catalog struct {
	tables  map[Locale]map[string]string
	printer *message.Printer
	symbol  string
}

// LoadCatalog reads the embedded locale tables.
func LoadCatalog(opts Options) (*Catalog, error) {
	tag, err := language.Parse(defaultString(opts.NumberFormat, "en"))
	if err != nil {
		return nil, fmt.Errorf("parse number format %q: %w", opts.NumberFormat, err)
	}
	unit, err := currency.ParseISO(defaultString(opts.CurrencyCode, "USD"))
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", opts.CurrencyCode, err)
	}

	c := &Catalog{
		tables:  make(map[Locale]map[string]string, len(Supported)),
		printer: message.NewPrinter(tag),
		symbol:  opts.CurrencySymbol,
	}
	if c.symbol == "" {
		c.symbol = unit.String()
	}

	for _, loc := range Supported {
		raw, err := localeFiles.ReadFile("locales/" + string(loc) + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", loc, err)
		}
		table := map[string]string{}
		if err := yaml.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("decode locale %s: %w", loc, err)
		}
		c.tables[loc] = table
	}
	return c, nil
}

// Keys returns the sorted keys of one locale table.
func (c *Catalog) Keys(loc Locale) []string {
	keys := make([]string, 0, len(c.tables[loc]))
	for k := range c.tables[loc] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Translator returns the translator bound to loc. Unsupported locales fall back to English.
func (c *Catalog) Translator(loc Locale) *Translator {
	if _, ok := c.tables[loc]; !ok {
		loc = English
	}
	return &Translator{catalog: c, locale: loc}
}

// Translator renders labels for one locale.
type Translator struct {
	catalog *Catalog
	locale  Locale
}

func (t *Translator) Locale() Locale {
	return t.locale
}

// T returns the label for key, or key itself when the table has no entry.
func (t *Translator) T(key string) string {
	if v, ok := t.catalog.tables[t.locale][key]; ok && v != "" {
		return v
	}
	return key
}

// Tf formats the label for key with args.
func (t *Translator) Tf(key string, args ...any) string {
	return fmt.Sprintf(t.T(key), args...)
}

func (t *Translator) IsRTL() bool {
	return t.locale == Arabic
}

// Dir is the value of the html dir attribute.
func (t *Translator) Dir() string {
	if t.IsRTL() {
		return "rtl"
	}
	return "ltr"
}

// Number groups thousands with the configured number format.
func (t *Translator) Number(n int64) string {
	return t.catalog.printer.Sprint(number.Decimal(n))
}

// Money renders cents as symbol plus a two-decimal grouped amount.
func (t *Translator) Money(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	amount := float64(cents) / 100
	return sign + t.catalog.symbol + t.catalog.printer.Sprint(number.Decimal(amount, number.Scale(2)))
}

// MoneyThousands renders cents as thousands rounded half-up, e.g. $128K.
func (t *Translator) MoneyThousands(cents int64) string {
	thousands := (cents + 50_000) / 100_000
	return t.catalog.symbol + t.Number(thousands) + "K"
}

// Date renders d as day-month-year. Zero dates render blank.
func (t *Translator) Date(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
