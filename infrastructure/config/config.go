// Package config loads the effix YAML configuration and applies environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"

	"effix/infrastructure/i18n"
)

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

type LocaleConfig struct {
	Default string `yaml:"default"`
	// NumberFormat is the locale used for digits and separators. It does not
	// follow the UI language.
	NumberFormat string `yaml:"number_format"`
}

type CurrencyConfig struct {
	Code   string `yaml:"code"`
	Symbol string `yaml:"symbol"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Locale   LocaleConfig   `yaml:"locale"`
	Currency CurrencyConfig `yaml:"currency"`
	Log      LogConfig      `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server:   ServerConfig{Addr: ":8080", ShutdownTimeout: 2 * time.Second},
		SQLite:   SQLiteConfig{Path: ":memory:"},
		Locale:   LocaleConfig{Default: "en", NumberFormat: "en"},
		Currency: CurrencyConfig{Code: "USD", Symbol: "$"},
		Log:      LogConfig{Level: "info"},
	}
}

// Load reads path on top of the defaults and applies environment overrides.
// An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("decode config %s: %w", path, err)
			}
		}
	}
	overrideFromEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	loc, _ := i18n.ParseLocale(cfg.Locale.Default)
	cfg.Locale.Default = string(loc)
	return cfg, nil
}

func overrideFromEnv(cfg *Config) {
	if addr := os.Getenv("APP_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if path := os.Getenv("SQLITE_PATH"); path != "" {
		cfg.SQLite.Path = path
	}
	if lang := os.Getenv("EFFIX_LANG"); lang != "" {
		cfg.Locale.Default = lang
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
}

// Validate checks the fields that have a closed set of values.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}
	if strings.TrimSpace(c.SQLite.Path) == "" {
		return fmt.Errorf("sqlite.path is required")
	}
	if _, ok := i18n.ParseLocale(c.Locale.Default); !ok {
		return fmt.Errorf("locale.default %q is not supported", c.Locale.Default)
	}
	if _, err := currency.ParseISO(c.Currency.Code); err != nil {
		return fmt.Errorf("currency.code %q: %w", c.Currency.Code, err)
	}
	return nil
}
