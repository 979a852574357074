// Package pagetest has helpers for page handler tests.
package pagetest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	sharedcontext "effix/frontend/shared/context"
	"effix/infrastructure/fixtures"
	"effix/infrastructure/i18n"
	"effix/infrastructure/navigation"
	"effix/infrastructure/sqlite"
)

// DB returns a seeded in-memory database closed at test cleanup.
func DB(t testing.TB) *sqlite.DB {
	t.Helper()
	db, _, err := fixtures.Open(context.Background(), sqlite.MemoryPath)
	if err != nil {
		t.Fatalf("open fixtures db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// Catalog loads the string tables with USD amounts.
func Catalog(t testing.TB) *i18n.Catalog {
	t.Helper()
	c, err := i18n.LoadCatalog(i18n.Options{NumberFormat: "en", CurrencyCode: "USD", CurrencySymbol: "$"})
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c
}

// Translator is a shortcut for Catalog(t).Translator(loc).
func Translator(t testing.TB, loc i18n.Locale) *i18n.Translator {
	t.Helper()
	return Catalog(t).Translator(loc)
}

// Registry returns a registry with one entry per page path.
func Registry(paths ...string) *navigation.Registry {
	reg := navigation.New()
	for _, p := range paths {
		reg.Add(navigation.Entry{Code: p, LabelKey: p, Path: p, Section: navigation.SectionMain})
	}
	return reg
}

// Request builds a request whose context carries a translator for loc.
func Request(t testing.TB, method, target string, body io.Reader, loc i18n.Locale) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(sharedcontext.NewContextWithTranslator(req.Context(), Translator(t, loc)))
}

// Serve runs h against req and returns the recorder.
func Serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
