package exports

import (
	"context"
	"io"

	"effix/frontend/shared/table"
	"effix/infrastructure/i18n"
	"effix/infrastructure/sqlite"
)

// Dataset binds one record type to its loader, search predicate and columns.
type Dataset[T any] struct {
	Name    string
	Path    string
	Load    func(ctx context.Context, db *sqlite.DB) ([]T, error)
	Filter  table.Filter[T]
	Columns func(tr *i18n.Translator) []table.Column[T]
}

// Exporter is the type-erased view of a Dataset used by the CLI.
type Exporter interface {
	PageName() string
	CSVPath() string
	WriteCSV(ctx context.Context, db *sqlite.DB, tr *i18n.Translator, q table.Query, w io.Writer) error
	Terminal(ctx context.Context, db *sqlite.DB, tr *i18n.Translator, q table.Query) (string, error)
}
