package exports

import (
	"context"
	"fmt"
	"io"

	"effix/frontend/shared/table"
	"effix/infrastructure/i18n"
	"effix/infrastructure/sqlite"
)

func (d Dataset[T]) PageName() string {
	return d.Name
}

// CSVPath is the download route under the page path.
func (d Dataset[T]) CSVPath() string {
	return d.Path + "/export.csv"
}

// Select loads every record and the subset matching q.
func (d Dataset[T]) Select(ctx context.Context, db *sqlite.DB, q table.Query) (all []T, filtered []T, err error) {
	all, err = d.Load(ctx, db)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", d.Name, err)
	}
	return all, table.Apply(all, d.Filter, q), nil
}

func (d Dataset[T]) WriteCSV(ctx context.Context, db *sqlite.DB, tr *i18n.Translator, q table.Query, w io.Writer) error {
	_, rows, err := d.Select(ctx, db, q)
	if err != nil {
		return err
	}
	return table.WriteCSV(w, tr, d.Columns(tr), rows)
}

func (d Dataset[T]) Terminal(ctx context.Context, db *sqlite.DB, tr *i18n.Translator, q table.Query) (string, error) {
	_, rows, err := d.Select(ctx, db, q)
	if err != nil {
		return "", err
	}
	return table.Terminal(tr, d.Columns(tr), rows, tr.IsRTL()), nil
}
