package table

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Labeler translates column title keys.
type Labeler interface {
	T(key string) string
}

// Column describes one table column for records of type T.
type Column[T any] struct {
	Key string
	// Title is a translation key.
	Title string
	// Text is the plain value used for the default cell and for exports.
	Text func(T) string
	// Render overrides the HTML cell.
	Render func(T) templ.Component
}

// Cell returns the HTML cell for record. Columns without accessors render empty.
func (c Column[T]) Cell(record T) templ.Component {
	switch {
	case c.Render != nil:
		return c.Render(record)
	case c.Text != nil:
		return Text(c.Text(record))
	default:
		return Empty
	}
}

// Rows lays records out as cells, one row per record in input order.
func Rows[T any](records []T, columns []Column[T]) [][]templ.Component {
	rows := make([][]templ.Component, 0, len(records))
	for _, r := range records {
		row := make([]templ.Component, 0, len(columns))
		for _, c := range columns {
			row = append(row, c.Cell(r))
		}
		rows = append(rows, row)
	}
	return rows
}

// Titles translates the column titles.
func Titles[T any](l Labeler, columns []Column[T]) []string {
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		out = append(out, l.T(c.Title))
	}
	return out
}

// Text renders escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Empty renders nothing.
var Empty templ.Component = templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
	return nil
})
