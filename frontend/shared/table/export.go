package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
)

// textColumns drops the columns that have no plain-text accessor.
func textColumns[T any](columns []Column[T]) []Column[T] {
	out := make([]Column[T], 0, len(columns))
	for _, c := range columns {
		if c.Text != nil {
			out = append(out, c)
		}
	}
	return out
}

func textRows[T any](columns []Column[T], records []T) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := make([]string, 0, len(columns))
		for _, c := range columns {
			row = append(row, c.Text(r))
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteCSV writes a header of translated titles and one line per record.
func WriteCSV[T any](w io.Writer, l Labeler, columns []Column[T], records []T) error {
	cols := textColumns(columns)
	cw := csv.NewWriter(w)
	if err := cw.Write(Titles(l, cols)); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range textRows(cols, records) {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Terminal renders records as a bordered terminal table. Right-to-left
// layouts reverse the column order.
func Terminal[T any](l Labeler, columns []Column[T], records []T, rtl bool) string {
	cols := textColumns(columns)
	headers := Titles(l, cols)
	rows := textRows(cols, records)
	align := lipgloss.Left
	if rtl {
		headers = reversed(headers)
		for i := range rows {
			rows[i] = reversed(rows[i])
		}
		align = lipgloss.Right
	}

	t := lgtable.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle.Align(align)
			}
			return cellStyle.Align(align)
		})
	return strings.TrimRight(t.String(), "\n") + "\n"
}

func reversed(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[len(in)-1-i] = s
	}
	return out
}
