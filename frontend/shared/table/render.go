package table

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Render draws records as an HTML table. emptyLabel is shown when there are no records.
func Render[T any](l Labeler, columns []Column[T], records []T, emptyLabel string) templ.Component {
	titles := Titles(l, columns)
	rows := Rows(records, columns)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="table-wrap"><table class="data-table"><thead><tr>`); err != nil {
			return err
		}
		for i, title := range titles {
			if _, err := fmt.Fprintf(w, `<th data-key="%s">%s</th>`, templ.EscapeString(columns[i].Key), templ.EscapeString(title)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tr></thead><tbody>`); err != nil {
			return err
		}
		if len(rows) == 0 {
			if _, err := fmt.Fprintf(w, `<tr class="empty"><td colspan="%d">%s</td></tr>`, len(columns), templ.EscapeString(emptyLabel)); err != nil {
				return err
			}
		}
		for _, row := range rows {
			if _, err := io.WriteString(w, `<tr>`); err != nil {
				return err
			}
			for _, cell := range row {
				if _, err := io.WriteString(w, `<td>`); err != nil {
					return err
				}
				if err := cell.Render(ctx, w); err != nil {
					return err
				}
				if _, err := io.WriteString(w, `</td>`); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</tr>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></div>`)
		return err
	})
}
