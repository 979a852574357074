package html

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"effix/frontend/shared/table"
	"effix/infrastructure/i18n"
)

// Button is a page header action. A ModalID opens that dialog; otherwise Href is followed.
type Button struct {
	Label   string
	Href    string
	ModalID string
	Primary bool
}

// PageHeader renders the page title and its action buttons.
func PageHeader(title string, buttons ...Button) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w, `<div class="page-header"><h1>`, esc(title), `</h1><div class="page-actions">`); err != nil {
			return err
		}
		for _, b := range buttons {
			class := "btn btn-outline"
			if b.Primary {
				class = "btn btn-primary"
			}
			var err error
			switch {
			case b.ModalID != "":
				err = writeAll(w, `<button type="button" class="`, class, `" onclick="document.getElementById('`, esc(b.ModalID), `').showModal()">`, esc(b.Label), `</button>`)
			case b.Href != "":
				err = writeAll(w, `<a class="`, class, `" href="`, esc(b.Href), `">`, esc(b.Label), `</a>`)
			default:
				err = writeAll(w, `<button type="button" class="`, class, `">`, esc(b.Label), `</button>`)
			}
			if err != nil {
				return err
			}
		}
		return writeAll(w, `</div></div>`)
	})
}

// Toolbar renders the search box and status select as a GET form on action.
func Toolbar(tr *i18n.Translator, action string, q table.Query, statuses []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w,
			`<form class="toolbar" method="get" action="`, esc(action), `">`,
			`<input type="search" name="q" value="`, esc(q.Text), `" placeholder="`, esc(tr.T("search.placeholder")), `">`,
			`<select name="status" onchange="this.form.submit()">`,
		); err != nil {
			return err
		}
		options := append([]string{table.AllStatuses}, statuses...)
		for _, s := range options {
			label := StatusLabel(tr, s)
			if s == table.AllStatuses {
				label = tr.T("filter.all.status")
			}
			selected := ""
			if s == q.Status || (s == table.AllStatuses && q.AllStatus()) {
				selected = " selected"
			}
			if err := writeAll(w, `<option value="`, esc(s), `"`, selected, `>`, esc(label), `</option>`); err != nil {
				return err
			}
		}
		return writeAll(w,
			`</select><button type="submit" class="btn btn-outline">`, esc(tr.T("button.search")), `</button></form>`,
		)
	})
}

// ExportHref links the CSV export of page with the same query.
func ExportHref(pagePath string, q table.Query) string {
	href := pagePath + "/export.csv"
	if enc := q.Values().Encode(); enc != "" {
		href += "?" + enc
	}
	return href
}
