package html

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/a-h/templ"

	"effix/infrastructure/i18n"
)

// Initials takes the first letter of every word in name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return b.String()
}

// FirstLetter returns the first rune of s.
func FirstLetter(s string) string {
	r, size := utf8.DecodeRuneInString(strings.TrimSpace(s))
	if size == 0 {
		return ""
	}
	return string(r)
}

// Stacked renders a bold first line with muted lines below it.
func Stacked(primary string, secondary ...string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeStacked(w, "", primary, secondary)
	})
}

// StackedClass is Stacked with an extra class on the secondary lines.
func StackedClass(class, primary string, secondary ...string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeStacked(w, class, primary, secondary)
	})
}

func writeStacked(w io.Writer, class, primary string, secondary []string) error {
	if err := writeAll(w, `<div class="stacked"><div class="primary">`, esc(primary), `</div>`); err != nil {
		return err
	}
	for _, s := range secondary {
		if err := writeAll(w, `<div class="secondary `, esc(class), `">`, esc(s), `</div>`); err != nil {
			return err
		}
	}
	return writeAll(w, `</div>`)
}

// Avatar renders an initials circle next to a stacked cell.
func Avatar(initials, style string, primary string, secondary ...string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w,
			`<div class="avatar-cell"><span class="avatar avatar-`, esc(style), `">`, esc(initials), `</span>`,
		); err != nil {
			return err
		}
		if err := writeStacked(w, "", primary, secondary); err != nil {
			return err
		}
		return writeAll(w, `</div>`)
	})
}

// AvatarGroup renders up to limit initials circles and a +N counter for the rest.
func AvatarGroup(initials []string, limit int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w, `<div class="avatar-group">`); err != nil {
			return err
		}
		shown := initials
		if limit > 0 && len(shown) > limit {
			shown = shown[:limit]
		}
		for _, in := range shown {
			if err := writeAll(w, `<span class="avatar avatar-sm">`, esc(in), `</span>`); err != nil {
				return err
			}
		}
		if rest := len(initials) - len(shown); rest > 0 {
			if err := writeAll(w, `<span class="avatar-more">+`, fmt.Sprint(rest), `</span>`); err != nil {
				return err
			}
		}
		return writeAll(w, `</div>`)
	})
}

// Progress renders a percentage bar. Values are clamped to 0..100.
func Progress(percent int) templ.Component {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := fmt.Sprint(percent)
		return writeAll(w,
			`<div class="progress"><span class="progress-label">`, p, `%</span>`,
			`<div class="progress-track"><div class="progress-bar" style="width: `, p, `%"></div></div></div>`,
		)
	})
}

// Emphasis renders text with a highlight class, e.g. amounts.
func Emphasis(class, text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeAll(w, `<span class="`, esc(class), `">`, esc(text), `</span>`)
	})
}

// MenuLink is one entry of an actions menu.
type MenuLink struct {
	Label  string
	Href   string
	Danger bool
}

// ActionsMenu renders a details/summary dropdown. The default entries are
// view details, edit and delete; extra links come first.
func ActionsMenu(tr *i18n.Translator, extra ...MenuLink) templ.Component {
	links := append([]MenuLink{}, extra...)
	links = append(links,
		MenuLink{Label: tr.T("button.view.details")},
		MenuLink{Label: tr.T("button.edit")},
		MenuLink{Label: tr.T("button.delete"), Danger: true},
	)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w, `<details class="actions-menu"><summary aria-label="`, esc(tr.T("table.actions")), `">&#8943;</summary><ul>`); err != nil {
			return err
		}
		for _, l := range links {
			class := ""
			if l.Danger {
				class = ` class="danger"`
			}
			if l.Href == "" {
				if err := writeAll(w, `<li`, class, `><button type="button">`, esc(l.Label), `</button></li>`); err != nil {
					return err
				}
				continue
			}
			if err := writeAll(w, `<li`, class, `><a href="`, esc(l.Href), `">`, esc(l.Label), `</a></li>`); err != nil {
				return err
			}
		}
		return writeAll(w, `</ul></details>`)
	})
}
