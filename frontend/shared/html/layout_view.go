package html

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"effix/frontend/shared/nav"
	"effix/infrastructure/i18n"
)

// ShellData is everything the page chrome needs around a page body.
type ShellData struct {
	Title   string
	Flash   string
	Sidebar nav.SidebarData
	TopNav  nav.TopNavData
}

// Layout wraps body in the document, sidebar and header. Direction follows tr.
func Layout(tr *i18n.Translator, data ShellData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w,
			`<!doctype html><html lang="`, string(tr.Locale()), `" dir="`, tr.Dir(), `"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`, esc(data.Title), ` | `, esc(tr.T("app.name")), `</title>`,
			`<link rel="stylesheet" href="/assets/app.css"></head>`,
			`<body class="`, tr.Dir(), `"><div class="shell">`,
		); err != nil {
			return err
		}
		if err := writeSidebar(w, data.Sidebar); err != nil {
			return err
		}
		if err := writeAll(w, `<div class="content">`); err != nil {
			return err
		}
		if err := writeHeader(w, tr, data.TopNav); err != nil {
			return err
		}
		if err := writeAll(w, `<main class="page">`); err != nil {
			return err
		}
		if data.Flash != "" {
			if err := writeAll(w, `<div class="flash" role="status">`, esc(data.Flash), `</div>`); err != nil {
				return err
			}
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		return writeAll(w, `</main></div></div>`, CSRFFormScript(), `</body></html>`)
	})
}

func writeSidebar(w io.Writer, data nav.SidebarData) error {
	if err := writeAll(w, `<aside class="sidebar"><a class="brand" href="/">effix</a>`); err != nil {
		return err
	}
	for _, section := range data.Sections {
		if err := writeAll(w, `<nav><p class="sidebar-title">`, esc(section.Title), `</p><ul>`); err != nil {
			return err
		}
		for _, item := range section.Items {
			class := ""
			current := ""
			if item.Active {
				class = ` class="active"`
				current = ` aria-current="page"`
			}
			if err := writeAll(w,
				`<li`, class, `><a href="`, esc(item.Path), `"`, current, `><span class="icon icon-`, esc(item.Icon), `"></span>`,
				esc(item.Label), `</a></li>`,
			); err != nil {
				return err
			}
		}
		if err := writeAll(w, `</ul></nav>`); err != nil {
			return err
		}
	}
	return writeAll(w,
		`<div class="upgrade"><p class="upgrade-title">`, esc(data.UpgradeTitle), `</p>`,
		`<p>`, esc(data.UpgradeBody), `</p><button type="button" class="btn btn-primary">`, esc(data.UpgradeCTA), `</button></div>`,
		`</aside>`,
	)
}

func writeHeader(w io.Writer, tr *i18n.Translator, data nav.TopNavData) error {
	if err := writeAll(w,
		`<header class="topbar"><form class="global-search" method="get" action="/leads">`,
		`<input type="search" name="q" placeholder="`, esc(tr.T("search.placeholder")), `"></form>`,
		`<div class="topbar-right"><form method="post" action="/language" class="lang-switch">`,
		`<input type="hidden" name="redirect" value="`, esc(data.Redirect), `">`,
		`<label class="sr-only" for="lang-select">`, esc(tr.T("language.label")), `</label>`,
		`<select id="lang-select" name="lang" onchange="this.form.submit()">`,
	); err != nil {
		return err
	}
	for _, opt := range data.Options {
		selected := ""
		if opt.Selected {
			selected = " selected"
		}
		if err := writeAll(w, `<option value="`, esc(opt.Value), `"`, selected, `>`, esc(opt.Label), `</option>`); err != nil {
			return err
		}
	}
	return writeAll(w,
		`</select><noscript><button type="submit" class="btn btn-outline">OK</button></noscript></form>`,
		`<div class="user"><span class="avatar avatar-user">`, esc(FirstLetter(data.Username)), `</span><span>`, esc(data.Username), `</span></div>`,
		`</div></header>`,
	)
}

// NotFound is the body of the 404 page.
func NotFound(tr *i18n.Translator) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeAll(w,
			`<section class="not-found"><h1>404</h1><h2>`, esc(tr.T("notfound.title")), `</h2>`,
			`<p>`, esc(tr.T("notfound.body")), `</p><a class="btn btn-primary" href="/">`, esc(tr.T("notfound.back")), `</a></section>`,
		)
	})
}

// Section renders a titled block.
func Section(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w, `<section class="block"><h2>`, esc(title), `</h2>`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		return writeAll(w, `</section>`)
	})
}

// Stack renders components one after another.
func Stack(parts ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, p := range parts {
			if p == nil {
				continue
			}
			if err := p.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
