package html

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	sharedcontext "effix/frontend/shared/context"
	"effix/frontend/shared/nav"
	"effix/infrastructure/i18n"
	"effix/infrastructure/navigation"
)

// FlashParam carries one-shot messages across redirects.
const FlashParam = "flash"

// Translator returns the translator the locale middleware stored on r.
func Translator(r *http.Request) (*i18n.Translator, error) {
	tr, ok := sharedcontext.GetTranslatorFromContext(r.Context())
	if !ok {
		return nil, fmt.Errorf("no translator in request context")
	}
	return tr, nil
}

// RenderPage writes body inside the full shell for r.
func RenderPage(w http.ResponseWriter, r *http.Request, reg *navigation.Registry, title string, body templ.Component) error {
	tr, err := Translator(r)
	if err != nil {
		return err
	}
	data := ShellData{
		Title:   title,
		Flash:   strings.TrimSpace(r.URL.Query().Get(FlashParam)),
		Sidebar: nav.BuildSidebar(reg, tr, r.URL.Path),
		TopNav:  nav.BuildTopNavData(tr, r.URL.RequestURI()),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return Layout(tr, data, body).Render(r.Context(), w)
}

// RedirectWithFlash sends the browser back to path with a flash message.
func RedirectWithFlash(w http.ResponseWriter, r *http.Request, path, message string) {
	http.Redirect(w, r, path+"?"+FlashParam+"="+url.QueryEscape(message), http.StatusSeeOther)
}
