package http

import (
	"net/http"
	"net/url"
	"strings"

	"effix/frontend/shared/html"
	"effix/infrastructure/i18n"
)

const localeCookieMaxAge = 365 * 24 * 60 * 60

// localRedirect keeps redirects on this site and drops parameters that would
// override the new locale or repeat an old flash message.
func localRedirect(raw string) *url.URL {
	home := &url.URL{Path: "/"}
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return home
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" {
		return home
	}
	q := u.Query()
	q.Del("lang")
	q.Del(html.FlashParam)
	u.RawQuery = q.Encode()
	return u
}

// changeLanguage stores the picked locale in a cookie and returns to the page
// the switch was used on.
func (s *Server) changeLanguage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	loc, ok := i18n.ParseLocale(r.PostForm.Get("lang"))
	if !ok {
		http.Error(w, "unsupported language", http.StatusBadRequest)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LocaleCookieName,
		Value:    string(loc),
		Path:     "/",
		MaxAge:   localeCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	target := localRedirect(r.PostForm.Get("redirect"))
	q := target.Query()
	q.Set(html.FlashParam, s.Catalog.Translator(loc).T("flash.language.changed"))
	target.RawQuery = q.Encode()
	http.Redirect(w, r, target.String(), http.StatusSeeOther)
}
