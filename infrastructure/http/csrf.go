package http

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"

	"effix/frontend/shared/html"
)

const (
	CSRFCookieName = html.CSRFCookieName
	CSRFHeaderName = "X-CSRF-Token"
	CSRFFieldName  = html.CSRFFieldName
)

// csrfMiddleware issues a double-submit token cookie and checks it on unsafe methods.
func csrfMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ensureCSRFToken(w, r)
		if isSafeMethod(r.Method) {
			next.ServeHTTP(w, r)
			return
		}
		if !validCSRF(token, submittedCSRF(r)) {
			http.Error(w, "invalid csrf token", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func submittedCSRF(r *http.Request) string {
	if v := strings.TrimSpace(r.Header.Get(CSRFHeaderName)); v != "" {
		return v
	}
	return strings.TrimSpace(r.FormValue(CSRFFieldName))
}

func validCSRF(expected, provided string) bool {
	return provided != "" && subtle.ConstantTimeCompare([]byte(expected), []byte(provided)) == 1
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	default:
		return false
	}
}

func ensureCSRFToken(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(CSRFCookieName); err == nil && strings.TrimSpace(c.Value) != "" {
		return c.Value
	}
	token := randomToken(32)
	http.SetCookie(w, &http.Cookie{
		Name:     CSRFCookieName,
		Value:    token,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
	return token
}

func randomToken(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
