package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	sharedcontext "effix/frontend/shared/context"
	"effix/infrastructure/i18n"
	"effix/infrastructure/metrics"
)

// LocaleCookieName remembers the language picked in the header switch.
const LocaleCookieName = "effix-lang"

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		next.ServeHTTP(w, r)
	})
}

// routeLabel is the matched chi pattern, so metrics stay low-cardinality.
func routeLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

// observe logs every request with zap and records its latency.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := routeLabel(r)
		metrics.RecordHTTPRequest(r.Method, route, status, elapsed)
		s.logger.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", elapsed),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// ResolveLocale picks the locale for r: lang query parameter, then the locale
// cookie, then def. Unsupported values are skipped.
func ResolveLocale(r *http.Request, def i18n.Locale) i18n.Locale {
	if loc, ok := i18n.ParseLocale(r.URL.Query().Get("lang")); ok {
		return loc
	}
	if c, err := r.Cookie(LocaleCookieName); err == nil {
		if loc, ok := i18n.ParseLocale(c.Value); ok {
			return loc
		}
	}
	return def
}

func (s *Server) localeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tr := s.Catalog.Translator(ResolveLocale(r, s.DefaultLocale))
		next.ServeHTTP(w, r.WithContext(sharedcontext.NewContextWithTranslator(r.Context(), tr)))
	})
}
