package dashboard

import (
	"net/http"

	"go.uber.org/zap"

	"effix/frontend/shared/html"
	"effix/infrastructure/navigation"
	"effix/infrastructure/sqlite"
)

// DashboardPageQueryHandler serves the overview. /sales, /contracts, /support and
// /settings reuse it.
func DashboardPageQueryHandler(db *sqlite.DB, reg *navigation.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tr, err := html.Translator(r)
		if err != nil {
			http.Error(w, "failed to resolve locale", http.StatusInternalServerError)
			return
		}
		recs, err := loadRecords(r.Context(), db)
		if err != nil {
			zap.L().Error("load dashboard failed", zap.Error(err))
			http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
			return
		}
		if err := html.RenderPage(w, r, reg, tr.T("dashboard.title"), DashboardPage(tr, build(tr, recs))); err != nil {
			http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
			return
		}
	}
}
