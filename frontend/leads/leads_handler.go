package leads

import (
	"net/http"

	"go.uber.org/zap"

	"effix/frontend/shared/html"
	"effix/frontend/shared/table"
	"effix/infrastructure/navigation"
	"effix/infrastructure/sqlite"
)

func LeadsPageQueryHandler(db *sqlite.DB, reg *navigation.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tr, err := html.Translator(r)
		if err != nil {
			http.Error(w, "failed to resolve locale", http.StatusInternalServerError)
			return
		}
		query := table.ParseQuery(r.URL.Query())
		all, rows, err := Dataset.Select(r.Context(), db, query)
		if err != nil {
			zap.L().Error("load leads failed", zap.Error(err))
			http.Error(w, "failed to load leads", http.StatusInternalServerError)
			return
		}

		data := PageData{Query: query, Rows: rows, KPIs: KPIs(tr, all)}
		if err := html.RenderPage(w, r, reg, tr.T("leads.title"), LeadsPage(tr, data)); err != nil {
			http.Error(w, "failed to render leads page", http.StatusInternalServerError)
			return
		}
	}
}
