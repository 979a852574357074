package tasks

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"effix/frontend/shared/html"
	"effix/frontend/shared/table"
	"effix/infrastructure/navigation"
	"effix/infrastructure/sqlite"
)

// TasksPageQueryHandler renders the task list. now decides which tasks are overdue.
func TasksPageQueryHandler(db *sqlite.DB, reg *navigation.Registry, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tr, err := html.Translator(r)
		if err != nil {
			http.Error(w, "failed to resolve locale", http.StatusInternalServerError)
			return
		}
		query := table.ParseQuery(r.URL.Query())
		all, rows, err := Dataset.Select(r.Context(), db, query)
		if err != nil {
			zap.L().Error("load tasks failed", zap.Error(err))
			http.Error(w, "failed to load tasks", http.StatusInternalServerError)
			return
		}

		data := PageData{Query: query, Rows: rows, KPIs: KPIs(tr, all, now())}
		if err := html.RenderPage(w, r, reg, tr.T("tasks.title"), TasksPage(tr, data)); err != nil {
			http.Error(w, "failed to render tasks page", http.StatusInternalServerError)
			return
		}
	}
}
