package exports

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"effix/frontend/shared/html"
	"effix/frontend/shared/table"
	"effix/infrastructure/metrics"
	"effix/infrastructure/sqlite"
)

// ExportCSVQueryHandler serves the filtered records of d as a CSV download.
func ExportCSVQueryHandler[T any](db *sqlite.DB, d Dataset[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tr, err := html.Translator(r)
		if err != nil {
			http.Error(w, "failed to resolve locale", http.StatusInternalServerError)
			return
		}
		var buf bytes.Buffer
		if err := d.WriteCSV(r.Context(), db, tr, table.ParseQuery(r.URL.Query()), &buf); err != nil {
			zap.L().Error("csv export failed", zap.String("page", d.Name), zap.Error(err))
			http.Error(w, "failed to export csv", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename="+d.Name+".csv")
		_, _ = w.Write(buf.Bytes())
		metrics.RecordExport(d.Name, "csv")
	}
}
