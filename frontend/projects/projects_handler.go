package projects

import (
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"effix/frontend/shared/html"
	"effix/frontend/shared/table"
	"effix/infrastructure/audit"
	"effix/infrastructure/navigation"
	"effix/infrastructure/sqlite"
)

func ProjectsPageQueryHandler(db *sqlite.DB, reg *navigation.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tr, err := html.Translator(r)
		if err != nil {
			http.Error(w, "failed to resolve locale", http.StatusInternalServerError)
			return
		}
		query := table.ParseQuery(r.URL.Query())
		all, rows, err := Dataset.Select(r.Context(), db, query)
		if err != nil {
			zap.L().Error("load projects failed", zap.Error(err))
			http.Error(w, "failed to load projects", http.StatusInternalServerError)
			return
		}

		data := PageData{
			Query: query,
			Rows:  rows,
			KPIs:  KPIs(tr, all),
			Form:  DefaultProjectForm(),
		}
		if err := html.RenderPage(w, r, reg, tr.T("projects.title"), ProjectsPage(tr, data)); err != nil {
			http.Error(w, "failed to render projects page", http.StatusInternalServerError)
			return
		}
	}
}

// ParseProjectForm reads the submitted modal. Empty selects keep their defaults.
func ParseProjectForm(v url.Values) ProjectForm {
	f := DefaultProjectForm()
	f.ProjectName = strings.TrimSpace(v.Get("project_name"))
	f.Customer = strings.TrimSpace(v.Get("customer"))
	f.EstimatedHours = strings.TrimSpace(v.Get("estimated_hours"))
	f.StartDate = strings.TrimSpace(v.Get("start_date"))
	f.Deadline = strings.TrimSpace(v.Get("deadline"))
	f.RatePerHour = strings.TrimSpace(v.Get("rate_per_hour"))
	f.Description = strings.TrimSpace(v.Get("description"))
	f.Tags = strings.TrimSpace(v.Get("tags"))
	if s := strings.TrimSpace(v.Get("billing_type")); s != "" {
		f.BillingType = s
	}
	if s := strings.TrimSpace(v.Get("status")); s != "" {
		f.Status = s
	}
	for _, m := range v["members"] {
		if m = strings.TrimSpace(m); m != "" {
			f.Members = append(f.Members, m)
		}
	}
	switch strings.ToLower(strings.TrimSpace(v.Get("send_email"))) {
	case "on", "true", "1":
		f.SendEmail = true
	}
	return f
}

func CreateProjectCommandHandler(auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tr, err := html.Translator(r)
		if err != nil {
			http.Error(w, "failed to resolve locale", http.StatusInternalServerError)
			return
		}
		if err := r.ParseForm(); err != nil {
			html.RedirectWithFlash(w, r, Path, tr.T("flash.invalid.form"))
			return
		}
		form := ParseProjectForm(r.PostForm)
		if _, err := auditSvc.Write(r.Context(), "create", "project", form); err != nil {
			zap.L().Error("audit project submission failed", zap.Error(err))
			http.Error(w, "failed to record submission", http.StatusInternalServerError)
			return
		}
		html.RedirectWithFlash(w, r, Path, tr.Tf("flash.submitted", tr.T("form.project.title")))
	}
}
