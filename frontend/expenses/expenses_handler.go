package expenses

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

func ExpensesPageQueryHandler(db *sqlite.DB, reg *navigation.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tr, err := html.Translator(r)
		if err != nil {
			http.Error(w, "failed to resolve locale", http.StatusInternalServerError)
			return
		}
		query := table.ParseQuery(r.URL.Query())
		all, rows, err := Dataset.Select(r.Context(), db, query)
		if err != nil {
			zap.L().Error("load expenses failed", zap.Error(err))
			http.Error(w, "failed to load expenses", http.StatusInternalServerError)
			return
		}

		data := PageData{
			Query: query,
			Rows:  rows,
			KPIs:  KPIs(tr, all),
			Form:  DefaultExpenseForm(),
		}
		if err := html.RenderPage(w, r, reg, tr.T("expenses.title"), ExpensesPage(tr, data)); err != nil {
			http.Error(w, "failed to render expenses page", http.StatusInternalServerError)
			return
		}
	}
}

func ParseExpenseForm(v url.Values) ExpenseForm {
	f := DefaultExpenseForm()
	f.CompanyName = strings.TrimSpace(v.Get("company_name"))
	f.Note = strings.TrimSpace(v.Get("note"))
	f.Date = strings.TrimSpace(v.Get("date"))
	f.Amount = strings.TrimSpace(v.Get("amount"))
	for key, dst := range map[string]*string{"category": &f.Category, "currency": &f.Currency, "customer": &f.Customer} {
		if s := strings.TrimSpace(v.Get(key)); s != "" {
			*dst = s
		}
	}
	return f
}

func CreateExpenseCommandHandler(auditSvc *audit.Service) http.HandlerFunc {
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
		form := ParseExpenseForm(r.PostForm)
		if _, err := auditSvc.Write(r.Context(), "create", "expense", form); err != nil {
			zap.L().Error("audit expense submission failed", zap.Error(err))
			http.Error(w, "failed to record submission", http.StatusInternalServerError)
			return
		}
		html.RedirectWithFlash(w, r, Path, tr.Tf("flash.submitted", tr.T("form.expense.title")))
	}
}
