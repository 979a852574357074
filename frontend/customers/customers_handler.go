package customers

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

func CustomersPageQueryHandler(db *sqlite.DB, reg *navigation.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tr, err := html.Translator(r)
		if err != nil {
			http.Error(w, "failed to resolve locale", http.StatusInternalServerError)
			return
		}
		query := table.ParseQuery(r.URL.Query())
		all, rows, err := Dataset.Select(r.Context(), db, query)
		if err != nil {
			zap.L().Error("load customers failed", zap.Error(err))
			http.Error(w, "failed to load customers", http.StatusInternalServerError)
			return
		}

		data := PageData{
			Query: query,
			Rows:  rows,
			KPIs:  KPIs(tr, all),
			Form:  DefaultCustomerForm(),
		}
		if err := html.RenderPage(w, r, reg, tr.T("customers.title"), CustomersPage(tr, data)); err != nil {
			http.Error(w, "failed to render customers page", http.StatusInternalServerError)
			return
		}
	}
}

// ParseCustomerForm reads the submitted modal. Missing selects keep their defaults.
func ParseCustomerForm(v url.Values) CustomerForm {
	f := DefaultCustomerForm()
	f.CustomerName = strings.TrimSpace(v.Get("customer_name"))
	f.CompanyName = strings.TrimSpace(v.Get("company_name"))
	f.VATNumber = strings.TrimSpace(v.Get("vat_number"))
	f.Website = strings.TrimSpace(v.Get("website"))
	f.Email = strings.TrimSpace(v.Get("email"))
	f.Phone = strings.TrimSpace(v.Get("phone"))
	f.Address = strings.TrimSpace(v.Get("address"))
	f.ZipCode = strings.TrimSpace(v.Get("zip_code"))
	setIfPresent(&f.Currency, v, "currency")
	setIfPresent(&f.DefaultLanguage, v, "default_language")
	setIfPresent(&f.Groups, v, "groups")
	setIfPresent(&f.Country, v, "country")
	setIfPresent(&f.State, v, "state")
	setIfPresent(&f.City, v, "city")
	return f
}

func setIfPresent(dst *string, v url.Values, key string) {
	if s := strings.TrimSpace(v.Get(key)); s != "" {
		*dst = s
	}
}

func CreateCustomerCommandHandler(auditSvc *audit.Service) http.HandlerFunc {
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
		form := ParseCustomerForm(r.PostForm)
		if _, err := auditSvc.Write(r.Context(), "create", "customer", form); err != nil {
			zap.L().Error("audit customer submission failed", zap.Error(err))
			http.Error(w, "failed to record submission", http.StatusInternalServerError)
			return
		}
		html.RedirectWithFlash(w, r, Path, tr.Tf("flash.submitted", tr.T("form.customer.title")))
	}
}
