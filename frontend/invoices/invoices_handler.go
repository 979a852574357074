package invoices

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"effix/frontend/shared/html"
	"effix/frontend/shared/table"
	"effix/infrastructure/i18n"
	"effix/infrastructure/metrics"
	"effix/infrastructure/navigation"
	"effix/infrastructure/sqlite"
	"effix/models"
)

func InvoicesPageQueryHandler(db *sqlite.DB, reg *navigation.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tr, err := html.Translator(r)
		if err != nil {
			http.Error(w, "failed to resolve locale", http.StatusInternalServerError)
			return
		}
		query := table.ParseQuery(r.URL.Query())
		all, rows, err := Dataset.Select(r.Context(), db, query)
		if err != nil {
			zap.L().Error("load invoices failed", zap.Error(err))
			http.Error(w, "failed to load invoices", http.StatusInternalServerError)
			return
		}

		data := PageData{Query: query, Rows: rows, KPIs: KPIs(tr, all)}
		if err := html.RenderPage(w, r, reg, tr.T("invoices.title"), InvoicesPage(tr, data)); err != nil {
			http.Error(w, "failed to render invoices page", http.StatusInternalServerError)
			return
		}
	}
}

// Document prepares inv for printing. Amounts use tr's currency settings.
func Document(tr *i18n.Translator, inv models.Invoice, printedAt time.Time) InvoiceDocument {
	return InvoiceDocument{
		Number:   inv.Number,
		Customer: inv.Customer,
		Email:    inv.Email,
		Period:   Period(tr, inv),
		Amount:   tr.Money(inv.AmountCents),
		TotalTax: tr.Money(inv.TotalTaxCents),
		Status:   inv.Status,
		Tags:     inv.Tags,
		Printed:  printedAt,
	}
}

// InvoicePDFQueryHandler serves one invoice as an inline PDF.
func InvoicePDFQueryHandler(db *sqlite.DB, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			http.Error(w, "invalid invoice id", http.StatusBadRequest)
			return
		}
		tr, err := html.Translator(r)
		if err != nil {
			http.Error(w, "failed to resolve locale", http.StatusInternalServerError)
			return
		}

		inv, err := LoadInvoiceByID(r.Context(), db, id)
		if errors.Is(err, ErrInvoiceNotFound) {
			http.Error(w, "invoice not found", http.StatusNotFound)
			return
		}
		if err != nil {
			zap.L().Error("load invoice failed", zap.String("invoice_id", id), zap.Error(err))
			http.Error(w, "failed to load invoice", http.StatusInternalServerError)
			return
		}

		pdfBytes, err := renderInvoicePDF(Document(tr, inv, now()))
		if err != nil {
			zap.L().Error("render invoice pdf failed", zap.String("invoice_id", id), zap.Error(err))
			http.Error(w, "failed to build invoice pdf", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=invoice-%s.pdf", inv.ID))
		_, _ = w.Write(pdfBytes)
		metrics.RecordExport(Dataset.Name, "pdf")
	}
}
