package invoices

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"effix/frontend/shared/pagetest"
	"effix/infrastructure/i18n"
	"effix/models"
)

func TestRatioPadsCountAndTotal(t *testing.T) {
	all := []models.Invoice{{Status: models.InvoicePaid}, {Status: models.InvoiceDraft}, {Status: models.InvoicePaid}}
	if got := Ratio(all, models.InvoicePaid); got != "02/03" {
		t.Fatalf("Ratio paid = %s", got)
	}
	if got := Ratio(all, models.InvoiceOverdue); got != "00/03" {
		t.Fatalf("Ratio overdue = %s", got)
	}
}

func TestInvoiceKPIsFromFixtures(t *testing.T) {
	db := pagetest.DB(t)
	all, err := LoadInvoices(context.Background(), db)
	if err != nil {
		t.Fatalf("load invoices: %v", err)
	}
	kpis := KPIs(pagetest.Translator(t, i18n.English), all)
	want := []string{"01/03", "01/03", "00/03", "01/03"}
	for i, k := range kpis {
		if k.Value != want[i] {
			t.Fatalf("kpi %d (%s) = %s, want %s", i, k.Title, k.Value, want[i])
		}
	}
}

func TestInvoicesPageSearchesEmail(t *testing.T) {
	db := pagetest.DB(t)
	h := InvoicesPageQueryHandler(db, pagetest.Registry(Path))
	body := pagetest.Serve(h, pagetest.Request(t, http.MethodGet, "/invoices?q=SMITH%40", nil, i18n.English)).Body.String()
	if !strings.Contains(body, "#CIV-012003") || strings.Contains(body, "#CIV-012001") {
		t.Fatalf("email search returned wrong rows")
	}
	if !strings.Contains(body, "10-04-2025 - 17-04-2025") {
		t.Fatalf("expected billing period in body")
	}
	if !strings.Contains(body, `href="/invoices/3.pdf"`) {
		t.Fatalf("expected pdf link in actions menu")
	}
}

func TestLoadInvoiceByIDUnknown(t *testing.T) {
	db := pagetest.DB(t)
	if _, err := LoadInvoiceByID(context.Background(), db, "404"); err != ErrInvoiceNotFound {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
}

func pdfRequest(t *testing.T, id string) *http.Request {
	t.Helper()
	req := pagetest.Request(t, http.MethodGet, "/invoices/"+id+".pdf", nil, i18n.English)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestInvoicePDFQueryHandler(t *testing.T) {
	db := pagetest.DB(t)
	now := func() time.Time { return time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC) }
	h := InvoicePDFQueryHandler(db, now)

	rec := pagetest.Serve(h, pdfRequest(t, "1"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %s", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("expected pdf body")
	}

	if rec := pagetest.Serve(h, pdfRequest(t, "99")); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown invoice, got %d", rec.Code)
	}
}

func TestRenderInvoicePDFRequiresNumber(t *testing.T) {
	if _, err := renderInvoicePDF(InvoiceDocument{}); err == nil {
		t.Fatalf("expected error for empty invoice number")
	}
}
