package leads

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"effix/frontend/exports"
	"effix/frontend/shared/pagetest"
	"effix/frontend/shared/table"
	"effix/infrastructure/i18n"
	"effix/models"
)

func TestLeadsPageRendersAllLeads(t *testing.T) {
	db := pagetest.DB(t)
	h := LeadsPageQueryHandler(db, pagetest.Registry(Path))
	rec := pagetest.Serve(h, pagetest.Request(t, http.MethodGet, "/leads", nil, i18n.English))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{"John Abshire", "Dary Franecki", "Tony Stark", "Henry Cavel"} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected %s in page", name)
		}
	}
	if !strings.Contains(body, `<span class="badge badge-info">New</span>`) {
		t.Fatalf("expected info badge for New lead")
	}
}

func TestLeadsPageFiltersByQueryAndStatus(t *testing.T) {
	db := pagetest.DB(t)
	h := LeadsPageQueryHandler(db, pagetest.Registry(Path))
	rec := pagetest.Serve(h, pagetest.Request(t, http.MethodGet, "/leads?q=design&status=Working", nil, i18n.English))
	body := rec.Body.String()
	if !strings.Contains(body, "Tony Stark") {
		t.Fatalf("expected Tony Stark in filtered page")
	}
	if strings.Contains(body, "John Abshire") || strings.Contains(body, "Henry Cavel") {
		t.Fatalf("unexpected lead in filtered page")
	}
}

func TestLeadsPageSearchesTextAsTyped(t *testing.T) {
	db := pagetest.DB(t)
	h := LeadsPageQueryHandler(db, pagetest.Registry(Path))
	rec := pagetest.Serve(h, pagetest.Request(t, http.MethodGet, "/leads?q=stark%20", nil, i18n.English))
	if strings.Contains(rec.Body.String(), "Tony Stark") {
		t.Fatalf("trailing space must be part of the search text")
	}

	rec = pagetest.Serve(h, pagetest.Request(t, http.MethodGet, "/leads?q=tony%20stark", nil, i18n.English))
	if !strings.Contains(rec.Body.String(), "Tony Stark") {
		t.Fatalf("expected Tony Stark for inner-space query")
	}

	all, err := LoadLeads(context.Background(), db)
	if err != nil {
		t.Fatalf("load leads: %v", err)
	}
	if n := len(table.Apply(all, Filter, table.Query{Text: "stark "})); n != 0 {
		t.Fatalf("filter matched %d leads for %q", n, "stark ")
	}
}

func TestLeadsPageArabicKeepsDataAndFlipsDirection(t *testing.T) {
	db := pagetest.DB(t)
	h := LeadsPageQueryHandler(db, pagetest.Registry(Path))
	rec := pagetest.Serve(h, pagetest.Request(t, http.MethodGet, "/leads?q=tony", nil, i18n.Arabic))
	body := rec.Body.String()
	if !strings.Contains(body, `dir="rtl"`) {
		t.Fatalf("expected rtl document")
	}
	if !strings.Contains(body, "Tony Stark") || !strings.Contains(body, "العملاء المحتملون") {
		t.Fatalf("expected record data and arabic title")
	}
}

func TestLeadsExportRowsAreLocaleIndependent(t *testing.T) {
	db := pagetest.DB(t)
	q := table.Query{Text: "o", Status: models.LeadNew}
	rows := func(loc i18n.Locale) []string {
		var buf bytes.Buffer
		if err := Dataset.WriteCSV(context.Background(), db, pagetest.Translator(t, loc), q, &buf); err != nil {
			t.Fatalf("write csv: %v", err)
		}
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		return lines[1:]
	}
	en, ar := rows(i18n.English), rows(i18n.Arabic)
	if len(en) != 1 {
		t.Fatalf("expected one matching lead, got %v", en)
	}
	if diff := cmp.Diff(en, ar); diff != "" {
		t.Fatalf("rows differ between locales (-en +ar):\n%s", diff)
	}
}

func TestLeadKPIsCountByStatus(t *testing.T) {
	tr := pagetest.Translator(t, i18n.English)
	kpis := KPIs(tr, []models.Lead{
		{Status: models.LeadNew}, {Status: models.LeadNew}, {Status: models.LeadWorking}, {Status: models.LeadProposalSent},
	})
	var got []string
	for _, k := range kpis {
		got = append(got, k.Title+"="+k.Value)
	}
	want := []string{"New=02", "Contacted=00", "Qualified=00", "Working=01", "Proposal Sent=01"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("kpis mismatch (-want +got):\n%s", diff)
	}
}

func TestLeadsExportCSV(t *testing.T) {
	db := pagetest.DB(t)
	h := exports.ExportCSVQueryHandler(db, Dataset)
	rec := pagetest.Serve(h, pagetest.Request(t, http.MethodGet, "/leads/export.csv?status=New", nil, i18n.English))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("content type = %s", ct)
	}
	want := "Name,Project Info,Status,Source,Assigned\nDary Franecki,App Design,New,Dribble,N S\n"
	if diff := cmp.Diff(want, rec.Body.String()); diff != "" {
		t.Fatalf("csv mismatch (-want +got):\n%s", diff)
	}
}
