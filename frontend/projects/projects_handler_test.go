package projects

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"effix/frontend/shared/pagetest"
	"effix/infrastructure/audit"
	"effix/infrastructure/i18n"
	"effix/models"
)

func TestProjectKPIsFromFixtures(t *testing.T) {
	db := pagetest.DB(t)
	all, err := LoadProjects(context.Background(), db)
	if err != nil {
		t.Fatalf("load projects: %v", err)
	}
	var got []string
	for _, k := range KPIs(pagetest.Translator(t, i18n.English), all) {
		got = append(got, k.Value)
	}
	if diff := cmp.Diff([]string{"4", "1", "1", "$128K"}, got); diff != "" {
		t.Fatalf("kpi values mismatch (-want +got):\n%s", diff)
	}
}

func TestStatusVariant(t *testing.T) {
	cases := map[string]string{
		models.ProjectCompleted:  "success",
		models.ProjectInProgress: "info",
		models.ProjectPlanning:   "warning",
		models.ProjectOnHold:     "danger",
		models.ProjectCancelled:  "danger",
		"Archived":               "default",
	}
	for status, want := range cases {
		if got := string(StatusVariant(status)); got != want {
			t.Fatalf("StatusVariant(%q) = %s, want %s", status, got, want)
		}
	}
}

func TestProjectsPageFiltersByClient(t *testing.T) {
	db := pagetest.DB(t)
	h := ProjectsPageQueryHandler(db, pagetest.Registry(Path))
	body := pagetest.Serve(h, pagetest.Request(t, http.MethodGet, "/projects?q=greentech", nil, i18n.English)).Body.String()
	if !strings.Contains(body, "E-commerce Platform") || strings.Contains(body, "CRM Integration") {
		t.Fatalf("client search returned wrong rows")
	}
	if !strings.Contains(body, "+1") {
		t.Fatalf("expected overflow counter for four member team")
	}
}

func TestParseProjectFormKeepsDefaults(t *testing.T) {
	got := ParseProjectForm(url.Values{
		"project_name": {" Portal "},
		"members":      {"John Smith", "", "Mike Chen"},
		"send_email":   {"on"},
	})
	want := ProjectForm{
		ProjectName: "Portal",
		BillingType: "Project hours",
		Status:      models.ProjectInProgress,
		Members:     []string{"John Smith", "Mike Chen"},
		SendEmail:   true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateProjectRedirectsWithFlash(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := CreateProjectCommandHandler(audit.NewService(zap.New(core)))

	form := url.Values{"project_name": {"Portal"}}
	req := pagetest.Request(t, http.MethodPost, "/projects/new", strings.NewReader(form.Encode()), i18n.English)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := pagetest.Serve(h, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "/projects?flash=") {
		t.Fatalf("unexpected redirect %s", loc)
	}
	if logs.FilterField(zap.String("entity_type", "project")).Len() != 1 {
		t.Fatalf("expected one project audit entry")
	}
}
