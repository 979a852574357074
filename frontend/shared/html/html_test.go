package html

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"effix/frontend/shared/nav"
	"effix/frontend/shared/table"
	"effix/infrastructure/i18n"
)

func translators(t *testing.T) (*i18n.Translator, *i18n.Translator) {
	t.Helper()
	c, err := i18n.LoadCatalog(i18n.Options{CurrencyCode: "USD", CurrencySymbol: "$"})
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c.Translator(i18n.English), c.Translator(i18n.Arabic)
}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestBadgeTranslatesKnownStatus(t *testing.T) {
	en, ar := translators(t)
	if got := render(t, Badge(en, "Proposal Sent", VariantInfo)); got != `<span class="badge badge-info">Proposal Sent</span>` {
		t.Fatalf("en badge = %s", got)
	}
	if got := render(t, Badge(ar, "Active", VariantSuccess)); got != `<span class="badge badge-success">نشط</span>` {
		t.Fatalf("ar badge = %s", got)
	}
}

func TestBadgeShowsUnknownStatusRaw(t *testing.T) {
	en, ar := translators(t)
	for _, tr := range []*i18n.Translator{en, ar} {
		if got := render(t, Badge(tr, "Dribble", VariantDefault)); got != `<span class="badge badge-default">Dribble</span>` {
			t.Fatalf("badge = %s", got)
		}
	}
}

func TestBadgeUnknownVariantFallsBackToDefault(t *testing.T) {
	en, _ := translators(t)
	if got := render(t, Badge(en, "Won", Variant("neon"))); !strings.Contains(got, "badge-default") {
		t.Fatalf("badge = %s", got)
	}
}

func TestInitials(t *testing.T) {
	cases := map[string]string{"Elon Mask": "EM", "Mike Chen": "MC", "Alex": "A", "": ""}
	for in, want := range cases {
		if got := Initials(in); got != want {
			t.Fatalf("Initials(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAvatarGroupCapsVisibleMembers(t *testing.T) {
	got := render(t, AvatarGroup([]string{"MC", "JS", "SJ", "ED"}, 3))
	if strings.Count(got, `class="avatar avatar-sm"`) != 3 || !strings.Contains(got, "+1") {
		t.Fatalf("avatar group = %s", got)
	}
}

func TestProgressClamps(t *testing.T) {
	if got := render(t, Progress(140)); !strings.Contains(got, "width: 100%") {
		t.Fatalf("progress = %s", got)
	}
}

func TestToolbarSelectsCurrentStatus(t *testing.T) {
	en, _ := translators(t)
	got := render(t, Toolbar(en, "/customers", table.Query{Text: "al", Status: "Inactive"}, []string{"Active", "Inactive"}))
	if !strings.Contains(got, `<option value="Inactive" selected>Inactive</option>`) {
		t.Fatalf("toolbar = %s", got)
	}
	if !strings.Contains(got, `value="al"`) {
		t.Fatalf("toolbar lost query: %s", got)
	}
	if !strings.Contains(got, `<option value="All">All Status</option>`) {
		t.Fatalf("toolbar missing all option: %s", got)
	}
}

func TestExportHref(t *testing.T) {
	if got := ExportHref("/leads", table.Query{Text: "tony", Status: "Working"}); got != "/leads/export.csv?q=tony&status=Working" {
		t.Fatalf("href = %s", got)
	}
	if got := ExportHref("/leads", table.Query{Status: table.AllStatuses}); got != "/leads/export.csv" {
		t.Fatalf("href = %s", got)
	}
}

func TestLayoutSetsDirection(t *testing.T) {
	en, ar := translators(t)
	body := table.Text("hello")
	ltr := render(t, Layout(en, ShellData{Title: "Leads", TopNav: nav.BuildTopNavData(en, "/leads")}, body))
	if !strings.Contains(ltr, `<html lang="en" dir="ltr">`) || !strings.Contains(ltr, "hello") {
		t.Fatalf("ltr layout = %s", ltr)
	}
	rtl := render(t, Layout(ar, ShellData{Title: "Leads", Flash: "saved"}, body))
	if !strings.Contains(rtl, `<html lang="ar" dir="rtl">`) || !strings.Contains(rtl, `<div class="flash" role="status">saved</div>`) {
		t.Fatalf("rtl layout = %s", rtl)
	}
	if !strings.Contains(rtl, "<script>") {
		t.Fatalf("layout missing csrf script")
	}
}

func TestCSRFFormScriptUsesSharedNames(t *testing.T) {
	script := CSRFFormScript()
	for _, want := range []string{
		`var cookieName = "` + CSRFCookieName + `";`,
		`var fieldName = "` + CSRFFieldName + `";`,
		`getCookie(cookieName)`,
		`input.name = fieldName;`,
	} {
		if !strings.Contains(script, want) {
			t.Fatalf("csrf script missing %q", want)
		}
	}
	if strings.Count(script, "(function () {") != 1 {
		t.Fatalf("csrf script should wrap a single closure")
	}
}

func TestModalRendersDefaults(t *testing.T) {
	en, _ := translators(t)
	got := render(t, Modal(en, ModalForm{
		ID:     "new-customer",
		Title:  "Add",
		Action: "/customers/new",
		Fields: []Field{
			{Name: "currency", Label: "Currency", Type: FieldSelect, Value: "USD", Options: []string{"USD", "EUR"}},
			{Name: "note", Label: "Note", Type: FieldTextarea, Placeholder: "<x>"},
		},
	}))
	if !strings.Contains(got, `<option value="USD" selected>USD</option>`) {
		t.Fatalf("modal = %s", got)
	}
	if !strings.Contains(got, `placeholder="&lt;x&gt;"`) {
		t.Fatalf("placeholder not escaped: %s", got)
	}
	if !strings.Contains(got, `method="post" action="/customers/new"`) {
		t.Fatalf("form action missing: %s", got)
	}
}
