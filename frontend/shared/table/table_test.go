package table

import (
	"bytes"
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/google/go-cmp/cmp"
)

type person struct {
	Name    string
	Company string
	Status  string
}

type keyLabels struct{}

func (keyLabels) T(key string) string { return strings.ToUpper(key) }

var people = []person{
	{Name: "Alice Johnson", Company: "Acme", Status: "Active"},
	{Name: "Robert Smith", Company: "Globex", Status: "Inactive"},
	{Name: "Carol Alison", Company: "Initech", Status: "Inactive"},
}

var personFilter = Filter[person]{
	Fields: []func(person) string{
		func(p person) string { return p.Name },
		func(p person) string { return p.Company },
	},
	Status: func(p person) string { return p.Status },
}

func names(in []person) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		out = append(out, p.Name)
	}
	return out
}

func TestApplyQueryMatchesCaseInsensitively(t *testing.T) {
	records := people[:2]
	got := Apply(records, personFilter, Query{Text: "alice", Status: AllStatuses})
	if diff := cmp.Diff([]string{"Alice Johnson"}, names(got)); diff != "" {
		t.Fatalf("filtered names mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyStatusOnly(t *testing.T) {
	got := Apply(people, personFilter, Query{Status: "Inactive"})
	if diff := cmp.Diff([]string{"Robert Smith", "Carol Alison"}, names(got)); diff != "" {
		t.Fatalf("filtered names mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyTextAndStatusCombine(t *testing.T) {
	got := Apply(people, personFilter, Query{Text: "ALI", Status: "Inactive"})
	if diff := cmp.Diff([]string{"Carol Alison"}, names(got)); diff != "" {
		t.Fatalf("filtered names mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyStatusIsExact(t *testing.T) {
	if got := Apply(people, personFilter, Query{Status: "inactive"}); len(got) != 0 {
		t.Fatalf("expected no matches for differently cased status, got %v", names(got))
	}
}

func TestApplySearchesEveryField(t *testing.T) {
	got := Apply(people, personFilter, Query{Text: "globex"})
	if diff := cmp.Diff([]string{"Robert Smith"}, names(got)); diff != "" {
		t.Fatalf("filtered names mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyQueryMatchesEverything(t *testing.T) {
	for _, q := range []Query{{}, {Status: AllStatuses}} {
		if got := Apply(people, personFilter, q); len(got) != len(people) {
			t.Fatalf("query %+v matched %d, want %d", q, len(got), len(people))
		}
	}
}

func TestMissingAccessorsNeverMatch(t *testing.T) {
	f := Filter[person]{Fields: []func(person) string{nil}}
	if f.Match(people[0], Query{Text: "alice"}) {
		t.Fatalf("nil field accessor should not match")
	}
	if f.Match(people[0], Query{Status: "Active"}) {
		t.Fatalf("nil status accessor should not match a status filter")
	}
	if !f.Match(people[0], Query{}) {
		t.Fatalf("empty query should match without accessors")
	}
}

func TestFilterMatchesDefinition(t *testing.T) {
	queries := []string{"", "a", "son", "SMITH", "zzz", "acme", " "}
	for _, p := range people {
		for _, q := range queries {
			want := false
			for _, field := range []string{p.Name, p.Company} {
				if strings.Contains(strings.ToLower(field), strings.ToLower(q)) {
					want = true
				}
			}
			if got := personFilter.Match(p, Query{Text: q}); got != want {
				t.Fatalf("Match(%q, %q) = %v, want %v", p.Name, q, got, want)
			}
		}
	}
}

func TestParseQuery(t *testing.T) {
	q := ParseQuery(url.Values{"q": {"  alice "}, "status": {" Active "}})
	if q.Text != "  alice " || q.Status != "Active" {
		t.Fatalf("ParseQuery = %+v", q)
	}
	if got := (Query{Text: "a", Status: AllStatuses}).Values().Encode(); got != "q=a" {
		t.Fatalf("Values = %q, want q=a", got)
	}
}

func TestCountAndSum(t *testing.T) {
	status := func(p person) string { return p.Status }
	if n := Count(people, status, "Inactive"); n != 2 {
		t.Fatalf("Count = %d, want 2", n)
	}
	one := func(person) int64 { return 1 }
	if got := Sum(people, one, nil); got != 3 {
		t.Fatalf("Sum all = %d, want 3", got)
	}
	if got := Sum(people, one, func(p person) bool { return p.Status == "Active" }); got != 1 {
		t.Fatalf("Sum active = %d, want 1", got)
	}
}

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func personColumns() []Column[person] {
	return []Column[person]{
		{Key: "name", Title: "table.name", Text: func(p person) string { return p.Name }},
		{Key: "status", Title: "table.status", Text: func(p person) string { return p.Status }, Render: func(p person) templ.Component {
			return templ.Raw(`<span class="badge">` + templ.EscapeString(p.Status) + `</span>`)
		}},
		{Key: "actions", Title: "table.actions"},
	}
}

func TestRowsKeepInputOrder(t *testing.T) {
	var records []person
	for i := 0; i < 25; i++ {
		records = append(records, person{Name: strings.Repeat("x", i+1)})
	}
	rows := Rows(records, personColumns())
	if len(rows) != len(records) {
		t.Fatalf("rows = %d, want %d", len(rows), len(records))
	}
	for i, row := range rows {
		if got := renderString(t, row[0]); got != records[i].Name {
			t.Fatalf("row %d = %q, want %q", i, got, records[i].Name)
		}
		if got := renderString(t, row[2]); got != "" {
			t.Fatalf("row %d actions cell = %q, want empty", i, got)
		}
	}
}

func TestRenderEscapesAndUsesRenderers(t *testing.T) {
	records := []person{{Name: "<b>Eve</b>", Status: "Active"}}
	html := renderString(t, Render(keyLabels{}, personColumns(), records, "none"))
	if !strings.Contains(html, "&lt;b&gt;Eve&lt;/b&gt;") {
		t.Fatalf("name not escaped: %s", html)
	}
	if !strings.Contains(html, `<span class="badge">Active</span>`) {
		t.Fatalf("status renderer not used: %s", html)
	}
	if !strings.Contains(html, "<th data-key=\"name\">TABLE.NAME</th>") {
		t.Fatalf("header not translated: %s", html)
	}
	if strings.Count(html, "<tr>") != 2 {
		t.Fatalf("expected header row plus one body row: %s", html)
	}
}

func TestRenderEmpty(t *testing.T) {
	html := renderString(t, Render(keyLabels{}, personColumns(), nil, "No records found"))
	if !strings.Contains(html, `<td colspan="3">No records found</td>`) {
		t.Fatalf("empty row missing: %s", html)
	}
}

func TestWriteCSVSkipsColumnsWithoutText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, keyLabels{}, personColumns(), people[:2]); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	want := "TABLE.NAME,TABLE.STATUS\nAlice Johnson,Active\nRobert Smith,Inactive\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("csv mismatch (-want +got):\n%s", diff)
	}
}

func TestTerminalReversesColumnsForRTL(t *testing.T) {
	ltr := Terminal(keyLabels{}, personColumns(), people[:1], false)
	rtl := Terminal(keyLabels{}, personColumns(), people[:1], true)
	if !strings.Contains(ltr, "Alice Johnson") || !strings.Contains(rtl, "Alice Johnson") {
		t.Fatalf("terminal output missing record:\n%s\n%s", ltr, rtl)
	}
	if strings.Index(ltr, "TABLE.NAME") > strings.Index(ltr, "TABLE.STATUS") {
		t.Fatalf("ltr header order wrong:\n%s", ltr)
	}
	if strings.Index(rtl, "TABLE.NAME") < strings.Index(rtl, "TABLE.STATUS") {
		t.Fatalf("rtl header order wrong:\n%s", rtl)
	}
	if strings.Contains(ltr, "TABLE.ACTIONS") {
		t.Fatalf("actions column should be omitted:\n%s", ltr)
	}
}
