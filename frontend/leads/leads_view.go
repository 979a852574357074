package leads

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"effix/frontend/exports"
	"effix/frontend/shared/html"
	"effix/frontend/shared/table"
	"effix/infrastructure/i18n"
	"effix/models"
)

const Path = "/leads"

var Filter = table.Filter[models.Lead]{
	Fields: []func(models.Lead) string{
		func(l models.Lead) string { return l.Name },
		func(l models.Lead) string { return l.Email },
		func(l models.Lead) string { return l.Project },
	},
	Status: func(l models.Lead) string { return l.Status },
}

var Dataset = exports.Dataset[models.Lead]{
	Name:    "leads",
	Path:    Path,
	Load:    LoadLeads,
	Filter:  Filter,
	Columns: Columns,
}

// StatusVariant colours lead statuses.
func StatusVariant(status string) html.Variant {
	switch status {
	case models.LeadNew:
		return html.VariantInfo
	case models.LeadWorking:
		return html.VariantWarning
	case models.LeadContacted:
		return html.VariantSuccess
	}
	return html.VariantDefault
}

func Columns(tr *i18n.Translator) []table.Column[models.Lead] {
	return []table.Column[models.Lead]{
		{
			Key:   "name",
			Title: "table.name",
			Text:  func(l models.Lead) string { return l.Name },
			Render: func(l models.Lead) templ.Component {
				return html.Avatar(html.FirstLetter(l.Name), "teal", l.Name, l.Email, l.Location)
			},
		},
		{
			Key:   "project",
			Title: "table.project.info",
			Text:  func(l models.Lead) string { return l.Project },
			Render: func(l models.Lead) templ.Component {
				return html.Badge(tr, l.Project, html.VariantWarning)
			},
		},
		{
			Key:   "status",
			Title: "table.status",
			Text:  func(l models.Lead) string { return l.Status },
			Render: func(l models.Lead) templ.Component {
				return html.Badge(tr, l.Status, StatusVariant(l.Status))
			},
		},
		{
			Key:   "source",
			Title: "table.source",
			Text:  func(l models.Lead) string { return l.Source },
			Render: func(l models.Lead) templ.Component {
				return html.Badge(tr, l.Source, html.VariantDefault)
			},
		},
		{
			Key:   "assigned",
			Title: "table.assigned",
			Text:  func(l models.Lead) string { return strings.Join(l.Assigned, " ") },
			Render: func(l models.Lead) templ.Component {
				return html.AvatarGroup(l.Assigned, 0)
			},
		},
	}
}

// KPIs counts the full lead list by pipeline stage.
func KPIs(tr *i18n.Translator, all []models.Lead) []html.KPI {
	status := func(l models.Lead) string { return l.Status }
	count := func(s string) string { return html.PaddedCount(table.Count(all, status, s)) }
	return []html.KPI{
		{Title: tr.T("dashboard.leads.new"), Value: count(models.LeadNew), Color: "blue", Icon: "📋"},
		{Title: tr.T("dashboard.leads.contacted"), Value: count(models.LeadContacted), Color: "green", Icon: "📞"},
		{Title: tr.T("dashboard.leads.qualified"), Value: count(models.LeadQualified), Color: "green", Icon: "✅"},
		{Title: tr.T("dashboard.leads.working"), Value: count(models.LeadWorking), Color: "orange", Icon: "⚠️"},
		{Title: tr.T("status.proposal.sent"), Value: count(models.LeadProposalSent), Color: "purple", Icon: "🚀"},
	}
}

func LeadsPage(tr *i18n.Translator, data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return html.Stack(
			html.PageHeader(tr.T("leads.title"),
				html.Button{Label: tr.T("button.export"), Href: html.ExportHref(Path, data.Query)},
				html.Button{Label: tr.T("button.import.leads")},
				html.Button{Label: tr.T("button.new.lead"), Primary: true},
			),
			html.KPIGrid(data.KPIs),
			html.Toolbar(tr, Path, data.Query, models.LeadStatuses),
			table.Render(tr, Columns(tr), data.Rows, tr.T("table.empty")),
		).Render(ctx, w)
	})
}
