package projects

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"effix/frontend/exports"
	"effix/frontend/shared/html"
	"effix/frontend/shared/table"
	"effix/infrastructure/i18n"
	"effix/models"
)

const (
	Path    = "/projects"
	ModalID = "new-project"
	// TeamLimit is how many member avatars a row shows before "+n".
	TeamLimit = 3
)

var Filter = table.Filter[models.Project]{
	Fields: []func(models.Project) string{
		func(p models.Project) string { return p.Name },
		func(p models.Project) string { return p.Client },
	},
	Status: func(p models.Project) string { return p.Status },
}

var Dataset = exports.Dataset[models.Project]{
	Name:    "projects",
	Path:    Path,
	Load:    LoadProjects,
	Filter:  Filter,
	Columns: Columns,
}

func StatusVariant(status string) html.Variant {
	switch status {
	case models.ProjectCompleted:
		return html.VariantSuccess
	case models.ProjectInProgress:
		return html.VariantInfo
	case models.ProjectPlanning:
		return html.VariantWarning
	case models.ProjectOnHold, models.ProjectCancelled:
		return html.VariantDanger
	}
	return html.VariantDefault
}

func teamInitials(team []string) []string {
	out := make([]string, 0, len(team))
	for _, m := range team {
		out = append(out, html.Initials(m))
	}
	return out
}

func Columns(tr *i18n.Translator) []table.Column[models.Project] {
	return []table.Column[models.Project]{
		{
			Key:   "name",
			Title: "table.project.name",
			Text:  func(p models.Project) string { return p.Name },
			Render: func(p models.Project) templ.Component {
				return html.Stacked(p.Name, p.Client)
			},
		},
		{
			Key:   "status",
			Title: "table.status",
			Text:  func(p models.Project) string { return p.Status },
			Render: func(p models.Project) templ.Component {
				return html.Badge(tr, p.Status, StatusVariant(p.Status))
			},
		},
		{
			Key:   "progress",
			Title: "table.progress",
			Text:  func(p models.Project) string { return tr.Number(int64(p.Progress)) + "%" },
			Render: func(p models.Project) templ.Component {
				return html.Progress(p.Progress)
			},
		},
		{
			Key:   "timeline",
			Title: "table.timeline",
			Text:  func(p models.Project) string { return tr.Date(p.StartDate) + " - " + tr.Date(p.Deadline) },
			Render: func(p models.Project) templ.Component {
				return html.StackedClass("timeline",
					tr.Tf("table.timeline.start", tr.Date(p.StartDate)),
					tr.Tf("table.timeline.due", tr.Date(p.Deadline)))
			},
		},
		{
			Key:   "budget",
			Title: "table.budget",
			Text:  func(p models.Project) string { return tr.Money(p.BudgetCents) },
			Render: func(p models.Project) templ.Component {
				return html.Stacked(tr.Money(p.BudgetCents), tr.Tf("table.spent", tr.Money(p.SpentCents)))
			},
		},
		{
			Key:   "team",
			Title: "table.team",
			Text:  func(p models.Project) string { return strings.Join(p.Team, ", ") },
			Render: func(p models.Project) templ.Component {
				return html.AvatarGroup(teamInitials(p.Team), TeamLimit)
			},
		},
		{
			Key:   "actions",
			Title: "table.actions",
			Render: func(models.Project) templ.Component {
				return html.ActionsMenu(tr)
			},
		},
	}
}

func KPIs(tr *i18n.Translator, all []models.Project) []html.KPI {
	status := func(p models.Project) string { return p.Status }
	budget := table.Sum(all, func(p models.Project) int64 { return p.BudgetCents }, nil)
	return []html.KPI{
		{Title: tr.T("kpi.total.projects"), Value: strconv.Itoa(len(all)), Color: "blue", Icon: "📁"},
		{Title: tr.T("kpi.active.projects"), Value: strconv.Itoa(table.Count(all, status, models.ProjectInProgress)), Color: "orange", Icon: "⏳"},
		{Title: tr.T("kpi.completed"), Value: strconv.Itoa(table.Count(all, status, models.ProjectCompleted)), Color: "green", Icon: "✅"},
		{Title: tr.T("kpi.total.budget"), Value: tr.MoneyThousands(budget), Color: "purple", Icon: "💰"},
	}
}

func NewProjectModal(tr *i18n.Translator, f ProjectForm) templ.Component {
	sendEmail := ""
	if f.SendEmail {
		sendEmail = "true"
	}
	return html.Modal(tr, html.ModalForm{
		ID:     ModalID,
		Title:  tr.T("form.project.title"),
		Action: Path + "/new",
		Fields: []html.Field{
			{Name: "project_name", Label: tr.T("form.project.name"), Value: f.ProjectName, Wide: true},
			{Name: "customer", Label: tr.T("form.customer"), Type: html.FieldSelect, Value: f.Customer, Options: CustomerOptions, Wide: true},
			{Name: "billing_type", Label: tr.T("form.billing.type"), Type: html.FieldSelect, Value: f.BillingType, Options: BillingTypeOptions},
			{Name: "status", Label: tr.T("form.status"), Type: html.FieldSelect, Value: f.Status, Options: models.ProjectStatuses},
			{Name: "estimated_hours", Label: tr.T("form.estimated.hours"), Type: html.FieldNumber, Value: f.EstimatedHours},
			{Name: "start_date", Label: tr.T("form.start.date"), Type: html.FieldDate, Value: f.StartDate},
			{Name: "deadline", Label: tr.T("form.deadline"), Type: html.FieldDate, Value: f.Deadline},
			{Name: "rate_per_hour", Label: tr.T("form.rate.per.hour"), Type: html.FieldNumber, Value: f.RatePerHour},
			{Name: "description", Label: tr.T("form.description"), Type: html.FieldTextarea, Value: f.Description},
			{Name: "members", Label: tr.T("form.members"), Type: html.FieldMulti, Options: MemberOptions},
			{Name: "tags", Label: tr.T("form.tags"), Value: f.Tags},
			{Name: "send_email", Label: tr.T("form.send.email"), Type: html.FieldCheckbox, Value: sendEmail},
		},
	})
}

func ProjectsPage(tr *i18n.Translator, data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return html.Stack(
			html.PageHeader(tr.T("projects.title"),
				html.Button{Label: tr.T("button.export"), Href: html.ExportHref(Path, data.Query)},
				html.Button{Label: tr.T("button.new.project"), ModalID: ModalID, Primary: true},
			),
			html.KPIGrid(data.KPIs),
			html.Toolbar(tr, Path, data.Query, models.ProjectStatuses),
			table.Render(tr, Columns(tr), data.Rows, tr.T("table.empty")),
			NewProjectModal(tr, data.Form),
		).Render(ctx, w)
	})
}
