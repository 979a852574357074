package tasks

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"effix/frontend/exports"
	"effix/frontend/shared/html"
	"effix/frontend/shared/table"
	"effix/infrastructure/i18n"
	"effix/models"
)

const Path = "/tasks"

var Filter = table.Filter[models.Task]{
	Fields: []func(models.Task) string{
		func(t models.Task) string { return t.Title },
		func(t models.Task) string { return t.Description },
		func(t models.Task) string { return t.Assignee },
	},
	Status: func(t models.Task) string { return t.Status },
}

var Dataset = exports.Dataset[models.Task]{
	Name:    "tasks",
	Path:    Path,
	Load:    LoadTasks,
	Filter:  Filter,
	Columns: Columns,
}

func StatusVariant(status string) html.Variant {
	switch status {
	case models.TaskCompleted:
		return html.VariantSuccess
	case models.TaskInProgress:
		return html.VariantInfo
	case models.TaskReview:
		return html.VariantWarning
	}
	return html.VariantDefault
}

func PriorityVariant(priority string) html.Variant {
	switch priority {
	case models.PriorityHigh:
		return html.VariantDanger
	case models.PriorityMedium:
		return html.VariantWarning
	case models.PriorityLow:
		return html.VariantSuccess
	}
	return html.VariantDefault
}

func Columns(tr *i18n.Translator) []table.Column[models.Task] {
	return []table.Column[models.Task]{
		{
			Key:   "title",
			Title: "table.task",
			Text:  func(t models.Task) string { return t.Title },
			Render: func(t models.Task) templ.Component {
				return html.Stacked(t.Title, t.Description)
			},
		},
		{
			Key:   "assignee",
			Title: "table.assignee",
			Text:  func(t models.Task) string { return t.Assignee },
			Render: func(t models.Task) templ.Component {
				return html.Avatar(html.Initials(t.Assignee), "gray", t.Assignee)
			},
		},
		{
			Key:   "project",
			Title: "table.project",
			Text:  func(t models.Task) string { return t.Project },
			Render: func(t models.Task) templ.Component {
				return html.Badge(tr, t.Project, html.VariantInfo)
			},
		},
		{
			Key:   "priority",
			Title: "table.priority",
			Text:  func(t models.Task) string { return t.Priority },
			Render: func(t models.Task) templ.Component {
				return html.Badge(tr, t.Priority, PriorityVariant(t.Priority))
			},
		},
		{
			Key:   "status",
			Title: "table.status",
			Text:  func(t models.Task) string { return t.Status },
			Render: func(t models.Task) templ.Component {
				return html.Badge(tr, t.Status, StatusVariant(t.Status))
			},
		},
		{
			Key:   "progress",
			Title: "table.progress",
			Text:  func(t models.Task) string { return tr.Number(int64(t.Progress)) + "%" },
			Render: func(t models.Task) templ.Component {
				return html.Progress(t.Progress)
			},
		},
		{Key: "due_date", Title: "table.due.date", Text: func(t models.Task) string { return tr.Date(t.DueDate) }},
		{
			Key:   "actions",
			Title: "table.actions",
			Render: func(models.Task) templ.Component {
				return html.ActionsMenu(tr)
			},
		},
	}
}

// Overdue reports whether t is still open after its due date.
func Overdue(t models.Task, now time.Time) bool {
	return t.Status != models.TaskCompleted && t.DueDate.Before(now)
}

func Summarize(all []models.Task, now time.Time) Summary {
	status := func(t models.Task) string { return t.Status }
	s := Summary{
		Total:      len(all),
		Completed:  table.Count(all, status, models.TaskCompleted),
		InProgress: table.Count(all, status, models.TaskInProgress),
	}
	for _, t := range all {
		if Overdue(t, now) {
			s.Overdue++
		}
	}
	if s.Total > 0 {
		s.CompletionRate = (s.Completed*200 + s.Total) / (2 * s.Total)
	}
	return s
}

func KPIs(tr *i18n.Translator, all []models.Task, now time.Time) []html.KPI {
	s := Summarize(all, now)
	return []html.KPI{
		{Title: tr.T("kpi.total.tasks"), Value: strconv.Itoa(s.Total), Color: "blue", Icon: "📋"},
		{Title: tr.T("kpi.completed"), Value: strconv.Itoa(s.Completed), Note: tr.Tf("kpi.completion.rate", s.CompletionRate), Color: "green", Icon: "✅"},
		{Title: tr.T("kpi.in.progress"), Value: strconv.Itoa(s.InProgress), Color: "orange", Icon: "⏳"},
		{Title: tr.T("kpi.overdue"), Value: strconv.Itoa(s.Overdue), Color: "red", Icon: "⚠️"},
	}
}

func TasksPage(tr *i18n.Translator, data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return html.Stack(
			html.PageHeader(tr.T("tasks.title"),
				html.Button{Label: tr.T("button.export"), Href: html.ExportHref(Path, data.Query)},
				html.Button{Label: tr.T("button.new.task"), Primary: true},
			),
			html.KPIGrid(data.KPIs),
			html.Toolbar(tr, Path, data.Query, models.TaskStatuses),
			table.Render(tr, Columns(tr), data.Rows, tr.T("table.empty")),
		).Render(ctx, w)
	})
}
