package dashboard

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"effix/frontend/customers"
	"effix/frontend/expenses"
	"effix/frontend/leads"
	"effix/frontend/shared/html"
	"effix/frontend/shared/table"
	"effix/infrastructure/i18n"
	"effix/models"
)

const Path = "/"

// LeadKPIs counts the four pipeline stages shown on the dashboard.
func LeadKPIs(tr *i18n.Translator, all []models.Lead) []html.KPI {
	status := func(l models.Lead) string { return l.Status }
	count := func(s string) string { return html.PaddedCount(table.Count(all, status, s)) }
	return []html.KPI{
		{Title: tr.T("dashboard.leads.new"), Value: count(models.LeadNew), Color: "blue", Icon: "🆕"},
		{Title: tr.T("dashboard.leads.contacted"), Value: count(models.LeadContacted), Color: "orange", Icon: "📞"},
		{Title: tr.T("dashboard.leads.qualified"), Value: count(models.LeadQualified), Color: "green", Icon: "⭐"},
		{Title: tr.T("dashboard.leads.working"), Value: count(models.LeadWorking), Color: "purple", Icon: "🛠️"},
	}
}

func build(tr *i18n.Translator, recs records) PageData {
	recent := recs.leads
	if len(recent) > RecentLeadsLimit {
		recent = recent[:RecentLeadsLimit]
	}
	return PageData{
		LeadKPIs:     LeadKPIs(tr, recs.leads),
		CustomerKPIs: customers.KPIs(tr, recs.customers),
		ExpenseKPIs:  expenses.KPIs(tr, recs.expenses),
		RecentLeads:  recent,
	}
}

func DashboardPage(tr *i18n.Translator, data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return html.Stack(
			html.PageHeader(tr.T("dashboard.title")),
			html.KPIGrid(data.LeadKPIs),
			html.KPIGrid(data.CustomerKPIs),
			html.KPIGrid(data.ExpenseKPIs),
			html.Section(tr.T("dashboard.recent.leads"),
				table.Render(tr, leads.Columns(tr), data.RecentLeads, tr.T("table.empty"))),
		).Render(ctx, w)
	})
}
