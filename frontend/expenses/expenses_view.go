package expenses

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"effix/frontend/exports"
	"effix/frontend/shared/html"
	"effix/frontend/shared/table"
	"effix/infrastructure/i18n"
	"effix/models"
)

const (
	Path    = "/expenses"
	ModalID = "new-expense"
)

var Filter = table.Filter[models.Expense]{
	Fields: []func(models.Expense) string{
		func(e models.Expense) string { return e.Category },
		func(e models.Expense) string { return e.Description },
		func(e models.Expense) string { return e.Customer },
	},
	Status: func(e models.Expense) string { return e.Status },
}

var Dataset = exports.Dataset[models.Expense]{
	Name:    "expenses",
	Path:    Path,
	Load:    LoadExpenses,
	Filter:  Filter,
	Columns: Columns,
}

func StatusVariant(status string) html.Variant {
	switch status {
	case models.ExpenseApproved:
		return html.VariantSuccess
	case models.ExpensePending:
		return html.VariantWarning
	case models.ExpenseRejected:
		return html.VariantDanger
	case models.ExpenseReimbursed:
		return html.VariantInfo
	}
	return html.VariantDefault
}

func Columns(tr *i18n.Translator) []table.Column[models.Expense] {
	return []table.Column[models.Expense]{
		{Key: "category", Title: "table.category", Text: func(e models.Expense) string { return e.Category }},
		{Key: "description", Title: "table.description", Text: func(e models.Expense) string { return e.Description }},
		{
			Key:   "amount",
			Title: "table.amount",
			Text:  func(e models.Expense) string { return tr.Money(e.AmountCents) },
			Render: func(e models.Expense) templ.Component {
				return html.Emphasis("amount", tr.Money(e.AmountCents))
			},
		},
		{Key: "date", Title: "table.date", Text: func(e models.Expense) string { return tr.Date(e.Date) }},
		{
			Key:   "project",
			Title: "table.project",
			Text:  func(e models.Expense) string { return e.Project },
			Render: func(e models.Expense) templ.Component {
				return html.Badge(tr, e.Project, html.VariantSuccess)
			},
		},
		{
			Key:   "customer",
			Title: "table.customer",
			Text:  func(e models.Expense) string { return e.Customer },
			Render: func(e models.Expense) templ.Component {
				return html.Avatar(html.FirstLetter(e.Customer), "gray", e.Customer)
			},
		},
		{
			Key:   "status",
			Title: "table.status",
			Text:  func(e models.Expense) string { return e.Status },
			Render: func(e models.Expense) templ.Component {
				return html.Badge(tr, e.Status, StatusVariant(e.Status))
			},
		},
		{
			Key:   "actions",
			Title: "table.actions",
			Render: func(models.Expense) templ.Component {
				return html.ActionsMenu(tr)
			},
		},
	}
}

// Sum splits the full expense list into the dashboard buckets. Not invoiced
// counts billable expenses that have no invoice yet.
func Sum(all []models.Expense) Totals {
	amount := func(e models.Expense) int64 { return e.AmountCents }
	return Totals{
		Total:       table.Sum(all, amount, nil),
		Billable:    table.Sum(all, amount, func(e models.Expense) bool { return e.Billable }),
		NonBillable: table.Sum(all, amount, func(e models.Expense) bool { return !e.Billable }),
		NotInvoiced: table.Sum(all, amount, func(e models.Expense) bool { return e.Billable && !e.Invoiced }),
		Billed:      table.Sum(all, amount, func(e models.Expense) bool { return e.Invoiced }),
	}
}

func KPIs(tr *i18n.Translator, all []models.Expense) []html.KPI {
	t := Sum(all)
	return []html.KPI{
		{Title: tr.T("kpi.total.expenses"), Value: tr.Money(t.Total), Color: "blue", Icon: "💰"},
		{Title: tr.T("kpi.billable.expenses"), Value: tr.Money(t.Billable), Color: "green", Icon: "📄"},
		{Title: tr.T("kpi.non.billable"), Value: tr.Money(t.NonBillable), Color: "orange", Icon: "⚠️"},
		{Title: tr.T("kpi.not.invoiced"), Value: tr.Money(t.NotInvoiced), Color: "purple", Icon: "⏰"},
		{Title: tr.T("kpi.billed"), Value: tr.Money(t.Billed), Color: "red", Icon: "✅"},
	}
}

func NewExpenseModal(tr *i18n.Translator, f ExpenseForm) templ.Component {
	return html.Modal(tr, html.ModalForm{
		ID:     ModalID,
		Title:  tr.T("form.expense.title"),
		Action: Path + "/new",
		Fields: []html.Field{
			{Name: "company_name", Label: tr.T("form.company.name"), Value: f.CompanyName, Placeholder: "Starlink", Wide: true},
			{Name: "note", Label: tr.T("form.note"), Type: html.FieldTextarea, Value: f.Note},
			{Name: "category", Label: tr.T("form.category"), Type: html.FieldSelect, Value: f.Category, Options: CategoryOptions},
			{Name: "date", Label: tr.T("form.date"), Type: html.FieldDate, Value: f.Date},
			{Name: "amount", Label: tr.T("form.amount"), Type: html.FieldNumber, Value: f.Amount, Placeholder: "890.00"},
			{Name: "currency", Label: tr.T("form.currency"), Type: html.FieldSelect, Value: f.Currency, Options: CurrencyOptions},
			{Name: "customer", Label: tr.T("form.customer"), Type: html.FieldSelect, Value: f.Customer, Options: CustomerOptions},
		},
	})
}

func ExpensesPage(tr *i18n.Translator, data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return html.Stack(
			html.PageHeader(tr.T("expenses.title"),
				html.Button{Label: tr.T("button.export"), Href: html.ExportHref(Path, data.Query)},
				html.Button{Label: tr.T("button.import.expenses")},
				html.Button{Label: tr.T("button.record.expenses"), ModalID: ModalID, Primary: true},
			),
			html.KPIGrid(data.KPIs),
			html.Toolbar(tr, Path, data.Query, models.ExpenseStatuses),
			table.Render(tr, Columns(tr), data.Rows, tr.T("table.empty")),
			NewExpenseModal(tr, data.Form),
		).Render(ctx, w)
	})
}
