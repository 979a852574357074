package invoices

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

const Path = "/invoices"

var Filter = table.Filter[models.Invoice]{
	Fields: []func(models.Invoice) string{
		func(i models.Invoice) string { return i.Number },
		func(i models.Invoice) string { return i.Customer },
		func(i models.Invoice) string { return i.Email },
	},
	Status: func(i models.Invoice) string { return i.Status },
}

var Dataset = exports.Dataset[models.Invoice]{
	Name:    "invoices",
	Path:    Path,
	Load:    LoadInvoices,
	Filter:  Filter,
	Columns: Columns,
}

func StatusVariant(status string) html.Variant {
	switch status {
	case models.InvoicePaid:
		return html.VariantSuccess
	case models.InvoicePartiallyPaid, models.InvoiceSent:
		return html.VariantInfo
	case models.InvoiceOverdue:
		return html.VariantDanger
	case models.InvoiceDraft:
		return html.VariantWarning
	}
	return html.VariantDefault
}

// PDFHref is the download link of one invoice.
func PDFHref(inv models.Invoice) string {
	return Path + "/" + inv.ID + ".pdf"
}

// Period formats the billing window as "start - end".
func Period(tr *i18n.Translator, inv models.Invoice) string {
	return tr.Date(inv.StartDate) + " - " + tr.Date(inv.EndDate)
}

func Columns(tr *i18n.Translator) []table.Column[models.Invoice] {
	return []table.Column[models.Invoice]{
		{
			Key:   "invoice",
			Title: "table.invoice",
			Text:  func(i models.Invoice) string { return i.Number },
			Render: func(i models.Invoice) templ.Component {
				return html.Emphasis("invoice-number", i.Number)
			},
		},
		{
			Key:   "customer",
			Title: "table.customer",
			Text:  func(i models.Invoice) string { return i.Customer },
			Render: func(i models.Invoice) templ.Component {
				return html.Avatar(html.FirstLetter(i.Customer), "blue", i.Customer, i.Email)
			},
		},
		{Key: "dates", Title: "table.dates", Text: func(i models.Invoice) string { return Period(tr, i) }},
		{Key: "amount", Title: "table.amount", Text: func(i models.Invoice) string { return tr.Money(i.AmountCents) }},
		{Key: "total_tax", Title: "table.total.tax", Text: func(i models.Invoice) string { return tr.Money(i.TotalTaxCents) }},
		{
			Key:   "tags",
			Title: "table.tags",
			Render: func(i models.Invoice) templ.Component {
				return html.Badges(tr, i.Tags, html.VariantInfo)
			},
		},
		{
			Key:   "status",
			Title: "table.status",
			Text:  func(i models.Invoice) string { return i.Status },
			Render: func(i models.Invoice) templ.Component {
				return html.Badge(tr, i.Status, StatusVariant(i.Status))
			},
		},
		{
			Key:   "actions",
			Title: "table.actions",
			Render: func(i models.Invoice) templ.Component {
				return html.ActionsMenu(tr, html.MenuLink{Label: tr.T("button.download.pdf"), Href: PDFHref(i)})
			},
		},
	}
}

// Ratio formats "<count>/<total>" with two-digit padding.
func Ratio(all []models.Invoice, status string) string {
	n := table.Count(all, func(i models.Invoice) string { return i.Status }, status)
	return html.PaddedCount(n) + "/" + html.PaddedCount(len(all))
}

func KPIs(tr *i18n.Translator, all []models.Invoice) []html.KPI {
	return []html.KPI{
		{Title: tr.T("invoice.paid"), Value: Ratio(all, models.InvoicePaid), Color: "green", Icon: "✅"},
		{Title: tr.T("invoice.partially"), Value: Ratio(all, models.InvoicePartiallyPaid), Color: "blue", Icon: "⏳"},
		{Title: tr.T("invoice.overdue"), Value: Ratio(all, models.InvoiceOverdue), Color: "red", Icon: "⚠️"},
		{Title: tr.T("invoice.draft"), Value: Ratio(all, models.InvoiceDraft), Color: "gray", Icon: "📝"},
	}
}

func InvoicesPage(tr *i18n.Translator, data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return html.Stack(
			html.PageHeader(tr.T("invoices.title"),
				html.Button{Label: tr.T("button.export"), Href: html.ExportHref(Path, data.Query)},
				html.Button{Label: tr.T("button.batch.payment")},
				html.Button{Label: tr.T("button.new.invoice"), Primary: true},
			),
			html.KPIGrid(data.KPIs),
			html.Toolbar(tr, Path, data.Query, models.InvoiceStatuses),
			table.Render(tr, Columns(tr), data.Rows, tr.T("table.empty")),
		).Render(ctx, w)
	})
}
