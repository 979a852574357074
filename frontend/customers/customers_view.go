package customers

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
	Path    = "/customers"
	ModalID = "new-customer"
)

var Filter = table.Filter[models.Customer]{
	Fields: []func(models.Customer) string{
		func(c models.Customer) string { return c.Name },
		func(c models.Customer) string { return c.Company },
		func(c models.Customer) string { return c.Email },
	},
	Status: func(c models.Customer) string { return c.Status },
}

var Dataset = exports.Dataset[models.Customer]{
	Name:    "customers",
	Path:    Path,
	Load:    LoadCustomers,
	Filter:  Filter,
	Columns: Columns,
}

func StatusVariant(status string) html.Variant {
	if status == models.CustomerActive {
		return html.VariantSuccess
	}
	return html.VariantDanger
}

func Columns(tr *i18n.Translator) []table.Column[models.Customer] {
	return []table.Column[models.Customer]{
		{
			Key:   "name",
			Title: "table.customer",
			Text:  func(c models.Customer) string { return c.Name },
			Render: func(c models.Customer) templ.Component {
				return html.Avatar(html.Initials(c.Name), "gradient", c.Name, c.Country)
			},
		},
		{Key: "phone", Title: "table.mobile", Text: func(c models.Customer) string { return c.Phone }},
		{Key: "email", Title: "table.email", Text: func(c models.Customer) string { return c.Email }},
		{
			Key:   "status",
			Title: "table.status",
			Text:  func(c models.Customer) string { return c.Status },
			Render: func(c models.Customer) templ.Component {
				return html.Badge(tr, c.Status, StatusVariant(c.Status))
			},
		},
		{
			Key:   "company",
			Title: "table.company",
			Text:  func(c models.Customer) string { return c.Company },
			Render: func(c models.Customer) templ.Component {
				return html.Badge(tr, c.Company, html.VariantDefault)
			},
		},
		{
			Key:   "actions",
			Title: "table.actions",
			Render: func(models.Customer) templ.Component {
				return html.ActionsMenu(tr)
			},
		},
	}
}

func KPIs(tr *i18n.Translator, all []models.Customer) []html.KPI {
	status := func(c models.Customer) string { return c.Status }
	return []html.KPI{
		{Title: tr.T("kpi.total.customers"), Value: html.PaddedCount(len(all)), Color: "blue", Icon: "👥"},
		{Title: tr.T("kpi.active.customers"), Value: html.PaddedCount(table.Count(all, status, models.CustomerActive)), Color: "green", Icon: "✔"},
		{Title: tr.T("kpi.inactive.customers"), Value: html.PaddedCount(table.Count(all, status, models.CustomerInactive)), Color: "red", Icon: "!"},
	}
}

// NewCustomerModal is the create form dialog.
func NewCustomerModal(tr *i18n.Translator, f CustomerForm) templ.Component {
	return html.Modal(tr, html.ModalForm{
		ID:     ModalID,
		Title:  tr.T("form.customer.title"),
		Action: Path + "/new",
		Fields: []html.Field{
			{Name: "customer_name", Label: tr.T("form.customer.name"), Value: f.CustomerName, Placeholder: "John Doe"},
			{Name: "company_name", Label: tr.T("form.company.name"), Value: f.CompanyName, Placeholder: "Starlink"},
			{Name: "vat_number", Label: tr.T("form.vat.number"), Value: f.VATNumber},
			{Name: "website", Label: tr.T("form.website"), Value: f.Website, Placeholder: "https://"},
			{Name: "email", Label: tr.T("form.email"), Type: html.FieldEmail, Value: f.Email},
			{Name: "phone", Label: tr.T("form.phone"), Value: f.Phone},
			{Name: "currency", Label: tr.T("form.currency"), Type: html.FieldSelect, Value: f.Currency, Options: CurrencyOptions},
			{Name: "default_language", Label: tr.T("form.default.language"), Type: html.FieldSelect, Value: f.DefaultLanguage, Options: LanguageOptions},
			{Name: "groups", Label: tr.T("form.groups"), Type: html.FieldSelect, Value: f.Groups, Options: GroupOptions},
			{Name: "address", Label: tr.T("form.address"), Type: html.FieldTextarea, Value: f.Address},
			{Name: "country", Label: tr.T("form.country"), Type: html.FieldSelect, Value: f.Country, Options: CountryOptions},
			{Name: "state", Label: tr.T("form.state"), Type: html.FieldSelect, Value: f.State, Options: StateOptions},
			{Name: "city", Label: tr.T("form.city"), Type: html.FieldSelect, Value: f.City, Options: CityOptions},
			{Name: "zip_code", Label: tr.T("form.zip.code"), Value: f.ZipCode},
		},
	})
}

func CustomersPage(tr *i18n.Translator, data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return html.Stack(
			html.PageHeader(tr.T("customers.title"),
				html.Button{Label: tr.T("button.export"), Href: html.ExportHref(Path, data.Query)},
				html.Button{Label: tr.T("button.import.customers")},
				html.Button{Label: tr.T("button.new.customer"), ModalID: ModalID, Primary: true},
			),
			html.KPIGrid(data.KPIs),
			html.Toolbar(tr, Path, data.Query, models.CustomerStatuses),
			table.Render(tr, Columns(tr), data.Rows, tr.T("table.empty")),
			NewCustomerModal(tr, data.Form),
		).Render(ctx, w)
	})
}
