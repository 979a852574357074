package http

import (
	"github.com/go-chi/chi/v5"

	"effix/frontend/customers"
	"effix/frontend/dashboard"
	"effix/frontend/expenses"
	"effix/frontend/exports"
	"effix/frontend/invoices"
	"effix/frontend/leads"
	"effix/frontend/projects"
	"effix/frontend/tasks"
	"effix/infrastructure/navigation"
)

// Pages that have no screen of their own yet show the dashboard.
var dashboardAliases = []string{"/sales", "/contracts", "/support", "/settings"}

// RegisterNavigation fills the sidebar in display order.
func (s *Server) RegisterNavigation() {
	for _, e := range []navigation.Entry{
		{Code: "DASHBOARD", LabelKey: "sidebar.dashboard", Path: dashboard.Path, Section: navigation.SectionMain, Icon: "home"},
		{Code: "CUSTOMERS", LabelKey: "sidebar.customers", Path: customers.Path, Section: navigation.SectionMain, Icon: "users"},
		{Code: "SALES", LabelKey: "sidebar.sales", Path: "/sales", Section: navigation.SectionMain, Icon: "cart"},
		{Code: "EXPENSES", LabelKey: "sidebar.expenses", Path: expenses.Path, Section: navigation.SectionMain, Icon: "card"},
		{Code: "CONTRACTS", LabelKey: "sidebar.contracts", Path: "/contracts", Section: navigation.SectionMain, Icon: "file"},
		{Code: "PROJECTS", LabelKey: "sidebar.projects", Path: projects.Path, Section: navigation.SectionMain, Icon: "folder"},
		{Code: "TASKS", LabelKey: "sidebar.tasks", Path: tasks.Path, Section: navigation.SectionMain, Icon: "check"},
		{Code: "LEADS", LabelKey: "sidebar.leads", Path: leads.Path, Section: navigation.SectionMain, Icon: "target"},
		{Code: "INVOICES", LabelKey: "sidebar.invoices", Path: invoices.Path, Section: navigation.SectionMain, Icon: "receipt"},
		{Code: "SUPPORT", LabelKey: "sidebar.support", Path: "/support", Section: navigation.SectionOthers, Icon: "headset"},
		{Code: "SETTINGS", LabelKey: "sidebar.settings", Path: "/settings", Section: navigation.SectionOthers, Icon: "gear"},
	} {
		s.Nav.Add(e)
	}
}

// RegisterPageRoutes registers the page, export and form routes.
func (s *Server) RegisterPageRoutes(r chi.Router) chi.Router {
	home := dashboard.DashboardPageQueryHandler(s.DB, s.Nav)
	r.Get(dashboard.Path, home)
	for _, p := range dashboardAliases {
		r.Get(p, home)
	}

	r.Get(leads.Path, leads.LeadsPageQueryHandler(s.DB, s.Nav))
	r.Get(leads.Dataset.CSVPath(), exports.ExportCSVQueryHandler(s.DB, leads.Dataset))

	r.Get(customers.Path, customers.CustomersPageQueryHandler(s.DB, s.Nav))
	r.Get(customers.Dataset.CSVPath(), exports.ExportCSVQueryHandler(s.DB, customers.Dataset))
	r.Post(customers.Path+"/new", customers.CreateCustomerCommandHandler(s.Audit))

	r.Get(expenses.Path, expenses.ExpensesPageQueryHandler(s.DB, s.Nav))
	r.Get(expenses.Dataset.CSVPath(), exports.ExportCSVQueryHandler(s.DB, expenses.Dataset))
	r.Post(expenses.Path+"/new", expenses.CreateExpenseCommandHandler(s.Audit))

	r.Get(invoices.Path, invoices.InvoicesPageQueryHandler(s.DB, s.Nav))
	r.Get(invoices.Dataset.CSVPath(), exports.ExportCSVQueryHandler(s.DB, invoices.Dataset))
	r.Get(invoices.Path+"/{id}.pdf", invoices.InvoicePDFQueryHandler(s.DB, s.Now))

	r.Get(projects.Path, projects.ProjectsPageQueryHandler(s.DB, s.Nav))
	r.Get(projects.Dataset.CSVPath(), exports.ExportCSVQueryHandler(s.DB, projects.Dataset))
	r.Post(projects.Path+"/new", projects.CreateProjectCommandHandler(s.Audit))

	r.Get(tasks.Path, tasks.TasksPageQueryHandler(s.DB, s.Nav, s.Now))
	r.Get(tasks.Dataset.CSVPath(), exports.ExportCSVQueryHandler(s.DB, tasks.Dataset))
	return r
}
