package invoices

import (
	"time"

	"effix/frontend/shared/html"
	"effix/frontend/shared/table"
	"effix/models"
)

type PageData struct {
	Query table.Query
	Rows  []models.Invoice
	KPIs  []html.KPI
}

// InvoiceDocument is the content of one printed invoice.
type InvoiceDocument struct {
	Number   string
	Customer string
	Email    string
	Period   string
	Amount   string
	TotalTax string
	Status   string
	Tags     []string
	Printed  time.Time
}
