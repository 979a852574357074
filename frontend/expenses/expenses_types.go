package expenses

import (
	"effix/frontend/shared/html"
	"effix/frontend/shared/table"
	"effix/models"
)

type PageData struct {
	Query table.Query
	Rows  []models.Expense
	KPIs  []html.KPI
	Form  ExpenseForm
}

// Totals are expense sums in cents.
type Totals struct {
	Total       int64
	Billable    int64
	NonBillable int64
	NotInvoiced int64
	Billed      int64
}

// ExpenseForm is the record-expense modal. It is logged, never stored.
type ExpenseForm struct {
	CompanyName string `json:"company_name"`
	Note        string `json:"note"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Customer    string `json:"customer"`
}

var (
	CategoryOptions = []string{"IT and Internet Expenses", "Office Supplies", "Travel", "Meals & Entertainment"}
	CurrencyOptions = []string{"USA", "EUR", "GBP"}
	CustomerOptions = []string{"Mikel Jordan", "John Smith", "Sarah Johnson"}
)

func DefaultExpenseForm() ExpenseForm {
	return ExpenseForm{
		Category: "IT and Internet Expenses",
		Currency: "USA",
		Customer: "Mikel Jordan",
	}
}
