package customers

import (
	"effix/frontend/shared/html"
	"effix/frontend/shared/table"
	"effix/models"
)

type PageData struct {
	Query table.Query
	Rows  []models.Customer
	KPIs  []html.KPI
	Form  CustomerForm
}

// CustomerForm is the new-customer modal. It is logged, never stored.
type CustomerForm struct {
	CustomerName    string `json:"customer_name"`
	CompanyName     string `json:"company_name"`
	VATNumber       string `json:"vat_number"`
	Website         string `json:"website"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Currency        string `json:"currency"`
	DefaultLanguage string `json:"default_language"`
	Groups          string `json:"groups"`
	Address         string `json:"address"`
	Country         string `json:"country"`
	State           string `json:"state"`
	City            string `json:"city"`
	ZipCode         string `json:"zip_code"`
}

var (
	CurrencyOptions = []string{"USD", "EUR", "GBP"}
	LanguageOptions = []string{"English", "Arabic", "Spanish"}
	GroupOptions    = []string{"b2b customers groups", "b2c customers groups"}
	CountryOptions  = []string{"United State", "Canada", "United Kingdom"}
	StateOptions    = []string{"New York", "California", "Texas"}
	CityOptions     = []string{"Lavtia", "New York City", "Buffalo"}
)

// DefaultCustomerForm is the modal's initial state.
func DefaultCustomerForm() CustomerForm {
	return CustomerForm{
		Currency:        "USD",
		DefaultLanguage: "English",
		Groups:          "b2b customers groups",
		Country:         "United State",
		State:           "New York",
		City:            "Lavtia",
	}
}
