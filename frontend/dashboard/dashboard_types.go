package dashboard

import (
	"effix/frontend/shared/html"
	"effix/models"
)

// RecentLeadsLimit is how many leads the dashboard lists.
const RecentLeadsLimit = 3

type PageData struct {
	LeadKPIs     []html.KPI
	CustomerKPIs []html.KPI
	ExpenseKPIs  []html.KPI
	RecentLeads  []models.Lead
}
