package leads

import (
	"effix/frontend/shared/html"
	"effix/frontend/shared/table"
	"effix/models"
)

type PageData struct {
	Query table.Query
	Rows  []models.Lead
	KPIs  []html.KPI
}
