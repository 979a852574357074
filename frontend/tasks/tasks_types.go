package tasks

import (
	"effix/frontend/shared/html"
	"effix/frontend/shared/table"
	"effix/models"
)

type PageData struct {
	Query table.Query
	Rows  []models.Task
	KPIs  []html.KPI
}

// Summary holds the task counters shown above the table.
type Summary struct {
	Total          int
	Completed      int
	InProgress     int
	Overdue        int
	CompletionRate int
}
