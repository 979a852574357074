package projects

import (
	"effix/frontend/shared/html"
	"effix/frontend/shared/table"
	"effix/models"
)

type PageData struct {
	Query table.Query
	Rows  []models.Project
	KPIs  []html.KPI
	Form  ProjectForm
}

// ProjectForm is the add-project modal. It is logged, never stored.
type ProjectForm struct {
	ProjectName    string   `json:"project_name"`
	Customer       string   `json:"customer"`
	BillingType    string   `json:"billing_type"`
	Status         string   `json:"status"`
	EstimatedHours string   `json:"estimated_hours"`
	StartDate      string   `json:"start_date"`
	Deadline       string   `json:"deadline"`
	RatePerHour    string   `json:"rate_per_hour"`
	Description    string   `json:"description"`
	Members        []string `json:"members"`
	Tags           string   `json:"tags"`
	SendEmail      bool     `json:"send_email"`
}

var (
	BillingTypeOptions = []string{"Project hours", "Fixed rate", "Task hours"}
	CustomerOptions    = []string{"TechCorp Solutions", "InnovateTech Inc", "GreenTech Solutions", "FutureWare Systems"}
	MemberOptions      = []string{"John Smith", "Sarah Johnson", "Mike Chen", "Emily Davis", "Alex Rodriguez"}
)

func DefaultProjectForm() ProjectForm {
	return ProjectForm{
		BillingType: "Project hours",
		Status:      models.ProjectInProgress,
	}
}
