// Package fixtures holds the sample records every page is rendered from.
package fixtures

import (
	"time"

	"effix/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// Leads returns the lead fixtures in display order.
func Leads() []models.Lead {
	return []models.Lead{
		{ID: "1", Name: "John Abshire", Email: "john.abshire@gmail.com", Phone: "(555) 123-4567", Location: "New York, NY", Project: "Web Design", Status: models.LeadProposalSent, Source: "Google", Assigned: []string{"N", "S"}},
		{ID: "2", Name: "Dary Franecki", Email: "dary@example.com", Phone: "(555) 123-4567", Location: "New York, NY", Project: "App Design", Status: models.LeadNew, Source: "Dribble", Assigned: []string{"N", "S"}},
		{ID: "3", Name: "Tony Stark", Email: "tony@example.com", Phone: "(555) 123-4567", Location: "New York, NY", Project: "Design System", Status: models.LeadWorking, Source: "Behance", Assigned: []string{"N", "C"}},
		{ID: "4", Name: "Henry Cavel", Email: "henry@example.com", Phone: "(555) 123-4567", Location: "New York, NY", Project: "Logo Design", Status: models.LeadContacted, Source: "Google", Assigned: []string{"N", "S"}},
	}
}

// Customers returns the customer fixtures in display order.
func Customers() []models.Customer {
	return []models.Customer{
		{ID: "1", Name: "Elon Mask", Email: "elon@gmail.com", Phone: "(207) 444-2901", Country: "United State", Company: "Starlink", Status: models.CustomerActive},
		{ID: "2", Name: "Tony Stark", Email: "tony@gmail.com", Phone: "(207) 234-3214", Country: "Australia", Company: "Marvel", Status: models.CustomerInactive},
		{ID: "3", Name: "Henry Cavil", Email: "henry@gmail.com", Phone: "44-0343-234", Country: "England", Company: "BMW", Status: models.CustomerActive},
		{ID: "4", Name: "Mike Banner", Email: "mike@gmail.com", Phone: "(223) 323-7743", Country: "Canada", Company: "MBM", Status: models.CustomerActive},
	}
}

// Expenses returns the expense fixtures in display order.
func Expenses() []models.Expense {
	return []models.Expense{
		{ID: "1", Category: "Parking", Description: "I can say, This was such a tiny", AmountCents: 22000, Date: day(2025, time.April, 10), Project: "Build Website", Customer: "David", Status: models.ExpenseApproved, Billable: true, Invoiced: true},
		{ID: "2", Category: "Telephone", Description: "He taught us drawling,stretching a...", AmountCents: 98600, Date: day(2025, time.April, 12), Project: "Brand Design", Customer: "David", Status: models.ExpensePending, Billable: true},
		{ID: "3", Category: "Insurance", Description: "March here,who had followed him...", AmountCents: 107310, Date: day(2025, time.April, 13), Project: "App Design", Customer: "Ernser", Status: models.ExpenseReimbursed},
		{ID: "4", Category: "Travel Expenses", Description: "I did, there no harm in trying so", AmountCents: 93600, Date: day(2025, time.April, 14), Project: "Brand Design", Customer: "Ernser", Status: models.ExpenseApproved, Billable: true},
		{ID: "5", Category: "Meals", Description: "Cat's head began fading away time", AmountCents: 92300, Date: day(2025, time.April, 15), Project: "Build Website", Customer: "Ernser", Status: models.ExpenseRejected},
	}
}

// Invoices returns the invoice fixtures in display order.
func Invoices() []models.Invoice {
	return []models.Invoice{
		{ID: "1", Number: "#CIV-012001", Customer: "Mikel", Email: "mikel@gmail.com", StartDate: day(2025, time.April, 5), EndDate: day(2025, time.April, 10), AmountCents: 123400, TotalTaxCents: 4500, Tags: []string{"bug", "review"}, Status: models.InvoicePaid},
		{ID: "2", Number: "#CIV-012002", Customer: "David", Email: "david@gmail.com", StartDate: day(2025, time.April, 7), EndDate: day(2025, time.April, 12), AmountCents: 243200, TotalTaxCents: 4500, Tags: []string{"branding", "todo"}, Status: models.InvoicePartiallyPaid},
		{ID: "3", Number: "#CIV-012003", Customer: "Smith", Email: "smith@gmail.com", StartDate: day(2025, time.April, 10), EndDate: day(2025, time.April, 17), AmountCents: 110200, TotalTaxCents: 1000, Tags: []string{"follow up", "logo"}, Status: models.InvoiceDraft},
	}
}

// Projects returns the project fixtures in display order.
func Projects() []models.Project {
	return []models.Project{
		{ID: "1", Name: "Website Redesign", Client: "TechCorp Solutions", Status: models.ProjectInProgress, StartDate: day(2024, time.January, 1), Deadline: day(2024, time.March, 15), Progress: 65, BudgetCents: 2500000, SpentCents: 1625000, Team: []string{"John Smith", "Sarah Johnson", "Mike Chen"}, BillingType: "Fixed Price", EstimatedHours: 300, ActualHours: 195},
		{ID: "2", Name: "Mobile App Development", Client: "InnovateTech Inc", Status: models.ProjectPlanning, StartDate: day(2024, time.February, 1), Deadline: day(2024, time.June, 30), Progress: 15, BudgetCents: 5000000, SpentCents: 750000, Team: []string{"Emily Davis", "Alex Rodriguez"}, BillingType: "Hourly", EstimatedHours: 600, ActualHours: 89},
		{ID: "3", Name: "E-commerce Platform", Client: "GreenTech Solutions", Status: models.ProjectCompleted, StartDate: day(2023, time.September, 1), Deadline: day(2023, time.December, 31), Progress: 100, BudgetCents: 3500000, SpentCents: 3420000, Team: []string{"Mike Chen", "John Smith", "Sarah Johnson", "Emily Davis"}, BillingType: "Fixed Price", EstimatedHours: 450, ActualHours: 467},
		{ID: "4", Name: "CRM Integration", Client: "FutureWare Systems", Status: models.ProjectOnHold, StartDate: day(2024, time.January, 15), Deadline: day(2024, time.April, 30), Progress: 30, BudgetCents: 1800000, SpentCents: 540000, Team: []string{"Alex Rodriguez"}, BillingType: "Hourly", EstimatedHours: 200, ActualHours: 62},
	}
}

// Tasks returns the task fixtures in display order.
func Tasks() []models.Task {
	return []models.Task{
		{ID: "1", Title: "Design Landing Page", Description: "Create responsive landing page for new product launch", Assignee: "John Smith", Priority: models.PriorityHigh, Status: models.TaskInProgress, DueDate: day(2024, time.January, 15), Project: "Website Redesign", Progress: 65},
		{ID: "2", Title: "API Integration", Description: "Integrate payment gateway with existing system", Assignee: "Sarah Johnson", Priority: models.PriorityHigh, Status: models.TaskTodo, DueDate: day(2024, time.January, 20), Project: "E-commerce Platform", Progress: 0},
		{ID: "3", Title: "Database Optimization", Description: "Optimize database queries for better performance", Assignee: "Mike Chen", Priority: models.PriorityMedium, Status: models.TaskReview, DueDate: day(2024, time.January, 12), Project: "Performance Improvement", Progress: 90},
		{ID: "4", Title: "User Testing", Description: "Conduct user testing sessions for mobile app", Assignee: "Emily Davis", Priority: models.PriorityMedium, Status: models.TaskCompleted, DueDate: day(2024, time.January, 10), Project: "Mobile App", Progress: 100},
		{ID: "5", Title: "Security Audit", Description: "Perform comprehensive security audit", Assignee: "Alex Rodriguez", Priority: models.PriorityHigh, Status: models.TaskTodo, DueDate: day(2024, time.January, 25), Project: "Security Enhancement", Progress: 0},
	}
}
