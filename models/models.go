package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Lead statuses.
const (
	LeadNew          = "New"
	LeadContacted    = "Contacted"
	LeadQualified    = "Qualified"
	LeadWorking      = "Working"
	LeadProposalSent = "Proposal Sent"
	LeadNegotiation  = "Negotiation"
	LeadWon          = "Won"
	LeadLost         = "Lost"
)

var LeadStatuses = []string{LeadNew, LeadContacted, LeadQualified, LeadWorking, LeadProposalSent, LeadNegotiation, LeadWon, LeadLost}

// Customer statuses.
const (
	CustomerActive   = "Active"
	CustomerInactive = "Inactive"
)

var CustomerStatuses = []string{CustomerActive, CustomerInactive}

// Expense statuses.
const (
	ExpensePending    = "Pending"
	ExpenseApproved   = "Approved"
	ExpenseRejected   = "Rejected"
	ExpenseReimbursed = "Reimbursed"
)

var ExpenseStatuses = []string{ExpensePending, ExpenseApproved, ExpenseRejected, ExpenseReimbursed}

// Invoice statuses.
const (
	InvoiceDraft         = "Draft"
	InvoiceSent          = "Sent"
	InvoicePaid          = "Paid"
	InvoicePartiallyPaid = "Partially Paid"
	InvoiceOverdue       = "Overdue"
)

var InvoiceStatuses = []string{InvoiceDraft, InvoiceSent, InvoicePaid, InvoicePartiallyPaid, InvoiceOverdue}

// Project statuses.
const (
	ProjectPlanning   = "Planning"
	ProjectInProgress = "In Progress"
	ProjectOnHold     = "On Hold"
	ProjectCompleted  = "Completed"
	ProjectCancelled  = "Cancelled"
)

var ProjectStatuses = []string{ProjectPlanning, ProjectInProgress, ProjectOnHold, ProjectCompleted, ProjectCancelled}

// Task statuses and priorities.
const (
	TaskTodo       = "Todo"
	TaskInProgress = "In Progress"
	TaskReview     = "Review"
	TaskCompleted  = "Completed"

	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

var TaskStatuses = []string{TaskTodo, TaskInProgress, TaskReview, TaskCompleted}

// Lead is a prospective customer tracked by the sales pipeline.
type Lead struct {
	bun.BaseModel `bun:"table:leads,alias:l"`

	ID       string   `bun:"id,pk"`
	Position int      `bun:"position,notnull"`
	Name     string   `bun:"name,notnull"`
	Email    string   `bun:"email,notnull"`
	Phone    string   `bun:"phone,notnull"`
	Location string   `bun:"location,notnull"`
	Project  string   `bun:"project,notnull"`
	Status   string   `bun:"status,notnull"`
	Source   string   `bun:"source,notnull"`
	Assigned []string `bun:"assigned"`
}

// Customer is an account with contact details.
type Customer struct {
	bun.BaseModel `bun:"table:customers,alias:c"`

	ID       string `bun:"id,pk"`
	Position int    `bun:"position,notnull"`
	Name     string `bun:"name,notnull"`
	Email    string `bun:"email,notnull"`
	Phone    string `bun:"phone,notnull"`
	Country  string `bun:"country,notnull"`
	Company  string `bun:"company,notnull"`
	Status   string `bun:"status,notnull"`
}

// Expense is a recorded cost. Amounts are in cents.
type Expense struct {
	bun.BaseModel `bun:"table:expenses,alias:e"`

	ID          string    `bun:"id,pk"`
	Position    int       `bun:"position,notnull"`
	Category    string    `bun:"category,notnull"`
	Description string    `bun:"description,notnull"`
	AmountCents int64     `bun:"amount_cents,notnull"`
	Date        time.Time `bun:"date,notnull"`
	Project     string    `bun:"project,notnull"`
	Customer    string    `bun:"customer,notnull"`
	Status      string    `bun:"status,notnull"`
	Billable    bool      `bun:"billable,notnull"`
	Invoiced    bool      `bun:"invoiced,notnull"`
}

// Invoice is a bill sent to a customer. Customer is free text.
type Invoice struct {
	bun.BaseModel `bun:"table:invoices,alias:i"`

	ID            string    `bun:"id,pk"`
	Position      int       `bun:"position,notnull"`
	Number        string    `bun:"number,notnull"`
	Customer      string    `bun:"customer,notnull"`
	Email         string    `bun:"email,notnull"`
	StartDate     time.Time `bun:"start_date,notnull"`
	EndDate       time.Time `bun:"end_date,notnull"`
	AmountCents   int64     `bun:"amount_cents,notnull"`
	TotalTaxCents int64     `bun:"total_tax_cents,notnull"`
	Tags          []string  `bun:"tags"`
	Status        string    `bun:"status,notnull"`
}

// Project is client work with a budget and a team.
type Project struct {
	bun.BaseModel `bun:"table:projects,alias:p"`

	ID             string    `bun:"id,pk"`
	Position       int       `bun:"position,notnull"`
	Name           string    `bun:"name,notnull"`
	Client         string    `bun:"client,notnull"`
	Status         string    `bun:"status,notnull"`
	StartDate      time.Time `bun:"start_date,notnull"`
	Deadline       time.Time `bun:"deadline,notnull"`
	Progress       int       `bun:"progress,notnull"`
	BudgetCents    int64     `bun:"budget_cents,notnull"`
	SpentCents     int64     `bun:"spent_cents,notnull"`
	Team           []string  `bun:"team"`
	BillingType    string    `bun:"billing_type,notnull"`
	EstimatedHours int       `bun:"estimated_hours,notnull"`
	ActualHours    int       `bun:"actual_hours,notnull"`
}

// Task is a unit of work assigned to one person.
type Task struct {
	bun.BaseModel `bun:"table:tasks,alias:t"`

	ID          string    `bun:"id,pk"`
	Position    int       `bun:"position,notnull"`
	Title       string    `bun:"title,notnull"`
	Description string    `bun:"description,notnull"`
	Assignee    string    `bun:"assignee,notnull"`
	Priority    string    `bun:"priority,notnull"`
	Status      string    `bun:"status,notnull"`
	DueDate     time.Time `bun:"due_date,notnull"`
	Project     string    `bun:"project,notnull"`
	Progress    int       `bun:"progress,notnull"`
}
