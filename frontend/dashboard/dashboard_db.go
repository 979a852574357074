package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"effix/frontend/customers"
	"effix/frontend/expenses"
	"effix/frontend/leads"
	"effix/infrastructure/sqlite"
	"effix/models"
)

type records struct {
	leads     []models.Lead
	customers []models.Customer
	expenses  []models.Expense
}

// loadRecords reads the three record sets the dashboard aggregates.
func loadRecords(ctx context.Context, db *sqlite.DB) (records, error) {
	var out records
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out.leads, err = leads.LoadLeads(ctx, db)
		return err
	})
	g.Go(func() error {
		var err error
		out.customers, err = customers.LoadCustomers(ctx, db)
		return err
	})
	g.Go(func() error {
		var err error
		out.expenses, err = expenses.LoadExpenses(ctx, db)
		return err
	})
	if err := g.Wait(); err != nil {
		return records{}, err
	}
	return out, nil
}
