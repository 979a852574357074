package fixtures

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"effix/infrastructure/sqlite"
	"effix/models"
)

// Counts is the number of rows written per table by Seed.
type Counts struct {
	Leads     int
	Customers int
	Expenses  int
	Invoices  int
	Projects  int
	Tasks     int
}

// Seed replaces the contents of every record table with the fixtures.
// Running it twice leaves the same rows behind.
func Seed(ctx context.Context, db *sqlite.DB) (Counts, error) {
	leads := Leads()
	for i := range leads {
		leads[i].Position = i
	}
	customers := Customers()
	for i := range customers {
		customers[i].Position = i
	}
	expenses := Expenses()
	for i := range expenses {
		expenses[i].Position = i
	}
	invoices := Invoices()
	for i := range invoices {
		invoices[i].Position = i
	}
	projects := Projects()
	for i := range projects {
		projects[i].Position = i
	}
	tasks := Tasks()
	for i := range tasks {
		tasks[i].Position = i
	}

	err := db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		if err := replaceAll(ctx, tx, (*models.Lead)(nil), &leads); err != nil {
			return fmt.Errorf("seed leads: %w", err)
		}
		if err := replaceAll(ctx, tx, (*models.Customer)(nil), &customers); err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}
		if err := replaceAll(ctx, tx, (*models.Expense)(nil), &expenses); err != nil {
			return fmt.Errorf("seed expenses: %w", err)
		}
		if err := replaceAll(ctx, tx, (*models.Invoice)(nil), &invoices); err != nil {
			return fmt.Errorf("seed invoices: %w", err)
		}
		if err := replaceAll(ctx, tx, (*models.Project)(nil), &projects); err != nil {
			return fmt.Errorf("seed projects: %w", err)
		}
		if err := replaceAll(ctx, tx, (*models.Task)(nil), &tasks); err != nil {
			return fmt.Errorf("seed tasks: %w", err)
		}
		return nil
	})
	if err != nil {
		return Counts{}, err
	}

	return Counts{
		Leads:     len(leads),
		Customers: len(customers),
		Expenses:  len(expenses),
		Invoices:  len(invoices),
		Projects:  len(projects),
		Tasks:     len(tasks),
	}, nil
}

func replaceAll(ctx context.Context, tx bun.Tx, model any, rows any) error {
	if _, err := tx.NewDelete().Model(model).Where("1 = 1").Exec(ctx); err != nil {
		return err
	}
	_, err := tx.NewInsert().Model(rows).Exec(ctx)
	return err
}
