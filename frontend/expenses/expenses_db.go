package expenses

import (
	"context"

	"effix/infrastructure/sqlite"
	"effix/models"
)

// LoadExpenses returns every expense in fixture order.
func LoadExpenses(ctx context.Context, db *sqlite.DB) ([]models.Expense, error) {
	return sqlite.SelectInFixtureOrder[models.Expense](ctx, db)
}
