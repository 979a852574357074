package customers

import (
	"context"

	"effix/infrastructure/sqlite"
	"effix/models"
)

// LoadCustomers returns every customer in fixture order.
func LoadCustomers(ctx context.Context, db *sqlite.DB) ([]models.Customer, error) {
	return sqlite.SelectInFixtureOrder[models.Customer](ctx, db)
}
