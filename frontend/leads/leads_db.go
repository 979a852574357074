package leads

import (
	"context"

	"effix/infrastructure/sqlite"
	"effix/models"
)

// LoadLeads returns every lead in fixture order.
func LoadLeads(ctx context.Context, db *sqlite.DB) ([]models.Lead, error) {
	return sqlite.SelectInFixtureOrder[models.Lead](ctx, db)
}
