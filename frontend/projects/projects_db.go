package projects

import (
	"context"

	"effix/infrastructure/sqlite"
	"effix/models"
)

// LoadProjects returns every project in fixture order.
func LoadProjects(ctx context.Context, db *sqlite.DB) ([]models.Project, error) {
	return sqlite.SelectInFixtureOrder[models.Project](ctx, db)
}
