package tasks

import (
	"context"

	"effix/infrastructure/sqlite"
	"effix/models"
)

// LoadTasks returns every task in fixture order.
func LoadTasks(ctx context.Context, db *sqlite.DB) ([]models.Task, error) {
	return sqlite.SelectInFixtureOrder[models.Task](ctx, db)
}
