package fixtures

import (
	"context"
	"fmt"

	"effix/infrastructure/sqlite"
)

// Open opens the database at path, applies the embedded migrations and seeds it.
func Open(ctx context.Context, path string) (*sqlite.DB, Counts, error) {
	db, err := sqlite.OpenDB(path)
	if err != nil {
		return nil, Counts{}, fmt.Errorf("open db: %w", err)
	}
	if err := sqlite.ApplyEmbeddedMigrations(ctx, db); err != nil {
		db.Close()
		return nil, Counts{}, fmt.Errorf("apply migrations: %w", err)
	}
	counts, err := Seed(ctx, db)
	if err != nil {
		db.Close()
		return nil, Counts{}, fmt.Errorf("seed fixtures: %w", err)
	}
	return db, counts, nil
}
