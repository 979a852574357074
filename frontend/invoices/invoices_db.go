package invoices

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"effix/infrastructure/sqlite"
	"effix/models"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

// LoadInvoices returns every invoice in fixture order.
func LoadInvoices(ctx context.Context, db *sqlite.DB) ([]models.Invoice, error) {
	return sqlite.SelectInFixtureOrder[models.Invoice](ctx, db)
}

func LoadInvoiceByID(ctx context.Context, db *sqlite.DB, id string) (models.Invoice, error) {
	var inv models.Invoice
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&inv).Where("id = ?", id).Limit(1).Scan(ctx)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Invoice{}, ErrInvoiceNotFound
	}
	if err != nil {
		return models.Invoice{}, fmt.Errorf("load invoice %s: %w", id, err)
	}
	return inv, nil
}
