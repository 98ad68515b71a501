package storage

import (
	"context"
	"database/sql"
	"fmt"

	"wempy-orders/internal/domain"
)

// PostgresArchive records each submitted order for bookkeeping. It is
// write-only: there is no query surface over these tables.
type PostgresArchive struct {
	DB *sql.DB
}

func NewPostgresArchive(db *sql.DB) *PostgresArchive {
	return &PostgresArchive{DB: db}
}

func (a *PostgresArchive) SaveOrder(ctx context.Context, orderID int, order *domain.OrderRequest) error {
	tx, err := a.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin archive transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, customer_name, customer_phone, customer_address, notes, subtotal, delivery, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, orderID, order.Customer.Name, order.Customer.Phone, order.Customer.Address,
		order.Customer.Notes, order.Totals.Subtotal, order.Totals.Delivery, order.Totals.Total)
	if err != nil {
		return fmt.Errorf("failed to insert order %d: %w", orderID, err)
	}

	for _, item := range order.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, item_id, name, qty, price)
			VALUES ($1, $2, $3, $4, $5)
		`, orderID, item.ID, item.Name, item.Qty, item.Price)
		if err != nil {
			return fmt.Errorf("failed to insert item %q for order %d: %w", item.Name, orderID, err)
		}
	}

	return tx.Commit()
}
