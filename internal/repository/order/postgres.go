package order

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"centrodrinks/internal/domain"
)

// DBPool matches the methods from *pgxpool.Pool the repository uses.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type postgresRepo struct {
	pool DBPool
}

func NewPostgres(pool DBPool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) CreateAndClearCart(ctx context.Context, o domain.Order, cartItemIDs []string) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const insertOrder = `
INSERT INTO orders (owner_uid, total, delivery_address, status)
VALUES ($1, $2, $3, $4)
RETURNING id::text, created_at
`
	created := o
	if err := tx.QueryRow(ctx, insertOrder,
		o.OwnerUID,
		o.Total.String(),
		o.DeliveryAddress,
		string(o.Status),
	).Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, err
	}

	const insertLine = `
INSERT INTO order_lines (order_id, position, product_id, title, price, quantity)
VALUES ($1, $2, $3, $4, $5, $6)
`
	for i, line := range o.Lines {
		if _, err := tx.Exec(ctx, insertLine,
			created.ID, i, line.ProductID, line.Title, line.Price.String(), line.Quantity,
		); err != nil {
			return nil, err
		}
	}

	if len(cartItemIDs) > 0 {
		const clearCart = `
DELETE FROM cart_items
WHERE owner_uid = $1 AND id = ANY($2::uuid[])
`
		if _, err := tx.Exec(ctx, clearCart, o.OwnerUID, cartItemIDs); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *postgresRepo) ListByOwner(ctx context.Context, ownerUID string) ([]domain.Order, error) {
	const ordersQuery = `
SELECT id::text, owner_uid::text, total::text, delivery_address, status, created_at
FROM orders
WHERE owner_uid = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, ordersQuery, ownerUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		var total, status string
		if err := rows.Scan(&o.ID, &o.OwnerUID, &total, &o.DeliveryAddress, &status, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Total, err = decimal.NewFromString(total)
		if err != nil {
			return nil, fmt.Errorf("order %s has malformed total %q: %w", o.ID, total, err)
		}
		o.Status = domain.OrderStatus(status)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		lines, err := r.fetchLines(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Lines = lines
	}
	return orders, nil
}

func (r *postgresRepo) fetchLines(ctx context.Context, orderID string) ([]domain.OrderLine, error) {
	const q = `
SELECT product_id, title, price::text, quantity
FROM order_lines
WHERE order_id = $1
ORDER BY position
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.OrderLine
	for rows.Next() {
		var line domain.OrderLine
		var price string
		if err := rows.Scan(&line.ProductID, &line.Title, &price, &line.Quantity); err != nil {
			return nil, err
		}
		line.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("order line for %s has malformed price %q: %w", line.ProductID, price, err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
