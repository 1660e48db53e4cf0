package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"centrodrinks/internal/domain"
)

// DBPool matches the methods from *pgxpool.Pool the repository uses.
type DBPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresRepo struct {
	pool DBPool
}

func NewPostgres(pool DBPool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListByOwner(ctx context.Context, ownerUID string) ([]domain.CartItem, error) {
	const q = `
SELECT id::text, owner_uid::text, product_id, title, category, price::text, image_url, quantity, created_at
FROM cart_items
WHERE owner_uid = $1
ORDER BY created_at
`
	rows, err := r.pool.Query(ctx, q, ownerUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresRepo) Get(ctx context.Context, ownerUID, id string) (*domain.CartItem, error) {
	const q = `
SELECT id::text, owner_uid::text, product_id, title, category, price::text, image_url, quantity, created_at
FROM cart_items
WHERE owner_uid = $1 AND id = $2
`
	item, err := scanItem(r.pool.QueryRow(ctx, q, ownerUID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) Add(ctx context.Context, in AddItemInput) (*domain.CartItem, error) {
	const q = `
INSERT INTO cart_items (owner_uid, product_id, title, category, price, image_url, quantity)
VALUES ($1, $2, $3, $4, $5, $6, 1)
RETURNING id::text, created_at
`
	item := domain.CartItem{
		OwnerUID:  in.OwnerUID,
		ProductID: in.Product.ID,
		Title:     in.Product.Title,
		Category:  in.Product.Category,
		Price:     in.Product.Price,
		ImageURL:  in.Product.ImageURL,
		Quantity:  1,
	}
	err := r.pool.QueryRow(ctx, q,
		in.OwnerUID,
		in.Product.ID,
		in.Product.Title,
		in.Product.Category,
		in.Product.Price.String(),
		in.Product.ImageURL,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) SetQuantity(ctx context.Context, ownerUID, id string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}
	const q = `
UPDATE cart_items
SET quantity = $1
WHERE owner_uid = $2 AND id = $3
`
	cmd, err := r.pool.Exec(ctx, q, quantity, ownerUID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, ownerUID, id string) error {
	const q = `
DELETE FROM cart_items
WHERE owner_uid = $1 AND id = $2
`
	cmd, err := r.pool.Exec(ctx, q, ownerUID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanItem validates the row at the store boundary: a malformed price is
// rejected, a quantity below 1 reads as 1.
func scanItem(row rowScanner) (domain.CartItem, error) {
	var item domain.CartItem
	var price string
	if err := row.Scan(
		&item.ID,
		&item.OwnerUID,
		&item.ProductID,
		&item.Title,
		&item.Category,
		&price,
		&item.ImageURL,
		&item.Quantity,
		&item.CreatedAt,
	); err != nil {
		return domain.CartItem{}, err
	}

	parsed, err := decimal.NewFromString(price)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("cart item %s has malformed price %q: %w", item.ID, price, err)
	}
	item.Price = parsed

	if item.Quantity < 1 {
		item.Quantity = 1
	}
	return item, nil
}
