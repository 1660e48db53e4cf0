package favorite

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"centrodrinks/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Add(ctx context.Context, f domain.Favorite) (*domain.Favorite, error) {
	// Re-adding an already pinned product refreshes the snapshot instead
	// of duplicating the row.
	const q = `
INSERT INTO favorites (owner_uid, product_id, title, category, price, image_url)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (owner_uid, product_id) DO UPDATE SET
    title = EXCLUDED.title,
    category = EXCLUDED.category,
    price = EXCLUDED.price,
    image_url = EXCLUDED.image_url
RETURNING id::text, created_at
`
	created := f
	err := r.pool.QueryRow(ctx, q,
		f.OwnerUID, f.ProductID, f.Title, f.Category, f.Price.String(), f.ImageURL,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *postgresRepo) ListByOwner(ctx context.Context, ownerUID string) ([]domain.Favorite, error) {
	const q = `
SELECT id::text, owner_uid::text, product_id, title, category, price::text, image_url, created_at
FROM favorites
WHERE owner_uid = $1
ORDER BY created_at
`
	rows, err := r.pool.Query(ctx, q, ownerUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []domain.Favorite
	for rows.Next() {
		var f domain.Favorite
		var price string
		if err := rows.Scan(&f.ID, &f.OwnerUID, &f.ProductID, &f.Title, &f.Category, &price, &f.ImageURL, &f.CreatedAt); err != nil {
			return nil, err
		}
		f.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("favorite %s has malformed price %q: %w", f.ID, price, err)
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

func (r *postgresRepo) Delete(ctx context.Context, ownerUID, id string) error {
	const q = `
DELETE FROM favorites
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
