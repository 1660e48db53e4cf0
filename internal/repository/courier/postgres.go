package courier

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"centrodrinks/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Upsert(ctx context.Context, pos domain.CourierPosition) error {
	const q = `
INSERT INTO courier_locations (courier_id, latitude, longitude)
VALUES ($1, $2, $3)
ON CONFLICT (courier_id) DO UPDATE SET
    latitude = EXCLUDED.latitude,
    longitude = EXCLUDED.longitude,
    updated_at = now()
`
	_, err := r.pool.Exec(ctx, q, pos.CourierID, pos.Coord.Latitude, pos.Coord.Longitude)
	return err
}

func (r *postgresRepo) Latest(ctx context.Context) (*domain.CourierPosition, error) {
	const q = `
SELECT courier_id, latitude, longitude, updated_at
FROM courier_locations
ORDER BY updated_at DESC
LIMIT 1
`
	var pos domain.CourierPosition
	err := r.pool.QueryRow(ctx, q).Scan(&pos.CourierID, &pos.Coord.Latitude, &pos.Coord.Longitude, &pos.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &pos, nil
}
