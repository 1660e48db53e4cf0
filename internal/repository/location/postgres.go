package location

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

func (r *postgresRepo) Get(ctx context.Context, uid string) (*domain.UserLocation, error) {
	const q = `
SELECT uid::text, latitude, longitude, address, updated_at
FROM user_locations
WHERE uid = $1
`
	var loc domain.UserLocation
	err := r.pool.QueryRow(ctx, q, uid).Scan(
		&loc.UID, &loc.Coord.Latitude, &loc.Coord.Longitude, &loc.Address, &loc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &loc, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, loc domain.UserLocation) error {
	const q = `
INSERT INTO user_locations (uid, latitude, longitude, address)
VALUES ($1, $2, $3, $4)
ON CONFLICT (uid) DO UPDATE SET
    latitude = EXCLUDED.latitude,
    longitude = EXCLUDED.longitude,
    address = EXCLUDED.address,
    updated_at = now()
`
	_, err := r.pool.Exec(ctx, q, loc.UID, loc.Coord.Latitude, loc.Coord.Longitude, loc.Address)
	return err
}
