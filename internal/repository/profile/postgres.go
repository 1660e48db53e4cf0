package profile

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

func (r *postgresRepo) Get(ctx context.Context, uid string) (*domain.Profile, error) {
	const q = `
SELECT uid::text, name, age, nickname, street, phone, location_note, photo_url
FROM profiles
WHERE uid = $1
`
	var p domain.Profile
	err := r.pool.QueryRow(ctx, q, uid).Scan(
		&p.UID, &p.Name, &p.Age, &p.Nickname, &p.Street, &p.Phone, &p.LocationNote, &p.PhotoURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, p domain.Profile) error {
	const q = `
INSERT INTO profiles (uid, name, age, nickname, street, phone, location_note, photo_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (uid) DO UPDATE SET
    name = EXCLUDED.name,
    age = EXCLUDED.age,
    nickname = EXCLUDED.nickname,
    street = EXCLUDED.street,
    phone = EXCLUDED.phone,
    location_note = EXCLUDED.location_note,
    photo_url = EXCLUDED.photo_url,
    updated_at = now()
`
	_, err := r.pool.Exec(ctx, q,
		p.UID, p.Name, p.Age, p.Nickname, p.Street, p.Phone, p.LocationNote, p.PhotoURL,
	)
	return err
}
