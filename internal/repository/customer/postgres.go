package customer

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"centrodrinks/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, email, passwordHash string) (*domain.Customer, error) {
	const q = `
INSERT INTO customers (email, password_hash)
VALUES ($1, $2)
RETURNING uid::text, email, password_hash, created_at
`
	var c domain.Customer
	err := r.pool.QueryRow(ctx, q, email, passwordHash).Scan(&c.UID, &c.Email, &c.PasswordHash, &c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("create customer: %v", err)
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	const q = `
SELECT uid::text, email, password_hash, created_at
FROM customers
WHERE email = $1
`
	return r.fetch(ctx, q, email)
}

func (r *postgresRepo) GetByUID(ctx context.Context, uid string) (*domain.Customer, error) {
	const q = `
SELECT uid::text, email, password_hash, created_at
FROM customers
WHERE uid = $1
`
	return r.fetch(ctx, q, uid)
}

func (r *postgresRepo) fetch(ctx context.Context, q string, arg any) (*domain.Customer, error) {
	var c domain.Customer
	err := r.pool.QueryRow(ctx, q, arg).Scan(&c.UID, &c.Email, &c.PasswordHash, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
