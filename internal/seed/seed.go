package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"centrodrinks/internal/domain"
)

const (
	demoEmail    = "demo@centrodrinks.mx"
	demoPassword = "demo123"
	demoCourier  = "repartidor-1"
)

// Demo courier parked in central Guadalajara.
var demoCourierCoord = domain.Coordinate{Latitude: 20.6597, Longitude: -103.3496}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	uid, err := ensureCustomer(ctx, pool, demoEmail, demoPassword)
	if err != nil {
		return fmt.Errorf("ensure customer: %w", err)
	}

	if err := ensureProfile(ctx, pool, uid); err != nil {
		return fmt.Errorf("ensure profile: %w", err)
	}

	if err := upsertCourier(ctx, pool, demoCourier, demoCourierCoord); err != nil {
		return fmt.Errorf("upsert courier: %w", err)
	}

	return nil
}

func ensureCustomer(ctx context.Context, pool *pgxpool.Pool, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	const q = `
INSERT INTO customers (email, password_hash)
VALUES ($1, $2)
ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
RETURNING uid::text
`
	var uid string
	if err := pool.QueryRow(ctx, q, email, string(hash)).Scan(&uid); err != nil {
		return "", err
	}
	return uid, nil
}

func ensureProfile(ctx context.Context, pool *pgxpool.Pool, uid string) error {
	const q = `
INSERT INTO profiles (uid, name, age, nickname, street, phone)
VALUES ($1, 'Cliente Demo', '21', 'demo', 'Av. Juárez 100, Guadalajara', '3312345678')
ON CONFLICT (uid) DO NOTHING
`
	_, err := pool.Exec(ctx, q, uid)
	return err
}

func upsertCourier(ctx context.Context, pool *pgxpool.Pool, courierID string, coord domain.Coordinate) error {
	const q = `
INSERT INTO courier_locations (courier_id, latitude, longitude, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (courier_id) DO UPDATE
SET latitude = EXCLUDED.latitude,
    longitude = EXCLUDED.longitude,
    updated_at = now()
`
	_, err := pool.Exec(ctx, q, courierID, coord.Latitude, coord.Longitude)
	return err
}
