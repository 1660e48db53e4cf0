package profile

import (
	"context"

	"centrodrinks/internal/domain"
)

// Repository persists one profile per authenticated user.
type Repository interface {
	Get(ctx context.Context, uid string) (*domain.Profile, error)
	Upsert(ctx context.Context, p domain.Profile) error
}
