package location

import (
	"context"

	"centrodrinks/internal/domain"
)

// Repository keeps one last-known delivery location per user.
type Repository interface {
	Get(ctx context.Context, uid string) (*domain.UserLocation, error)
	Upsert(ctx context.Context, loc domain.UserLocation) error
}
