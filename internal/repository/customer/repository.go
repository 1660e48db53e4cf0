package customer

import (
	"context"

	"centrodrinks/internal/domain"
)

// Repository persists and fetches customer credential records.
type Repository interface {
	Create(ctx context.Context, email, passwordHash string) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByUID(ctx context.Context, uid string) (*domain.Customer, error)
}
