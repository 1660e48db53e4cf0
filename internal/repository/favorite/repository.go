package favorite

import (
	"context"

	"centrodrinks/internal/domain"
)

type Repository interface {
	Add(ctx context.Context, f domain.Favorite) (*domain.Favorite, error)
	ListByOwner(ctx context.Context, ownerUID string) ([]domain.Favorite, error)
	Delete(ctx context.Context, ownerUID, id string) error
}
