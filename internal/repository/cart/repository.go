package cart

import (
	"context"

	"centrodrinks/internal/domain"
)

// AddItemInput carries the product snapshot captured when an item enters
// the cart. Later catalog changes never touch existing rows.
type AddItemInput struct {
	OwnerUID string
	Product  domain.Product
}

type Repository interface {
	ListByOwner(ctx context.Context, ownerUID string) ([]domain.CartItem, error)
	Get(ctx context.Context, ownerUID, id string) (*domain.CartItem, error)
	Add(ctx context.Context, in AddItemInput) (*domain.CartItem, error)
	SetQuantity(ctx context.Context, ownerUID, id string, quantity int) error
	Delete(ctx context.Context, ownerUID, id string) error
}
