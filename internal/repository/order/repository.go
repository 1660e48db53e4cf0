package order

import (
	"context"

	"centrodrinks/internal/domain"
)

type Repository interface {
	// CreateAndClearCart persists the order and removes the source cart
	// items in a single transaction. On any failure nothing is written
	// and the cart is left untouched.
	CreateAndClearCart(ctx context.Context, o domain.Order, cartItemIDs []string) (*domain.Order, error)
	ListByOwner(ctx context.Context, ownerUID string) ([]domain.Order, error)
}
