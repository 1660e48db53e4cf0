package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"centrodrinks/internal/domain"
	orderrepo "centrodrinks/internal/repository/order"
)

type Service struct {
	orders   orderRepo
	cart     cartRepo
	profiles profileRepo
	now      func() time.Time
}

type orderRepo interface {
	CreateAndClearCart(ctx context.Context, o domain.Order, cartItemIDs []string) (*domain.Order, error)
	ListByOwner(ctx context.Context, ownerUID string) ([]domain.Order, error)
}

type cartRepo interface {
	ListByOwner(ctx context.Context, ownerUID string) ([]domain.CartItem, error)
}

type profileRepo interface {
	Get(ctx context.Context, uid string) (*domain.Profile, error)
}

func New(orders orderrepo.Repository, cart cartRepo, profiles profileRepo) *Service {
	return &Service{
		orders:   orders,
		cart:     cart,
		profiles: profiles,
		now:      time.Now,
	}
}

// Checkout snapshots the user's cart into a Pending order and clears the
// cart. Order insert and cart clearing run in one transaction, so a failure
// leaves both untouched and the call is safe to retry.
func (s *Service) Checkout(ctx context.Context, uid string) (*domain.Order, error) {
	items, err := s.cart.ListByOwner(ctx, uid)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list cart", Err: err}
	}
	if len(items) == 0 {
		return nil, &domain.ValidationError{Field: "cart", Reason: "cart is empty"}
	}

	address, err := s.resolveAddress(ctx, uid)
	if err != nil {
		return nil, err
	}

	o := Build(uid, items, address, s.now().UTC())

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	created, err := s.orders.CreateAndClearCart(ctx, o, ids)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "create order", Err: err}
	}
	return created, nil
}

func (s *Service) List(ctx context.Context, uid string) ([]domain.Order, error) {
	orders, err := s.orders.ListByOwner(ctx, uid)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list orders", Err: err}
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func (s *Service) resolveAddress(ctx context.Context, uid string) (string, error) {
	prof, err := s.profiles.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", &domain.ValidationError{Field: "deliveryAddress", Reason: "no profile on record"}
		}
		return "", &domain.PersistenceError{Op: "get profile", Err: err}
	}
	address := strings.TrimSpace(prof.Street)
	if address == "" {
		return "", &domain.ValidationError{Field: "deliveryAddress", Reason: "profile has no street"}
	}
	return address, nil
}
