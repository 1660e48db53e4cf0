package cart

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"centrodrinks/internal/catalog"
	"centrodrinks/internal/domain"
	cartrepo "centrodrinks/internal/repository/cart"
)

type Service struct {
	repo cartRepo
}

type cartRepo interface {
	ListByOwner(ctx context.Context, ownerUID string) ([]domain.CartItem, error)
	Get(ctx context.Context, ownerUID, id string) (*domain.CartItem, error)
	Add(ctx context.Context, in cartrepo.AddItemInput) (*domain.CartItem, error)
	SetQuantity(ctx context.Context, ownerUID, id string, quantity int) error
	Delete(ctx context.Context, ownerUID, id string) error
}

func New(repo cartrepo.Repository) *Service {
	return &Service{repo: repo}
}

// View is a cart with its aggregated total.
type View struct {
	Items []domain.CartItem `json:"items"`
	Total decimal.Decimal   `json:"total"`
}

func (s *Service) View(ctx context.Context, uid string) (*View, error) {
	items, err := s.repo.ListByOwner(ctx, uid)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list cart", Err: err}
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	return &View{Items: items, Total: ComputeTotal(items)}, nil
}

func (s *Service) AddProduct(ctx context.Context, uid, productID string) (*domain.CartItem, error) {
	product, ok := catalog.ByID(productID)
	if !ok {
		return nil, &domain.ValidationError{Field: "productId", Reason: "unknown product"}
	}
	item, err := s.repo.Add(ctx, cartrepo.AddItemInput{OwnerUID: uid, Product: product})
	if err != nil {
		return nil, &domain.PersistenceError{Op: "add cart item", Err: err}
	}
	return item, nil
}

// ChangeQuantity applies delta to a stored item. When the change would drop
// the quantity below 1 the stored state is left untouched and ok is false.
func (s *Service) ChangeQuantity(ctx context.Context, uid, itemID string, delta int) (*domain.CartItem, bool, error) {
	item, err := s.repo.Get(ctx, uid, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, err
		}
		return nil, false, &domain.PersistenceError{Op: "get cart item", Err: err}
	}

	changed, ok := ChangeQuantity(*item, delta)
	if !ok {
		return item, false, nil
	}
	if err := s.repo.SetQuantity(ctx, uid, itemID, changed.Quantity); err != nil {
		return nil, false, &domain.PersistenceError{Op: "set quantity", Err: err}
	}
	return &changed, true, nil
}

func (s *Service) Remove(ctx context.Context, uid, itemID string) error {
	if err := s.repo.Delete(ctx, uid, itemID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return &domain.PersistenceError{Op: "delete cart item", Err: err}
	}
	return nil
}
