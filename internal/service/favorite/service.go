package favorite

import (
	"context"
	"errors"

	"centrodrinks/internal/catalog"
	"centrodrinks/internal/domain"
	favrepo "centrodrinks/internal/repository/favorite"
)

type Service struct {
	repo favrepo.Repository
}

func New(repo favrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Add pins a catalog product to the user's favorites, snapshotting its
// current title, category, price and image.
func (s *Service) Add(ctx context.Context, uid, productID string) (*domain.Favorite, error) {
	product, ok := catalog.ByID(productID)
	if !ok {
		return nil, &domain.ValidationError{Field: "productId", Reason: "unknown product"}
	}
	f, err := s.repo.Add(ctx, domain.Favorite{
		OwnerUID:  uid,
		ProductID: product.ID,
		Title:     product.Title,
		Category:  product.Category,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
	})
	if err != nil {
		return nil, &domain.PersistenceError{Op: "add favorite", Err: err}
	}
	return f, nil
}

func (s *Service) List(ctx context.Context, uid string) ([]domain.Favorite, error) {
	favorites, err := s.repo.ListByOwner(ctx, uid)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list favorites", Err: err}
	}
	if favorites == nil {
		favorites = []domain.Favorite{}
	}
	return favorites, nil
}

func (s *Service) Remove(ctx context.Context, uid, id string) error {
	if err := s.repo.Delete(ctx, uid, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return &domain.PersistenceError{Op: "delete favorite", Err: err}
	}
	return nil
}
