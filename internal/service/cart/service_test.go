package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centrodrinks/internal/domain"
	cartrepo "centrodrinks/internal/repository/cart"
)

type stubRepo struct {
	items       []domain.CartItem
	listErr     error
	getItem     *domain.CartItem
	getErr      error
	addErr      error
	setErr      error
	deleteErr   error
	lastAdd     cartrepo.AddItemInput
	lastSetID   string
	lastSetQty  int
	setCalled   bool
	lastDeleted string
}

func (s *stubRepo) ListByOwner(_ context.Context, _ string) ([]domain.CartItem, error) {
	return s.items, s.listErr
}

func (s *stubRepo) Get(_ context.Context, _, _ string) (*domain.CartItem, error) {
	return s.getItem, s.getErr
}

func (s *stubRepo) Add(_ context.Context, in cartrepo.AddItemInput) (*domain.CartItem, error) {
	s.lastAdd = in
	if s.addErr != nil {
		return nil, s.addErr
	}
	item := domain.CartItem{
		ID:        "new-item",
		OwnerUID:  in.OwnerUID,
		ProductID: in.Product.ID,
		Title:     in.Product.Title,
		Price:     in.Product.Price,
		Quantity:  1,
	}
	return &item, nil
}

func (s *stubRepo) SetQuantity(_ context.Context, _, id string, quantity int) error {
	s.setCalled = true
	s.lastSetID = id
	s.lastSetQty = quantity
	return s.setErr
}

func (s *stubRepo) Delete(_ context.Context, _, id string) error {
	s.lastDeleted = id
	return s.deleteErr
}

func TestView_TotalsItems(t *testing.T) {
	repo := &stubRepo{items: []domain.CartItem{
		{Price: decimal.NewFromInt(50), Quantity: 2},
		{Price: decimal.NewFromInt(70), Quantity: 1},
	}}
	svc := &Service{repo: repo}

	view, err := svc.View(context.Background(), "uid-1")
	require.NoError(t, err)

	assert.True(t, view.Total.Equal(decimal.NewFromInt(170)), "got %s", view.Total)
	assert.Len(t, view.Items, 2)
}

func TestView_EmptyCart(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}

	view, err := svc.View(context.Background(), "uid-1")
	require.NoError(t, err)

	assert.NotNil(t, view.Items)
	assert.True(t, view.Total.IsZero())
}

func TestView_RepoFailure(t *testing.T) {
	svc := &Service{repo: &stubRepo{listErr: errors.New("boom")}}

	_, err := svc.View(context.Background(), "uid-1")

	var perr *domain.PersistenceError
	assert.ErrorAs(t, err, &perr)
}

func TestAddProduct(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo}

	item, err := svc.AddProduct(context.Background(), "uid-1", "3")
	require.NoError(t, err)

	assert.Equal(t, "Azulito", item.Title)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, "uid-1", repo.lastAdd.OwnerUID)
}

func TestAddProduct_UnknownProduct(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}

	_, err := svc.AddProduct(context.Background(), "uid-1", "999")

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestChangeQuantity_Persists(t *testing.T) {
	repo := &stubRepo{getItem: &domain.CartItem{ID: "item-1", Quantity: 1, Price: decimal.NewFromInt(50)}}
	svc := &Service{repo: repo}

	item, ok, err := svc.ChangeQuantity(context.Background(), "uid-1", "item-1", 1)
	require.NoError(t, err)

	assert.True(t, ok)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 2, repo.lastSetQty)
}

func TestChangeQuantity_FloorRejectedWithoutWrite(t *testing.T) {
	repo := &stubRepo{getItem: &domain.CartItem{ID: "item-1", Quantity: 1, Price: decimal.NewFromInt(50)}}
	svc := &Service{repo: repo}

	item, ok, err := svc.ChangeQuantity(context.Background(), "uid-1", "item-1", -1)
	require.NoError(t, err)

	assert.False(t, ok)
	assert.Equal(t, 1, item.Quantity)
	assert.False(t, repo.setCalled, "rejected change must not reach the repository")
}

func TestChangeQuantity_ItemNotFound(t *testing.T) {
	svc := &Service{repo: &stubRepo{getErr: domain.ErrNotFound}}

	_, _, err := svc.ChangeQuantity(context.Background(), "uid-1", "missing", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemove(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo}

	require.NoError(t, svc.Remove(context.Background(), "uid-1", "item-1"))
	assert.Equal(t, "item-1", repo.lastDeleted)
}
