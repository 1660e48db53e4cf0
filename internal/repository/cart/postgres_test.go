package cart

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centrodrinks/internal/domain"
)

const listQuery = `SELECT id::text, owner_uid::text, product_id, title, category, price::text, image_url, quantity, created_at`

func TestListByOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
		WithArgs("uid-1").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "owner_uid", "product_id", "title", "category", "price", "image_url", "quantity", "created_at",
		}).
			AddRow("item-1", "uid-1", "3", "Azulito", "Bebidas", "70.00", "", 2, now).
			AddRow("item-2", "uid-1", "2", "Nachos", "Snaks", "50.00", "", 1, now))

	repo := NewPostgres(mock)
	items, err := repo.ListByOwner(context.Background(), "uid-1")
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "Azulito", items[0].Title)
	assert.True(t, items[0].Price.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, 2, items[0].Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByOwner_MalformedPriceRejected(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
		WithArgs("uid-1").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "owner_uid", "product_id", "title", "category", "price", "image_url", "quantity", "created_at",
		}).
			AddRow("item-1", "uid-1", "3", "Azulito", "Bebidas", "not-a-number", "", 1, time.Now()))

	repo := NewPostgres(mock)
	_, err = repo.ListByOwner(context.Background(), "uid-1")
	assert.ErrorContains(t, err, "malformed price")
}

func TestListByOwner_ZeroQuantityDefaultsToOne(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
		WithArgs("uid-1").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "owner_uid", "product_id", "title", "category", "price", "image_url", "quantity", "created_at",
		}).
			AddRow("item-1", "uid-1", "3", "Azulito", "Bebidas", "70.00", "", 0, time.Now()))

	repo := NewPostgres(mock)
	items, err := repo.ListByOwner(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestSetQuantity_RejectsBelowOne(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostgres(mock)
	err = repo.SetQuantity(context.Background(), "uid-1", "item-1", 0)

	assert.ErrorContains(t, err, "at least 1")
	// No statement reaches the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetQuantity_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE cart_items`)).
		WithArgs(3, "uid-1", "missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewPostgres(mock)
	err = repo.SetQuantity(context.Background(), "uid-1", "missing", 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM cart_items`)).
		WithArgs("uid-1", "missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewPostgres(mock)
	err = repo.Delete(context.Background(), "uid-1", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
