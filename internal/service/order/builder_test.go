package order

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centrodrinks/internal/domain"
)

func TestBuild(t *testing.T) {
	now := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	items := []domain.CartItem{
		{ID: "a", ProductID: "2", Title: "Nachos", Price: decimal.NewFromInt(50), Quantity: 2},
		{ID: "b", ProductID: "3", Title: "Azulito", Price: decimal.NewFromInt(70), Quantity: 1},
	}

	o := Build("uid-1", items, "Av. Juárez 120", now)

	assert.Equal(t, "uid-1", o.OwnerUID)
	assert.Equal(t, now, o.CreatedAt)
	assert.Equal(t, "Av. Juárez 120", o.DeliveryAddress)
	assert.Equal(t, domain.OrderPending, o.Status)
	assert.True(t, o.Total.Equal(decimal.NewFromInt(170)), "got %s", o.Total)
	require.Len(t, o.Lines, 2)
	assert.Equal(t, "Nachos", o.Lines[0].Title)
	assert.Equal(t, 2, o.Lines[0].Quantity)
}

func TestBuild_QuantityDefaultsToOne(t *testing.T) {
	items := []domain.CartItem{
		{ProductID: "2", Title: "Nachos", Price: decimal.NewFromInt(50)},
	}

	o := Build("uid-1", items, "x", time.Now())

	require.Len(t, o.Lines, 1)
	assert.Equal(t, 1, o.Lines[0].Quantity)
	assert.True(t, o.Total.Equal(decimal.NewFromInt(50)))
}

func TestBuild_SnapshotIsACopy(t *testing.T) {
	items := []domain.CartItem{
		{ProductID: "2", Title: "Nachos", Price: decimal.NewFromInt(50), Quantity: 1},
	}

	o := Build("uid-1", items, "x", time.Now())
	total := o.Total

	// Later cart mutations must not leak into the created order.
	items[0].Quantity = 10
	items[0].Price = decimal.NewFromInt(999)

	assert.Equal(t, 1, o.Lines[0].Quantity)
	assert.True(t, o.Lines[0].Price.Equal(decimal.NewFromInt(50)))
	assert.True(t, o.Total.Equal(total))
}
