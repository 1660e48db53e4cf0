package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"centrodrinks/internal/domain"
)

func item(price int64, qty int) domain.CartItem {
	return domain.CartItem{Price: decimal.NewFromInt(price), Quantity: qty}
}

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.CartItem
		want  string
	}{
		{name: "empty cart", items: nil, want: "0"},
		{name: "single item", items: []domain.CartItem{item(70, 1)}, want: "70"},
		{name: "mixed quantities", items: []domain.CartItem{item(50, 2), item(70, 1)}, want: "170"},
		{name: "missing quantity defaults to one", items: []domain.CartItem{item(50, 0)}, want: "50"},
		{
			name: "fractional prices",
			items: []domain.CartItem{
				{Price: decimal.RequireFromString("19.99"), Quantity: 3},
			},
			want: "59.97",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotal(tt.items)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestChangeQuantity(t *testing.T) {
	tests := []struct {
		name    string
		qty     int
		delta   int
		wantQty int
		wantOK  bool
	}{
		{name: "increment", qty: 1, delta: 1, wantQty: 2, wantOK: true},
		{name: "decrement", qty: 3, delta: -1, wantQty: 2, wantOK: true},
		{name: "decrement at floor rejected", qty: 1, delta: -1, wantQty: 1, wantOK: false},
		{name: "large negative delta rejected", qty: 2, delta: -5, wantQty: 2, wantOK: false},
		{name: "down to exactly one", qty: 2, delta: -1, wantQty: 1, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ChangeQuantity(item(50, tt.qty), tt.delta)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantQty, got.Quantity)
		})
	}
}
