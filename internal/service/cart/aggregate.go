package cart

import (
	"github.com/shopspring/decimal"

	"centrodrinks/internal/domain"
)

// ComputeTotal sums price times quantity over the given items. A quantity
// below 1 counts as 1, matching the default applied when an item is added.
func ComputeTotal(items []domain.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(qty))))
	}
	return total
}

// ChangeQuantity applies delta to the item's quantity. A result below 1 is
// rejected: the item is returned unchanged and ok is false. No error is
// involved; the caller decides whether to persist.
func ChangeQuantity(item domain.CartItem, delta int) (domain.CartItem, bool) {
	next := item.Quantity + delta
	if next < 1 {
		return item, false
	}
	item.Quantity = next
	return item, true
}
