package order

import (
	"time"

	"centrodrinks/internal/domain"
	cartsvc "centrodrinks/internal/service/cart"
)

// Build assembles an immutable Pending order from a cart snapshot. The line
// items are copies; mutating the cart afterwards never touches the order.
func Build(uid string, items []domain.CartItem, deliveryAddress string, now time.Time) domain.Order {
	lines := make([]domain.OrderLine, 0, len(items))
	for _, item := range items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		lines = append(lines, domain.OrderLine{
			ProductID: item.ProductID,
			Title:     item.Title,
			Price:     item.Price,
			Quantity:  qty,
		})
	}

	return domain.Order{
		OwnerUID:        uid,
		CreatedAt:       now,
		Total:           cartsvc.ComputeTotal(items),
		DeliveryAddress: deliveryAddress,
		Lines:           lines,
		Status:          domain.OrderPending,
	}
}
