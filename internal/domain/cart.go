package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is a pending line-item owned by a user. Quantity never drops
// below 1; removal is a delete, not a zero quantity.
type CartItem struct {
	ID        string          `json:"id"`
	OwnerUID  string          `json:"-"`
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"imageUrl"`
	Quantity  int             `json:"quantity"`
	CreatedAt time.Time       `json:"createdAt"`
}
