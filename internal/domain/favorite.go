package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Favorite is a product snapshot pinned by a user.
type Favorite struct {
	ID        string          `json:"id"`
	OwnerUID  string          `json:"-"`
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"imageUrl"`
	CreatedAt time.Time       `json:"createdAt"`
}
