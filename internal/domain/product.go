package domain

import "github.com/shopspring/decimal"

// Product is an immutable catalog entry defined at build time.
type Product struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"imageUrl"`
}
