package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfillment state of an order. Transitions past
// Pending are performed by an external fulfillment process.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderPreparing OrderStatus = "Preparing"
	OrderOnTheWay  OrderStatus = "OnTheWay"
	OrderDelivered OrderStatus = "Delivered"
	OrderCancelled OrderStatus = "Cancelled"
)

// Valid reports whether s is a known status value.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPreparing, OrderOnTheWay, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order is an immutable snapshot of a cart plus delivery metadata,
// created exactly once per checkout.
type Order struct {
	ID              string          `json:"id"`
	OwnerUID        string          `json:"-"`
	CreatedAt       time.Time       `json:"createdAt"`
	Total           decimal.Decimal `json:"total"`
	DeliveryAddress string          `json:"deliveryAddress"`
	Lines           []OrderLine     `json:"lineItems"`
	Status          OrderStatus     `json:"status"`
}

// OrderLine is a priced snapshot of one cart item at checkout time.
type OrderLine struct {
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}
