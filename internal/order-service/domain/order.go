package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID             string
	CustomerID     string
	Items          []OrderItem
	TotalAmount    decimal.Decimal
	Status         OrderStatus
	DateCreated    string
	DateDelivered  string
	IdempotencyKey string
	RequestID      string
	CreatedAt      time.Time
}

type OrderItem struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Total sums the item subtotals.
func Total(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}

type OrderStatus string

const (
	StatusCreated   OrderStatus = "CREATED"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"
)
