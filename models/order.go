package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of a café order
type OrderStatus string

const (
	StatusNew       OrderStatus = "new"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusPaid      OrderStatus = "paid"
)

type Order struct {
	ID        uint            `json:"id"`
	TableID   uint            `json:"table_id"`
	GuestName string          `json:"guest_name"`
	Items     []OrderItem     `json:"items,omitempty"`
	Status    OrderStatus     `json:"status"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID        uint            `json:"id"`
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"` // snapshot name
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"` // snapshot price at time of order
}

// ItemsTotal recomputes the sum of price×quantity across items. Display
// only: after any mutation the server-returned Total is the source of
// truth, never this recomputation.
func (o Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusNew, StatusPreparing, StatusReady, StatusDelivered, StatusPaid:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}
