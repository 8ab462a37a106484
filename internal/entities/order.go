package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayloadItem struct {
	ProductID int64
	Quantity  int
}

// OrderPayload is what gets sent to the backend. Prices are not included,
// the backend resolves them itself.
type OrderPayload struct {
	Mode     CustomerMode
	Customer CustomerIdentity
	Items    []PayloadItem
	Discount decimal.Decimal
}

func BuildPayload(mode CustomerMode, d OrderDraft, c Catalog) OrderPayload {
	valid := d.ValidLines(c)
	items := make([]PayloadItem, 0, len(valid))
	for _, l := range valid {
		items = append(items, PayloadItem{ProductID: l.ProductRef, Quantity: l.Quantity})
	}

	discount := d.Discount
	if discount.IsNegative() {
		discount = decimal.Zero
	}

	return OrderPayload{
		Mode:     mode,
		Customer: d.Customer,
		Items:    items,
		Discount: discount,
	}
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusCompleted, OrderStatusCancelled},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo is advisory, the backend has the final word.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type OrderItem struct {
	ID          int64
	ProductID   int64
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

// OrderRecord is an order as the backend stores it.
type OrderRecord struct {
	ID          int64
	Code        string
	CustomerID  int64
	Customer    *Customer
	Status      OrderStatus
	TotalAmount decimal.Decimal
	Discount    decimal.Decimal
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type OrderFilter struct {
	Page   int
	Limit  int
	Status OrderStatus
}

type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int
	HasNext     bool
	HasPrev     bool
}

type OrderPage struct {
	Orders     []OrderRecord
	Pagination Pagination
}
