package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderCreated is announced after the backend accepts an order.
type OrderCreated struct {
	OrderID   int64
	OrderCode string
	SessionID uuid.UUID
	Total     decimal.Decimal
	Discount  decimal.Decimal
	Items     []PayloadItem
	CreatedAt time.Time
}
