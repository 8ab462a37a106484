package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrStockEntryNotFound = errors.New("stock entry not found")
	ErrInvalidDateRange   = errors.New("start date is after end date")
)

// StockEntry is a goods receipt as the backend stores it. The backend adds
// Quantity to the product's stock when the entry is created.
type StockEntry struct {
	ID          int64
	Code        string
	ProductID   int64
	ProductName string
	Category    string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
	Supplier    string
	Notes       string
	EntryDate   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewStockEntry is a receipt to record. A zero EntryDate lets the backend
// pick today.
type NewStockEntry struct {
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
	Supplier  string
	Notes     string
	EntryDate time.Time
}

// Total is what the receipt costs, before the backend computes it.
func (e NewStockEntry) Total() decimal.Decimal {
	return e.UnitPrice.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

type StockEntryFilter struct {
	Page      int
	Limit     int
	ProductID int64
	From      time.Time
	To        time.Time
}

type StockEntryPage struct {
	Entries    []StockEntry
	Pagination Pagination
}
