package entities

import "fmt"

// StockShortageError describes the first line asking for more than is on hand.
type StockShortageError struct {
	LineIndex   int
	ProductID   int64
	ProductName string
	Requested   int
	Available   int
}

func (e *StockShortageError) Error() string {
	return fmt.Sprintf("product %q has only %d in stock, %d requested", e.ProductName, e.Available, e.Requested)
}

func (e *StockShortageError) Unwrap() error {
	return ErrInsufficientStock
}

// ValidateStock checks valid lines in draft order and stops at the first
// shortage. Lines that don't resolve are skipped. LineIndex is the position
// in lines, not among valid lines only.
func ValidateStock(lines []LineItem, c Catalog) error {
	for i, l := range lines {
		if !l.Valid(c) {
			continue
		}
		e, _ := c.Lookup(l.ProductRef)
		if l.Quantity > e.QuantityOnHand {
			return &StockShortageError{
				LineIndex:   i,
				ProductID:   e.ID,
				ProductName: e.DisplayName,
				Requested:   l.Quantity,
				Available:   e.QuantityOnHand,
			}
		}
	}
	return nil
}
