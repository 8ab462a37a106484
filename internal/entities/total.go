package entities

import "github.com/shopspring/decimal"

type Totals struct {
	Subtotal decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotal sums price × quantity over valid lines and subtracts the
// discount, clamping at zero. Invalid lines contribute nothing.
func ComputeTotal(lines []LineItem, c Catalog, discount decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		if !l.Valid(c) {
			continue
		}
		e, _ := c.Lookup(l.ProductRef)
		subtotal = subtotal.Add(e.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	if discount.IsNegative() {
		discount = decimal.Zero
	}

	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Totals{Subtotal: subtotal, Total: total}
}
