package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Unselected is the product reference of a line nobody picked a product for yet.
const Unselected int64 = 0

const defaultQuantity = 1

type LineItem struct {
	ProductRef int64
	Quantity   int
}

func NewLineItem() LineItem {
	return LineItem{ProductRef: Unselected, Quantity: defaultQuantity}
}

// Valid reports whether the line resolves against the catalog with a positive quantity.
func (l LineItem) Valid(c Catalog) bool {
	if l.ProductRef == Unselected || l.Quantity < 1 {
		return false
	}
	_, ok := c.Lookup(l.ProductRef)
	return ok
}

type LineField int

const (
	LineFieldProduct LineField = iota
	LineFieldQuantity
)

func (f LineField) String() string {
	switch f {
	case LineFieldProduct:
		return "product"
	case LineFieldQuantity:
		return "quantity"
	default:
		return "unknown"
	}
}

// OrderDraft is the unsaved state of an order being composed in one form session.
type OrderDraft struct {
	Customer CustomerIdentity
	Lines    []LineItem
	Discount decimal.Decimal
}

func NewOrderDraft() OrderDraft {
	return OrderDraft{
		Lines:    []LineItem{NewLineItem()},
		Discount: decimal.Zero,
	}
}

func (d *OrderDraft) AddLine() int {
	d.Lines = append(d.Lines, NewLineItem())
	return len(d.Lines) - 1
}

func (d *OrderDraft) HasLine(index int) bool {
	return index >= 0 && index < len(d.Lines)
}

// RemoveLine panics on an out-of-range index, callers check HasLine first.
func (d *OrderDraft) RemoveLine(index int) {
	d.mustHaveLine(index)
	d.Lines = append(d.Lines[:index:index], d.Lines[index+1:]...)
}

// UpdateLine panics on an out-of-range index or an unknown field.
func (d *OrderDraft) UpdateLine(index int, field LineField, value int64) {
	d.mustHaveLine(index)

	switch field {
	case LineFieldProduct:
		d.Lines[index].ProductRef = value
	case LineFieldQuantity:
		d.Lines[index].Quantity = int(value)
	default:
		panic(fmt.Sprintf("entities: unknown line field %d", field))
	}
}

func (d *OrderDraft) mustHaveLine(index int) {
	if !d.HasLine(index) {
		panic(fmt.Sprintf("entities: line index %d out of range [0, %d)", index, len(d.Lines)))
	}
}

// Clone returns a deep copy, so a draft handed out can't alias the session's lines.
func (d OrderDraft) Clone() OrderDraft {
	lines := make([]LineItem, len(d.Lines))
	copy(lines, d.Lines)
	d.Lines = lines
	return d
}

// ValidLines keeps only lines that resolve against the catalog, in draft order.
func (d OrderDraft) ValidLines(c Catalog) []LineItem {
	valid := make([]LineItem, 0, len(d.Lines))
	for _, l := range d.Lines {
		if l.Valid(c) {
			valid = append(valid, l)
		}
	}
	return valid
}

// ParseDiscount reads a user-entered discount. Anything unparseable or negative is zero.
func ParseDiscount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ResolvedLine is a line with the display fields derived from the catalog.
type ResolvedLine struct {
	LineItem
	ProductName       string
	ResolvedUnitPrice decimal.Decimal
	LineSubtotal      decimal.Decimal
	Valid             bool
}

func ResolveLines(lines []LineItem, c Catalog) []ResolvedLine {
	out := make([]ResolvedLine, 0, len(lines))
	for _, l := range lines {
		r := ResolvedLine{
			LineItem:          l,
			ResolvedUnitPrice: decimal.Zero,
			LineSubtotal:      decimal.Zero,
		}
		if e, ok := c.Lookup(l.ProductRef); ok {
			r.ProductName = e.DisplayName
			r.ResolvedUnitPrice = e.UnitPrice
		}
		if l.Valid(c) {
			r.Valid = true
			r.LineSubtotal = r.ResolvedUnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
		}
		out = append(out, r)
	}
	return out
}
