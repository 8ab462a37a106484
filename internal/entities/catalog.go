package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CatalogEntry is a product as it was when the order form was opened.
type CatalogEntry struct {
	ID             int64
	DisplayName    string
	UnitPrice      decimal.Decimal
	QuantityOnHand int
}

// Catalog is an immutable snapshot of sellable products, kept in backend order.
type Catalog struct {
	entries []CatalogEntry
	byID    map[int64]int
}

func NewCatalog(entries []CatalogEntry) (Catalog, error) {
	c := Catalog{
		entries: make([]CatalogEntry, 0, len(entries)),
		byID:    make(map[int64]int, len(entries)),
	}

	for _, e := range entries {
		if e.ID == Unselected {
			return Catalog{}, fmt.Errorf("%w: product id must be set", ErrMalformedCatalog)
		}
		if e.UnitPrice.IsNegative() {
			return Catalog{}, fmt.Errorf("%w: product %d has negative price", ErrMalformedCatalog, e.ID)
		}
		if e.QuantityOnHand < 0 {
			return Catalog{}, fmt.Errorf("%w: product %d has negative stock", ErrMalformedCatalog, e.ID)
		}
		if _, ok := c.byID[e.ID]; ok {
			return Catalog{}, fmt.Errorf("%w: duplicate product %d", ErrMalformedCatalog, e.ID)
		}
		c.byID[e.ID] = len(c.entries)
		c.entries = append(c.entries, e)
	}

	return c, nil
}

// EmptyCatalog is what a form gets when the snapshot could not be loaded.
func EmptyCatalog() Catalog {
	return Catalog{byID: map[int64]int{}}
}

func (c Catalog) Lookup(id int64) (CatalogEntry, bool) {
	i, ok := c.byID[id]
	if !ok {
		return CatalogEntry{}, false
	}
	return c.entries[i], true
}

// Entries returns a copy, callers can't touch the snapshot.
func (c Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c Catalog) Len() int {
	return len(c.entries)
}

// Snapshot is everything the order form needs to populate its selectors.
type Snapshot struct {
	Catalog   Catalog
	Customers []Customer
	Notice    string
}

type PageQuery struct {
	Page       int
	Limit      int
	ActiveOnly bool
}
