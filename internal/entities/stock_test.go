package entities_test

import (
	"testing"

	"github.com/SergeyBogomolovv/shop-backoffice/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestValidateStock(t *testing.T) {
	c := latteCatalog(t)

	testCases := []struct {
		name      string
		lines     []entities.LineItem
		wantIndex int
		wantName  string
		wantAvail int
		wantErr   bool
	}{
		{
			name:  "within stock",
			lines: []entities.LineItem{{ProductRef: 1, Quantity: 3}},
		},
		{
			name:  "exactly on hand",
			lines: []entities.LineItem{{ProductRef: 1, Quantity: 5}, {ProductRef: 2, Quantity: 10}},
		},
		{
			name:      "shortage",
			lines:     []entities.LineItem{{ProductRef: 1, Quantity: 10}},
			wantErr:   true,
			wantIndex: 0,
			wantName:  "Latte",
			wantAvail: 5,
		},
		{
			name: "first shortage wins",
			lines: []entities.LineItem{
				{ProductRef: 2, Quantity: 1},
				{ProductRef: 2, Quantity: 11},
				{ProductRef: 1, Quantity: 6},
			},
			wantErr:   true,
			wantIndex: 1,
			wantName:  "Espresso",
			wantAvail: 10,
		},
		{
			name: "unresolved lines are skipped",
			lines: []entities.LineItem{
				{ProductRef: entities.Unselected, Quantity: 100},
				{ProductRef: 42, Quantity: 100},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := entities.ValidateStock(tc.lines, c)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, entities.ErrInsufficientStock)
			var shortage *entities.StockShortageError
			require.ErrorAs(t, err, &shortage)
			assert.Equal(t, tc.wantIndex, shortage.LineIndex)
			assert.Equal(t, tc.wantName, shortage.ProductName)
			assert.Equal(t, tc.wantAvail, shortage.Available)
		})
	}
}

func TestValidateStock_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := genCatalog(t)
		if c.Len() == 0 {
			return
		}
		entries := c.Entries()

		// Lines that fit never fail.
		n := rapid.IntRange(0, 6).Draw(t, "n")
		lines := make([]entities.LineItem, 0, n+1)
		for range n {
			e := entries[rapid.IntRange(0, len(entries)-1).Draw(t, "fit-product")]
			if e.QuantityOnHand == 0 {
				continue
			}
			lines = append(lines, entities.LineItem{
				ProductRef: e.ID,
				Quantity:   rapid.IntRange(1, e.QuantityOnHand).Draw(t, "fit-qty"),
			})
		}
		if err := entities.ValidateStock(lines, c); err != nil {
			t.Fatalf("lines within stock failed: %v", err)
		}

		// One line over stock is reported exactly.
		e := entries[rapid.IntRange(0, len(entries)-1).Draw(t, "over-product")]
		over := entities.LineItem{ProductRef: e.ID, Quantity: e.QuantityOnHand + rapid.IntRange(1, 20).Draw(t, "excess")}
		at := rapid.IntRange(0, len(lines)).Draw(t, "position")
		withOver := append(append(append([]entities.LineItem{}, lines[:at]...), over), lines[at:]...)

		err := entities.ValidateStock(withOver, c)
		shortage, ok := err.(*entities.StockShortageError)
		if !ok {
			t.Fatalf("expected shortage, got %v", err)
		}
		if shortage.LineIndex != at || shortage.ProductID != e.ID || shortage.Available != e.QuantityOnHand {
			t.Fatalf("wrong line reported: %+v, want index %d product %d", shortage, at, e.ID)
		}
	})
}
