package entities_test

import (
	"testing"

	"github.com/SergeyBogomolovv/shop-backoffice/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func latteCatalog(t *testing.T) entities.Catalog {
	t.Helper()
	c, err := entities.NewCatalog([]entities.CatalogEntry{
		{ID: 1, DisplayName: "Latte", UnitPrice: decimal.NewFromInt(35000), QuantityOnHand: 5},
		{ID: 2, DisplayName: "Espresso", UnitPrice: decimal.NewFromInt(25000), QuantityOnHand: 10},
	})
	require.NoError(t, err)
	return c
}

func TestNewOrderDraft(t *testing.T) {
	d := entities.NewOrderDraft()

	require.Len(t, d.Lines, 1)
	assert.Equal(t, entities.Unselected, d.Lines[0].ProductRef)
	assert.Equal(t, 1, d.Lines[0].Quantity)
	assert.True(t, d.Discount.IsZero())
	assert.True(t, d.Customer.IsZero())
}

func TestOrderDraft_Editing(t *testing.T) {
	d := entities.NewOrderDraft()

	idx := d.AddLine()
	assert.Equal(t, 1, idx)
	require.Len(t, d.Lines, 2)

	d.UpdateLine(0, entities.LineFieldProduct, 1)
	d.UpdateLine(0, entities.LineFieldQuantity, 3)
	d.UpdateLine(1, entities.LineFieldProduct, 2)

	assert.Equal(t, entities.LineItem{ProductRef: 1, Quantity: 3}, d.Lines[0])
	assert.Equal(t, entities.LineItem{ProductRef: 2, Quantity: 1}, d.Lines[1])

	d.RemoveLine(0)
	require.Len(t, d.Lines, 1)
	assert.Equal(t, int64(2), d.Lines[0].ProductRef)

	d.RemoveLine(0)
	assert.Empty(t, d.Lines)
}

func TestOrderDraft_OutOfRangePanics(t *testing.T) {
	d := entities.NewOrderDraft()

	assert.False(t, d.HasLine(1))
	assert.False(t, d.HasLine(-1))
	assert.Panics(t, func() { d.RemoveLine(1) })
	assert.Panics(t, func() { d.UpdateLine(-1, entities.LineFieldQuantity, 2) })
	assert.Panics(t, func() { d.UpdateLine(0, entities.LineField(42), 2) })
}

func TestOrderDraft_Clone(t *testing.T) {
	d := entities.NewOrderDraft()
	c := d.Clone()
	c.UpdateLine(0, entities.LineFieldQuantity, 7)

	assert.Equal(t, 1, d.Lines[0].Quantity)
}

func TestResolveLines(t *testing.T) {
	c := latteCatalog(t)
	lines := []entities.LineItem{
		{ProductRef: 1, Quantity: 3},
		{ProductRef: entities.Unselected, Quantity: 1},
		{ProductRef: 99, Quantity: 2},
		{ProductRef: 2, Quantity: 0},
	}

	got := entities.ResolveLines(lines, c)
	require.Len(t, got, 4)

	assert.True(t, got[0].Valid)
	assert.Equal(t, "Latte", got[0].ProductName)
	assert.True(t, got[0].LineSubtotal.Equal(decimal.NewFromInt(105000)))

	assert.False(t, got[1].Valid)
	assert.True(t, got[1].LineSubtotal.IsZero())

	assert.False(t, got[2].Valid)
	assert.Empty(t, got[2].ProductName)

	assert.False(t, got[3].Valid)
	assert.Equal(t, "Espresso", got[3].ProductName)
	assert.True(t, got[3].ResolvedUnitPrice.Equal(decimal.NewFromInt(25000)))
	assert.True(t, got[3].LineSubtotal.IsZero())
}

func TestParseDiscount(t *testing.T) {
	testCases := []struct {
		raw  string
		want decimal.Decimal
	}{
		{raw: "10000", want: decimal.NewFromInt(10000)},
		{raw: " 2500.5 ", want: decimal.RequireFromString("2500.5")},
		{raw: "", want: decimal.Zero},
		{raw: "abc", want: decimal.Zero},
		{raw: "-5", want: decimal.Zero},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.True(t, tc.want.Equal(entities.ParseDiscount(tc.raw)))
		})
	}
}

func TestBuildPayload(t *testing.T) {
	c := latteCatalog(t)
	d := entities.OrderDraft{
		Customer: entities.CustomerIdentity{CustomerID: 7},
		Lines: []entities.LineItem{
			{ProductRef: 1, Quantity: 3},
			{ProductRef: entities.Unselected, Quantity: 1},
			{ProductRef: 2, Quantity: -1},
		},
		Discount: decimal.NewFromInt(10000),
	}

	p := entities.BuildPayload(entities.CustomerModeReference, d, c)

	assert.Equal(t, []entities.PayloadItem{{ProductID: 1, Quantity: 3}}, p.Items)
	assert.Equal(t, int64(7), p.Customer.CustomerID)
	assert.Equal(t, entities.CustomerModeReference, p.Mode)
	assert.True(t, p.Discount.Equal(decimal.NewFromInt(10000)))
}

func TestCustomerIdentity(t *testing.T) {
	ref := entities.CustomerIdentity{CustomerID: 3}
	inline := entities.CustomerIdentity{FullName: "Nguyen An", Phone: "0901234567"}

	assert.True(t, ref.Complete(entities.CustomerModeReference))
	assert.False(t, ref.Complete(entities.CustomerModeInline))
	assert.True(t, inline.Complete(entities.CustomerModeInline))
	assert.False(t, entities.CustomerIdentity{FullName: "  ", Phone: "1"}.Complete(entities.CustomerModeInline))

	assert.True(t, ref.Conforms(entities.CustomerModeReference))
	assert.False(t, ref.Conforms(entities.CustomerModeInline))
	assert.True(t, inline.Conforms(entities.CustomerModeInline))
	assert.False(t, inline.Conforms(entities.CustomerModeReference))
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, entities.OrderStatusPending.CanTransitionTo(entities.OrderStatusProcessing))
	assert.True(t, entities.OrderStatusProcessing.CanTransitionTo(entities.OrderStatusCancelled))
	assert.False(t, entities.OrderStatusCompleted.CanTransitionTo(entities.OrderStatusCancelled))
	assert.False(t, entities.OrderStatusCancelled.CanTransitionTo(entities.OrderStatusPending))
	assert.False(t, entities.OrderStatusProcessing.CanTransitionTo(entities.OrderStatusPending))
	assert.False(t, entities.OrderStatus("shipped").Valid())
}
