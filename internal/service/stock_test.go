package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shop-backoffice/internal/service"
	mocks "github.com/SergeyBogomolovv/shop-backoffice/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStock_ListEntries(t *testing.T) {
	type MockBehavior func(store *mocks.MockStockEntryStore)

	march := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	april := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	rejected := &entities.BackendError{StatusCode: http.StatusBadRequest, Message: "bad date"}

	testCases := []struct {
		name         string
		filter       entities.StockEntryFilter
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:   "defaults are applied",
			filter: entities.StockEntryFilter{ProductID: 3},
			mockBehavior: func(store *mocks.MockStockEntryStore) {
				store.EXPECT().ListStockEntries(mock.Anything, entities.StockEntryFilter{Page: 1, Limit: 10, ProductID: 3}).
					Return(entities.StockEntryPage{}, nil).Once()
			},
		},
		{
			name:   "limit is capped",
			filter: entities.StockEntryFilter{Page: 2, Limit: 1000, From: march, To: april},
			mockBehavior: func(store *mocks.MockStockEntryStore) {
				store.EXPECT().ListStockEntries(mock.Anything, entities.StockEntryFilter{Page: 2, Limit: 100, From: march, To: april}).
					Return(entities.StockEntryPage{}, nil).Once()
			},
		},
		{
			name:         "inverted date range",
			filter:       entities.StockEntryFilter{From: april, To: march},
			mockBehavior: func(store *mocks.MockStockEntryStore) {},
			wantErr:      entities.ErrInvalidDateRange,
		},
		{
			name:   "transient failure is retried",
			filter: entities.StockEntryFilter{},
			mockBehavior: func(store *mocks.MockStockEntryStore) {
				store.EXPECT().ListStockEntries(mock.Anything, mock.Anything).
					Return(entities.StockEntryPage{}, &entities.BackendError{StatusCode: http.StatusServiceUnavailable}).Once()
				store.EXPECT().ListStockEntries(mock.Anything, mock.Anything).
					Return(entities.StockEntryPage{Entries: []entities.StockEntry{{ID: 1}}}, nil).Once()
			},
		},
		{
			name:   "rejection is not retried",
			filter: entities.StockEntryFilter{},
			mockBehavior: func(store *mocks.MockStockEntryStore) {
				store.EXPECT().ListStockEntries(mock.Anything, mock.Anything).
					Return(entities.StockEntryPage{}, rejected).Once()
			},
			wantErr: rejected,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockStockEntryStore(t)
			tc.mockBehavior(store)

			svc := service.NewStockService(discardLogger(), store, mocks.NewMockStaleMarker(t))
			_, err := svc.ListEntries(context.Background(), tc.filter)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStock_CreateEntry(t *testing.T) {
	receipt := entities.NewStockEntry{ProductID: 1, Quantity: 20, UnitPrice: decimal.NewFromInt(30000)}

	t.Run("open forms are marked stale", func(t *testing.T) {
		store := mocks.NewMockStockEntryStore(t)
		marker := mocks.NewMockStaleMarker(t)

		store.EXPECT().CreateStockEntry(mock.Anything, receipt).
			Return(entities.StockEntry{ID: 9, Code: "NK009", ProductID: 1, Quantity: 20}, nil).Once()
		marker.EXPECT().MarkProductsStale(mock.Anything, uuid.Nil, []int64{1}).Return(2).Once()

		svc := service.NewStockService(discardLogger(), store, marker)
		entry, err := svc.CreateEntry(context.Background(), receipt)
		require.NoError(t, err)
		assert.Equal(t, int64(9), entry.ID)
	})

	t.Run("failure is not retried and marks nothing", func(t *testing.T) {
		store := mocks.NewMockStockEntryStore(t)
		marker := mocks.NewMockStaleMarker(t)

		store.EXPECT().CreateStockEntry(mock.Anything, receipt).
			Return(entities.StockEntry{}, &entities.BackendError{StatusCode: http.StatusBadGateway}).Once()

		svc := service.NewStockService(discardLogger(), store, marker)
		_, err := svc.CreateEntry(context.Background(), receipt)
		var be *entities.BackendError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, http.StatusBadGateway, be.StatusCode)
	})
}

func TestStock_DeleteEntry(t *testing.T) {
	store := mocks.NewMockStockEntryStore(t)
	store.EXPECT().DeleteStockEntry(mock.Anything, int64(4)).Return(nil).Once()
	store.EXPECT().DeleteStockEntry(mock.Anything, int64(5)).
		Return(errors.Join(entities.ErrStockEntryNotFound, &entities.BackendError{StatusCode: http.StatusNotFound})).Once()

	svc := service.NewStockService(discardLogger(), store, mocks.NewMockStaleMarker(t))
	require.NoError(t, svc.DeleteEntry(context.Background(), 4))
	assert.ErrorIs(t, svc.DeleteEntry(context.Background(), 5), entities.ErrStockEntryNotFound)
}

func TestStock_CreateEntry_FlagsOpenForms(t *testing.T) {
	ordering, deps := newOrdering(t, orderingConfig())
	first := openForm(t, ordering, deps)

	store := mocks.NewMockStockEntryStore(t)
	store.EXPECT().CreateStockEntry(mock.Anything, mock.Anything).
		Return(entities.StockEntry{ID: 9, ProductID: 1, Quantity: 20}, nil).Once()

	svc := service.NewStockService(discardLogger(), store, ordering)
	_, err := svc.CreateEntry(context.Background(), entities.NewStockEntry{ProductID: 1, Quantity: 20})
	require.NoError(t, err)

	view, err := ordering.View(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, view.StaleProducts)
}
