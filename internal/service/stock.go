package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shop-backoffice/pkg/utils"
	"github.com/google/uuid"
)

const (
	defaultStockEntriesLimit = 10
	maxStockEntriesLimit     = 100
)

type StockEntryStore interface {
	ListStockEntries(ctx context.Context, f entities.StockEntryFilter) (entities.StockEntryPage, error)
	CreateStockEntry(ctx context.Context, e entities.NewStockEntry) (entities.StockEntry, error)
	DeleteStockEntry(ctx context.Context, id int64) error
}

type StaleMarker interface {
	MarkProductsStale(ctx context.Context, except uuid.UUID, productIDs []int64) int
}

type stockService struct {
	logger *slog.Logger
	store  StockEntryStore
	marker StaleMarker
	retry  utils.RetryConfig
}

func NewStockService(logger *slog.Logger, store StockEntryStore, marker StaleMarker) *stockService {
	return &stockService{
		logger: logger.With(slog.String("service", "stock")),
		store:  store,
		marker: marker,
		retry: utils.RetryConfig{
			MaxAttempts:  3,
			InitialDelay: 100 * time.Millisecond,
			Multiplier:   2,
			Retryable:    retryable,
		},
	}
}

func (s *stockService) ListEntries(ctx context.Context, f entities.StockEntryFilter) (entities.StockEntryPage, error) {
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return entities.StockEntryPage{}, entities.ErrInvalidDateRange
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultStockEntriesLimit
	}
	f.Limit = min(f.Limit, maxStockEntriesLimit)

	var page entities.StockEntryPage
	fn := func() error {
		var err error
		page, err = s.store.ListStockEntries(ctx, f)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn); err != nil {
		return entities.StockEntryPage{}, err
	}
	return page, nil
}

// CreateEntry records a goods receipt and flags the product stale in every
// open order form. It is never retried.
func (s *stockService) CreateEntry(ctx context.Context, e entities.NewStockEntry) (entities.StockEntry, error) {
	entry, err := s.store.CreateStockEntry(ctx, e)
	if err != nil {
		return entities.StockEntry{}, err
	}

	marked := s.marker.MarkProductsStale(ctx, uuid.Nil, []int64{entry.ProductID})
	s.logger.InfoContext(ctx, "stock entry created",
		slog.Int64("entry_id", entry.ID),
		slog.String("entry_code", entry.Code),
		slog.Int64("product_id", entry.ProductID),
		slog.Int("quantity", entry.Quantity),
		slog.String("total", e.Total().String()),
		slog.Int("stale_forms", marked),
	)
	return entry, nil
}

func (s *stockService) DeleteEntry(ctx context.Context, id int64) error {
	if err := s.store.DeleteStockEntry(ctx, id); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "stock entry deleted", slog.Int64("entry_id", id))
	return nil
}
