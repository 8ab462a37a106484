package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/shop-backoffice/internal/config"
	"github.com/SergeyBogomolovv/shop-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shop-backoffice/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const (
	noticeCatalogUnavailable = "failed to load products and customers, the order form has no options"
	noticeCatalogTruncated   = "only the first %d products are available in this form"
)

type CatalogReader interface {
	ListProducts(ctx context.Context, q entities.PageQuery) ([]entities.CatalogEntry, entities.Pagination, error)
	ListCustomers(ctx context.Context, q entities.PageQuery) ([]entities.Customer, entities.Pagination, error)
}

type catalogLoader struct {
	logger   *slog.Logger
	reader   CatalogReader
	mode     entities.CustomerMode
	pageSize int
	maxPages int
	retry    utils.RetryConfig
}

func NewCatalogLoader(logger *slog.Logger, reader CatalogReader, mode entities.CustomerMode, cfg config.Catalog) *catalogLoader {
	return &catalogLoader{
		logger:   logger.With(slog.String("service", "catalog")),
		reader:   reader,
		mode:     mode,
		pageSize: cfg.PageSize,
		maxPages: cfg.MaxPages,
		retry: utils.RetryConfig{
			MaxAttempts:  cfg.RetryAttempts,
			InitialDelay: 100 * time.Millisecond,
			MaxDelay:     time.Second,
			Multiplier:   2,
			Retryable:    retryable,
		},
	}
}

// Load reads active products, and active customers in reference mode, in
// parallel. Any failure degrades to an empty snapshot with a notice.
func (l *catalogLoader) Load(ctx context.Context) entities.Snapshot {
	var (
		products  []entities.CatalogEntry
		customers []entities.Customer
		truncated bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, truncated, err = readAll(gctx, l, l.reader.ListProducts)
		if err != nil {
			return fmt.Errorf("failed to load products: %w", err)
		}
		return nil
	})
	if l.mode == entities.CustomerModeReference {
		g.Go(func() error {
			var err error
			customers, _, err = readAll(gctx, l, l.reader.ListCustomers)
			if err != nil {
				return fmt.Errorf("failed to load customers: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		l.logger.WarnContext(ctx, "catalog unavailable", slog.Any("error", err))
		return unavailableSnapshot()
	}

	catalog, err := entities.NewCatalog(products)
	if err != nil {
		l.logger.ErrorContext(ctx, "backend returned a malformed catalog", slog.Any("error", err))
		return unavailableSnapshot()
	}

	snapshot := entities.Snapshot{Catalog: catalog, Customers: customers}
	if truncated {
		snapshot.Notice = fmt.Sprintf(noticeCatalogTruncated, catalog.Len())
		l.logger.WarnContext(ctx, "catalog truncated", slog.Int("products", catalog.Len()), slog.Int("max_pages", l.maxPages))
	}

	l.logger.DebugContext(ctx, "catalog loaded", slog.Int("products", catalog.Len()), slog.Int("customers", len(customers)))
	return snapshot
}

func unavailableSnapshot() entities.Snapshot {
	return entities.Snapshot{
		Catalog: entities.EmptyCatalog(),
		Notice:  noticeCatalogUnavailable,
	}
}

type pageFunc[T any] func(ctx context.Context, q entities.PageQuery) ([]T, entities.Pagination, error)

// readAll walks pages until the backend reports no next page or maxPages is
// reached, in which case truncated is true.
func readAll[T any](ctx context.Context, l *catalogLoader, fetch pageFunc[T]) ([]T, bool, error) {
	var all []T
	for page := 1; page <= l.maxPages; page++ {
		q := entities.PageQuery{Page: page, Limit: l.pageSize, ActiveOnly: true}

		var (
			items []T
			p     entities.Pagination
		)
		err := utils.Retry(ctx, l.retry, func() error {
			var err error
			items, p, err = fetch(ctx, q)
			return err
		})
		if err != nil {
			return nil, false, err
		}

		all = append(all, items...)
		if !p.HasNext || len(items) == 0 {
			return all, false, nil
		}
	}
	return all, true, nil
}

// retryable treats client errors and cancellation as final.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var be *entities.BackendError
	if errors.As(err, &be) {
		return be.StatusCode >= http.StatusInternalServerError || be.StatusCode == http.StatusTooManyRequests
	}
	return true
}
