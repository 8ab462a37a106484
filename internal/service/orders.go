package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shop-backoffice/pkg/utils"
)

const (
	defaultOrdersLimit = 10
	maxOrdersLimit     = 100
)

type OrderStore interface {
	ListOrders(ctx context.Context, f entities.OrderFilter) (entities.OrderPage, error)
	GetOrder(ctx context.Context, id int64) (entities.OrderRecord, error)
	UpdateOrderStatus(ctx context.Context, id int64, status entities.OrderStatus) (entities.OrderRecord, error)
	CancelOrder(ctx context.Context, id int64) error
}

type orderAdminService struct {
	logger *slog.Logger
	store  OrderStore
	retry  utils.RetryConfig
}

func NewOrderAdminService(logger *slog.Logger, store OrderStore) *orderAdminService {
	return &orderAdminService{
		logger: logger.With(slog.String("service", "orders")),
		store:  store,
		retry: utils.RetryConfig{
			MaxAttempts:  3,
			InitialDelay: 100 * time.Millisecond,
			Multiplier:   2,
			Retryable:    retryable,
		},
	}
}

func (s *orderAdminService) ListOrders(ctx context.Context, f entities.OrderFilter) (entities.OrderPage, error) {
	if f.Status != "" && !f.Status.Valid() {
		return entities.OrderPage{}, entities.ErrInvalidStatus
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultOrdersLimit
	}
	f.Limit = min(f.Limit, maxOrdersLimit)

	var page entities.OrderPage
	fn := func() error {
		var err error
		page, err = s.store.ListOrders(ctx, f)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn); err != nil {
		return entities.OrderPage{}, err
	}
	return page, nil
}

func (s *orderAdminService) GetOrder(ctx context.Context, id int64) (entities.OrderRecord, error) {
	var order entities.OrderRecord
	fn := func() error {
		var err error
		order, err = s.store.GetOrder(ctx, id)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.OrderRecord{}, err
	}
	return order, nil
}

// UpdateStatus moves an order along pending -> processing -> completed.
// The transition is checked against the current status first, the backend
// still has the final word.
func (s *orderAdminService) UpdateStatus(ctx context.Context, id int64, status entities.OrderStatus) (entities.OrderRecord, error) {
	if !status.Valid() {
		return entities.OrderRecord{}, entities.ErrInvalidStatus
	}

	current, err := s.GetOrder(ctx, id)
	if err != nil {
		return entities.OrderRecord{}, err
	}
	if !current.Status.CanTransitionTo(status) {
		return entities.OrderRecord{}, fmt.Errorf("%w: %s to %s", entities.ErrStatusTransition, current.Status, status)
	}

	order, err := s.store.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return entities.OrderRecord{}, err
	}

	s.logger.InfoContext(ctx, "order status updated",
		slog.Int64("order_id", id),
		slog.String("from", string(current.Status)),
		slog.String("to", string(status)),
	)
	return order, nil
}

func (s *orderAdminService) CancelOrder(ctx context.Context, id int64) error {
	current, err := s.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	if !current.Status.CanTransitionTo(entities.OrderStatusCancelled) {
		return fmt.Errorf("%w: %s to %s", entities.ErrStatusTransition, current.Status, entities.OrderStatusCancelled)
	}

	if err := s.store.CancelOrder(ctx, id); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "order cancelled", slog.Int64("order_id", id))
	return nil
}
