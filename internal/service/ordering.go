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
	"github.com/SergeyBogomolovv/shop-backoffice/pkg/cache"
	"github.com/SergeyBogomolovv/shop-backoffice/pkg/trm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SnapshotLoader interface {
	Load(ctx context.Context) entities.Snapshot
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, p entities.OrderPayload) (entities.OrderRecord, error)
}

type SubmissionJournal interface {
	SaveSubmission(ctx context.Context, s entities.Submission) error
	SaveSubmissionItems(ctx context.Context, submissionID uuid.UUID, items []entities.SubmissionItem) error
}

type OrderNotifier interface {
	OrderCreated(ctx context.Context, ev entities.OrderCreated) error
}

type orderingService struct {
	logger        *slog.Logger
	mode          entities.CustomerMode
	submitTimeout time.Duration

	loader    SnapshotLoader
	creator   OrderCreator
	txManager trm.Manager
	journal   SubmissionJournal
	notifier  OrderNotifier

	sessions *cache.LRUCache[*session]
}

func NewOrderingService(
	logger *slog.Logger,
	cfg config.Ordering,
	loader SnapshotLoader,
	creator OrderCreator,
	txManager trm.Manager,
	journal SubmissionJournal,
	notifier OrderNotifier,
) *orderingService {
	s := &orderingService{
		logger:        logger.With(slog.String("service", "ordering")),
		mode:          entities.CustomerMode(cfg.CustomerMode),
		submitTimeout: cfg.SubmitTimeout,
		loader:        loader,
		creator:       creator,
		txManager:     txManager,
		journal:       journal,
		notifier:      notifier,
		sessions:      cache.NewLRUCache[*session](cfg.MaxSessions, cfg.SessionTTL),
	}

	s.sessions.Retain(func(_ string, sess *session) bool {
		return sess.inFlight()
	})
	s.sessions.OnEvict(func(key string, sess *session) {
		sess.close()
		s.logger.Info("order form expired", slog.String("session_id", key))
	})
	return s
}

// Start expires idle order forms until ctx is done.
func (s *orderingService) Start(ctx context.Context) error {
	return s.sessions.Start(ctx)
}

func (s *orderingService) Open(ctx context.Context) (entities.FormView, error) {
	snapshot := s.loader.Load(ctx)
	if err := ctx.Err(); err != nil {
		return entities.FormView{}, err
	}

	sess := newSession(uuid.New(), snapshot)
	s.sessions.Set(sess.id.String(), sess)

	s.logger.InfoContext(ctx, "order form opened",
		slog.String("session_id", sess.id.String()),
		slog.Int("products", snapshot.Catalog.Len()),
		slog.Int("customers", len(snapshot.Customers)),
	)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.view(s.mode), nil
}

func (s *orderingService) View(ctx context.Context, id uuid.UUID) (entities.FormView, error) {
	sess, err := s.session(id)
	if err != nil {
		return entities.FormView{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return entities.FormView{}, entities.ErrSessionNotFound
	}
	return sess.view(s.mode), nil
}

func (s *orderingService) AddLine(ctx context.Context, id uuid.UUID) (entities.FormView, error) {
	return s.edit(id, func(sess *session) error {
		sess.draft.AddLine()
		return nil
	})
}

func (s *orderingService) RemoveLine(ctx context.Context, id uuid.UUID, index int) (entities.FormView, error) {
	return s.edit(id, func(sess *session) error {
		if !sess.draft.HasLine(index) {
			return entities.ErrLineNotFound
		}
		if len(sess.draft.Lines) == 1 {
			return entities.ErrLastLine
		}
		sess.draft.RemoveLine(index)
		return nil
	})
}

// UpdateLine sets the product before the quantity when both are given.
func (s *orderingService) UpdateLine(ctx context.Context, id uuid.UUID, index int, upd entities.LineUpdate) (entities.FormView, error) {
	return s.edit(id, func(sess *session) error {
		if !sess.draft.HasLine(index) {
			return entities.ErrLineNotFound
		}
		if upd.ProductRef != nil {
			sess.draft.UpdateLine(index, entities.LineFieldProduct, *upd.ProductRef)
		}
		if upd.Quantity != nil {
			sess.draft.UpdateLine(index, entities.LineFieldQuantity, int64(*upd.Quantity))
		}
		return nil
	})
}

func (s *orderingService) SetCustomer(ctx context.Context, id uuid.UUID, c entities.CustomerIdentity) (entities.FormView, error) {
	return s.edit(id, func(sess *session) error {
		if !c.Conforms(s.mode) {
			return entities.ErrCustomerShape
		}
		sess.draft.Customer = c
		return nil
	})
}

func (s *orderingService) SetDiscount(ctx context.Context, id uuid.UUID, raw string) (entities.FormView, error) {
	return s.edit(id, func(sess *session) error {
		sess.draft.Discount = entities.ParseDiscount(raw)
		return nil
	})
}

// Close discards the form, aborting a submission still in flight.
func (s *orderingService) Close(ctx context.Context, id uuid.UUID) error {
	sess, ok := s.sessions.Delete(id.String())
	if !ok {
		return entities.ErrSessionNotFound
	}
	sess.close()

	s.logger.InfoContext(ctx, "order form closed", slog.String("session_id", id.String()))
	return nil
}

// Submit validates the draft and creates the order through the backend.
// Only one submission per form runs at a time, a concurrent call fails with
// ErrSubmissionInFlight without reaching the backend.
func (s *orderingService) Submit(ctx context.Context, id uuid.UUID) (entities.OrderRecord, error) {
	sess, err := s.session(id)
	if err != nil {
		return entities.OrderRecord{}, err
	}

	sess.mu.Lock()
	if sess.closed {
		sess.mu.Unlock()
		return entities.OrderRecord{}, entities.ErrSessionNotFound
	}
	if sess.busy() {
		sess.mu.Unlock()
		return entities.OrderRecord{}, entities.ErrSubmissionInFlight
	}

	sess.state = entities.StateValidating
	sess.lastError = ""

	payload, err := s.validate(sess.draft, sess.snapshot.Catalog)
	if err != nil {
		sess.state = entities.StateIdle
		sess.lastError = err.Error()
		sess.mu.Unlock()
		return entities.OrderRecord{}, err
	}

	draft := sess.draft.Clone()
	catalog := sess.snapshot.Catalog

	// The caller going away must not abort an order the backend may already be
	// creating. Only Close and the timeout cancel it.
	submitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.submitTimeout)
	defer cancel()
	sess.cancel = cancel
	sess.state = entities.StateSubmitting
	sess.mu.Unlock()

	rec, err := s.creator.CreateOrder(submitCtx, payload)

	sess.mu.Lock()
	sess.cancel = nil
	if err != nil {
		serr := submitError(submitCtx, err)
		sess.state = entities.StateFailed
		sess.lastError = serr.Message
		sess.mu.Unlock()

		s.logger.WarnContext(ctx, "order submission failed",
			slog.String("session_id", id.String()),
			slog.String("message", serr.Message),
			slog.Any("error", err),
		)
		s.record(ctx, id, draft, catalog, payload, entities.OrderRecord{}, serr)
		return entities.OrderRecord{}, serr
	}

	sess.draft = entities.NewOrderDraft()
	sess.state = entities.StateSucceeded
	sess.closed = true
	sess.mu.Unlock()
	s.sessions.Delete(id.String())

	s.logger.InfoContext(ctx, "order submitted",
		slog.String("session_id", id.String()),
		slog.Int64("order_id", rec.ID),
		slog.String("order_code", rec.Code),
	)
	s.record(ctx, id, draft, catalog, payload, rec, nil)
	s.notify(ctx, id, payload, rec)
	return rec, nil
}

// MarkStale flags products of an order created elsewhere in every other open
// form holding them. It returns the number of forms affected.
func (s *orderingService) MarkStale(ctx context.Context, ev entities.OrderCreated) int {
	productIDs := make([]int64, 0, len(ev.Items))
	for _, it := range ev.Items {
		productIDs = append(productIDs, it.ProductID)
	}

	marked := s.MarkProductsStale(ctx, ev.SessionID, productIDs)
	if marked > 0 {
		s.logger.DebugContext(ctx, "order forms marked stale", slog.Int64("order_id", ev.OrderID), slog.Int("forms", marked))
	}
	return marked
}

// MarkProductsStale flags productIDs in every open form except the one with
// id except. uuid.Nil spares none.
func (s *orderingService) MarkProductsStale(ctx context.Context, except uuid.UUID, productIDs []int64) int {
	marked := 0
	for _, sess := range s.sessions.Values() {
		if sess.id == except {
			continue
		}
		sess.mu.Lock()
		if !sess.closed && sess.markStale(productIDs) {
			marked++
		}
		sess.mu.Unlock()
	}
	return marked
}

func (s *orderingService) session(id uuid.UUID) (*session, error) {
	sess, ok := s.sessions.Get(id.String())
	if !ok {
		return nil, entities.ErrSessionNotFound
	}
	return sess, nil
}

// edit applies fn to an idle form. A successful edit dismisses the last error.
func (s *orderingService) edit(id uuid.UUID, fn func(sess *session) error) (entities.FormView, error) {
	sess, err := s.session(id)
	if err != nil {
		return entities.FormView{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.closed {
		return entities.FormView{}, entities.ErrSessionNotFound
	}
	if sess.busy() {
		return entities.FormView{}, entities.ErrSubmissionInFlight
	}
	if err := fn(sess); err != nil {
		return entities.FormView{}, err
	}

	sess.state = entities.StateIdle
	sess.lastError = ""
	return sess.view(s.mode), nil
}

// validate runs the pre-submit checks in order: customer, valid lines, stock.
func (s *orderingService) validate(d entities.OrderDraft, c entities.Catalog) (entities.OrderPayload, error) {
	if !d.Customer.Complete(s.mode) {
		return entities.OrderPayload{}, entities.ErrCustomerRequired
	}
	if len(d.ValidLines(c)) == 0 {
		return entities.OrderPayload{}, entities.ErrNoValidLines
	}
	if err := entities.ValidateStock(d.Lines, c); err != nil {
		return entities.OrderPayload{}, err
	}
	return entities.BuildPayload(s.mode, d, c), nil
}

func submitError(ctx context.Context, err error) *entities.SubmitError {
	var be *entities.BackendError
	if errors.As(err, &be) && be.Message != "" {
		kind := entities.ErrOrderRejected
		if be.StatusCode >= http.StatusInternalServerError {
			kind = entities.ErrBackendFailure
		}
		return &entities.SubmitError{Kind: kind, Message: be.Message, Err: err}
	}

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return &entities.SubmitError{Kind: entities.ErrSubmitTimeout, Message: entities.ErrSubmitTimeout.Error(), Err: err}
	case errors.Is(ctx.Err(), context.Canceled):
		return &entities.SubmitError{Kind: entities.ErrSubmitCancelled, Message: entities.ErrSubmitCancelled.Error(), Err: err}
	}
	return &entities.SubmitError{Kind: entities.ErrBackendFailure, Message: entities.GenericSubmitFailure, Err: err}
}

// record journals an attempt that reached the backend. Failures are logged only.
func (s *orderingService) record(
	ctx context.Context,
	sessionID uuid.UUID,
	draft entities.OrderDraft,
	catalog entities.Catalog,
	payload entities.OrderPayload,
	rec entities.OrderRecord,
	serr *entities.SubmitError,
) {
	totals := entities.ComputeTotal(draft.Lines, catalog, payload.Discount)
	sub := entities.Submission{
		ID:        uuid.New(),
		SessionID: sessionID,
		Outcome:   entities.OutcomeSucceeded,
		Customer:  payload.Customer,
		Discount:  payload.Discount,
		Subtotal:  totals.Subtotal,
		Total:     totals.Total,
		OrderID:   rec.ID,
		Items:     make([]entities.SubmissionItem, 0, len(payload.Items)),
		CreatedAt: time.Now().UTC(),
	}
	if serr != nil {
		sub.Outcome = entities.OutcomeFailed
		if errors.Is(serr, entities.ErrOrderRejected) {
			sub.Outcome = entities.OutcomeRejected
		}
		sub.Error = serr.Message
	}
	for _, it := range payload.Items {
		price := decimal.Zero
		if e, ok := catalog.Lookup(it.ProductID); ok {
			price = e.UnitPrice
		}
		sub.Items = append(sub.Items, entities.SubmissionItem{ProductID: it.ProductID, Quantity: it.Quantity, UnitPrice: price})
	}

	ctx = context.WithoutCancel(ctx)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.journal.SaveSubmission(ctx, sub); err != nil {
			return fmt.Errorf("failed to save submission: %w", err)
		}
		if err := s.journal.SaveSubmissionItems(ctx, sub.ID, sub.Items); err != nil {
			return fmt.Errorf("failed to save submission items: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to journal submission",
			slog.String("session_id", sessionID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *orderingService) notify(ctx context.Context, sessionID uuid.UUID, payload entities.OrderPayload, rec entities.OrderRecord) {
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	ev := entities.OrderCreated{
		OrderID:   rec.ID,
		OrderCode: rec.Code,
		SessionID: sessionID,
		Total:     rec.TotalAmount,
		Discount:  payload.Discount,
		Items:     payload.Items,
		CreatedAt: createdAt,
	}
	if err := s.notifier.OrderCreated(context.WithoutCancel(ctx), ev); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order created event",
			slog.Int64("order_id", rec.ID),
			slog.Any("error", err),
		)
	}
}
