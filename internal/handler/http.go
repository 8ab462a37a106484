package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/shop-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shop-backoffice/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Ordering interface {
	Open(ctx context.Context) (entities.FormView, error)
	View(ctx context.Context, id uuid.UUID) (entities.FormView, error)
	AddLine(ctx context.Context, id uuid.UUID) (entities.FormView, error)
	RemoveLine(ctx context.Context, id uuid.UUID, index int) (entities.FormView, error)
	UpdateLine(ctx context.Context, id uuid.UUID, index int, upd entities.LineUpdate) (entities.FormView, error)
	SetCustomer(ctx context.Context, id uuid.UUID, c entities.CustomerIdentity) (entities.FormView, error)
	SetDiscount(ctx context.Context, id uuid.UUID, raw string) (entities.FormView, error)
	Submit(ctx context.Context, id uuid.UUID) (entities.OrderRecord, error)
	Close(ctx context.Context, id uuid.UUID) error
}

type OrderAdmin interface {
	ListOrders(ctx context.Context, f entities.OrderFilter) (entities.OrderPage, error)
	GetOrder(ctx context.Context, id int64) (entities.OrderRecord, error)
	UpdateStatus(ctx context.Context, id int64, status entities.OrderStatus) (entities.OrderRecord, error)
	CancelOrder(ctx context.Context, id int64) error
}

type Stock interface {
	ListEntries(ctx context.Context, f entities.StockEntryFilter) (entities.StockEntryPage, error)
	CreateEntry(ctx context.Context, e entities.NewStockEntry) (entities.StockEntry, error)
	DeleteEntry(ctx context.Context, id int64) error
}

type Journal interface {
	Latest(ctx context.Context, count int) ([]entities.Submission, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	ordering Ordering
	orders   OrderAdmin
	journal  Journal
	stock    Stock
}

func NewHTTPHandler(logger *slog.Logger, ordering Ordering, orders OrderAdmin, journal Journal, stock Stock) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		ordering: ordering,
		orders:   orders,
		journal:  journal,
		stock:    stock,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/drafts", func(r chi.Router) {
		r.Post("/", h.OpenDraft)
		r.Route("/{session_id}", func(r chi.Router) {
			r.Get("/", h.GetDraft)
			r.Delete("/", h.CloseDraft)
			r.Put("/customer", h.SetCustomer)
			r.Put("/discount", h.SetDiscount)
			r.Post("/lines", h.AddLine)
			r.Patch("/lines/{index}", h.UpdateLine)
			r.Delete("/lines/{index}", h.RemoveLine)
			r.Post("/submit", h.Submit)
		})
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Get("/{order_id}", h.GetOrder)
		r.Put("/{order_id}/status", h.UpdateOrderStatus)
		r.Delete("/{order_id}", h.CancelOrder)
	})

	r.Route("/stock-entries", func(r chi.Router) {
		r.Get("/", h.ListStockEntries)
		r.Post("/", h.CreateStockEntry)
		r.Delete("/{entry_id}", h.DeleteStockEntry)
	})

	r.Get("/submissions", h.ListSubmissions)
}

// OpenDraft opens an order form.
// @Summary      Open an order form
// @Description  Loads the catalog snapshot and starts a draft with one empty line
// @Tags         drafts
// @Produce      json
// @Success      201  {object}  Draft
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /drafts [post]
func (h *HTTPHandler) OpenDraft(w http.ResponseWriter, r *http.Request) {
	view, err := h.ordering.Open(r.Context())
	if err != nil {
		h.writeError(w, r, "failed to open order form", err)
		return
	}
	utils.WriteJSON(w, DraftEntityToJSON(view), http.StatusCreated)
}

// GetDraft returns an order form.
// @Summary      Get an order form
// @Tags         drafts
// @Produce      json
// @Param        session_id  path      string  true  "Order form id"
// @Success      200  {object}  Draft
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /drafts/{session_id} [get]
func (h *HTTPHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	h.writeDraft(w, r, "failed to get order form")(h.ordering.View(r.Context(), id))
}

// CloseDraft discards an order form.
// @Summary      Close an order form
// @Description  Discards the draft. A submission still in flight is cancelled.
// @Tags         drafts
// @Param        session_id  path  string  true  "Order form id"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /drafts/{session_id} [delete]
func (h *HTTPHandler) CloseDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	if err := h.ordering.Close(r.Context(), id); err != nil {
		h.writeError(w, r, "failed to close order form", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetCustomer sets who the order is for.
// @Summary      Set the customer
// @Description  customer_id in reference mode, full_name, phone and address in inline mode
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        session_id  path  string            true  "Order form id"
// @Param        customer    body  CustomerIdentity  true  "Customer"
// @Success      200  {object}  Draft
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse
// @Failure      422  {object}  utils.ErrorResponse
// @Router       /drafts/{session_id}/customer [put]
func (h *HTTPHandler) SetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req CustomerIdentity
	if !h.decode(w, r, &req) {
		return
	}
	h.writeDraft(w, r, "failed to set customer")(h.ordering.SetCustomer(r.Context(), id, CustomerIdentityJSONToEntity(req)))
}

// SetDiscount sets the order discount.
// @Summary      Set the discount
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        session_id  path  string           true  "Order form id"
// @Param        discount    body  DiscountRequest  true  "Discount"
// @Success      200  {object}  Draft
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /drafts/{session_id}/discount [put]
func (h *HTTPHandler) SetDiscount(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req DiscountRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.writeDraft(w, r, "failed to set discount")(h.ordering.SetDiscount(r.Context(), id, req.Discount))
}

// AddLine appends an empty line.
// @Summary      Add a line
// @Tags         drafts
// @Produce      json
// @Param        session_id  path  string  true  "Order form id"
// @Success      200  {object}  Draft
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /drafts/{session_id}/lines [post]
func (h *HTTPHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	h.writeDraft(w, r, "failed to add line")(h.ordering.AddLine(r.Context(), id))
}

// UpdateLine changes the product and/or the quantity of a line.
// @Summary      Update a line
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        session_id  path  string             true  "Order form id"
// @Param        index       path  int                true  "Line index"
// @Param        line        body  UpdateLineRequest  true  "Changes"
// @Success      200  {object}  Draft
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /drafts/{session_id}/lines/{index} [patch]
func (h *HTTPHandler) UpdateLine(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	index, ok := h.lineIndex(w, r)
	if !ok {
		return
	}

	var req UpdateLineRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.ProductID == nil && req.Quantity == nil {
		utils.WriteError(w, "nothing to update", http.StatusBadRequest)
		return
	}

	upd := entities.LineUpdate{ProductRef: req.ProductID, Quantity: req.Quantity}
	h.writeDraft(w, r, "failed to update line")(h.ordering.UpdateLine(r.Context(), id, index, upd))
}

// RemoveLine deletes a line.
// @Summary      Remove a line
// @Description  The last remaining line can't be removed
// @Tags         drafts
// @Produce      json
// @Param        session_id  path  string  true  "Order form id"
// @Param        index       path  int     true  "Line index"
// @Success      200  {object}  Draft
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /drafts/{session_id}/lines/{index} [delete]
func (h *HTTPHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	index, ok := h.lineIndex(w, r)
	if !ok {
		return
	}
	h.writeDraft(w, r, "failed to remove line")(h.ordering.RemoveLine(r.Context(), id, index))
}

// Submit creates the order.
// @Summary      Submit the order
// @Description  Checks customer, lines and stock, then creates the order in the backend. The form closes on success.
// @Tags         drafts
// @Produce      json
// @Param        session_id  path  string  true  "Order form id"
// @Success      201  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse  "Submission in progress or form closed"
// @Failure      422  {object}  utils.ErrorResponse  "Invalid draft or rejected by the backend"
// @Failure      502  {object}  utils.ErrorResponse
// @Failure      504  {object}  utils.ErrorResponse
// @Router       /drafts/{session_id}/submit [post]
func (h *HTTPHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	submissionsInProgress.Inc()
	start := time.Now()
	order, err := h.ordering.Submit(r.Context(), id)
	submissionsInProgress.Dec()

	outcome := submissionOutcome(err)
	submissionsTotal.WithLabelValues(outcome).Inc()
	submissionDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	if err != nil {
		h.writeError(w, r, "failed to submit order", err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// ListOrders returns a page of orders.
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Param        page    query  int     false  "Page, from 1"
// @Param        limit   query  int     false  "Page size, up to 100"
// @Param        status  query  string  false  "Status filter"  Enums(pending, processing, completed, cancelled)
// @Success      200  {object}  OrderPage
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      502  {object}  utils.ErrorResponse
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := ListOrdersQuery{Status: q.Get("status")}

	var err error
	if query.Page, err = queryInt(q.Get("page")); err != nil {
		utils.WriteError(w, "page must be a number", http.StatusBadRequest)
		return
	}
	if query.Limit, err = queryInt(q.Get("limit")); err != nil {
		utils.WriteError(w, "limit must be a number", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(query); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	page, err := h.orders.ListOrders(r.Context(), entities.OrderFilter{
		Page:   query.Page,
		Limit:  query.Limit,
		Status: entities.OrderStatus(query.Status),
	})
	if err != nil {
		h.writeError(w, r, "failed to list orders", err)
		return
	}
	utils.WriteJSON(w, OrderPageEntityToJSON(page), http.StatusOK)
}

// GetOrder returns an order.
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        order_id  path  int  true  "Order id"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.orders.GetOrder(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "failed to get order", err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// UpdateOrderStatus moves an order to another status.
// @Summary      Update order status
// @Description  pending goes to processing, completed or cancelled, processing to completed or cancelled
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order_id  path  int                  true  "Order id"
// @Param        status    body  UpdateStatusRequest  true  "New status"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/status [put]
func (h *HTTPHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.orders.UpdateStatus(r.Context(), id, entities.OrderStatus(req.Status))
	if err != nil {
		h.writeError(w, r, "failed to update order status", err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CancelOrder cancels an order.
// @Summary      Cancel an order
// @Tags         orders
// @Param        order_id  path  int  true  "Order id"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /orders/{order_id} [delete]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	if err := h.orders.CancelOrder(r.Context(), id); err != nil {
		h.writeError(w, r, "failed to cancel order", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSubmissions returns the latest submission attempts.
// @Summary      Submission journal
// @Tags         submissions
// @Produce      json
// @Param        limit  query  int  false  "How many, up to 200"
// @Success      200  {array}   Submission
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /submissions [get]
func (h *HTTPHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r.URL.Query().Get("limit"))
	if err != nil || limit < 0 {
		utils.WriteError(w, "limit must be a positive number", http.StatusBadRequest)
		return
	}

	subs, err := h.journal.Latest(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, "failed to read submissions", err)
		return
	}

	res := make([]Submission, 0, len(subs))
	for _, s := range subs {
		res = append(res, SubmissionEntityToJSON(s))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *HTTPHandler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "session_id")
	if err := h.validate.Var(raw, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return uuid.Nil, false
	}
	return uuid.MustParse(raw), true
}

func (h *HTTPHandler) lineIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		utils.WriteError(w, "line index must be a number", http.StatusBadRequest)
		return 0, false
	}
	return index, true
}

func (h *HTTPHandler) orderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
	if err != nil || id <= 0 {
		utils.WriteError(w, "order id must be a positive number", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

func (h *HTTPHandler) writeDraft(w http.ResponseWriter, r *http.Request, msg string) func(entities.FormView, error) {
	return func(view entities.FormView, err error) {
		if err != nil {
			h.writeError(w, r, msg, err)
			return
		}
		utils.WriteJSON(w, DraftEntityToJSON(view), http.StatusOK)
	}
}

func queryInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func submissionOutcome(err error) string {
	switch {
	case err == nil:
		return "succeeded"
	case errors.Is(err, entities.ErrSubmissionInFlight):
		return "in_flight"
	case errors.Is(err, entities.ErrCustomerRequired),
		errors.Is(err, entities.ErrNoValidLines),
		errors.Is(err, entities.ErrInsufficientStock):
		return "invalid"
	case errors.Is(err, entities.ErrOrderRejected):
		return "rejected"
	case errors.Is(err, entities.ErrSubmitTimeout):
		return "timeout"
	case errors.Is(err, entities.ErrSubmitCancelled):
		return "cancelled"
	default:
		return "failed"
	}
}
