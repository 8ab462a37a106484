package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shop-backoffice/internal/handler"
	mocks "github.com/SergeyBogomolovv/shop-backoffice/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deps struct {
	ordering *mocks.MockOrdering
	orders   *mocks.MockOrderAdmin
	journal  *mocks.MockJournal
	stock    *mocks.MockStock
}

func newRouter(t *testing.T) (chi.Router, deps) {
	t.Helper()

	d := deps{
		ordering: mocks.NewMockOrdering(t),
		orders:   mocks.NewMockOrderAdmin(t),
		journal:  mocks.NewMockJournal(t),
		stock:    mocks.NewMockStock(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, d.ordering, d.orders, d.journal, d.stock)

	r := chi.NewRouter()
	h.Init(r)
	return r, d
}

func do(t *testing.T, r http.Handler, method, target, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(raw)
}

var sessionID = uuid.MustParse("6f1c3c0e-3b52-4d7e-9a57-0d2f8a6f3f10")

func latteView() entities.FormView {
	latte := entities.CatalogEntry{ID: 1, DisplayName: "Latte", UnitPrice: decimal.NewFromInt(35000), QuantityOnHand: 10}
	return entities.FormView{
		SessionID: sessionID,
		State:     entities.StateIdle,
		Mode:      entities.CustomerModeReference,
		Customer:  entities.CustomerIdentity{CustomerID: 7},
		Lines: []entities.ResolvedLine{{
			LineItem:          entities.LineItem{ProductRef: 1, Quantity: 3},
			ProductName:       "Latte",
			ResolvedUnitPrice: latte.UnitPrice,
			LineSubtotal:      decimal.NewFromInt(105000),
			Valid:             true,
		}},
		Discount: decimal.NewFromInt(10000),
		Totals:   entities.Totals{Subtotal: decimal.NewFromInt(105000), Total: decimal.NewFromInt(95000)},
		Products: []entities.CatalogEntry{latte},
	}
}

func TestHTTPHandler_OpenDraft(t *testing.T) {
	r, d := newRouter(t)
	d.ordering.EXPECT().Open(mock.Anything).Return(latteView(), nil).Once()

	status, body := do(t, r, http.MethodPost, "/drafts", "")
	require.Equal(t, http.StatusCreated, status)

	var draft handler.Draft
	require.NoError(t, json.Unmarshal([]byte(body), &draft))
	assert.Equal(t, sessionID.String(), draft.SessionID)
	assert.Equal(t, "idle", draft.State)
	assert.Equal(t, "reference", draft.CustomerMode)
	require.Len(t, draft.Lines, 1)
	assert.Equal(t, "Latte", draft.Lines[0].Product)
	assert.True(t, draft.Subtotal.Equal(decimal.NewFromInt(105000)))
	assert.True(t, draft.Total.Equal(decimal.NewFromInt(95000)))
	require.Len(t, draft.Products, 1)
	assert.Equal(t, 10, draft.Products[0].QuantityOnHand)
}

func TestHTTPHandler_OpenDraft_Errors(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		wantLevel  string
	}{
		{
			name:       "caller went away",
			err:        context.Canceled,
			wantStatus: 499,
			wantBody:   `"code":"request_cancelled"`,
			wantLevel:  "DEBUG",
		},
		{
			name:       "deadline",
			err:        fmt.Errorf("load snapshot: %w", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantBody:   `"code":"request_timeout"`,
			wantLevel:  "WARN",
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
			wantLevel:  "ERROR",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ordering := mocks.NewMockOrdering(t)
			ordering.EXPECT().Open(mock.Anything).Return(entities.FormView{}, tc.err).Once()

			var logs bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
			h := handler.NewHTTPHandler(logger, ordering, mocks.NewMockOrderAdmin(t), mocks.NewMockJournal(t), mocks.NewMockStock(t))
			r := chi.NewRouter()
			h.Init(r)

			status, body := do(t, r, http.MethodPost, "/drafts", "")
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)

			var entry struct {
				Level string `json:"level"`
			}
			require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
			assert.Equal(t, tc.wantLevel, entry.Level)
		})
	}
}

func TestHTTPHandler_Editing(t *testing.T) {
	base := "/drafts/" + sessionID.String()

	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		mockBehavior func(d deps)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "get draft",
			method: http.MethodGet,
			target: base,
			mockBehavior: func(d deps) {
				d.ordering.EXPECT().View(mock.Anything, sessionID).Return(latteView(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"session_id":"` + sessionID.String() + `"`,
		},
		{
			name:         "malformed session id",
			method:       http.MethodGet,
			target:       "/drafts/not-a-uuid",
			mockBehavior: func(d deps) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:   "unknown session",
			method: http.MethodGet,
			target: base,
			mockBehavior: func(d deps) {
				d.ordering.EXPECT().View(mock.Anything, sessionID).Return(entities.FormView{}, entities.ErrSessionNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"code":"session_not_found"`,
		},
		{
			name:   "add line",
			method: http.MethodPost,
			target: base + "/lines",
			mockBehavior: func(d deps) {
				d.ordering.EXPECT().AddLine(mock.Anything, sessionID).Return(latteView(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "update product and quantity",
			method: http.MethodPatch,
			target: base + "/lines/0",
			body:   `{"product_id":1,"quantity":3}`,
			mockBehavior: func(d deps) {
				d.ordering.EXPECT().
					UpdateLine(mock.Anything, sessionID, 0, mock.MatchedBy(func(u entities.LineUpdate) bool {
						return u.ProductRef != nil && *u.ProductRef == 1 && u.Quantity != nil && *u.Quantity == 3
					})).
					Return(latteView(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "update quantity only",
			method: http.MethodPatch,
			target: base + "/lines/2",
			body:   `{"quantity":0}`,
			mockBehavior: func(d deps) {
				d.ordering.EXPECT().
					UpdateLine(mock.Anything, sessionID, 2, mock.MatchedBy(func(u entities.LineUpdate) bool {
						return u.ProductRef == nil && u.Quantity != nil && *u.Quantity == 0
					})).
					Return(latteView(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "empty update",
			method:       http.MethodPatch,
			target:       base + "/lines/0",
			body:         `{}`,
			mockBehavior: func(d deps) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"nothing to update"`,
		},
		{
			name:         "negative quantity",
			method:       http.MethodPatch,
			target:       base + "/lines/0",
			body:         `{"quantity":-1}`,
			mockBehavior: func(d deps) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Quantity":"gte"`,
		},
		{
			name:         "unknown field",
			method:       http.MethodPatch,
			target:       base + "/lines/0",
			body:         `{"qty":1}`,
			mockBehavior: func(d deps) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name:         "line index not a number",
			method:       http.MethodDelete,
			target:       base + "/lines/first",
			mockBehavior: func(d deps) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "remove unknown line",
			method: http.MethodDelete,
			target: base + "/lines/5",
			mockBehavior: func(d deps) {
				d.ordering.EXPECT().RemoveLine(mock.Anything, sessionID, 5).Return(entities.FormView{}, entities.ErrLineNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"code":"line_not_found"`,
		},
		{
			name:   "remove last line",
			method: http.MethodDelete,
			target: base + "/lines/0",
			mockBehavior: func(d deps) {
				d.ordering.EXPECT().RemoveLine(mock.Anything, sessionID, 0).Return(entities.FormView{}, entities.ErrLastLine).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"last_line"`,
		},
		{
			name:   "edit while submitting",
			method: http.MethodPost,
			target: base + "/lines",
			mockBehavior: func(d deps) {
				d.ordering.EXPECT().AddLine(mock.Anything, sessionID).Return(entities.FormView{}, entities.ErrSubmissionInFlight).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"submission_in_flight"`,
		},
		{
			name:   "set customer",
			method: http.MethodPut,
			target: base + "/customer",
			body:   `{"customer_id":7}`,
			mockBehavior: func(d deps) {
				d.ordering.EXPECT().
					SetCustomer(mock.Anything, sessionID, entities.CustomerIdentity{CustomerID: 7}).
					Return(latteView(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"customer_id":7`,
		},
		{
			name:   "customer of the wrong shape",
			method: http.MethodPut,
			target: base + "/customer",
			body:   `{"full_name":"Ann"}`,
			mockBehavior: func(d deps) {
				d.ordering.EXPECT().
					SetCustomer(mock.Anything, sessionID, entities.CustomerIdentity{FullName: "Ann"}).
					Return(entities.FormView{}, entities.ErrCustomerShape).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"code":"customer_shape"`,
		},
		{
			name:   "set discount",
			method: http.MethodPut,
			target: base + "/discount",
			body:   `{"discount":"abc"}`,
			mockBehavior: func(d deps) {
				d.ordering.EXPECT().SetDiscount(mock.Anything, sessionID, "abc").Return(latteView(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "close draft",
			method: http.MethodDelete,
			target: base,
			mockBehavior: func(d deps) {
				d.ordering.EXPECT().Close(mock.Anything, sessionID).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newRouter(t)
			tc.mockBehavior(d)

			status, body := do(t, r, tc.method, tc.target, tc.body)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_Submit(t *testing.T) {
	target := "/drafts/" + sessionID.String() + "/submit"
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "created",
			wantStatus: http.StatusCreated,
			wantBody:   `"code":"ORD-42"`,
		},
		{
			name:       "customer missing",
			err:        entities.ErrCustomerRequired,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"message":"choose or enter a customer","code":"customer_required"`,
		},
		{
			name:       "no valid lines",
			err:        entities.ErrNoValidLines,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"code":"no_valid_lines"`,
		},
		{
			name: "insufficient stock",
			err: &entities.StockShortageError{
				LineIndex: 0, ProductID: 1, ProductName: "Latte", Requested: 11, Available: 10,
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"code":"insufficient_stock"`,
		},
		{
			name: "rejected by backend",
			err: &entities.SubmitError{
				Kind:    entities.ErrOrderRejected,
				Message: "Customer not found",
				Err:     &entities.BackendError{StatusCode: 400, Message: "Customer not found"},
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"message":"Customer not found","code":"order_rejected"`,
		},
		{
			name: "backend down",
			err: &entities.SubmitError{
				Kind:    entities.ErrBackendFailure,
				Message: entities.GenericSubmitFailure,
				Err:     errors.New("connection refused"),
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `"message":"failed to create order","code":"backend_failure"`,
		},
		{
			name: "timed out",
			err: &entities.SubmitError{
				Kind:    entities.ErrSubmitTimeout,
				Message: entities.ErrSubmitTimeout.Error(),
			},
			wantStatus: http.StatusGatewayTimeout,
			wantBody:   `"code":"submit_timeout"`,
		},
		{
			name: "form closed meanwhile",
			err: &entities.SubmitError{
				Kind:    entities.ErrSubmitCancelled,
				Message: entities.ErrSubmitCancelled.Error(),
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"submit_cancelled"`,
		},
		{
			name:       "already submitting",
			err:        entities.ErrSubmissionInFlight,
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"submission_in_flight"`,
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newRouter(t)

			var order entities.OrderRecord
			if tc.err == nil {
				order = entities.OrderRecord{
					ID:          42,
					Code:        "ORD-42",
					CustomerID:  7,
					Status:      entities.OrderStatusPending,
					TotalAmount: decimal.NewFromInt(95000),
					Discount:    decimal.NewFromInt(10000),
					CreatedAt:   created,
				}
			}
			d.ordering.EXPECT().Submit(mock.Anything, sessionID).Return(order, tc.err).Once()

			status, body := do(t, r, http.MethodPost, target, "")
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_Orders(t *testing.T) {
	order := entities.OrderRecord{ID: 42, Code: "ORD-42", Status: entities.OrderStatusPending}

	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		mockBehavior func(d deps)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "list with filters",
			method: http.MethodGet,
			target: "/orders?page=2&limit=5&status=pending",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().
					ListOrders(mock.Anything, entities.OrderFilter{Page: 2, Limit: 5, Status: entities.OrderStatusPending}).
					Return(entities.OrderPage{
						Orders:     []entities.OrderRecord{order},
						Pagination: entities.Pagination{CurrentPage: 2, TotalPages: 3, TotalItems: 11, HasNext: true, HasPrev: true},
					}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"current_page":2`,
		},
		{
			name:         "list with unknown status",
			method:       http.MethodGet,
			target:       "/orders?status=lost",
			mockBehavior: func(d deps) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Status":"oneof"`,
		},
		{
			name:         "list with bad page",
			method:       http.MethodGet,
			target:       "/orders?page=x",
			mockBehavior: func(d deps) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "get",
			method: http.MethodGet,
			target: "/orders/42",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrder(mock.Anything, int64(42)).Return(order, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"code":"ORD-42"`,
		},
		{
			name:   "get missing",
			method: http.MethodGet,
			target: "/orders/43",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().GetOrder(mock.Anything, int64(43)).Return(entities.OrderRecord{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:         "get with bad id",
			method:       http.MethodGet,
			target:       "/orders/-1",
			mockBehavior: func(d deps) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "update status",
			method: http.MethodPut,
			target: "/orders/42/status",
			body:   `{"status":"completed"}`,
			mockBehavior: func(d deps) {
				done := order
				done.Status = entities.OrderStatusCompleted
				d.orders.EXPECT().UpdateStatus(mock.Anything, int64(42), entities.OrderStatusCompleted).Return(done, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"completed"`,
		},
		{
			name:   "update status not allowed",
			method: http.MethodPut,
			target: "/orders/42/status",
			body:   `{"status":"pending"}`,
			mockBehavior: func(d deps) {
				d.orders.EXPECT().UpdateStatus(mock.Anything, int64(42), entities.OrderStatusPending).
					Return(entities.OrderRecord{}, entities.ErrStatusTransition).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"code":"status_transition"`,
		},
		{
			name:         "update status with unknown value",
			method:       http.MethodPut,
			target:       "/orders/42/status",
			body:         `{"status":"lost"}`,
			mockBehavior: func(d deps) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "cancel",
			method: http.MethodDelete,
			target: "/orders/42",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().CancelOrder(mock.Anything, int64(42)).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "cancel with backend down",
			method: http.MethodDelete,
			target: "/orders/42",
			mockBehavior: func(d deps) {
				d.orders.EXPECT().CancelOrder(mock.Anything, int64(42)).
					Return(fmt.Errorf("failed to cancel order: %w", &entities.BackendError{StatusCode: 503})).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `"message":"failed to cancel order","code":"backend_failure"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, d := newRouter(t)
			tc.mockBehavior(d)

			status, body := do(t, r, tc.method, tc.target, tc.body)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_ListSubmissions(t *testing.T) {
	t.Run("latest", func(t *testing.T) {
		r, d := newRouter(t)
		d.journal.EXPECT().Latest(mock.Anything, 5).Return([]entities.Submission{{
			ID:        uuid.New(),
			SessionID: sessionID,
			Outcome:   entities.OutcomeRejected,
			Error:     "Customer not found",
		}}, nil).Once()

		status, body := do(t, r, http.MethodGet, "/submissions?limit=5", "")
		require.Equal(t, http.StatusOK, status)

		var subs []handler.Submission
		require.NoError(t, json.Unmarshal([]byte(body), &subs))
		require.Len(t, subs, 1)
		assert.Equal(t, "rejected", subs[0].Outcome)
		assert.Equal(t, sessionID.String(), subs[0].SessionID)
	})

	t.Run("empty journal", func(t *testing.T) {
		r, d := newRouter(t)
		d.journal.EXPECT().Latest(mock.Anything, 0).Return(nil, nil).Once()

		status, body := do(t, r, http.MethodGet, "/submissions", "")
		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `[]`, body)
	})

	t.Run("bad limit", func(t *testing.T) {
		r, _ := newRouter(t)

		status, _ := do(t, r, http.MethodGet, "/submissions?limit=-3", "")
		assert.Equal(t, http.StatusBadRequest, status)
	})
}
