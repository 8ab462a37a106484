package backend_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-backoffice/internal/backend"
	"github.com/SergeyBogomolovv/shop-backoffice/internal/config"
	"github.com/SergeyBogomolovv/shop-backoffice/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, h http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return backend.NewClient(logger, config.Backend{BaseURL: srv.URL + "/api/", Timeout: time.Second})
}

func TestClient_ListProducts(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		assert.Equal(t, "true", r.URL.Query().Get("isActive"))
		assert.Equal(t, "Bearer staff-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"data": [{"id": 1, "productName": "Latte", "price": 35000, "quantity": 5, "category": "coffee", "isActive": true}],
			"pagination": {"currentPage": 2, "totalPages": 3, "totalItems": 201, "hasNext": true, "hasPrev": true}
		}`)
	})

	ctx := backend.WithToken(context.Background(), "Bearer staff-token")
	products, p, err := client.ListProducts(ctx, entities.PageQuery{Page: 2, Limit: 100, ActiveOnly: true})
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Latte", products[0].DisplayName)
	assert.True(t, products[0].UnitPrice.Equal(decimal.NewFromInt(35000)))
	assert.Equal(t, 5, products[0].QuantityOnHand)
	assert.True(t, p.HasNext)
	assert.Equal(t, 201, p.TotalItems)
}

func TestClient_ListCustomers(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/customers", r.URL.Path)
		io.WriteString(w, `{"data": [{"id": 4, "customerCode": "KH004", "fullName": "Tran Binh", "email": "b@shop.vn", "phone": "0909"}], "pagination": {}}`)
	})

	customers, _, err := client.ListCustomers(context.Background(), entities.PageQuery{Limit: 100, ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "KH004", customers[0].Code)
	assert.Equal(t, "Tran Binh", customers[0].FullName)
}

func TestClient_CreateOrder(t *testing.T) {
	testCases := []struct {
		name     string
		payload  entities.OrderPayload
		wantBody string
	}{
		{
			name: "reference customer",
			payload: entities.OrderPayload{
				Mode:     entities.CustomerModeReference,
				Customer: entities.CustomerIdentity{CustomerID: 9},
				Items:    []entities.PayloadItem{{ProductID: 1, Quantity: 3}},
				Discount: decimal.NewFromInt(10000),
			},
			wantBody: `{"customerId":9,"items":[{"productId":1,"quantity":3}],"discount":10000}`,
		},
		{
			name: "inline customer",
			payload: entities.OrderPayload{
				Mode:     entities.CustomerModeInline,
				Customer: entities.CustomerIdentity{FullName: "Le Chi", Phone: "0912"},
				Items:    []entities.PayloadItem{{ProductID: 2, Quantity: 1}},
				Discount: decimal.Zero,
			},
			wantBody: `{"customerInfo":{"fullName":"Le Chi","phone":"0912"},"items":[{"productId":2,"quantity":1}],"discount":0}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/orders", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.JSONEq(t, tc.wantBody, string(body))

				w.WriteHeader(http.StatusCreated)
				json.NewEncoder(w).Encode(map[string]any{
					"id": 77, "orderCode": "DH077", "status": "pending", "totalAmount": 95000, "discount": 10000,
				})
			})

			rec, err := client.CreateOrder(context.Background(), tc.payload)
			require.NoError(t, err)
			assert.Equal(t, int64(77), rec.ID)
			assert.Equal(t, "DH077", rec.Code)
			assert.Equal(t, entities.OrderStatusPending, rec.Status)
			assert.True(t, rec.TotalAmount.Equal(decimal.NewFromInt(95000)))
		})
	}
}

func TestClient_ErrorMessages(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantMessage string
	}{
		{
			name:        "structured message",
			status:      http.StatusBadRequest,
			contentType: "application/json",
			body:        `{"message": "Sản phẩm Latte không đủ hàng"}`,
			wantMessage: "Sản phẩm Latte không đủ hàng",
		},
		{
			name:        "json string",
			status:      http.StatusConflict,
			contentType: "application/json",
			body:        `"stock changed"`,
			wantMessage: "stock changed",
		},
		{
			name:        "plain text",
			status:      http.StatusBadRequest,
			contentType: "text/plain; charset=utf-8",
			body:        "customer is inactive",
			wantMessage: "customer is inactive",
		},
		{
			name:        "non-string message",
			status:      http.StatusBadRequest,
			contentType: "application/json",
			body:        `{"message": {"items": "invalid"}}`,
		},
		{
			name:        "html page",
			status:      http.StatusBadGateway,
			contentType: "text/html",
			body:        "<html>bad gateway</html>",
		},
		{
			name:   "empty body",
			status: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				if tc.contentType != "" {
					w.Header().Set("Content-Type", tc.contentType)
				}
				w.WriteHeader(tc.status)
				io.WriteString(w, tc.body)
			})

			_, err := client.CreateOrder(context.Background(), entities.OrderPayload{})
			var be *entities.BackendError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, tc.status, be.StatusCode)
			assert.Equal(t, tc.wantMessage, be.Message)
		})
	}
}

func TestClient_GetOrderNotFound(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/5", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetOrder(context.Background(), 5)
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestClient_OrderAdministration(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/orders":
			assert.Equal(t, "processing", r.URL.Query().Get("status"))
			io.WriteString(w, `{"data": [{"id": 1, "status": "processing", "items": [{"id": 3, "productId": 1, "quantity": 2, "price": 35000, "product": {"id": 1, "productName": "Latte"}}]}], "pagination": {"currentPage": 1}}`)
		case r.Method == http.MethodPut && r.URL.Path == "/api/orders/1/status":
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"status": "completed"}`, string(body))
			io.WriteString(w, `{"id": 1, "status": "completed"}`)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/orders/1":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
		}
	})
	ctx := context.Background()

	page, err := client.ListOrders(ctx, entities.OrderFilter{Page: 1, Limit: 10, Status: entities.OrderStatusProcessing})
	require.NoError(t, err)
	require.Len(t, page.Orders, 1)
	require.Len(t, page.Orders[0].Items, 1)
	assert.Equal(t, "Latte", page.Orders[0].Items[0].ProductName)

	rec, err := client.UpdateOrderStatus(ctx, 1, entities.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusCompleted, rec.Status)

	require.NoError(t, client.CancelOrder(ctx, 1))
}

func TestClient_Timeouts(t *testing.T) {
	slow := func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(300 * time.Millisecond):
		case <-r.Context().Done():
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost {
			w.Write([]byte(`{"id":42,"orderCode":"ORD-42","status":"pending"}`))
			return
		}
		w.Write([]byte(`{"data":[],"pagination":{}}`))
	}

	srv := httptest.NewServer(http.HandlerFunc(slow))
	t.Cleanup(srv.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := backend.NewClient(logger, config.Backend{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})

	t.Run("reads are bounded by the client timeout", func(t *testing.T) {
		_, _, err := client.ListProducts(context.Background(), entities.PageQuery{Page: 1, Limit: 10})
		require.Error(t, err)
		assert.ErrorContains(t, err, "did not respond within 50ms")
		assert.NotErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("create order waits for the caller's deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		rec, err := client.CreateOrder(ctx, entities.OrderPayload{
			Mode:     entities.CustomerModeReference,
			Customer: entities.CustomerIdentity{CustomerID: 9},
			Items:    []entities.PayloadItem{{ProductID: 1, Quantity: 1}},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(42), rec.ID)
	})

	t.Run("create order past the caller's deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		_, err := client.CreateOrder(ctx, entities.OrderPayload{Mode: entities.CustomerModeReference})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestClient_StockEntries(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/stock-entries":
			q := r.URL.Query()
			assert.Equal(t, "1", q.Get("page"))
			assert.Equal(t, "20", q.Get("limit"))
			assert.Equal(t, "3", q.Get("productId"))
			assert.Equal(t, "2025-03-01", q.Get("startDate"))
			assert.Equal(t, "2025-03-31", q.Get("endDate"))
			io.WriteString(w, `{
				"data": [{"id": 11, "entryCode": "NK011", "productId": 3, "quantity": 40, "unitPrice": 12000, "totalPrice": 480000,
					"supplier": "Trung Nguyen", "entryDate": "2025-03-04T00:00:00.000Z",
					"product": {"id": 3, "productName": "Robusta beans", "category": "beans"}}],
				"pagination": {"currentPage": 1, "totalPages": 1, "totalItems": 1}
			}`)
		case r.Method == http.MethodPost && r.URL.Path == "/api/stock-entries":
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"productId": 3, "quantity": 10, "unitPrice": 12500.5, "notes": "weekly", "entryDate": "2025-03-05"}`, string(body))
			w.WriteHeader(http.StatusCreated)
			io.WriteString(w, `{"stockEntry": {"id": 12, "entryCode": "NK012", "productId": 3, "quantity": 10, "unitPrice": 12500.5, "totalPrice": 125005, "entryDate": "2025-03-05"}}`)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/stock-entries/12":
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/stock-entries/13":
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"message": "Stock entry not found"}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
		}
	})
	ctx := context.Background()

	page, err := client.ListStockEntries(ctx, entities.StockEntryFilter{
		Page:      1,
		Limit:     20,
		ProductID: 3,
		From:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		To:        time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, page.Entries, 1)
	entry := page.Entries[0]
	assert.Equal(t, "NK011", entry.Code)
	assert.Equal(t, "Robusta beans", entry.ProductName)
	assert.Equal(t, "beans", entry.Category)
	assert.True(t, entry.TotalPrice.Equal(decimal.NewFromInt(480000)))
	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), entry.EntryDate)

	created, err := client.CreateStockEntry(ctx, entities.NewStockEntry{
		ProductID: 3,
		Quantity:  10,
		UnitPrice: decimal.RequireFromString("12500.5"),
		Notes:     "weekly",
		EntryDate: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), created.ID)
	assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), created.EntryDate)

	require.NoError(t, client.DeleteStockEntry(ctx, 12))

	err = client.DeleteStockEntry(ctx, 13)
	assert.ErrorIs(t, err, entities.ErrStockEntryNotFound)
	assert.Contains(t, err.Error(), "Stock entry not found")
}
