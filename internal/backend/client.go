package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/shop-backoffice/internal/config"
	"github.com/SergeyBogomolovv/shop-backoffice/internal/entities"
)

const maxErrorBody = 64 << 10

// Client talks to the shop REST API, which owns products, customers, orders
// and stock entries.
// Every call but CreateOrder is bounded by the configured timeout. CreateOrder
// runs until the caller's context ends so the submission deadline decides.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger, cfg config.Backend) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		timeout:    cfg.Timeout,
		httpClient: &http.Client{},
		logger:     logger.With(slog.String("client", "backend")),
	}
}

func (c *Client) ListProducts(ctx context.Context, q entities.PageQuery) ([]entities.CatalogEntry, entities.Pagination, error) {
	var res page[product]
	if err := c.do(ctx, http.MethodGet, "/products", pageParams(q), nil, &res); err != nil {
		return nil, entities.Pagination{}, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]entities.CatalogEntry, 0, len(res.Data))
	for _, p := range res.Data {
		products = append(products, productToEntity(p))
	}
	return products, paginationToEntity(res.Pagination), nil
}

func (c *Client) ListCustomers(ctx context.Context, q entities.PageQuery) ([]entities.Customer, entities.Pagination, error) {
	var res page[customer]
	if err := c.do(ctx, http.MethodGet, "/customers", pageParams(q), nil, &res); err != nil {
		return nil, entities.Pagination{}, fmt.Errorf("failed to list customers: %w", err)
	}

	customers := make([]entities.Customer, 0, len(res.Data))
	for _, cu := range res.Data {
		customers = append(customers, customerToEntity(cu))
	}
	return customers, paginationToEntity(res.Pagination), nil
}

func (c *Client) CreateOrder(ctx context.Context, p entities.OrderPayload) (entities.OrderRecord, error) {
	var res order
	if err := c.send(ctx, http.MethodPost, "/orders", nil, payloadToRequest(p), &res); err != nil {
		return entities.OrderRecord{}, fmt.Errorf("failed to create order: %w", err)
	}

	c.logger.InfoContext(ctx, "order created", slog.Int64("order_id", res.ID), slog.String("order_code", res.OrderCode))
	return orderToEntity(res), nil
}

func (c *Client) ListOrders(ctx context.Context, f entities.OrderFilter) (entities.OrderPage, error) {
	params := pageParams(entities.PageQuery{Page: f.Page, Limit: f.Limit})
	if f.Status != "" {
		params.Set("status", string(f.Status))
	}

	var res page[order]
	if err := c.do(ctx, http.MethodGet, "/orders", params, nil, &res); err != nil {
		return entities.OrderPage{}, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]entities.OrderRecord, 0, len(res.Data))
	for _, o := range res.Data {
		orders = append(orders, orderToEntity(o))
	}
	return entities.OrderPage{Orders: orders, Pagination: paginationToEntity(res.Pagination)}, nil
}

func (c *Client) GetOrder(ctx context.Context, id int64) (entities.OrderRecord, error) {
	var res order
	if err := c.do(ctx, http.MethodGet, "/orders/"+strconv.FormatInt(id, 10), nil, nil, &res); err != nil {
		return entities.OrderRecord{}, fmt.Errorf("failed to get order: %w", notFoundAs(err, entities.ErrOrderNotFound))
	}
	return orderToEntity(res), nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status entities.OrderStatus) (entities.OrderRecord, error) {
	var res order
	path := "/orders/" + strconv.FormatInt(id, 10) + "/status"
	if err := c.do(ctx, http.MethodPut, path, nil, updateStatusRequest{Status: string(status)}, &res); err != nil {
		return entities.OrderRecord{}, fmt.Errorf("failed to update order status: %w", notFoundAs(err, entities.ErrOrderNotFound))
	}
	return orderToEntity(res), nil
}

func (c *Client) CancelOrder(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, "/orders/"+strconv.FormatInt(id, 10), nil, nil, nil); err != nil {
		return fmt.Errorf("failed to cancel order: %w", notFoundAs(err, entities.ErrOrderNotFound))
	}
	return nil
}

func (c *Client) ListStockEntries(ctx context.Context, f entities.StockEntryFilter) (entities.StockEntryPage, error) {
	params := pageParams(entities.PageQuery{Page: f.Page, Limit: f.Limit})
	if f.ProductID > 0 {
		params.Set("productId", strconv.FormatInt(f.ProductID, 10))
	}
	if !f.From.IsZero() {
		params.Set("startDate", f.From.Format(dateLayout))
	}
	if !f.To.IsZero() {
		params.Set("endDate", f.To.Format(dateLayout))
	}

	var res page[stockEntry]
	if err := c.do(ctx, http.MethodGet, "/stock-entries", params, nil, &res); err != nil {
		return entities.StockEntryPage{}, fmt.Errorf("failed to list stock entries: %w", err)
	}

	entries := make([]entities.StockEntry, 0, len(res.Data))
	for _, e := range res.Data {
		entries = append(entries, stockEntryToEntity(e))
	}
	return entities.StockEntryPage{Entries: entries, Pagination: paginationToEntity(res.Pagination)}, nil
}

func (c *Client) CreateStockEntry(ctx context.Context, e entities.NewStockEntry) (entities.StockEntry, error) {
	var res createStockEntryResponse
	if err := c.do(ctx, http.MethodPost, "/stock-entries", nil, newStockEntryToRequest(e), &res); err != nil {
		return entities.StockEntry{}, fmt.Errorf("failed to create stock entry: %w", err)
	}
	return stockEntryToEntity(res.StockEntry), nil
}

func (c *Client) DeleteStockEntry(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, "/stock-entries/"+strconv.FormatInt(id, 10), nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete stock entry: %w", notFoundAs(err, entities.ErrStockEntryNotFound))
	}
	return nil
}

// do is send bounded by the client timeout. A timeout of the call itself is
// reported as a plain error, so it stays retryable while ctx is alive.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	if c.timeout <= 0 {
		return c.send(ctx, method, path, params, body, out)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.send(callCtx, method, path, params, body, out)
	if err != nil && ctx.Err() == nil && errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("backend did not respond within %s", c.timeout)
	}
	return err
}

func (c *Client) send(ctx context.Context, method, path string, params url.Values, body, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := tokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.DebugContext(ctx, "backend error response",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return &entities.BackendError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.Header.Get("Content-Type"), data),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorMessage extracts a human message from {"message": "..."}, a JSON
// string or a short plain-text body. Anything else yields "".
func errorMessage(contentType string, body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ""
	}

	var obj errorBody
	if err := json.Unmarshal(body, &obj); err == nil {
		if msg, ok := obj.Message.(string); ok {
			return strings.TrimSpace(msg)
		}
		return ""
	}

	var str string
	if err := json.Unmarshal(body, &str); err == nil {
		return strings.TrimSpace(str)
	}

	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType == "text/plain" {
		return string(body)
	}
	return ""
}

func notFoundAs(err, target error) error {
	var be *entities.BackendError
	if errors.As(err, &be) && be.StatusCode == http.StatusNotFound {
		return errors.Join(target, err)
	}
	return err
}

func pageParams(q entities.PageQuery) url.Values {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.ActiveOnly {
		params.Set("isActive", "true")
	}
	return params
}
