package backend

import (
	"encoding/json"
	"time"

	"github.com/SergeyBogomolovv/shop-backoffice/internal/entities"
	"github.com/shopspring/decimal"
)

type pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

type page[T any] struct {
	Data       []T        `json:"data"`
	Pagination pagination `json:"pagination"`
}

type product struct {
	ID          int64           `json:"id"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Category    string          `json:"category"`
	IsActive    bool            `json:"isActive"`
}

type customer struct {
	ID           int64  `json:"id"`
	CustomerCode string `json:"customerCode"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address,omitempty"`
	IsActive     bool   `json:"isActive"`
}

type orderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"orderId"`
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Product   *product        `json:"product,omitempty"`
}

type order struct {
	ID          int64           `json:"id"`
	OrderCode   string          `json:"orderCode"`
	CustomerID  int64           `json:"customerId"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Discount    decimal.Decimal `json:"discount"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Customer    *customer       `json:"customer,omitempty"`
	Items       []orderItem     `json:"items,omitempty"`
}

type customerInfo struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
}

type createOrderItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type createOrderRequest struct {
	CustomerID   int64             `json:"customerId,omitempty"`
	CustomerInfo *customerInfo     `json:"customerInfo,omitempty"`
	Items        []createOrderItem `json:"items"`
	Discount     json.Number       `json:"discount"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type stockEntryProduct struct {
	ID          int64  `json:"id"`
	ProductName string `json:"productName"`
	Category    string `json:"category"`
}

type stockEntry struct {
	ID         int64              `json:"id"`
	EntryCode  string             `json:"entryCode"`
	ProductID  int64              `json:"productId"`
	Quantity   int                `json:"quantity"`
	UnitPrice  decimal.Decimal    `json:"unitPrice"`
	TotalPrice decimal.Decimal    `json:"totalPrice"`
	Supplier   string             `json:"supplier,omitempty"`
	Notes      string             `json:"notes,omitempty"`
	EntryDate  string             `json:"entryDate"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
	Product    *stockEntryProduct `json:"product,omitempty"`
}

type createStockEntryRequest struct {
	ProductID int64       `json:"productId"`
	Quantity  int         `json:"quantity"`
	UnitPrice json.Number `json:"unitPrice"`
	Supplier  string      `json:"supplier,omitempty"`
	Notes     string      `json:"notes,omitempty"`
	EntryDate string      `json:"entryDate,omitempty"`
}

type createStockEntryResponse struct {
	StockEntry stockEntry `json:"stockEntry"`
}

type errorBody struct {
	Message any `json:"message"`
}

func productToEntity(p product) entities.CatalogEntry {
	return entities.CatalogEntry{
		ID:             p.ID,
		DisplayName:    p.ProductName,
		UnitPrice:      p.Price,
		QuantityOnHand: p.Quantity,
	}
}

func customerToEntity(c customer) entities.Customer {
	return entities.Customer{
		ID:       c.ID,
		Code:     c.CustomerCode,
		FullName: c.FullName,
		Phone:    c.Phone,
		Email:    c.Email,
		Address:  c.Address,
	}
}

func paginationToEntity(p pagination) entities.Pagination {
	return entities.Pagination{
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
		TotalItems:  p.TotalItems,
		HasNext:     p.HasNext,
		HasPrev:     p.HasPrev,
	}
}

func orderToEntity(o order) entities.OrderRecord {
	rec := entities.OrderRecord{
		ID:          o.ID,
		Code:        o.OrderCode,
		CustomerID:  o.CustomerID,
		Status:      entities.OrderStatus(o.Status),
		TotalAmount: o.TotalAmount,
		Discount:    o.Discount,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}

	if o.Customer != nil {
		c := customerToEntity(*o.Customer)
		rec.Customer = &c
	}

	if len(o.Items) > 0 {
		rec.Items = make([]entities.OrderItem, 0, len(o.Items))
		for _, it := range o.Items {
			item := entities.OrderItem{
				ID:        it.ID,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Price:     it.Price,
			}
			if it.Product != nil {
				item.ProductName = it.Product.ProductName
			}
			rec.Items = append(rec.Items, item)
		}
	}

	return rec
}

func payloadToRequest(p entities.OrderPayload) createOrderRequest {
	req := createOrderRequest{
		Items:    make([]createOrderItem, 0, len(p.Items)),
		Discount: json.Number(p.Discount.String()),
	}

	switch p.Mode {
	case entities.CustomerModeReference:
		req.CustomerID = p.Customer.CustomerID
	case entities.CustomerModeInline:
		req.CustomerInfo = &customerInfo{
			FullName: p.Customer.FullName,
			Phone:    p.Customer.Phone,
			Address:  p.Customer.Address,
		}
	}

	for _, it := range p.Items {
		req.Items = append(req.Items, createOrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	return req
}

const dateLayout = "2006-01-02"

// parseEntryDate accepts a full timestamp or a bare date. Anything else is
// the zero time.
func parseEntryDate(raw string) time.Time {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t
	}
	return time.Time{}
}

func stockEntryToEntity(e stockEntry) entities.StockEntry {
	entry := entities.StockEntry{
		ID:         e.ID,
		Code:       e.EntryCode,
		ProductID:  e.ProductID,
		Quantity:   e.Quantity,
		UnitPrice:  e.UnitPrice,
		TotalPrice: e.TotalPrice,
		Supplier:   e.Supplier,
		Notes:      e.Notes,
		EntryDate:  parseEntryDate(e.EntryDate),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
	if e.Product != nil {
		entry.ProductName = e.Product.ProductName
		entry.Category = e.Product.Category
	}
	return entry
}

func newStockEntryToRequest(e entities.NewStockEntry) createStockEntryRequest {
	req := createStockEntryRequest{
		ProductID: e.ProductID,
		Quantity:  e.Quantity,
		UnitPrice: json.Number(e.UnitPrice.String()),
		Supplier:  e.Supplier,
		Notes:     e.Notes,
	}
	if !e.EntryDate.IsZero() {
		req.EntryDate = e.EntryDate.Format(dateLayout)
	}
	return req
}
