package handler

import (
	"time"

	"github.com/SergeyBogomolovv/shop-backoffice/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog option of the order form
type Product struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	UnitPrice      decimal.Decimal `json:"unit_price" swaggertype:"string" example:"35000"`
	QuantityOnHand int             `json:"quantity_on_hand"`
}

// Customer is an existing customer the order can reference
type Customer struct {
	ID       int64  `json:"id"`
	Code     string `json:"code,omitempty"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Address  string `json:"address,omitempty"`
}

// CustomerIdentity is either customer_id or the inline walk-in fields
type CustomerIdentity struct {
	CustomerID int64  `json:"customer_id,omitempty" validate:"gte=0"`
	FullName   string `json:"full_name,omitempty" validate:"max=255"`
	Phone      string `json:"phone,omitempty" validate:"max=32"`
	Address    string `json:"address,omitempty" validate:"max=500"`
}

// Line is one row of the order form
type Line struct {
	Index     int             `json:"index"`
	ProductID int64           `json:"product_id"`
	Product   string          `json:"product,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string"`
	Subtotal  decimal.Decimal `json:"subtotal" swaggertype:"string"`
	Valid     bool            `json:"valid"`
}

// Draft is the state of an open order form
type Draft struct {
	SessionID     string           `json:"session_id"`
	State         string           `json:"state" enums:"idle,validating,submitting,succeeded,failed"`
	CustomerMode  string           `json:"customer_mode" enums:"reference,inline"`
	Customer      CustomerIdentity `json:"customer"`
	Lines         []Line           `json:"lines"`
	Discount      decimal.Decimal  `json:"discount" swaggertype:"string"`
	Subtotal      decimal.Decimal  `json:"subtotal" swaggertype:"string"`
	Total         decimal.Decimal  `json:"total" swaggertype:"string"`
	Products      []Product        `json:"products"`
	Customers     []Customer       `json:"customers,omitempty"`
	Notice        string           `json:"notice,omitempty"`
	LastError     string           `json:"last_error,omitempty"`
	StaleProducts []int64          `json:"stale_products,omitempty"`
}

// UpdateLineRequest changes the product and/or the quantity of a line
type UpdateLineRequest struct {
	ProductID *int64 `json:"product_id,omitempty" validate:"omitempty,gte=0"`
	Quantity  *int   `json:"quantity,omitempty" validate:"omitempty,gte=0,lte=100000"`
}

// DiscountRequest carries the discount as typed, anything unparseable counts as 0
type DiscountRequest struct {
	Discount string `json:"discount" example:"10000"`
}

// OrderItem is a line of a created order
type OrderItem struct {
	ProductID int64           `json:"product_id"`
	Product   string          `json:"product,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price" swaggertype:"string"`
}

// Order is an order as the backend stores it
type Order struct {
	ID          int64           `json:"id"`
	Code        string          `json:"code"`
	CustomerID  int64           `json:"customer_id,omitempty"`
	Customer    *Customer       `json:"customer,omitempty"`
	Status      string          `json:"status" enums:"pending,processing,completed,cancelled"`
	TotalAmount decimal.Decimal `json:"total_amount" swaggertype:"string"`
	Discount    decimal.Decimal `json:"discount" swaggertype:"string"`
	Items       []OrderItem     `json:"items,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type Pagination struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

// OrderPage is one page of the order list
type OrderPage struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

// ListOrdersQuery holds the order list filters
type ListOrdersQuery struct {
	Page   int    `validate:"gte=0"`
	Limit  int    `validate:"gte=0,lte=100"`
	Status string `validate:"omitempty,oneof=pending processing completed cancelled"`
}

// UpdateStatusRequest moves an order to another status
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing completed cancelled"`
}

// StockEntry is a goods receipt
type StockEntry struct {
	ID         int64           `json:"id"`
	Code       string          `json:"code"`
	ProductID  int64           `json:"product_id"`
	Product    string          `json:"product,omitempty"`
	Category   string          `json:"category,omitempty"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price" swaggertype:"string"`
	TotalPrice decimal.Decimal `json:"total_price" swaggertype:"string"`
	Supplier   string          `json:"supplier,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	EntryDate  string          `json:"entry_date,omitempty" example:"2025-03-05"`
	CreatedAt  time.Time       `json:"created_at"`
}

// StockEntryPage is one page of goods receipts
type StockEntryPage struct {
	Entries    []StockEntry `json:"entries"`
	Pagination Pagination   `json:"pagination"`
}

type ListStockEntriesQuery struct {
	Page      int    `validate:"gte=0"`
	Limit     int    `validate:"gte=0,lte=100"`
	ProductID int64  `validate:"gte=0"`
	StartDate string `validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `validate:"omitempty,datetime=2006-01-02"`
}

// CreateStockEntryRequest records goods received for a product
type CreateStockEntryRequest struct {
	ProductID int64           `json:"product_id" validate:"required,gt=0"`
	Quantity  int             `json:"quantity" validate:"required,gte=1,lte=1000000"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" example:"12000"`
	Supplier  string          `json:"supplier,omitempty" validate:"max=255"`
	Notes     string          `json:"notes,omitempty" validate:"max=1000"`
	EntryDate string          `json:"entry_date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-03-05"`
}

// SubmissionItem is a journaled order line with the price seen by the form
type SubmissionItem struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string"`
}

// Submission is one journaled attempt to create an order
type Submission struct {
	ID        string           `json:"id"`
	SessionID string           `json:"session_id"`
	Outcome   string           `json:"outcome" enums:"succeeded,rejected,failed"`
	Customer  CustomerIdentity `json:"customer"`
	Discount  decimal.Decimal  `json:"discount" swaggertype:"string"`
	Subtotal  decimal.Decimal  `json:"subtotal" swaggertype:"string"`
	Total     decimal.Decimal  `json:"total" swaggertype:"string"`
	OrderID   int64            `json:"order_id,omitempty"`
	Error     string           `json:"error,omitempty"`
	Items     []SubmissionItem `json:"items"`
	CreatedAt time.Time        `json:"created_at"`
}

func CustomerIdentityEntityToJSON(c entities.CustomerIdentity) CustomerIdentity {
	return CustomerIdentity{
		CustomerID: c.CustomerID,
		FullName:   c.FullName,
		Phone:      c.Phone,
		Address:    c.Address,
	}
}

func CustomerIdentityJSONToEntity(c CustomerIdentity) entities.CustomerIdentity {
	return entities.CustomerIdentity{
		CustomerID: c.CustomerID,
		FullName:   c.FullName,
		Phone:      c.Phone,
		Address:    c.Address,
	}
}

func CustomerEntityToJSON(c entities.Customer) Customer {
	return Customer{
		ID:       c.ID,
		Code:     c.Code,
		FullName: c.FullName,
		Phone:    c.Phone,
		Email:    c.Email,
		Address:  c.Address,
	}
}

func DraftEntityToJSON(v entities.FormView) Draft {
	lines := make([]Line, 0, len(v.Lines))
	for i, l := range v.Lines {
		lines = append(lines, Line{
			Index:     i,
			ProductID: l.ProductRef,
			Product:   l.ProductName,
			Quantity:  l.Quantity,
			UnitPrice: l.ResolvedUnitPrice,
			Subtotal:  l.LineSubtotal,
			Valid:     l.Valid,
		})
	}

	products := make([]Product, 0, len(v.Products))
	for _, p := range v.Products {
		products = append(products, Product{
			ID:             p.ID,
			Name:           p.DisplayName,
			UnitPrice:      p.UnitPrice,
			QuantityOnHand: p.QuantityOnHand,
		})
	}

	var customers []Customer
	for _, c := range v.Customers {
		customers = append(customers, CustomerEntityToJSON(c))
	}

	return Draft{
		SessionID:     v.SessionID.String(),
		State:         string(v.State),
		CustomerMode:  string(v.Mode),
		Customer:      CustomerIdentityEntityToJSON(v.Customer),
		Lines:         lines,
		Discount:      v.Discount,
		Subtotal:      v.Totals.Subtotal,
		Total:         v.Totals.Total,
		Products:      products,
		Customers:     customers,
		Notice:        v.Notice,
		LastError:     v.LastError,
		StaleProducts: v.StaleProducts,
	}
}

func OrderEntityToJSON(o entities.OrderRecord) Order {
	var items []OrderItem
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductID: it.ProductID,
			Product:   it.ProductName,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	order := Order{
		ID:          o.ID,
		Code:        o.Code,
		CustomerID:  o.CustomerID,
		Status:      string(o.Status),
		TotalAmount: o.TotalAmount,
		Discount:    o.Discount,
		Items:       items,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	if o.Customer != nil {
		c := CustomerEntityToJSON(*o.Customer)
		order.Customer = &c
	}
	return order
}

func OrderPageEntityToJSON(p entities.OrderPage) OrderPage {
	orders := make([]Order, 0, len(p.Orders))
	for _, o := range p.Orders {
		orders = append(orders, OrderEntityToJSON(o))
	}
	return OrderPage{
		Orders: orders,
		Pagination: Pagination{
			CurrentPage: p.Pagination.CurrentPage,
			TotalPages:  p.Pagination.TotalPages,
			TotalItems:  p.Pagination.TotalItems,
			HasNext:     p.Pagination.HasNext,
			HasPrev:     p.Pagination.HasPrev,
		},
	}
}

func SubmissionEntityToJSON(s entities.Submission) Submission {
	items := make([]SubmissionItem, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SubmissionItem{ProductID: it.ProductID, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}

	return Submission{
		ID:        s.ID.String(),
		SessionID: s.SessionID.String(),
		Outcome:   string(s.Outcome),
		Customer:  CustomerIdentityEntityToJSON(s.Customer),
		Discount:  s.Discount,
		Subtotal:  s.Subtotal,
		Total:     s.Total,
		OrderID:   s.OrderID,
		Error:     s.Error,
		Items:     items,
		CreatedAt: s.CreatedAt,
	}
}

type EventItem struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// OrderCreatedEvent is the order.created message
type OrderCreatedEvent struct {
	OrderID   int64           `json:"order_id" validate:"required,gt=0"`
	OrderCode string          `json:"order_code"`
	SessionID uuid.UUID       `json:"session_id"`
	Total     decimal.Decimal `json:"total"`
	Discount  decimal.Decimal `json:"discount"`
	Items     []EventItem     `json:"items" validate:"required,min=1,dive"`
	CreatedAt time.Time       `json:"created_at" validate:"required"`
}

func OrderCreatedEntityToJSON(ev entities.OrderCreated) OrderCreatedEvent {
	items := make([]EventItem, 0, len(ev.Items))
	for _, it := range ev.Items {
		items = append(items, EventItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return OrderCreatedEvent{
		OrderID:   ev.OrderID,
		OrderCode: ev.OrderCode,
		SessionID: ev.SessionID,
		Total:     ev.Total,
		Discount:  ev.Discount,
		Items:     items,
		CreatedAt: ev.CreatedAt,
	}
}

func OrderCreatedJSONToEntity(ev OrderCreatedEvent) entities.OrderCreated {
	items := make([]entities.PayloadItem, 0, len(ev.Items))
	for _, it := range ev.Items {
		items = append(items, entities.PayloadItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return entities.OrderCreated{
		OrderID:   ev.OrderID,
		OrderCode: ev.OrderCode,
		SessionID: ev.SessionID,
		Total:     ev.Total,
		Discount:  ev.Discount,
		Items:     items,
		CreatedAt: ev.CreatedAt,
	}
}

const dateLayout = "2006-01-02"

func StockEntryEntityToJSON(e entities.StockEntry) StockEntry {
	entry := StockEntry{
		ID:         e.ID,
		Code:       e.Code,
		ProductID:  e.ProductID,
		Product:    e.ProductName,
		Category:   e.Category,
		Quantity:   e.Quantity,
		UnitPrice:  e.UnitPrice,
		TotalPrice: e.TotalPrice,
		Supplier:   e.Supplier,
		Notes:      e.Notes,
		CreatedAt:  e.CreatedAt,
	}
	if !e.EntryDate.IsZero() {
		entry.EntryDate = e.EntryDate.Format(dateLayout)
	}
	return entry
}

func StockEntryPageEntityToJSON(p entities.StockEntryPage) StockEntryPage {
	entries := make([]StockEntry, 0, len(p.Entries))
	for _, e := range p.Entries {
		entries = append(entries, StockEntryEntityToJSON(e))
	}
	return StockEntryPage{
		Entries: entries,
		Pagination: Pagination{
			CurrentPage: p.Pagination.CurrentPage,
			TotalPages:  p.Pagination.TotalPages,
			TotalItems:  p.Pagination.TotalItems,
			HasNext:     p.Pagination.HasNext,
			HasPrev:     p.Pagination.HasPrev,
		},
	}
}

// CreateStockEntryJSONToEntity expects a validated request.
func CreateStockEntryJSONToEntity(req CreateStockEntryRequest) entities.NewStockEntry {
	e := entities.NewStockEntry{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Supplier:  req.Supplier,
		Notes:     req.Notes,
	}
	if req.EntryDate != "" {
		e.EntryDate, _ = time.Parse(dateLayout, req.EntryDate)
	}
	return e
}
