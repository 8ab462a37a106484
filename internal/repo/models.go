package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/shop-backoffice/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Submission struct {
	ID              uuid.UUID       `db:"id"`
	SessionID       uuid.UUID       `db:"session_id"`
	Status          string          `db:"status"`
	CustomerID      sql.NullInt64   `db:"customer_id"`
	CustomerName    sql.NullString  `db:"customer_name"`
	CustomerPhone   sql.NullString  `db:"customer_phone"`
	CustomerAddress sql.NullString  `db:"customer_address"`
	Discount        decimal.Decimal `db:"discount"`
	Subtotal        decimal.Decimal `db:"subtotal"`
	Total           decimal.Decimal `db:"total"`
	OrderID         sql.NullInt64   `db:"order_id"`
	ErrorMessage    sql.NullString  `db:"error_message"`
	CreatedAt       time.Time       `db:"created_at"`
}

type SubmissionItem struct {
	SubmissionID uuid.UUID       `db:"submission_id"`
	Position     int             `db:"position"`
	ProductID    int64           `db:"product_id"`
	Quantity     int             `db:"quantity"`
	UnitPrice    decimal.Decimal `db:"unit_price"`
}

func SubmissionToEntity(s Submission, items []SubmissionItem) entities.Submission {
	sub := entities.Submission{
		ID:        s.ID,
		SessionID: s.SessionID,
		Outcome:   entities.SubmissionOutcome(s.Status),
		Customer: entities.CustomerIdentity{
			CustomerID: s.CustomerID.Int64,
			FullName:   s.CustomerName.String,
			Phone:      s.CustomerPhone.String,
			Address:    s.CustomerAddress.String,
		},
		Discount:  s.Discount,
		Subtotal:  s.Subtotal,
		Total:     s.Total,
		OrderID:   s.OrderID.Int64,
		Error:     s.ErrorMessage.String,
		Items:     make([]entities.SubmissionItem, 0, len(items)),
		CreatedAt: s.CreatedAt,
	}
	for _, it := range items {
		sub.Items = append(sub.Items, entities.SubmissionItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return sub
}
