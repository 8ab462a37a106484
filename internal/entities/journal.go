package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SubmissionOutcome string

const (
	OutcomeSucceeded SubmissionOutcome = "succeeded"
	OutcomeRejected  SubmissionOutcome = "rejected"
	OutcomeFailed    SubmissionOutcome = "failed"
)

type SubmissionItem struct {
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

// Submission is one journaled attempt to create an order through the backend.
type Submission struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Outcome   SubmissionOutcome
	Customer  CustomerIdentity
	Discount  decimal.Decimal
	Subtotal  decimal.Decimal
	Total     decimal.Decimal
	OrderID   int64
	Error     string
	Items     []SubmissionItem
	CreatedAt time.Time
}
