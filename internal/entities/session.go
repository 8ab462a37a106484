package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateValidating SubmissionState = "validating"
	StateSubmitting SubmissionState = "submitting"
	StateSucceeded  SubmissionState = "succeeded"
	StateFailed     SubmissionState = "failed"
)

// LineUpdate changes the fields that are set, product first.
type LineUpdate struct {
	ProductRef *int64
	Quantity   *int
}

// FormView is what the order form renders for one session.
type FormView struct {
	SessionID uuid.UUID
	State     SubmissionState
	Mode      CustomerMode
	Customer  CustomerIdentity
	Lines     []ResolvedLine
	Discount  decimal.Decimal
	Totals    Totals
	Products  []CatalogEntry
	Customers []Customer
	Notice    string
	LastError string

	// StaleProducts lists products ordered elsewhere since the form opened,
	// so their on-hand quantity may be out of date.
	StaleProducts []int64
}
