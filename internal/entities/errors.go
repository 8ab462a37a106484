package entities

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedCatalog = errors.New("malformed catalog")

	ErrSessionNotFound    = errors.New("order form session not found")
	ErrLineNotFound       = errors.New("line not found")
	ErrLastLine           = errors.New("order form must keep at least one line")
	ErrCustomerShape      = errors.New("customer identity does not match the configured customer mode")
	ErrSubmissionInFlight = errors.New("order submission already in progress")

	ErrCustomerRequired  = errors.New("choose or enter a customer")
	ErrNoValidLines      = errors.New("add at least one product")
	ErrInsufficientStock = errors.New("insufficient stock")

	ErrOrderRejected    = errors.New("order rejected by backend")
	ErrBackendFailure   = errors.New("backend unavailable")
	ErrSubmitTimeout    = errors.New("order submission timed out")
	ErrSubmitCancelled  = errors.New("order submission cancelled")
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrStatusTransition = errors.New("order status transition not allowed")
)

// GenericSubmitFailure is shown when the backend gives no usable message.
const GenericSubmitFailure = "failed to create order"

// SubmitError is the user-facing outcome of a failed submission. Kind is one
// of ErrOrderRejected, ErrBackendFailure, ErrSubmitTimeout or ErrSubmitCancelled.
type SubmitError struct {
	Kind    error
	Message string
	Err     error
}

func (e *SubmitError) Error() string {
	return e.Message
}

func (e *SubmitError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// BackendError is a non-2xx answer from the shop backend. Message is empty
// when the body carried neither {"message": "..."} nor a plain string.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend responded with status %d: %s", e.StatusCode, e.Message)
}
