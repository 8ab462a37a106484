package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-backoffice/internal/entities"
	"github.com/SergeyBogomolovv/shop-backoffice/pkg/utils"
)

// statusClientClosedRequest is written when the caller went away before the
// handler finished. Nobody reads it, it only keeps access logs honest.
const statusClientClosedRequest = 499

type errorMapping struct {
	err    error
	reason string
	status int
}

// Order matters: SubmitError unwraps to its kind and the transport error.
var errorMappings = []errorMapping{
	{entities.ErrSessionNotFound, "session_not_found", http.StatusNotFound},
	{entities.ErrLineNotFound, "line_not_found", http.StatusNotFound},
	{entities.ErrOrderNotFound, "order_not_found", http.StatusNotFound},
	{entities.ErrStockEntryNotFound, "stock_entry_not_found", http.StatusNotFound},
	{entities.ErrSubmissionInFlight, "submission_in_flight", http.StatusConflict},
	{entities.ErrLastLine, "last_line", http.StatusConflict},
	{entities.ErrStatusTransition, "status_transition", http.StatusConflict},
	{entities.ErrCustomerShape, "customer_shape", http.StatusUnprocessableEntity},
	{entities.ErrCustomerRequired, "customer_required", http.StatusUnprocessableEntity},
	{entities.ErrNoValidLines, "no_valid_lines", http.StatusUnprocessableEntity},
	{entities.ErrInsufficientStock, "insufficient_stock", http.StatusUnprocessableEntity},
	{entities.ErrInvalidStatus, "invalid_status", http.StatusUnprocessableEntity},
	{entities.ErrInvalidDateRange, "invalid_date_range", http.StatusUnprocessableEntity},
	{entities.ErrOrderRejected, "order_rejected", http.StatusUnprocessableEntity},
	{entities.ErrSubmitTimeout, "submit_timeout", http.StatusGatewayTimeout},
	{entities.ErrSubmitCancelled, "submit_cancelled", http.StatusConflict},
	{entities.ErrBackendFailure, "backend_failure", http.StatusBadGateway},
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			if m.status >= http.StatusInternalServerError {
				h.logger.Warn(msg, slog.String("path", r.URL.Path), slog.Any("error", err))
			}
			utils.WriteCodedError(w, userMessage(err), m.reason, m.status)
			return
		}
	}

	var be *entities.BackendError
	if errors.As(err, &be) {
		h.logger.Warn(msg, slog.String("path", r.URL.Path), slog.Any("error", err))
		message := be.Message
		if message == "" {
			message = msg
		}
		utils.WriteCodedError(w, message, "backend_failure", http.StatusBadGateway)
		return
	}

	switch {
	case errors.Is(err, context.Canceled):
		h.logger.Debug(msg, slog.String("path", r.URL.Path), slog.Any("error", err))
		utils.WriteCodedError(w, "request cancelled", "request_cancelled", statusClientClosedRequest)
		return
	case errors.Is(err, context.DeadlineExceeded):
		h.logger.Warn(msg, slog.String("path", r.URL.Path), slog.Any("error", err))
		utils.WriteCodedError(w, "request timed out", "request_timeout", http.StatusGatewayTimeout)
		return
	}

	h.logger.Error(msg, slog.String("path", r.URL.Path), slog.Any("error", err))
	utils.WriteError(w, "internal server error", http.StatusInternalServerError)
}

func userMessage(err error) string {
	var submitErr *entities.SubmitError
	if errors.As(err, &submitErr) {
		return submitErr.Message
	}
	var shortage *entities.StockShortageError
	if errors.As(err, &shortage) {
		return shortage.Error()
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.err.Error()
		}
	}
	return err.Error()
}
