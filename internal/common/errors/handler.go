// internal/common/errors/handler.go
package errors

import (
	stderrors "errors"
	"net/http"
	"time"
)

// Logger is the slice of the logging interface this package needs.
type Logger interface {
	Error(msg string, fields map[string]interface{})
}

// Handler maps domain errors onto HTTP responses with standardized logging.
type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Normalize ensures any error is a StandardError so callers can rely on Code.
func Normalize(err error) *StandardError {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// HTTPStatus maps an error code onto a response status.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeApplicationNotFound, ErrCodeTemplateNotFound:
		return http.StatusNotFound
	case ErrCodeInvalidCountryCode, ErrCodeInvalidSpeedTier, ErrCodeApplicantCountInvalid,
		ErrCodeApplicationValidationFailed, ErrCodeEmailMismatch, ErrCodeTermsNotAccepted,
		ErrCodeInvalidPhotoType, ErrCodeTemplateValidationFailed, "BUSINESS_RULE_VIOLATION":
		return http.StatusBadRequest
	case ErrCodePaymentLookupFailed, "EXTERNAL_SERVICE_ERROR", "TIMEOUT_ERROR":
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Handle normalizes, logs, and returns the error with its HTTP status.
func (h *Handler) Handle(operation string, err error) (*StandardError, int) {
	stdErr := Normalize(err)
	status := HTTPStatus(stdErr.Code)

	h.logger.Error("operation failed", map[string]interface{}{
		"operation": operation,
		"errorCode": string(stdErr.Code),
		"category":  GetErrorCategory(stdErr.Code),
		"retryable": stdErr.Retryable,
		"details":   stdErr.Details,
		"status":    status,
	})
	return stdErr, status
}
