// Package errors provides standardized error handling for the visa platform.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidCountryCode ErrorCode = "INVALID_COUNTRY_CODE"

	ErrCodeInvalidSpeedTier      ErrorCode = "INVALID_SPEED_TIER"
	ErrCodeApplicantCountInvalid ErrorCode = "APPLICANT_COUNT_INVALID"

	ErrCodeApplicationValidationFailed ErrorCode = "APPLICATION_VALIDATION_FAILED"
	ErrCodeEmailMismatch               ErrorCode = "EMAIL_MISMATCH"
	ErrCodeTermsNotAccepted            ErrorCode = "TERMS_NOT_ACCEPTED"
	ErrCodeSubmissionFailed            ErrorCode = "SUBMISSION_FAILED"

	ErrCodeApplicationNotFound ErrorCode = "APPLICATION_NOT_FOUND"
	ErrCodePaymentLookupFailed ErrorCode = "PAYMENT_LOOKUP_FAILED"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeDatabaseInsertFailed     ErrorCode = "DATABASE_INSERT_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeDuplicateApplication     ErrorCode = "DUPLICATE_APPLICATION"

	ErrCodePhotoUploadFailed ErrorCode = "PHOTO_UPLOAD_FAILED"
	ErrCodeInvalidPhotoType  ErrorCode = "INVALID_PHOTO_TYPE"

	ErrCodeTemplateNotFound         ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrCodeTemplateValidationFailed ErrorCode = "TEMPLATE_VALIDATION_FAILED"

	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidCountryCodeError creates a non-retryable country code error.
func NewInvalidCountryCodeError(code string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidCountryCode,
		Message:   "Country code is not a known ISO 3166-1 alpha-2 code",
		Details:   fmt.Sprintf("countryCode: %s", code),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidSpeedTierError creates a non-retryable speed tier error.
func NewInvalidSpeedTierError(tier string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidSpeedTier,
		Message:   "Unknown processing speed tier",
		Details:   fmt.Sprintf("speedTier: %s", tier),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewApplicantCountInvalidError creates a non-retryable applicant count error.
func NewApplicantCountInvalidError(count int) *StandardError {
	return &StandardError{
		Code:      ErrCodeApplicantCountInvalid,
		Message:   "Applicant count must be between 1 and 10",
		Details:   fmt.Sprintf("applicantCount: %d", count),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewApplicationValidationFailedError creates a non-retryable application validation error.
func NewApplicationValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeApplicationValidationFailed,
		Message:   "Application data validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmailMismatchError creates a non-retryable contact validation error.
func NewEmailMismatchError() *StandardError {
	return &StandardError{
		Code:      ErrCodeEmailMismatch,
		Message:   "Email and confirmation email do not match",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTermsNotAcceptedError creates a non-retryable terms error.
func NewTermsNotAcceptedError() *StandardError {
	return &StandardError{
		Code:      ErrCodeTermsNotAccepted,
		Message:   "Terms and conditions must be accepted before submission",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSubmissionFailedError creates a retryable submission error.
func NewSubmissionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSubmissionFailed,
		Message:   "Application submission failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewApplicationNotFoundError creates a non-retryable lookup error.
func NewApplicationNotFoundError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeApplicationNotFound,
		Message:   "Application not found",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPaymentLookupFailedError creates a retryable payment provider error.
func NewPaymentLookupFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePaymentLookupFailed,
		Message:   "Payment provider lookup failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseInsertFailedError creates a retryable database insert error.
func NewDatabaseInsertFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseInsertFailed,
		Message:   "Database insert operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryExecutionFailedError creates a retryable query execution error.
func NewQueryExecutionFailedError(queryType string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryExecutionFailed,
		Message:   "Database query execution error",
		Details:   fmt.Sprintf("queryType: %s, error: %s", queryType, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDuplicateApplicationError creates a non-retryable duplicate application error.
func NewDuplicateApplicationError(applicationID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDuplicateApplication,
		Message:   "Application already exists",
		Details:   fmt.Sprintf("applicationId: %s", applicationID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPhotoUploadFailedError creates a retryable photo upload error.
func NewPhotoUploadFailedError(photoType string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePhotoUploadFailed,
		Message:   "Photo upload failed",
		Details:   fmt.Sprintf("type: %s, error: %s", photoType, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidPhotoTypeError creates a non-retryable photo type error.
func NewInvalidPhotoTypeError(photoType string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidPhotoType,
		Message:   "Photo type must be passport or portrait",
		Details:   fmt.Sprintf("type: %s", photoType),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTemplateNotFoundError creates a non-retryable template error.
func NewTemplateNotFoundError(language, tier string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTemplateNotFound,
		Message:   "Ad template not found in catalog",
		Details:   fmt.Sprintf("language: %s, tier: %s", language, tier),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTemplateValidationFailedError creates a non-retryable template validation error.
func NewTemplateValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTemplateValidationFailed,
		Message:   "Ad template exceeds platform limits",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationSendFailedError creates a retryable notification send error.
func NewNotificationSendFailedError(notificationType string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("type: %s, error: %s", notificationType, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// Generic constructors

func NewBusinessRuleError(message, details string) *StandardError {
	return &StandardError{
		Code:      "BUSINESS_RULE_VIOLATION",
		Message:   message,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewExternalServiceError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "EXTERNAL_SERVICE_ERROR",
		Message:   fmt.Sprintf("External service '%s' error", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewTimeoutError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "TIMEOUT_ERROR",
		Message:   fmt.Sprintf("Service '%s' timeout", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// GetRetryCount returns the recommended retry count for a code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeDatabaseConnectionFailed,
		ErrCodeDatabaseInsertFailed,
		ErrCodeQueryExecutionFailed,
		ErrCodeSubmissionFailed,
		ErrCodeNotificationSendFailed:
		return 3 // Retryable technical errors

	case ErrCodePaymentLookupFailed,
		ErrCodePhotoUploadFailed:
		return 2

	default:
		return 0 // Business errors: no retry
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "TEMPLATE"):
		return "ADS"
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "QUERY"):
		return "DATABASE"
	case strings.Contains(codeStr, "PHOTO"):
		return "UPLOAD"
	case strings.Contains(codeStr, "PAYMENT") || strings.Contains(codeStr, "NOT_FOUND"):
		return "LOOKUP"
	case strings.Contains(codeStr, "NOTIFICATION"):
		return "NOTIFICATION"
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "VALIDATION") ||
		strings.Contains(codeStr, "MISMATCH") || strings.Contains(codeStr, "TERMS"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
