// Package error defines domain-specific errors for the EasyImob analytics API.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrDataSourceUnavailable is returned when the payment data could not be
	// fetched from the database (connectivity or query failure).
	ErrDataSourceUnavailable = errors.New("data source unavailable")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Data source errors (01XXXX)
	ErrCodeDataSourceUnavailable AnalyticsErrorCode = "ANL-010001"
	ErrCodeQueryFailed           AnalyticsErrorCode = "ANL-010002"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
