// Package error defines domain-specific errors for the Pennywise application.
package error

import "errors"

// Extraction gateway domain errors. Transport failures and schema
// validation failures are deliberately distinct sentinels so callers can
// tell "the model was unreachable" apart from "the model answered with
// something that does not match the declared output schema".
var (
	// ErrExtractionTransport is returned when the model call itself fails
	// (network error, auth error, service unavailable, empty response).
	ErrExtractionTransport = errors.New("extraction service call failed")

	// ErrExtractionInvalidResponse is returned when the model responds but
	// its output does not validate against the declared schema.
	ErrExtractionInvalidResponse = errors.New("extraction response failed schema validation")

	// ErrEmptyExtractionInput is returned when the caller provides empty
	// input; no model call is made in this case.
	ErrEmptyExtractionInput = errors.New("extraction input must not be empty")

	// ErrExtractionNotConfigured is returned when the gateway has no API key.
	ErrExtractionNotConfigured = errors.New("extraction service is not configured")
)

// ExtractionErrorCode defines error codes for extraction gateway errors.
// Format: EXT-XXYYYY where XX is category and YYYY is specific error.
type ExtractionErrorCode string

const (
	// Input errors (01XXXX)
	ErrCodeEmptyExtractionInput ExtractionErrorCode = "EXT-010001"

	// Transport errors (02XXXX)
	ErrCodeExtractionTransport     ExtractionErrorCode = "EXT-020001"
	ErrCodeExtractionNotConfigured ExtractionErrorCode = "EXT-020002"

	// Schema validation errors (03XXXX)
	ErrCodeExtractionInvalidResponse ExtractionErrorCode = "EXT-030001"
)

// ExtractionError represents an extraction gateway error with code and message.
type ExtractionError struct {
	Code    ExtractionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError with the given code and message.
func NewExtractionError(code ExtractionErrorCode, message string, err error) *ExtractionError {
	return &ExtractionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
