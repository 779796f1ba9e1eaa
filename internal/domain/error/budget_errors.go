// Package error defines domain-specific errors for the Pennywise application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrInvalidBudgetCategory is returned when a budget references a category outside the enumeration.
	ErrInvalidBudgetCategory = errors.New("budget category is not a valid category label")

	// ErrNegativeBudgetAmount is returned when a budget amount is negative.
	ErrNegativeBudgetAmount = errors.New("budget amount must not be negative")

	// ErrDuplicateBudgetCategory is returned when a save request lists the same category twice.
	ErrDuplicateBudgetCategory = errors.New("duplicate category in budget save request")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	ErrCodeInvalidBudgetCategory   BudgetErrorCode = "BGT-010001"
	ErrCodeNegativeBudgetAmount    BudgetErrorCode = "BGT-010002"
	ErrCodeDuplicateBudgetCategory BudgetErrorCode = "BGT-010003"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
