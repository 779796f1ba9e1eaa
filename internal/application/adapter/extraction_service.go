// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/pennywise/backend/internal/domain/entity"
)

// ExtractionService is the gateway to the hosted language model. Each
// method sends one schema-constrained request and validates the raw
// response at the boundary before returning it.
//
// Error contract: implementations return errors wrapping
// domainerror.ErrExtractionTransport when the call itself fails and
// domainerror.ErrExtractionInvalidResponse when the model's output does
// not conform to the declared schema. A non-nil result always conforms.
type ExtractionService interface {
	// Categorize maps a free-text transaction description to exactly one
	// category from the closed enumeration plus a confidence in [0, 1].
	// The description must be non-empty; callers check this before calling.
	Categorize(ctx context.Context, description string) (*entity.Categorization, error)

	// ParseReceipt extracts merchant, date and total from a receipt image.
	// Every output field is optional; a missing field is not an error.
	ParseReceipt(ctx context.Context, image entity.ReceiptImage) (*entity.ReceiptFields, error)

	// ParseEmail extracts a full transaction record from an email body.
	// All four output fields are mandatory; a response missing any of them
	// fails schema validation. The returned category is free text and is
	// not checked against the enumeration.
	ParseEmail(ctx context.Context, body string) (*entity.EmailTransaction, error)

	// IsAvailable reports whether the service is configured.
	IsAvailable() bool
}
