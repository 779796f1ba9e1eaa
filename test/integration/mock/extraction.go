package mock

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
)

// ExtractionService is a configurable stand-in for the model gateway.
// Responses and errors are set per operation by the test scenario.
type ExtractionService struct {
	Available bool

	CategorizeResult *entity.Categorization
	CategorizeErr    error

	ReceiptResult *entity.ReceiptFields
	ReceiptErr    error

	EmailResult *entity.EmailTransaction
	EmailErr    error
}

// NewExtractionService creates a stub with sensible default responses.
func NewExtractionService() *ExtractionService {
	total := decimal.NewFromFloat(42.50)
	merchant := "Corner Cafe"
	date := "2026-08-15"
	return &ExtractionService{
		Available: true,
		CategorizeResult: &entity.Categorization{
			Category:   entity.CategoryDining,
			Confidence: 0.9,
		},
		ReceiptResult: &entity.ReceiptFields{
			Merchant: &merchant,
			Date:     &date,
			Total:    &total,
		},
		EmailResult: &entity.EmailTransaction{
			Date:        "2026-08-15",
			Amount:      decimal.NewFromFloat(19.99),
			Description: "Online purchase",
			Category:    "Subscriptions",
		},
	}
}

// IsAvailable reports whether the stub is configured as reachable.
func (s *ExtractionService) IsAvailable() bool {
	return s.Available
}

// Categorize returns the configured categorization.
func (s *ExtractionService) Categorize(ctx context.Context, description string) (*entity.Categorization, error) {
	if s.CategorizeErr != nil {
		return nil, s.CategorizeErr
	}
	return s.CategorizeResult, nil
}

// ParseReceipt returns the configured receipt fields.
func (s *ExtractionService) ParseReceipt(ctx context.Context, image entity.ReceiptImage) (*entity.ReceiptFields, error) {
	if s.ReceiptErr != nil {
		return nil, s.ReceiptErr
	}
	return s.ReceiptResult, nil
}

// ParseEmail returns the configured email transaction.
func (s *ExtractionService) ParseEmail(ctx context.Context, body string) (*entity.EmailTransaction, error) {
	if s.EmailErr != nil {
		return nil, s.EmailErr
	}
	return s.EmailResult, nil
}
