// Package extraction contains use cases that call the hosted language
// model gateway for transaction extraction and categorization.
package extraction

import (
	"context"
	"strings"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// ParseEmailInput represents the input for email parsing.
type ParseEmailInput struct {
	Body string
}

// ParseEmailOutput represents the output of email parsing.
// The extracted category is free text; callers that need a label from the
// closed enumeration must map or re-categorize it themselves.
type ParseEmailOutput struct {
	Transaction *entity.EmailTransaction
}

// ParseEmailUseCase extracts a transaction record from an email body.
type ParseEmailUseCase struct {
	extractionService adapter.ExtractionService
}

// NewParseEmailUseCase creates a new ParseEmailUseCase instance.
func NewParseEmailUseCase(extractionService adapter.ExtractionService) *ParseEmailUseCase {
	return &ParseEmailUseCase{extractionService: extractionService}
}

// Execute performs the email parse.
func (uc *ParseEmailUseCase) Execute(ctx context.Context, input ParseEmailInput) (*ParseEmailOutput, error) {
	if strings.TrimSpace(input.Body) == "" {
		return nil, domainerror.NewExtractionError(
			domainerror.ErrCodeEmptyExtractionInput,
			"email body must not be empty",
			domainerror.ErrEmptyExtractionInput,
		)
	}

	if !uc.extractionService.IsAvailable() {
		return nil, domainerror.NewExtractionError(
			domainerror.ErrCodeExtractionNotConfigured,
			"extraction service is not configured",
			domainerror.ErrExtractionNotConfigured,
		)
	}

	transaction, err := uc.extractionService.ParseEmail(ctx, input.Body)
	if err != nil {
		return nil, err
	}

	return &ParseEmailOutput{Transaction: transaction}, nil
}
