// Package extraction contains use cases that call the hosted language
// model gateway for transaction extraction and categorization.
package extraction

import (
	"context"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// ParseReceiptInput represents the input for receipt parsing.
type ParseReceiptInput struct {
	Image entity.ReceiptImage
}

// ParseReceiptOutput represents the output of receipt parsing.
type ParseReceiptOutput struct {
	Fields *entity.ReceiptFields
}

// ParseReceiptUseCase extracts merchant, date and total from a receipt image.
type ParseReceiptUseCase struct {
	extractionService adapter.ExtractionService
}

// NewParseReceiptUseCase creates a new ParseReceiptUseCase instance.
func NewParseReceiptUseCase(extractionService adapter.ExtractionService) *ParseReceiptUseCase {
	return &ParseReceiptUseCase{extractionService: extractionService}
}

// Execute performs the receipt parse.
func (uc *ParseReceiptUseCase) Execute(ctx context.Context, input ParseReceiptInput) (*ParseReceiptOutput, error) {
	if len(input.Image.Data) == 0 {
		return nil, domainerror.NewExtractionError(
			domainerror.ErrCodeEmptyExtractionInput,
			"receipt image must not be empty",
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

	fields, err := uc.extractionService.ParseReceipt(ctx, input.Image)
	if err != nil {
		return nil, err
	}

	return &ParseReceiptOutput{Fields: fields}, nil
}
