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

// CategorizeInput represents the input for transaction categorization.
type CategorizeInput struct {
	Description string
}

// CategorizeOutput represents the output of transaction categorization.
type CategorizeOutput struct {
	Categorization *entity.Categorization
}

// CategorizeUseCase maps a free-text description to one category label.
type CategorizeUseCase struct {
	extractionService adapter.ExtractionService
}

// NewCategorizeUseCase creates a new CategorizeUseCase instance.
func NewCategorizeUseCase(extractionService adapter.ExtractionService) *CategorizeUseCase {
	return &CategorizeUseCase{extractionService: extractionService}
}

// Execute performs the categorization. Empty descriptions are rejected
// before any model call.
func (uc *CategorizeUseCase) Execute(ctx context.Context, input CategorizeInput) (*CategorizeOutput, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, domainerror.NewExtractionError(
			domainerror.ErrCodeEmptyExtractionInput,
			"description must not be empty",
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

	categorization, err := uc.extractionService.Categorize(ctx, input.Description)
	if err != nil {
		return nil, err
	}

	return &CategorizeOutput{Categorization: categorization}, nil
}
