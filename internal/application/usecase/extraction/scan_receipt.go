// Package extraction contains use cases that call the hosted language
// model gateway for transaction extraction and categorization.
package extraction

import (
	"context"
	"errors"
	"time"

	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// ScanReceiptInput represents the input for the receipt scan pipeline.
type ScanReceiptInput struct {
	Image entity.ReceiptImage
}

// ScanReceiptOutput represents the output of the receipt scan pipeline.
// The parse step and the categorize step report their outcomes separately:
// Fields always reflects the parse result, while Categorization is nil when
// the categorize step was skipped or failed. CategorizeErr carries the
// second step's failure, if any, without failing the scan as a whole.
type ScanReceiptOutput struct {
	Fields         *entity.ReceiptFields
	Date           string // Parsed date, or today when the receipt had none.
	Categorization *entity.Categorization
	CategorizeErr  error
}

// ScanReceiptUseCase runs the two-step receipt pipeline: parse the image,
// then categorize using the extracted merchant name. The second step only
// runs when the parse found a merchant.
type ScanReceiptUseCase struct {
	parseReceipt *ParseReceiptUseCase
	categorize   *CategorizeUseCase
}

// NewScanReceiptUseCase creates a new ScanReceiptUseCase instance.
func NewScanReceiptUseCase(
	parseReceipt *ParseReceiptUseCase,
	categorize *CategorizeUseCase,
) *ScanReceiptUseCase {
	return &ScanReceiptUseCase{
		parseReceipt: parseReceipt,
		categorize:   categorize,
	}
}

// Execute runs the pipeline. A parse failure fails the scan; a categorize
// failure is reported alongside the successfully parsed fields.
func (uc *ScanReceiptUseCase) Execute(ctx context.Context, input ScanReceiptInput) (*ScanReceiptOutput, error) {
	parsed, err := uc.parseReceipt.Execute(ctx, ParseReceiptInput{Image: input.Image})
	if err != nil {
		return nil, err
	}

	output := &ScanReceiptOutput{
		Fields: parsed.Fields,
		Date:   time.Now().UTC().Format("2006-01-02"),
	}
	// The model can return a date in an arbitrary format; only an ISO date
	// replaces the fallback.
	if parsed.Fields.Date != nil {
		if _, err := time.Parse("2006-01-02", *parsed.Fields.Date); err == nil {
			output.Date = *parsed.Fields.Date
		}
	}

	if parsed.Fields.Merchant == nil || *parsed.Fields.Merchant == "" {
		return output, nil
	}

	categorized, err := uc.categorize.Execute(ctx, CategorizeInput{Description: *parsed.Fields.Merchant})
	if err != nil {
		output.CategorizeErr = err
		return output, nil
	}
	output.Categorization = categorized.Categorization

	return output, nil
}

// IsValidationFailure reports whether err is a schema validation failure
// rather than a transport failure.
func IsValidationFailure(err error) bool {
	return errors.Is(err, domainerror.ErrExtractionInvalidResponse)
}

// IsTransportFailure reports whether err is a transport failure.
func IsTransportFailure(err error) bool {
	return errors.Is(err, domainerror.ErrExtractionTransport)
}
