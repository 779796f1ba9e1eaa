package extraction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

type stubExtractionService struct {
	categorization *entity.Categorization
	categorizeErr  error
	receiptFields  *entity.ReceiptFields
	parseErr       error
	emailResult    *entity.EmailTransaction
	emailErr       error
	available      bool

	categorizeCalls   []string
	parseReceiptCalls int
}

func (s *stubExtractionService) Categorize(_ context.Context, description string) (*entity.Categorization, error) {
	s.categorizeCalls = append(s.categorizeCalls, description)
	if s.categorizeErr != nil {
		return nil, s.categorizeErr
	}
	return s.categorization, nil
}

func (s *stubExtractionService) ParseReceipt(_ context.Context, _ entity.ReceiptImage) (*entity.ReceiptFields, error) {
	s.parseReceiptCalls++
	if s.parseErr != nil {
		return nil, s.parseErr
	}
	return s.receiptFields, nil
}

func (s *stubExtractionService) ParseEmail(_ context.Context, _ string) (*entity.EmailTransaction, error) {
	if s.emailErr != nil {
		return nil, s.emailErr
	}
	return s.emailResult, nil
}

func (s *stubExtractionService) IsAvailable() bool {
	return s.available
}

func strPtr(s string) *string { return &s }

func newScanUseCase(svc *stubExtractionService) *ScanReceiptUseCase {
	return NewScanReceiptUseCase(NewParseReceiptUseCase(svc), NewCategorizeUseCase(svc))
}

func testImage() entity.ReceiptImage {
	return entity.ReceiptImage{MIMEType: "image/jpeg", Data: []byte{0xff, 0xd8}}
}

func TestScanReceiptFullPipeline(t *testing.T) {
	total := decimal.NewFromFloat(23.45)
	svc := &stubExtractionService{
		available: true,
		receiptFields: &entity.ReceiptFields{
			Merchant: strPtr("Whole Foods"),
			Date:     strPtr("2025-04-02"),
			Total:    &total,
		},
		categorization: &entity.Categorization{Category: entity.CategoryGroceries, Confidence: 0.93},
	}

	uc := newScanUseCase(svc)
	output, err := uc.Execute(context.Background(), ScanReceiptInput{Image: testImage()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Date != "2025-04-02" {
		t.Errorf("expected parsed date, got %s", output.Date)
	}
	if output.Categorization == nil || output.Categorization.Category != entity.CategoryGroceries {
		t.Errorf("expected Groceries categorization, got %v", output.Categorization)
	}
	if output.CategorizeErr != nil {
		t.Errorf("unexpected categorize error: %v", output.CategorizeErr)
	}
	if len(svc.categorizeCalls) != 1 || svc.categorizeCalls[0] != "Whole Foods" {
		t.Errorf("expected categorize called with merchant name, got %v", svc.categorizeCalls)
	}
}

func TestScanReceiptSkipsCategorizeWithoutMerchant(t *testing.T) {
	svc := &stubExtractionService{
		available:     true,
		receiptFields: &entity.ReceiptFields{Date: strPtr("2025-04-02")},
	}

	uc := newScanUseCase(svc)
	output, err := uc.Execute(context.Background(), ScanReceiptInput{Image: testImage()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Categorization != nil {
		t.Error("expected no categorization without a merchant")
	}
	if output.CategorizeErr != nil {
		t.Errorf("expected no categorize error, got %v", output.CategorizeErr)
	}
	if len(svc.categorizeCalls) != 0 {
		t.Errorf("categorize must not be called without a merchant, got %d calls", len(svc.categorizeCalls))
	}
}

func TestScanReceiptDateFallsBackToToday(t *testing.T) {
	tests := []struct {
		name string
		date *string
	}{
		{name: "missing date", date: nil},
		{name: "empty date", date: strPtr("")},
		{name: "non-ISO date", date: strPtr("04/02/2025")},
		{name: "garbage date", date: strPtr("last tuesday")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubExtractionService{
				available:      true,
				receiptFields:  &entity.ReceiptFields{Merchant: strPtr("Shell"), Date: tt.date},
				categorization: &entity.Categorization{Category: entity.CategoryTransportation, Confidence: 0.8},
			}

			uc := newScanUseCase(svc)
			output, err := uc.Execute(context.Background(), ScanReceiptInput{Image: testImage()})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			today := time.Now().UTC().Format("2006-01-02")
			if output.Date != today {
				t.Errorf("expected fallback to today %s, got %s", today, output.Date)
			}
		})
	}
}

func TestScanReceiptCategorizeFailureKeepsParse(t *testing.T) {
	total := decimal.NewFromFloat(12.00)
	svc := &stubExtractionService{
		available: true,
		receiptFields: &entity.ReceiptFields{
			Merchant: strPtr("Cafe Luna"),
			Total:    &total,
		},
		categorizeErr: domainerror.NewExtractionError(
			domainerror.ErrCodeExtractionTransport,
			"model unreachable",
			domainerror.ErrExtractionTransport,
		),
	}

	uc := newScanUseCase(svc)
	output, err := uc.Execute(context.Background(), ScanReceiptInput{Image: testImage()})
	if err != nil {
		t.Fatalf("a categorize failure must not fail the scan: %v", err)
	}

	if output.Fields == nil || output.Fields.Merchant == nil || *output.Fields.Merchant != "Cafe Luna" {
		t.Error("parse result must be kept when categorize fails")
	}
	if output.Categorization != nil {
		t.Error("expected no categorization on categorize failure")
	}
	if !IsTransportFailure(output.CategorizeErr) {
		t.Errorf("expected transport failure, got %v", output.CategorizeErr)
	}
}

func TestScanReceiptParseFailureFailsScan(t *testing.T) {
	svc := &stubExtractionService{
		available: true,
		parseErr: domainerror.NewExtractionError(
			domainerror.ErrCodeExtractionInvalidResponse,
			"malformed model output",
			domainerror.ErrExtractionInvalidResponse,
		),
	}

	uc := newScanUseCase(svc)
	_, err := uc.Execute(context.Background(), ScanReceiptInput{Image: testImage()})
	if err == nil {
		t.Fatal("expected error when parse fails")
	}
	if !IsValidationFailure(err) {
		t.Errorf("expected validation failure, got %v", err)
	}
	if len(svc.categorizeCalls) != 0 {
		t.Error("categorize must not run after a parse failure")
	}
}

func TestCategorizeRejectsEmptyDescription(t *testing.T) {
	svc := &stubExtractionService{available: true}
	uc := NewCategorizeUseCase(svc)

	_, err := uc.Execute(context.Background(), CategorizeInput{Description: "  "})
	if !errors.Is(err, domainerror.ErrEmptyExtractionInput) {
		t.Errorf("expected empty input error, got %v", err)
	}
	if len(svc.categorizeCalls) != 0 {
		t.Error("empty input must not reach the model")
	}
}

func TestCategorizeUnavailableService(t *testing.T) {
	svc := &stubExtractionService{available: false}
	uc := NewCategorizeUseCase(svc)

	_, err := uc.Execute(context.Background(), CategorizeInput{Description: "Trader Joe's"})
	if !errors.Is(err, domainerror.ErrExtractionNotConfigured) {
		t.Errorf("expected not configured error, got %v", err)
	}
}

func TestParseEmail(t *testing.T) {
	t.Run("success passes through free-text category", func(t *testing.T) {
		svc := &stubExtractionService{
			available: true,
			emailResult: &entity.EmailTransaction{
				Date:        "2025-06-10",
				Amount:      decimal.NewFromFloat(15.99),
				Description: "Netflix subscription",
				Category:    "Streaming Services",
			},
		}
		uc := NewParseEmailUseCase(svc)

		output, err := uc.Execute(context.Background(), ParseEmailInput{Body: "Your payment of $15.99..."})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// The category stays free text even though it is not in the enumeration.
		if output.Transaction.Category != "Streaming Services" {
			t.Errorf("expected free-text category preserved, got %q", output.Transaction.Category)
		}
	})

	t.Run("empty body rejected", func(t *testing.T) {
		svc := &stubExtractionService{available: true}
		uc := NewParseEmailUseCase(svc)

		_, err := uc.Execute(context.Background(), ParseEmailInput{Body: ""})
		if !errors.Is(err, domainerror.ErrEmptyExtractionInput) {
			t.Errorf("expected empty input error, got %v", err)
		}
	})
}

func TestParseReceiptRejectsEmptyImage(t *testing.T) {
	svc := &stubExtractionService{available: true}
	uc := NewParseReceiptUseCase(svc)

	_, err := uc.Execute(context.Background(), ParseReceiptInput{Image: entity.ReceiptImage{MIMEType: "image/png"}})
	if !errors.Is(err, domainerror.ErrEmptyExtractionInput) {
		t.Errorf("expected empty input error, got %v", err)
	}
	if svc.parseReceiptCalls != 0 {
		t.Error("empty image must not reach the model")
	}
}
