package adapters

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

func TestParseCategorizationResponse(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		wantCategory   entity.Category
		wantConfidence float64
		wantErr        bool
	}{
		{
			name:           "valid response",
			raw:            `{"category": "Groceries", "confidence": 0.92}`,
			wantCategory:   entity.CategoryGroceries,
			wantConfidence: 0.92,
		},
		{
			name:           "confidence boundary zero",
			raw:            `{"category": "Other", "confidence": 0}`,
			wantCategory:   entity.CategoryOther,
			wantConfidence: 0,
		},
		{
			name:           "confidence boundary one",
			raw:            `{"category": "Salary", "confidence": 1}`,
			wantCategory:   entity.CategorySalary,
			wantConfidence: 1,
		},
		{
			name:    "category outside enumeration",
			raw:     `{"category": "Crypto", "confidence": 0.9}`,
			wantErr: true,
		},
		{
			name:    "category wrong case",
			raw:     `{"category": "groceries", "confidence": 0.9}`,
			wantErr: true,
		},
		{
			name:    "confidence above range",
			raw:     `{"category": "Dining", "confidence": 1.2}`,
			wantErr: true,
		},
		{
			name:    "confidence below range",
			raw:     `{"category": "Dining", "confidence": -0.1}`,
			wantErr: true,
		},
		{
			name:    "confidence missing",
			raw:     `{"category": "Dining"}`,
			wantErr: true,
		},
		{
			name:    "malformed JSON",
			raw:     `not json at all`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseCategorizationResponse(tt.raw)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, domainerror.ErrExtractionInvalidResponse) {
					t.Errorf("expected schema validation error, got %v", err)
				}
				if errors.Is(err, domainerror.ErrExtractionTransport) {
					t.Error("validation failure must not look like a transport failure")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Category != tt.wantCategory {
				t.Errorf("expected category %s, got %s", tt.wantCategory, result.Category)
			}
			if result.Confidence != tt.wantConfidence {
				t.Errorf("expected confidence %v, got %v", tt.wantConfidence, result.Confidence)
			}
		})
	}
}

func TestParseReceiptResponse(t *testing.T) {
	t.Run("all fields present", func(t *testing.T) {
		fields, err := parseReceiptResponse(`{"merchant": "Whole Foods", "date": "2025-04-02", "total": 23.45}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fields.Merchant == nil || *fields.Merchant != "Whole Foods" {
			t.Errorf("unexpected merchant: %v", fields.Merchant)
		}
		if fields.Date == nil || *fields.Date != "2025-04-02" {
			t.Errorf("unexpected date: %v", fields.Date)
		}
		if fields.Total == nil || !fields.Total.Equal(decimal.NewFromFloat(23.45)) {
			t.Errorf("unexpected total: %v", fields.Total)
		}
	})

	t.Run("all fields null is a valid parse", func(t *testing.T) {
		fields, err := parseReceiptResponse(`{"merchant": null, "date": null, "total": null}`)
		if err != nil {
			t.Fatalf("missing fields must not fail the parse: %v", err)
		}
		if fields.Merchant != nil || fields.Date != nil || fields.Total != nil {
			t.Error("expected all fields absent")
		}
	})

	t.Run("blank merchant treated as absent", func(t *testing.T) {
		fields, err := parseReceiptResponse(`{"merchant": "  ", "date": null, "total": null}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fields.Merchant != nil {
			t.Error("expected blank merchant to be absent")
		}
	})

	t.Run("non-numeric total rejected", func(t *testing.T) {
		_, err := parseReceiptResponse(`{"merchant": "Shop", "date": null, "total": "abc"}`)
		if !errors.Is(err, domainerror.ErrExtractionInvalidResponse) {
			t.Errorf("expected schema validation error, got %v", err)
		}
	})
}

func TestParseEmailResponse(t *testing.T) {
	valid := `{"date": "2025-06-10", "amount": 15.99, "description": "Netflix subscription", "category": "Streaming Services"}`

	t.Run("valid response", func(t *testing.T) {
		result, err := parseEmailResponse(valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Date != "2025-06-10" {
			t.Errorf("unexpected date: %s", result.Date)
		}
		if !result.Amount.Equal(decimal.NewFromFloat(15.99)) {
			t.Errorf("unexpected amount: %s", result.Amount)
		}
		// Free-text category passes through unvalidated.
		if result.Category != "Streaming Services" {
			t.Errorf("unexpected category: %s", result.Category)
		}
	})

	missingField := []struct {
		name string
		raw  string
	}{
		{"missing date", `{"amount": 10, "description": "x", "category": "y"}`},
		{"missing amount", `{"date": "2025-06-10", "description": "x", "category": "y"}`},
		{"missing description", `{"date": "2025-06-10", "amount": 10, "category": "y"}`},
		{"missing category", `{"date": "2025-06-10", "amount": 10, "description": "x"}`},
	}

	for _, tt := range missingField {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseEmailResponse(tt.raw)
			if !errors.Is(err, domainerror.ErrExtractionInvalidResponse) {
				t.Errorf("expected schema validation error, got %v", err)
			}
		})
	}
}

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  {\"a\": 1}\n", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanJSONResponse(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGeminiServiceIsAvailable(t *testing.T) {
	if NewGeminiService("", "").IsAvailable() {
		t.Error("service without API key must not be available")
	}
	if !NewGeminiService("key", "").IsAvailable() {
		t.Error("service with API key must be available")
	}
}
