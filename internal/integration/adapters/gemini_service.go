// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// GeminiService implements the ExtractionService using Google Gemini.
// Every operation requests JSON output and validates the raw response
// against its schema before anything leaves this boundary.
type GeminiService struct {
	apiKey    string
	modelName string
}

// defaultGeminiModel is used when no model name is configured.
const defaultGeminiModel = "gemini-2.5-flash-lite"

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string, modelName string) *GeminiService {
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Categorize maps a transaction description to one category from the
// closed enumeration plus a confidence score.
func (s *GeminiService) Categorize(ctx context.Context, description string) (*entity.Categorization, error) {
	prompt := buildCategorizePrompt(description)

	raw, err := s.generateJSON(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	return parseCategorizationResponse(raw)
}

// ParseReceipt extracts merchant, date and total from a receipt image.
func (s *GeminiService) ParseReceipt(ctx context.Context, image entity.ReceiptImage) (*entity.ReceiptFields, error) {
	format := strings.TrimPrefix(image.MIMEType, "image/")

	raw, err := s.generateJSON(ctx,
		genai.ImageData(format, image.Data),
		genai.Text(receiptPrompt),
	)
	if err != nil {
		return nil, err
	}

	return parseReceiptResponse(raw)
}

// ParseEmail extracts a full transaction record from an email body.
func (s *GeminiService) ParseEmail(ctx context.Context, body string) (*entity.EmailTransaction, error) {
	prompt := buildEmailPrompt(body)

	raw, err := s.generateJSON(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	return parseEmailResponse(raw)
}

// generateJSON sends one request and returns the cleaned JSON text.
// All failures up to and including "no text came back" are transport
// failures; everything after is schema validation.
func (s *GeminiService) generateJSON(ctx context.Context, parts ...genai.Part) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", domainerror.NewExtractionError(
			domainerror.ErrCodeExtractionTransport,
			"failed to create gemini client",
			fmt.Errorf("%w: %v", domainerror.ErrExtractionTransport, err),
		)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", domainerror.NewExtractionError(
			domainerror.ErrCodeExtractionTransport,
			"failed to generate content",
			fmt.Errorf("%w: %v", domainerror.ErrExtractionTransport, err),
		)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", domainerror.NewExtractionError(
			domainerror.ErrCodeExtractionTransport,
			"empty response from gemini",
			domainerror.ErrExtractionTransport,
		)
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}
	if textContent == "" {
		return "", domainerror.NewExtractionError(
			domainerror.ErrCodeExtractionTransport,
			"no text content in response",
			domainerror.ErrExtractionTransport,
		)
	}

	return cleanJSONResponse(textContent), nil
}

// cleanJSONResponse strips markdown code fences the model sometimes adds.
func cleanJSONResponse(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func buildCategorizePrompt(description string) string {
	var sb strings.Builder

	sb.WriteString("You are an expert financial assistant. Categorize the following transaction description into exactly one of these categories:\n\n")
	for _, category := range entity.AllCategories {
		sb.WriteString("- ")
		sb.WriteString(category.String())
		sb.WriteString("\n")
	}
	sb.WriteString("\nTransaction description: \"")
	sb.WriteString(description)
	sb.WriteString("\"\n\n")
	sb.WriteString(`Respond with a JSON object:
{
  "category": "one of the category names above, exactly as written",
  "confidence": 0.0-1.0
}

RESPONSE FORMAT: Return only the JSON object, no additional text.
`)

	return sb.String()
}

const receiptPrompt = `You are an expert receipt scanner. Extract the following information from the receipt image:
- merchant: the merchant or store name
- date: the transaction date in YYYY-MM-DD format
- total: the total amount as a number

Respond with a JSON object:
{
  "merchant": "string or null",
  "date": "YYYY-MM-DD or null",
  "total": number or null
}

If you cannot find a field, use null for it.

RESPONSE FORMAT: Return only the JSON object, no additional text.
`

func buildEmailPrompt(body string) string {
	var sb strings.Builder

	sb.WriteString(`You are an expert at parsing financial emails. Extract the transaction details from the email below.

EMAIL:
`)
	sb.WriteString(body)
	sb.WriteString(`

Respond with a JSON object:
{
  "date": "transaction date in YYYY-MM-DD format",
  "amount": number,
  "description": "short description of the transaction",
  "category": "a category that fits the transaction"
}

All four fields are required.

RESPONSE FORMAT: Return only the JSON object, no additional text.
`)

	return sb.String()
}

// geminiCategorization is the raw categorize response shape.
type geminiCategorization struct {
	Category   string   `json:"category"`
	Confidence *float64 `json:"confidence"`
}

func parseCategorizationResponse(raw string) (*entity.Categorization, error) {
	var parsed geminiCategorization
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, invalidResponse(fmt.Sprintf("malformed JSON: %v", err))
	}

	category := entity.Category(parsed.Category)
	if !category.IsValid() {
		return nil, invalidResponse(fmt.Sprintf("category %q is not in the enumeration", parsed.Category))
	}
	if parsed.Confidence == nil {
		return nil, invalidResponse("confidence is missing")
	}
	if *parsed.Confidence < 0 || *parsed.Confidence > 1 {
		return nil, invalidResponse(fmt.Sprintf("confidence %v is outside [0, 1]", *parsed.Confidence))
	}

	return &entity.Categorization{
		Category:   category,
		Confidence: *parsed.Confidence,
	}, nil
}

// geminiReceipt is the raw receipt parse response shape.
type geminiReceipt struct {
	Merchant *string      `json:"merchant"`
	Date     *string      `json:"date"`
	Total    *json.Number `json:"total"`
}

func parseReceiptResponse(raw string) (*entity.ReceiptFields, error) {
	var parsed geminiReceipt
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, invalidResponse(fmt.Sprintf("malformed JSON: %v", err))
	}

	fields := &entity.ReceiptFields{}
	if parsed.Merchant != nil && strings.TrimSpace(*parsed.Merchant) != "" {
		merchant := strings.TrimSpace(*parsed.Merchant)
		fields.Merchant = &merchant
	}
	if parsed.Date != nil && strings.TrimSpace(*parsed.Date) != "" {
		date := strings.TrimSpace(*parsed.Date)
		fields.Date = &date
	}
	if parsed.Total != nil {
		total, err := decimal.NewFromString(parsed.Total.String())
		if err != nil {
			return nil, invalidResponse(fmt.Sprintf("total %q is not a number", parsed.Total.String()))
		}
		fields.Total = &total
	}

	return fields, nil
}

// geminiEmail is the raw email parse response shape.
type geminiEmail struct {
	Date        string       `json:"date"`
	Amount      *json.Number `json:"amount"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
}

func parseEmailResponse(raw string) (*entity.EmailTransaction, error) {
	var parsed geminiEmail
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, invalidResponse(fmt.Sprintf("malformed JSON: %v", err))
	}

	// All four fields are mandatory for email extraction.
	if strings.TrimSpace(parsed.Date) == "" {
		return nil, invalidResponse("date is missing")
	}
	if parsed.Amount == nil {
		return nil, invalidResponse("amount is missing")
	}
	if strings.TrimSpace(parsed.Description) == "" {
		return nil, invalidResponse("description is missing")
	}
	if strings.TrimSpace(parsed.Category) == "" {
		return nil, invalidResponse("category is missing")
	}

	amount, err := decimal.NewFromString(parsed.Amount.String())
	if err != nil {
		return nil, invalidResponse(fmt.Sprintf("amount %q is not a number", parsed.Amount.String()))
	}

	// Category is deliberately kept as free text here.
	return &entity.EmailTransaction{
		Date:        strings.TrimSpace(parsed.Date),
		Amount:      amount,
		Description: strings.TrimSpace(parsed.Description),
		Category:    strings.TrimSpace(parsed.Category),
	}, nil
}

func invalidResponse(detail string) error {
	return domainerror.NewExtractionError(
		domainerror.ErrCodeExtractionInvalidResponse,
		detail,
		domainerror.ErrExtractionInvalidResponse,
	)
}

var _ adapter.ExtractionService = (*GeminiService)(nil)
