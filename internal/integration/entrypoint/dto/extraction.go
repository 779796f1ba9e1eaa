// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/pennywise/backend/internal/domain/entity"
)

// CategorizeRequest represents the request body for transaction categorization.
type CategorizeRequest struct {
	Description string `json:"description" binding:"required"`
}

// CategorizeResponse represents the response for transaction categorization.
type CategorizeResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// ParseReceiptRequest represents the request body for receipt parsing.
// ImageData carries the base64-encoded image bytes.
type ParseReceiptRequest struct {
	ImageData string `json:"image_data" binding:"required"`
	MIMEType  string `json:"mime_type" binding:"required"`
}

// ReceiptFieldsResponse represents the parsed receipt fields. Every field
// is optional; absent fields are omitted.
type ReceiptFieldsResponse struct {
	Merchant *string `json:"merchant,omitempty"`
	Date     *string `json:"date,omitempty"`
	Total    *string `json:"total,omitempty"`
}

// ParseEmailRequest represents the request body for email parsing.
type ParseEmailRequest struct {
	Body string `json:"body" binding:"required"`
}

// ParseEmailResponse represents the parsed email transaction. Category is
// free text, not necessarily a member of the category enumeration.
type ParseEmailResponse struct {
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// ScanReceiptResponse represents the result of the two-step receipt scan.
// The categorization block is absent when the step was skipped or failed;
// CategorizeError reports a step-two failure without failing the scan.
type ScanReceiptResponse struct {
	Merchant        *string             `json:"merchant,omitempty"`
	Date            string              `json:"date"`
	Total           *string             `json:"total,omitempty"`
	Categorization  *CategorizeResponse `json:"categorization,omitempty"`
	CategorizeError *string             `json:"categorize_error,omitempty"`
}

// ToReceiptFieldsResponse converts parsed receipt fields to a DTO.
func ToReceiptFieldsResponse(fields *entity.ReceiptFields) ReceiptFieldsResponse {
	resp := ReceiptFieldsResponse{
		Merchant: fields.Merchant,
		Date:     fields.Date,
	}
	if fields.Total != nil {
		total := fields.Total.String()
		resp.Total = &total
	}
	return resp
}

// ToParseEmailResponse converts an extracted email transaction to a DTO.
func ToParseEmailResponse(transaction *entity.EmailTransaction) ParseEmailResponse {
	return ParseEmailResponse{
		Date:        transaction.Date,
		Amount:      transaction.Amount.String(),
		Description: transaction.Description,
		Category:    transaction.Category,
	}
}
