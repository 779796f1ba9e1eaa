// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pennywise/backend/internal/domain/entity"
)

// dateLayout is the wire format for transaction dates.
const dateLayout = "2006-01-02"

// CreateTransactionRequest represents the request body for creating a transaction.
// Amount is a decimal string to avoid float rounding on the wire.
type CreateTransactionRequest struct {
	Date            string  `json:"date" binding:"required"`
	Description     string  `json:"description" binding:"required,max=255"`
	Amount          string  `json:"amount" binding:"required"`
	Type            string  `json:"type" binding:"required,oneof=expense income"`
	Category        string  `json:"category" binding:"required"`
	ReceiptImageURI *string `json:"receipt_image_uri,omitempty"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID              string    `json:"id"`
	Date            string    `json:"date"`
	Description     string    `json:"description"`
	Amount          string    `json:"amount"`
	Type            string    `json:"type"`
	Category        string    `json:"category"`
	ReceiptImageURI *string   `json:"receipt_image_uri,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// TransactionListResponse represents a page of transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	TotalPages   int                   `json:"total_pages"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              transaction.ID.String(),
		Date:            transaction.Date.Format(dateLayout),
		Description:     transaction.Description,
		Amount:          transaction.Amount.String(),
		Type:            string(transaction.Type),
		Category:        transaction.Category.String(),
		ReceiptImageURI: transaction.ReceiptImageURI,
		CreatedAt:       transaction.CreatedAt,
	}
}

// ToTransactionListResponse converts a list of transactions to a TransactionListResponse DTO.
func ToTransactionListResponse(transactions []*entity.Transaction, total int64, page, limit, totalPages int) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{
		Transactions: responses,
		Total:        total,
		Page:         page,
		Limit:        limit,
		TotalPages:   totalPages,
	}
}
