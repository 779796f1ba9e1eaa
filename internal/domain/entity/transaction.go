// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a single income or expense record.
// Transactions are immutable once created: the only lifecycle operations
// are creation and deletion.
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Date            time.Time
	Description     string
	Amount          decimal.Decimal // Always non-negative; Type carries the sign.
	Type            TransactionType
	Category        Category
	ReceiptImageURI *string // Optional reference to the scanned receipt image.
	CreatedAt       time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	date time.Time,
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	category Category,
	receiptImageURI *string,
) *Transaction {
	return &Transaction{
		ID:              uuid.New(),
		UserID:          userID,
		Date:            date,
		Description:     description,
		Amount:          amount,
		Type:            transactionType,
		Category:        category,
		ReceiptImageURI: receiptImageURI,
		CreatedAt:       time.Now().UTC(),
	}
}
