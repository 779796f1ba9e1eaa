// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/domain/entity"
)

// TransactionFilter describes filter criteria for listing transactions.
// All filtering happens at the store layer; the aggregation routines
// operate on the already-filtered in-memory result.
type TransactionFilter struct {
	UserID     uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Type       *entity.TransactionType
	Categories []entity.Category
	Search     string
}

// TransactionPagination describes pagination parameters.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionListResult represents a page of transactions.
type TransactionListResult struct {
	Transactions []*entity.Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create persists a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUser retrieves all transactions for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter with pagination.
	FindByFilter(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*TransactionListResult, error)

	// Delete removes a transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
