// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget is a user-set monthly spending ceiling for one category.
// At most one budget exists per (user, category) pair; the save use case
// enforces this with upsert logic rather than a store constraint.
type Budget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  Category
	Amount    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, category Category, amount decimal.Decimal) *Budget {
	now := time.Now().UTC()
	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  category,
		Amount:    amount,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
