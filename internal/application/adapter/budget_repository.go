// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pennywise/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// FindByUser retrieves all budgets for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// SaveBatch persists the given creates and updates in a single atomic
	// commit. Either all writes apply or none do.
	SaveBatch(ctx context.Context, creates []*entity.Budget, updates []*entity.Budget) error
}
