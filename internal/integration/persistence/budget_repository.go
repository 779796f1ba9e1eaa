// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	"github.com/pennywise/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// FindByUser retrieves all budgets for a user.
func (r *budgetRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	var models []model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("category ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.Budget, len(models))
	for i, m := range models {
		budgets[i] = m.ToEntity()
	}
	return budgets, nil
}

// SaveBatch persists the given creates and updates in a single transaction.
// Either all writes apply or none do.
func (r *budgetRepository) SaveBatch(ctx context.Context, creates []*entity.Budget, updates []*entity.Budget) error {
	if len(creates) == 0 && len(updates) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, budget := range creates {
			if err := tx.Create(model.BudgetFromEntity(budget)).Error; err != nil {
				return err
			}
		}
		for _, budget := range updates {
			if err := tx.Model(&model.BudgetModel{}).
				Where("id = ?", budget.ID).
				Updates(map[string]any{
					"amount":     budget.Amount,
					"updated_at": budget.UpdatedAt,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
