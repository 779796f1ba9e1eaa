// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// BudgetItem is one (category, amount) pair from a save request.
type BudgetItem struct {
	Category entity.Category
	Amount   decimal.Decimal
}

// SaveBudgetsInput represents the input for the batched budget save.
type SaveBudgetsInput struct {
	UserID uuid.UUID
	Items  []BudgetItem
}

// SaveBudgetsOutput represents the output of the batched budget save.
type SaveBudgetsOutput struct {
	Budgets []*entity.Budget
	Created int
	Updated int
}

// SaveBudgetsUseCase handles the diff-based batched budget save.
// Submitted items are compared against the user's existing budgets:
// unchanged amounts produce no write, changed amounts become updates,
// categories without an existing budget become inserts. Omitting a
// category never deletes its budget.
type SaveBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewSaveBudgetsUseCase creates a new SaveBudgetsUseCase instance.
func NewSaveBudgetsUseCase(budgetRepo adapter.BudgetRepository) *SaveBudgetsUseCase {
	return &SaveBudgetsUseCase{budgetRepo: budgetRepo}
}

// Execute performs the batched budget save.
func (uc *SaveBudgetsUseCase) Execute(ctx context.Context, input SaveBudgetsInput) (*SaveBudgetsOutput, error) {
	if err := validateItems(input.Items); err != nil {
		return nil, err
	}

	existing, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing budgets: %w", err)
	}

	byCategory := make(map[entity.Category]*entity.Budget, len(existing))
	for _, b := range existing {
		byCategory[b.Category] = b
	}

	var creates, updates []*entity.Budget
	for _, item := range input.Items {
		current, ok := byCategory[item.Category]
		if !ok {
			budget := entity.NewBudget(input.UserID, item.Category, item.Amount)
			creates = append(creates, budget)
			byCategory[item.Category] = budget
			continue
		}
		if current.Amount.Equal(item.Amount) {
			// Unchanged amount, no write.
			continue
		}
		current.Amount = item.Amount
		current.UpdatedAt = time.Now().UTC()
		updates = append(updates, current)
	}

	if len(creates) > 0 || len(updates) > 0 {
		if err := uc.budgetRepo.SaveBatch(ctx, creates, updates); err != nil {
			return nil, fmt.Errorf("failed to save budgets: %w", err)
		}
	}

	budgets := make([]*entity.Budget, 0, len(byCategory))
	for _, b := range byCategory {
		budgets = append(budgets, b)
	}

	return &SaveBudgetsOutput{
		Budgets: budgets,
		Created: len(creates),
		Updated: len(updates),
	}, nil
}

func validateItems(items []BudgetItem) error {
	seen := make(map[entity.Category]struct{}, len(items))
	for _, item := range items {
		if !item.Category.IsValid() {
			return domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetCategory,
				fmt.Sprintf("unknown category: %s", item.Category),
				domainerror.ErrInvalidBudgetCategory,
			)
		}
		if item.Amount.IsNegative() {
			return domainerror.NewBudgetError(
				domainerror.ErrCodeNegativeBudgetAmount,
				fmt.Sprintf("negative amount for category %s", item.Category),
				domainerror.ErrNegativeBudgetAmount,
			)
		}
		if _, ok := seen[item.Category]; ok {
			return domainerror.NewBudgetError(
				domainerror.ErrCodeDuplicateBudgetCategory,
				fmt.Sprintf("category %s listed more than once", item.Category),
				domainerror.ErrDuplicateBudgetCategory,
			)
		}
		seen[item.Category] = struct{}{}
	}
	return nil
}
