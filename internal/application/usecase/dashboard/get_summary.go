// Package dashboard contains the dashboard aggregation use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
)

// GetSummaryInput represents the input for the dashboard summary.
// The optional date range narrows the transactions considered.
type GetSummaryInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// GetSummaryOutput represents the dashboard summary.
type GetSummaryOutput struct {
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal
	Balance            decimal.Decimal
	SpendingByCategory []CategorySpending
	BudgetProgress     []BudgetProgress
}

// GetSummaryUseCase computes the dashboard summary. All aggregation is
// derived from stored transactions and budgets; nothing is persisted.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
	}
}

// Execute computes the summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	filter := adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	result, err := uc.transactionRepo.FindByFilter(ctx, filter, adapter.TransactionPagination{Page: 1, Limit: 0})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	transactions := result.Transactions

	budgets, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	income := SumByType(transactions, entity.TransactionTypeIncome)
	expenses := SumByType(transactions, entity.TransactionTypeExpense)
	spending := SumExpensesByCategory(transactions)

	return &GetSummaryOutput{
		TotalIncome:        income,
		TotalExpenses:      expenses,
		Balance:            income.Sub(expenses),
		SpendingByCategory: spending,
		BudgetProgress:     ComputeBudgetProgress(budgets, spending),
	}, nil
}
