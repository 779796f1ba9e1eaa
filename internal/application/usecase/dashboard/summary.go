// Package dashboard contains the dashboard aggregation use cases.
package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
)

// CategorySpending is the total spent in one category.
type CategorySpending struct {
	Category entity.Category
	Amount   decimal.Decimal
}

// BudgetProgress compares spending in a category against its budget.
type BudgetProgress struct {
	Category entity.Category
	Budget   decimal.Decimal
	Spent    decimal.Decimal
	// Progress is spent over budget as a percentage. It exceeds 100 when
	// the budget is overspent and is 0 when the budget amount is 0.
	Progress decimal.Decimal
	// Remaining is budget minus spent. Negative when overspent.
	Remaining decimal.Decimal
}

// SumByType returns the total amount of transactions of the given type.
func SumByType(transactions []*entity.Transaction, transactionType entity.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type == transactionType {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// SumExpensesByCategory totals expense transactions per category.
// Categories with no expenses are absent from the result.
func SumExpensesByCategory(transactions []*entity.Transaction) []CategorySpending {
	totals := make(map[entity.Category]decimal.Decimal)
	for _, t := range transactions {
		if t.Type != entity.TransactionTypeExpense {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}

	// Iterate the enumeration to keep the output order stable.
	result := make([]CategorySpending, 0, len(totals))
	for _, category := range entity.AllCategories {
		if amount, ok := totals[category]; ok {
			result = append(result, CategorySpending{Category: category, Amount: amount})
		}
	}
	return result
}

// ComputeBudgetProgress derives per-budget progress from the user's budgets
// and the per-category expense totals.
func ComputeBudgetProgress(budgets []*entity.Budget, spending []CategorySpending) []BudgetProgress {
	spentByCategory := make(map[entity.Category]decimal.Decimal, len(spending))
	for _, s := range spending {
		spentByCategory[s.Category] = s.Amount
	}

	hundred := decimal.NewFromInt(100)
	result := make([]BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		spent := spentByCategory[b.Category]
		progress := decimal.Zero
		if !b.Amount.IsZero() {
			progress = spent.Div(b.Amount).Mul(hundred)
		}
		result = append(result, BudgetProgress{
			Category:  b.Category,
			Budget:    b.Amount,
			Spent:     spent,
			Progress:  progress,
			Remaining: b.Amount.Sub(spent),
		})
	}
	return result
}
