// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/pennywise/backend/internal/application/usecase/dashboard"
)

// CategorySpendingResponse is the total spent in one category.
type CategorySpendingResponse struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// BudgetProgressResponse compares spending in a category against its budget.
type BudgetProgressResponse struct {
	Category  string `json:"category"`
	Budget    string `json:"budget"`
	Spent     string `json:"spent"`
	Progress  string `json:"progress"`
	Remaining string `json:"remaining"`
}

// SummaryResponse represents the dashboard summary.
type SummaryResponse struct {
	TotalIncome        string                     `json:"total_income"`
	TotalExpenses      string                     `json:"total_expenses"`
	Balance            string                     `json:"balance"`
	SpendingByCategory []CategorySpendingResponse `json:"spending_by_category"`
	BudgetProgress     []BudgetProgressResponse   `json:"budget_progress"`
}

// ToSummaryResponse converts a dashboard summary output to a SummaryResponse DTO.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	spending := make([]CategorySpendingResponse, len(output.SpendingByCategory))
	for i, s := range output.SpendingByCategory {
		spending[i] = CategorySpendingResponse{
			Category: s.Category.String(),
			Amount:   s.Amount.String(),
		}
	}

	progress := make([]BudgetProgressResponse, len(output.BudgetProgress))
	for i, p := range output.BudgetProgress {
		progress[i] = BudgetProgressResponse{
			Category:  p.Category.String(),
			Budget:    p.Budget.String(),
			Spent:     p.Spent.String(),
			Progress:  p.Progress.Round(2).String(),
			Remaining: p.Remaining.String(),
		}
	}

	return SummaryResponse{
		TotalIncome:        output.TotalIncome.String(),
		TotalExpenses:      output.TotalExpenses.String(),
		Balance:            output.Balance.String(),
		SpendingByCategory: spending,
		BudgetProgress:     progress,
	}
}
