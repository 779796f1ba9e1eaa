// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pennywise/backend/internal/application/usecase/budget"
	"github.com/pennywise/backend/internal/domain/entity"
)

// BudgetItemRequest is one (category, amount) pair in a budget save request.
type BudgetItemRequest struct {
	Category string `json:"category" binding:"required"`
	Amount   string `json:"amount" binding:"required"`
}

// SaveBudgetsRequest represents the request body for the batched budget save.
type SaveBudgetsRequest struct {
	Budgets []BudgetItemRequest `json:"budgets" binding:"required"`
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Amount    string    `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// SaveBudgetsResponse represents the response for the batched budget save.
type SaveBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
	Created int              `json:"created"`
	Updated int              `json:"updated"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        budget.ID.String(),
		Category:  budget.Category.String(),
		Amount:    budget.Amount.String(),
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
	}
}

// ToBudgetResponses converts a list of budgets to BudgetResponse DTOs.
func ToBudgetResponses(budgets []*entity.Budget) []BudgetResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		responses[i] = ToBudgetResponse(b)
	}
	return responses
}

// ToBudgetListResponse converts a list of budgets to a BudgetListResponse DTO.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	return BudgetListResponse{
		Budgets: ToBudgetResponses(budgets),
	}
}

// ToSaveBudgetsResponse converts a save result to a SaveBudgetsResponse DTO.
func ToSaveBudgetsResponse(output *budget.SaveBudgetsOutput) SaveBudgetsResponse {
	return SaveBudgetsResponse{
		Budgets: ToBudgetResponses(output.Budgets),
		Created: output.Created,
		Updated: output.Updated,
	}
}
