// Package dto defines data transfer objects for API requests and responses.
package dto

// UpdateProfileRequest represents the request body for profile updates.
// Absent fields are left unchanged.
type UpdateProfileRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	MonthlyBudget *string `json:"monthly_budget,omitempty"`
}

// CategoryListResponse represents the closed category enumeration.
type CategoryListResponse struct {
	Expense []string `json:"expense"`
	Income  []string `json:"income"`
}
