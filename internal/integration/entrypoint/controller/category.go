// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pennywise/backend/internal/domain/entity"
	"github.com/pennywise/backend/internal/integration/entrypoint/dto"
)

// CategoryController serves the closed category enumeration. The set is
// fixed at compile time; there is no create, update or delete.
type CategoryController struct{}

// NewCategoryController creates a new category controller instance.
func NewCategoryController() *CategoryController {
	return &CategoryController{}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	expense := make([]string, len(entity.ExpenseCategories))
	for i, cat := range entity.ExpenseCategories {
		expense[i] = cat.String()
	}
	income := make([]string, len(entity.IncomeCategories))
	for i, cat := range entity.IncomeCategories {
		income[i] = cat.String()
	}

	ctx.JSON(http.StatusOK, dto.CategoryListResponse{
		Expense: expense,
		Income:  income,
	})
}
