// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pennywise/backend/internal/application/usecase/dashboard"
	"github.com/pennywise/backend/internal/integration/entrypoint/dto"
	"github.com/pennywise/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard aggregation endpoints.
type DashboardController struct {
	getSummaryUseCase *dashboard.GetSummaryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getSummaryUseCase *dashboard.GetSummaryUseCase) *DashboardController {
	return &DashboardController{
		getSummaryUseCase: getSummaryUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests. Optional
// start_date and end_date query parameters bound the aggregation window.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	input := dashboard.GetSummaryInput{UserID: userID}

	if raw := ctx.Query("start_date"); raw != "" {
		startDate, err := time.Parse(dateQueryLayout, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date, expected YYYY-MM-DD"})
			return
		}
		input.StartDate = &startDate
	}
	if raw := ctx.Query("end_date"); raw != "" {
		endDate, err := time.Parse(dateQueryLayout, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date, expected YYYY-MM-DD"})
			return
		}
		input.EndDate = &endDate
	}

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to compute summary"})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}
