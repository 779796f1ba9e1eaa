// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/application/usecase/transaction"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
	"github.com/pennywise/backend/internal/integration/entrypoint/dto"
	"github.com/pennywise/backend/internal/integration/entrypoint/middleware"
)

const dateQueryLayout = "2006-01-02"

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase *transaction.CreateTransactionUseCase
	listUseCase   *transaction.ListTransactionsUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
	exportUseCase *transaction.ExportTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	exportUseCase *transaction.ExportTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
		exportUseCase: exportUseCase,
	}
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	date, err := time.Parse(dateQueryLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidTransactionDate),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount",
			Code:  string(domainerror.ErrCodeNegativeAmount),
		})
		return
	}

	input := transaction.CreateTransactionInput{
		UserID:          userID,
		Date:            date,
		Description:     req.Description,
		Amount:          amount,
		Type:            entity.TransactionType(req.Type),
		Category:        entity.Category(req.Category),
		ReceiptImageURI: req.ReceiptImageURI,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// List handles GET /transactions requests with optional filters.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	filter, err := c.parseFilter(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	input := transaction.ListTransactionsInput{
		Filter:     filter,
		Pagination: adapter.TransactionPagination{Page: page, Limit: limit},
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	result := output.Result
	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(
		result.Transactions,
		result.Total,
		result.Page,
		result.Limit,
		result.TotalPages,
	))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction id"})
		return
	}

	input := transaction.DeleteTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Export handles GET /transactions/export requests. The format query
// parameter selects json or csv; the response is sent as an attachment.
func (c *TransactionController) Export(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	filter, err := c.parseFilter(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := transaction.ExportTransactionsInput{
		Filter: filter,
		Format: transaction.ExportFormat(ctx.DefaultQuery("format", "json")),
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Data(http.StatusOK, output.ContentType, output.Data)
}

// parseFilter builds a transaction filter from query parameters.
func (c *TransactionController) parseFilter(ctx *gin.Context, userID uuid.UUID) (adapter.TransactionFilter, error) {
	filter := adapter.TransactionFilter{UserID: userID}

	if raw := ctx.Query("start_date"); raw != "" {
		startDate, err := time.Parse(dateQueryLayout, raw)
		if err != nil {
			return filter, fmt.Errorf("invalid start_date, expected YYYY-MM-DD")
		}
		filter.StartDate = &startDate
	}
	if raw := ctx.Query("end_date"); raw != "" {
		endDate, err := time.Parse(dateQueryLayout, raw)
		if err != nil {
			return filter, fmt.Errorf("invalid end_date, expected YYYY-MM-DD")
		}
		filter.EndDate = &endDate
	}
	if raw := ctx.Query("type"); raw != "" {
		txType := entity.TransactionType(raw)
		if txType != entity.TransactionTypeExpense && txType != entity.TransactionTypeIncome {
			return filter, fmt.Errorf("invalid type, expected expense or income")
		}
		filter.Type = &txType
	}
	if raw := ctx.Query("categories"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			category := entity.Category(strings.TrimSpace(name))
			if !category.IsValid() {
				return filter, fmt.Errorf("unknown category: %s", name)
			}
			filter.Categories = append(filter.Categories, category)
		}
	}
	filter.Search = ctx.Query("search")

	return filter, nil
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txErr *domainerror.TransactionError
	if errors.As(err, &txErr) {
		statusCode := c.getStatusCodeForTransactionError(txErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: txErr.Message,
			Code:  string(txErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedTransaction:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeNegativeAmount,
		domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeInvalidCategory,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeEmptyDescription,
		domainerror.ErrCodeMissingTransactionFields,
		domainerror.ErrCodeUnsupportedExportFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
