// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pennywise/backend/internal/application/usecase/extraction"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
	"github.com/pennywise/backend/internal/integration/entrypoint/dto"
)

// ExtractionController handles the model-backed extraction endpoints.
type ExtractionController struct {
	categorizeUseCase   *extraction.CategorizeUseCase
	parseReceiptUseCase *extraction.ParseReceiptUseCase
	parseEmailUseCase   *extraction.ParseEmailUseCase
	scanReceiptUseCase  *extraction.ScanReceiptUseCase
}

// NewExtractionController creates a new extraction controller instance.
func NewExtractionController(
	categorizeUseCase *extraction.CategorizeUseCase,
	parseReceiptUseCase *extraction.ParseReceiptUseCase,
	parseEmailUseCase *extraction.ParseEmailUseCase,
	scanReceiptUseCase *extraction.ScanReceiptUseCase,
) *ExtractionController {
	return &ExtractionController{
		categorizeUseCase:   categorizeUseCase,
		parseReceiptUseCase: parseReceiptUseCase,
		parseEmailUseCase:   parseEmailUseCase,
		scanReceiptUseCase:  scanReceiptUseCase,
	}
}

// Categorize handles POST /ai/categorize requests.
func (c *ExtractionController) Categorize(ctx *gin.Context) {
	var req dto.CategorizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyExtractionInput),
		})
		return
	}

	output, err := c.categorizeUseCase.Execute(ctx.Request.Context(), extraction.CategorizeInput{
		Description: req.Description,
	})
	if err != nil {
		c.handleExtractionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CategorizeResponse{
		Category:   output.Categorization.Category.String(),
		Confidence: output.Categorization.Confidence,
	})
}

// ParseReceipt handles POST /ai/parse-receipt requests.
func (c *ExtractionController) ParseReceipt(ctx *gin.Context) {
	var req dto.ParseReceiptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyExtractionInput),
		})
		return
	}

	image, ok := c.decodeImage(ctx, req)
	if !ok {
		return
	}

	output, err := c.parseReceiptUseCase.Execute(ctx.Request.Context(), extraction.ParseReceiptInput{
		Image: image,
	})
	if err != nil {
		c.handleExtractionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReceiptFieldsResponse(output.Fields))
}

// ParseEmail handles POST /ai/parse-email requests.
func (c *ExtractionController) ParseEmail(ctx *gin.Context) {
	var req dto.ParseEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyExtractionInput),
		})
		return
	}

	output, err := c.parseEmailUseCase.Execute(ctx.Request.Context(), extraction.ParseEmailInput{
		Body: req.Body,
	})
	if err != nil {
		c.handleExtractionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToParseEmailResponse(output.Transaction))
}

// ScanReceipt handles POST /ai/scan-receipt requests. A parse failure
// fails the request; a categorize failure is reported in the body
// alongside the parsed fields.
func (c *ExtractionController) ScanReceipt(ctx *gin.Context) {
	var req dto.ParseReceiptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyExtractionInput),
		})
		return
	}

	image, ok := c.decodeImage(ctx, req)
	if !ok {
		return
	}

	output, err := c.scanReceiptUseCase.Execute(ctx.Request.Context(), extraction.ScanReceiptInput{
		Image: image,
	})
	if err != nil {
		c.handleExtractionError(ctx, err)
		return
	}

	resp := dto.ScanReceiptResponse{
		Merchant: output.Fields.Merchant,
		Date:     output.Date,
	}
	if output.Fields.Total != nil {
		total := output.Fields.Total.String()
		resp.Total = &total
	}
	if output.Categorization != nil {
		resp.Categorization = &dto.CategorizeResponse{
			Category:   output.Categorization.Category.String(),
			Confidence: output.Categorization.Confidence,
		}
	}
	if output.CategorizeErr != nil {
		msg := output.CategorizeErr.Error()
		resp.CategorizeError = &msg
	}

	ctx.JSON(http.StatusOK, resp)
}

// decodeImage base64-decodes the submitted image. On failure it writes
// the error response and returns ok=false.
func (c *ExtractionController) decodeImage(ctx *gin.Context, req dto.ParseReceiptRequest) (entity.ReceiptImage, bool) {
	data, err := base64.StdEncoding.DecodeString(req.ImageData)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "image_data must be valid base64",
			Code:  string(domainerror.ErrCodeEmptyExtractionInput),
		})
		return entity.ReceiptImage{}, false
	}
	return entity.ReceiptImage{
		MIMEType: req.MIMEType,
		Data:     data,
	}, true
}

// handleExtractionError handles extraction errors and returns appropriate HTTP responses.
func (c *ExtractionController) handleExtractionError(ctx *gin.Context, err error) {
	var extErr *domainerror.ExtractionError
	if errors.As(err, &extErr) {
		statusCode := c.getStatusCodeForExtractionError(extErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: extErr.Message,
			Code:  string(extErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForExtractionError maps extraction error codes to HTTP status codes.
func (c *ExtractionController) getStatusCodeForExtractionError(code domainerror.ExtractionErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyExtractionInput:
		return http.StatusBadRequest
	case domainerror.ErrCodeExtractionNotConfigured:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeExtractionTransport,
		domainerror.ErrCodeExtractionInvalidResponse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
