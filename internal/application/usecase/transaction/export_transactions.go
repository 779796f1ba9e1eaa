// Package transaction contains transaction-related use cases.
package transaction

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

// ExportFormat identifies a supported export encoding.
type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatCSV  ExportFormat = "csv"
)

// ExportTransactionsInput represents the input for exporting transactions.
// The filter carries the owning user and any narrowing criteria, so an
// export covers exactly what a matching list request would return.
type ExportTransactionsInput struct {
	Filter adapter.TransactionFilter
	Format ExportFormat
}

// ExportTransactionsOutput represents the output of exporting transactions.
type ExportTransactionsOutput struct {
	Data        []byte
	ContentType string
	Filename    string
}

// ExportedTransaction is the portable shape of a transaction in an export
// file. The owning user ID is deliberately omitted: an export re-imported
// into another account belongs to that account.
type ExportedTransaction struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
}

// ExportTransactionsUseCase handles transaction export logic.
type ExportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute exports the user's matching transactions in the requested format.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	if input.Format != ExportFormatJSON && input.Format != ExportFormatCSV {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeUnsupportedExportFormat,
			fmt.Sprintf("unsupported export format: %s", input.Format),
			domainerror.ErrUnsupportedExportFormat,
		)
	}

	// Limit 0 disables pagination; an export is always the full match set.
	result, err := uc.transactionRepo.FindByFilter(ctx, input.Filter, adapter.TransactionPagination{Page: 1, Limit: 0})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	records := toExportedTransactions(result.Transactions)

	switch input.Format {
	case ExportFormatCSV:
		data, err := encodeCSV(records)
		if err != nil {
			return nil, fmt.Errorf("failed to encode csv export: %w", err)
		}
		return &ExportTransactionsOutput{
			Data:        data,
			ContentType: "text/csv",
			Filename:    "transactions.csv",
		}, nil
	default:
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json export: %w", err)
		}
		return &ExportTransactionsOutput{
			Data:        data,
			ContentType: "application/json",
			Filename:    "transactions.json",
		}, nil
	}
}

func toExportedTransactions(transactions []*entity.Transaction) []ExportedTransaction {
	records := make([]ExportedTransaction, 0, len(transactions))
	for _, t := range transactions {
		records = append(records, ExportedTransaction{
			ID:          t.ID.String(),
			Date:        t.Date.Format("2006-01-02"),
			Description: t.Description,
			Amount:      t.Amount.String(),
			Type:        string(t.Type),
			Category:    t.Category.String(),
		})
	}
	return records
}

func encodeCSV(records []ExportedTransaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "date", "description", "amount", "type", "category"}); err != nil {
		return nil, err
	}
	for _, r := range records {
		if err := w.Write([]string{r.ID, r.Date, r.Description, r.Amount, r.Type, r.Category}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
