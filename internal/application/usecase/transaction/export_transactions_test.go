package transaction

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

func seedExportData(t *testing.T, repo *mockTransactionRepository, userID uuid.UUID) []*entity.Transaction {
	t.Helper()
	transactions := []*entity.Transaction{
		entity.NewTransaction(userID, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			"Groceries, with \"quotes\" and, commas", decimal.NewFromFloat(82.50),
			entity.TransactionTypeExpense, entity.CategoryGroceries, nil),
		entity.NewTransaction(userID, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			"January salary", decimal.NewFromInt(4200),
			entity.TransactionTypeIncome, entity.CategorySalary, nil),
	}
	for _, txn := range transactions {
		if err := repo.Create(context.Background(), txn); err != nil {
			t.Fatalf("failed to seed transaction: %v", err)
		}
	}
	return transactions
}

func TestExportTransactionsJSONRoundTrip(t *testing.T) {
	repo := newMockTransactionRepository()
	userID := uuid.New()
	seeded := seedExportData(t, repo, userID)

	uc := NewExportTransactionsUseCase(repo)
	output, err := uc.Execute(context.Background(), ExportTransactionsInput{Filter: adapter.TransactionFilter{UserID: userID}, Format: ExportFormatJSON})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.ContentType != "application/json" {
		t.Errorf("expected content type application/json, got %s", output.ContentType)
	}

	var decoded []ExportedTransaction
	if err := json.Unmarshal(output.Data, &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(decoded) != len(seeded) {
		t.Fatalf("expected %d records, got %d", len(seeded), len(decoded))
	}

	byID := make(map[string]ExportedTransaction)
	for _, r := range decoded {
		byID[r.ID] = r
	}
	for _, txn := range seeded {
		record, ok := byID[txn.ID.String()]
		if !ok {
			t.Fatalf("transaction %s missing from export", txn.ID)
		}
		if record.Description != txn.Description {
			t.Errorf("description mismatch: got %q, want %q", record.Description, txn.Description)
		}
		if record.Amount != txn.Amount.String() {
			t.Errorf("amount mismatch: got %q, want %q", record.Amount, txn.Amount.String())
		}
		if record.Date != txn.Date.Format("2006-01-02") {
			t.Errorf("date mismatch: got %q, want %q", record.Date, txn.Date.Format("2006-01-02"))
		}
		if record.Category != txn.Category.String() {
			t.Errorf("category mismatch: got %q, want %q", record.Category, txn.Category)
		}
	}

	// The export must not leak the owning user's ID.
	if strings.Contains(string(output.Data), userID.String()) {
		t.Error("export contains the user ID")
	}
}

func TestExportTransactionsCSV(t *testing.T) {
	repo := newMockTransactionRepository()
	userID := uuid.New()
	seeded := seedExportData(t, repo, userID)

	uc := NewExportTransactionsUseCase(repo)
	output, err := uc.Execute(context.Background(), ExportTransactionsInput{Filter: adapter.TransactionFilter{UserID: userID}, Format: ExportFormatCSV})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.ContentType != "text/csv" {
		t.Errorf("expected content type text/csv, got %s", output.ContentType)
	}

	rows, err := csv.NewReader(strings.NewReader(string(output.Data))).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}
	if len(rows) != len(seeded)+1 {
		t.Fatalf("expected header plus %d rows, got %d", len(seeded), len(rows))
	}

	header := rows[0]
	want := []string{"id", "date", "description", "amount", "type", "category"}
	for i, col := range want {
		if header[i] != col {
			t.Errorf("header column %d: got %q, want %q", i, header[i], col)
		}
	}

	// Descriptions with quotes and commas must survive the round trip.
	found := false
	for _, row := range rows[1:] {
		if row[2] == "Groceries, with \"quotes\" and, commas" {
			found = true
		}
	}
	if !found {
		t.Error("description with quotes and commas did not survive CSV round trip")
	}
}

func TestExportTransactionsHonorsFilter(t *testing.T) {
	repo := newMockTransactionRepository()
	userID := uuid.New()
	seedExportData(t, repo, userID)

	otherUser := entity.NewTransaction(uuid.New(), time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		"Someone else's rent", decimal.NewFromInt(1200),
		entity.TransactionTypeExpense, entity.CategoryRent, nil)
	if err := repo.Create(context.Background(), otherUser); err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}

	income := entity.TransactionTypeIncome
	uc := NewExportTransactionsUseCase(repo)
	output, err := uc.Execute(context.Background(), ExportTransactionsInput{
		Filter: adapter.TransactionFilter{UserID: userID, Type: &income},
		Format: ExportFormatJSON,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []ExportedTransaction
	if err := json.Unmarshal(output.Data, &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 record, got %d", len(decoded))
	}
	if decoded[0].Description != "January salary" {
		t.Errorf("expected the income transaction, got %q", decoded[0].Description)
	}
	if strings.Contains(string(output.Data), otherUser.ID.String()) {
		t.Error("export contains another user's transaction")
	}
}

func TestExportTransactionsEmpty(t *testing.T) {
	repo := newMockTransactionRepository()
	uc := NewExportTransactionsUseCase(repo)

	output, err := uc.Execute(context.Background(), ExportTransactionsInput{Filter: adapter.TransactionFilter{UserID: uuid.New()}, Format: ExportFormatJSON})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []ExportedTransaction
	if err := json.Unmarshal(output.Data, &decoded); err != nil {
		t.Fatalf("empty export is not valid JSON: %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("expected empty export, got %d records", len(decoded))
	}
}

func TestExportTransactionsUnsupportedFormat(t *testing.T) {
	repo := newMockTransactionRepository()
	uc := NewExportTransactionsUseCase(repo)

	_, err := uc.Execute(context.Background(), ExportTransactionsInput{Filter: adapter.TransactionFilter{UserID: uuid.New()}, Format: ExportFormat("xml")})
	if !errors.Is(err, domainerror.ErrUnsupportedExportFormat) {
		t.Errorf("expected unsupported format error, got %v", err)
	}
}
