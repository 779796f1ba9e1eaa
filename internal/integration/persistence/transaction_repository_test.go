package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pennywise/backend/internal/application/adapter"
	"github.com/pennywise/backend/internal/domain/entity"
	"github.com/pennywise/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&model.TransactionModel{},
		&model.BudgetModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedTransaction(t *testing.T, repo adapter.TransactionRepository, userID uuid.UUID, day int, description, amount string, txType entity.TransactionType, category entity.Category) *entity.Transaction {
	t.Helper()
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("bad amount %q: %v", amount, err)
	}
	tx := entity.NewTransaction(
		userID,
		time.Date(2026, 8, day, 0, 0, 0, 0, time.UTC),
		description,
		amt,
		txType,
		category,
		nil,
	)
	if err := repo.Create(context.Background(), tx); err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}
	return tx
}

func TestTransactionRepositoryFindByFilter(t *testing.T) {
	repo := NewTransactionRepository(newTestDB(t))
	userID := uuid.New()
	otherUserID := uuid.New()

	seedTransaction(t, repo, userID, 1, "Weekly groceries", "85.20", entity.TransactionTypeExpense, entity.CategoryGroceries)
	seedTransaction(t, repo, userID, 5, "Dinner with friends", "42.00", entity.TransactionTypeExpense, entity.CategoryDining)
	seedTransaction(t, repo, userID, 10, "Monthly salary", "5000.00", entity.TransactionTypeIncome, entity.CategorySalary)
	seedTransaction(t, repo, otherUserID, 5, "Someone else's dinner", "10.00", entity.TransactionTypeExpense, entity.CategoryDining)

	expense := entity.TransactionTypeExpense
	start := time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 6, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    adapter.TransactionFilter
		wantTotal int64
	}{
		{
			name:      "all for user",
			filter:    adapter.TransactionFilter{UserID: userID},
			wantTotal: 3,
		},
		{
			name:      "by type",
			filter:    adapter.TransactionFilter{UserID: userID, Type: &expense},
			wantTotal: 2,
		},
		{
			name:      "by category",
			filter:    adapter.TransactionFilter{UserID: userID, Categories: []entity.Category{entity.CategoryDining}},
			wantTotal: 1,
		},
		{
			name:      "by date window",
			filter:    adapter.TransactionFilter{UserID: userID, StartDate: &start, EndDate: &end},
			wantTotal: 1,
		},
		{
			name:      "by search",
			filter:    adapter.TransactionFilter{UserID: userID, Search: "salary"},
			wantTotal: 1,
		},
		{
			name:      "no cross-user leakage",
			filter:    adapter.TransactionFilter{UserID: otherUserID},
			wantTotal: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := repo.FindByFilter(context.Background(), tt.filter, adapter.TransactionPagination{Page: 1, Limit: 20})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Total != tt.wantTotal {
				t.Errorf("total = %d, want %d", result.Total, tt.wantTotal)
			}
			if int64(len(result.Transactions)) != tt.wantTotal {
				t.Errorf("len(transactions) = %d, want %d", len(result.Transactions), tt.wantTotal)
			}
		})
	}
}

func TestTransactionRepositorySearchMatchesLiterally(t *testing.T) {
	repo := NewTransactionRepository(newTestDB(t))
	userID := uuid.New()

	seedTransaction(t, repo, userID, 1, "Gift_card top-up", "25.00", entity.TransactionTypeExpense, entity.CategoryOther)
	seedTransaction(t, repo, userID, 2, "GiftXcard top-up", "25.00", entity.TransactionTypeExpense, entity.CategoryOther)
	seedTransaction(t, repo, userID, 3, "50% deposit", "100.00", entity.TransactionTypeExpense, entity.CategoryOther)

	tests := []struct {
		name      string
		search    string
		wantTotal int64
	}{
		{
			name:      "underscore is not a single-character wildcard",
			search:    "Gift_card",
			wantTotal: 1,
		},
		{
			name:      "percent matches a literal percent sign",
			search:    "50% deposit",
			wantTotal: 1,
		},
		{
			name:      "percent is not a multi-character wildcard",
			search:    "50%it",
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := repo.FindByFilter(context.Background(),
				adapter.TransactionFilter{UserID: userID, Search: tt.search},
				adapter.TransactionPagination{Page: 1, Limit: 20},
			)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Total != tt.wantTotal {
				t.Errorf("total = %d, want %d", result.Total, tt.wantTotal)
			}
		})
	}
}

func TestTransactionRepositoryPagination(t *testing.T) {
	repo := NewTransactionRepository(newTestDB(t))
	userID := uuid.New()

	for day := 1; day <= 5; day++ {
		seedTransaction(t, repo, userID, day, "Coffee", "4.00", entity.TransactionTypeExpense, entity.CategoryDining)
	}

	result, err := repo.FindByFilter(context.Background(),
		adapter.TransactionFilter{UserID: userID},
		adapter.TransactionPagination{Page: 2, Limit: 2},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 5 {
		t.Errorf("total = %d, want 5", result.Total)
	}
	if len(result.Transactions) != 2 {
		t.Errorf("page size = %d, want 2", len(result.Transactions))
	}
	if result.TotalPages != 3 {
		t.Errorf("total pages = %d, want 3", result.TotalPages)
	}

	// Limit zero disables pagination for aggregation loads.
	all, err := repo.FindByFilter(context.Background(),
		adapter.TransactionFilter{UserID: userID},
		adapter.TransactionPagination{Page: 1, Limit: 0},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all.Transactions) != 5 {
		t.Errorf("unpaginated load returned %d rows, want 5", len(all.Transactions))
	}
}

func TestTransactionRepositoryDeleteIsHard(t *testing.T) {
	repo := NewTransactionRepository(newTestDB(t))
	userID := uuid.New()

	tx := seedTransaction(t, repo, userID, 1, "To be removed", "10.00", entity.TransactionTypeExpense, entity.CategoryOther)

	if err := repo.Delete(context.Background(), tx.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := repo.FindByID(context.Background(), tx.ID); err == nil {
		t.Error("expected lookup of deleted transaction to fail")
	}

	remaining, err := repo.FindByUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("expected no remaining transactions, got %d", len(remaining))
	}
}

func TestTransactionRepositoryOrdering(t *testing.T) {
	repo := NewTransactionRepository(newTestDB(t))
	userID := uuid.New()

	seedTransaction(t, repo, userID, 1, "Oldest", "1.00", entity.TransactionTypeExpense, entity.CategoryOther)
	seedTransaction(t, repo, userID, 20, "Newest", "1.00", entity.TransactionTypeExpense, entity.CategoryOther)
	seedTransaction(t, repo, userID, 10, "Middle", "1.00", entity.TransactionTypeExpense, entity.CategoryOther)

	transactions, err := repo.FindByUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(transactions) != 3 {
		t.Fatalf("got %d transactions, want 3", len(transactions))
	}
	if transactions[0].Description != "Newest" || transactions[2].Description != "Oldest" {
		t.Errorf("unexpected order: %s, %s, %s",
			transactions[0].Description, transactions[1].Description, transactions[2].Description)
	}
}
