package transaction

import (
	"context"
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

type mockTransactionRepository struct {
	created      []*entity.Transaction
	transactions map[uuid.UUID]*entity.Transaction
	createErr    error
}

func newMockTransactionRepository() *mockTransactionRepository {
	return &mockTransactionRepository{
		transactions: make(map[uuid.UUID]*entity.Transaction),
	}
}

func (m *mockTransactionRepository) Create(_ context.Context, t *entity.Transaction) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, t)
	m.transactions[t.ID] = t
	return nil
}

func (m *mockTransactionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	t, ok := m.transactions[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return t, nil
}

func (m *mockTransactionRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for _, t := range m.transactions {
		if t.UserID == userID {
			result = append(result, t)
		}
	}
	return result, nil
}

func (m *mockTransactionRepository) FindByFilter(_ context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*adapter.TransactionListResult, error) {
	var transactions []*entity.Transaction
	for _, t := range m.transactions {
		if t.UserID != filter.UserID {
			continue
		}
		if filter.Type != nil && t.Type != *filter.Type {
			continue
		}
		transactions = append(transactions, t)
	}
	return &adapter.TransactionListResult{
		Transactions: transactions,
		Total:        int64(len(transactions)),
		Page:         pagination.Page,
		Limit:        pagination.Limit,
		TotalPages:   1,
	}, nil
}

func (m *mockTransactionRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.transactions, id)
	return nil
}

func TestCreateTransaction(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   CreateTransactionInput
		wantErr error
	}{
		{
			name: "valid expense",
			input: CreateTransactionInput{
				UserID:      userID,
				Date:        date,
				Description: "Weekly groceries",
				Amount:      decimal.NewFromFloat(54.20),
				Type:        entity.TransactionTypeExpense,
				Category:    entity.CategoryGroceries,
			},
		},
		{
			name: "valid income",
			input: CreateTransactionInput{
				UserID:      userID,
				Date:        date,
				Description: "March salary",
				Amount:      decimal.NewFromInt(5000),
				Type:        entity.TransactionTypeIncome,
				Category:    entity.CategorySalary,
			},
		},
		{
			name: "zero amount is allowed",
			input: CreateTransactionInput{
				UserID:      userID,
				Date:        date,
				Description: "Free sample",
				Amount:      decimal.Zero,
				Type:        entity.TransactionTypeExpense,
				Category:    entity.CategoryOther,
			},
		},
		{
			name: "negative amount rejected",
			input: CreateTransactionInput{
				UserID:      userID,
				Date:        date,
				Description: "Refund",
				Amount:      decimal.NewFromInt(-10),
				Type:        entity.TransactionTypeExpense,
				Category:    entity.CategoryShopping,
			},
			wantErr: domainerror.ErrNegativeTransactionAmount,
		},
		{
			name: "unknown category rejected",
			input: CreateTransactionInput{
				UserID:      userID,
				Date:        date,
				Description: "Mystery",
				Amount:      decimal.NewFromInt(10),
				Type:        entity.TransactionTypeExpense,
				Category:    entity.Category("Gambling"),
			},
			wantErr: domainerror.ErrInvalidCategory,
		},
		{
			name: "empty description rejected",
			input: CreateTransactionInput{
				UserID:      userID,
				Date:        date,
				Description: "   ",
				Amount:      decimal.NewFromInt(10),
				Type:        entity.TransactionTypeExpense,
				Category:    entity.CategoryDining,
			},
			wantErr: domainerror.ErrEmptyDescription,
		},
		{
			name: "description too long rejected",
			input: CreateTransactionInput{
				UserID:      userID,
				Date:        date,
				Description: strings.Repeat("a", 256),
				Amount:      decimal.NewFromInt(10),
				Type:        entity.TransactionTypeExpense,
				Category:    entity.CategoryDining,
			},
			wantErr: domainerror.ErrDescriptionTooLong,
		},
		{
			name: "invalid type rejected",
			input: CreateTransactionInput{
				UserID:      userID,
				Date:        date,
				Description: "Transfer",
				Amount:      decimal.NewFromInt(10),
				Type:        entity.TransactionType("transfer"),
				Category:    entity.CategoryOther,
			},
			wantErr: domainerror.ErrInvalidTransactionType,
		},
		{
			name: "zero date rejected",
			input: CreateTransactionInput{
				UserID:      userID,
				Description: "No date",
				Amount:      decimal.NewFromInt(10),
				Type:        entity.TransactionTypeExpense,
				Category:    entity.CategoryOther,
			},
			wantErr: domainerror.ErrInvalidTransactionDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockTransactionRepository()
			uc := NewCreateTransactionUseCase(repo)

			output, err := uc.Execute(context.Background(), tt.input)

			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tt.wantErr)
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				if len(repo.created) != 0 {
					t.Errorf("expected no transaction created, got %d", len(repo.created))
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output.Transaction.ID == uuid.Nil {
				t.Error("expected transaction ID to be assigned")
			}
			if output.Transaction.UserID != tt.input.UserID {
				t.Errorf("expected user ID %v, got %v", tt.input.UserID, output.Transaction.UserID)
			}
			if len(repo.created) != 1 {
				t.Errorf("expected 1 transaction created, got %d", len(repo.created))
			}
		})
	}
}

func TestDeleteTransactionOwnership(t *testing.T) {
	repo := newMockTransactionRepository()
	owner := uuid.New()
	stranger := uuid.New()

	txn := entity.NewTransaction(owner, time.Now().UTC(), "Dinner", decimal.NewFromInt(40), entity.TransactionTypeExpense, entity.CategoryDining, nil)
	if err := repo.Create(context.Background(), txn); err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}

	uc := NewDeleteTransactionUseCase(repo)

	t.Run("other user cannot delete", func(t *testing.T) {
		err := uc.Execute(context.Background(), DeleteTransactionInput{TransactionID: txn.ID, UserID: stranger})
		if !errors.Is(err, domainerror.ErrNotAuthorizedToModifyTransaction) {
			t.Errorf("expected authorization error, got %v", err)
		}
		if _, err := repo.FindByID(context.Background(), txn.ID); err != nil {
			t.Error("transaction should still exist after unauthorized delete")
		}
	})

	t.Run("owner can delete", func(t *testing.T) {
		if err := uc.Execute(context.Background(), DeleteTransactionInput{TransactionID: txn.ID, UserID: owner}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.FindByID(context.Background(), txn.ID); err == nil {
			t.Error("transaction should be gone after delete")
		}
	})

	t.Run("missing transaction", func(t *testing.T) {
		err := uc.Execute(context.Background(), DeleteTransactionInput{TransactionID: uuid.New(), UserID: owner})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}

func TestListTransactionsPaginationDefaults(t *testing.T) {
	repo := newMockTransactionRepository()
	uc := NewListTransactionsUseCase(repo)
	userID := uuid.New()

	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults applied", 0, 0, 1, 20},
		{"negative values normalized", -3, -1, 1, 20},
		{"limit capped", 1, 500, 1, 100},
		{"explicit values kept", 2, 50, 2, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := uc.Execute(context.Background(), ListTransactionsInput{
				Filter:     adapter.TransactionFilter{UserID: userID},
				Pagination: adapter.TransactionPagination{Page: tt.page, Limit: tt.limit},
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output.Result.Page != tt.wantPage {
				t.Errorf("expected page %d, got %d", tt.wantPage, output.Result.Page)
			}
			if output.Result.Limit != tt.wantLimit {
				t.Errorf("expected limit %d, got %d", tt.wantLimit, output.Result.Limit)
			}
		})
	}
}
