package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
	domainerror "github.com/pennywise/backend/internal/domain/error"
)

type mockBudgetRepository struct {
	budgets      map[uuid.UUID]map[entity.Category]*entity.Budget
	batchCalls   int
	lastCreates  []*entity.Budget
	lastUpdates  []*entity.Budget
	saveBatchErr error
}

func newMockBudgetRepository() *mockBudgetRepository {
	return &mockBudgetRepository{
		budgets: make(map[uuid.UUID]map[entity.Category]*entity.Budget),
	}
}

func (m *mockBudgetRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	var result []*entity.Budget
	for _, b := range m.budgets[userID] {
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

func (m *mockBudgetRepository) SaveBatch(_ context.Context, creates, updates []*entity.Budget) error {
	if m.saveBatchErr != nil {
		return m.saveBatchErr
	}
	m.batchCalls++
	m.lastCreates = creates
	m.lastUpdates = updates
	for _, b := range append(creates, updates...) {
		if m.budgets[b.UserID] == nil {
			m.budgets[b.UserID] = make(map[entity.Category]*entity.Budget)
		}
		copied := *b
		m.budgets[b.UserID][b.Category] = &copied
	}
	return nil
}

func (m *mockBudgetRepository) seed(userID uuid.UUID, category entity.Category, amount int64) {
	if m.budgets[userID] == nil {
		m.budgets[userID] = make(map[entity.Category]*entity.Budget)
	}
	b := entity.NewBudget(userID, category, decimal.NewFromInt(amount))
	m.budgets[userID][category] = b
}

func TestSaveBudgetsDiff(t *testing.T) {
	userID := uuid.New()

	t.Run("mixed insert update and unchanged", func(t *testing.T) {
		repo := newMockBudgetRepository()
		repo.seed(userID, entity.CategoryRent, 1500)
		repo.seed(userID, entity.CategoryGroceries, 400)

		uc := NewSaveBudgetsUseCase(repo)
		output, err := uc.Execute(context.Background(), SaveBudgetsInput{
			UserID: userID,
			Items: []BudgetItem{
				{Category: entity.CategoryRent, Amount: decimal.NewFromInt(1500)},      // unchanged
				{Category: entity.CategoryGroceries, Amount: decimal.NewFromInt(450)},  // changed
				{Category: entity.CategoryDining, Amount: decimal.NewFromInt(200)},     // new
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Created != 1 {
			t.Errorf("expected 1 create, got %d", output.Created)
		}
		if output.Updated != 1 {
			t.Errorf("expected 1 update, got %d", output.Updated)
		}
		if len(repo.lastCreates) != 1 || repo.lastCreates[0].Category != entity.CategoryDining {
			t.Errorf("expected single create for Dining, got %v", repo.lastCreates)
		}
		if len(repo.lastUpdates) != 1 || repo.lastUpdates[0].Category != entity.CategoryGroceries {
			t.Errorf("expected single update for Groceries, got %v", repo.lastUpdates)
		}

		// The unchanged Rent budget must not appear in either write set.
		for _, b := range append(repo.lastCreates, repo.lastUpdates...) {
			if b.Category == entity.CategoryRent {
				t.Error("unchanged budget was written")
			}
		}
	})

	t.Run("all unchanged means no batch call", func(t *testing.T) {
		repo := newMockBudgetRepository()
		repo.seed(userID, entity.CategoryRent, 1500)

		uc := NewSaveBudgetsUseCase(repo)
		_, err := uc.Execute(context.Background(), SaveBudgetsInput{
			UserID: userID,
			Items:  []BudgetItem{{Category: entity.CategoryRent, Amount: decimal.NewFromInt(1500)}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.batchCalls != 0 {
			t.Errorf("expected no batch write, got %d calls", repo.batchCalls)
		}
	})

	t.Run("omitted category is not deleted", func(t *testing.T) {
		repo := newMockBudgetRepository()
		repo.seed(userID, entity.CategoryRent, 1500)
		repo.seed(userID, entity.CategoryTravel, 300)

		uc := NewSaveBudgetsUseCase(repo)
		_, err := uc.Execute(context.Background(), SaveBudgetsInput{
			UserID: userID,
			Items:  []BudgetItem{{Category: entity.CategoryRent, Amount: decimal.NewFromInt(1600)}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := repo.budgets[userID][entity.CategoryTravel]; !ok {
			t.Error("omitted Travel budget was deleted")
		}
	})

	t.Run("zero amount is a valid ceiling", func(t *testing.T) {
		repo := newMockBudgetRepository()
		uc := NewSaveBudgetsUseCase(repo)
		output, err := uc.Execute(context.Background(), SaveBudgetsInput{
			UserID: userID,
			Items:  []BudgetItem{{Category: entity.CategoryShopping, Amount: decimal.Zero}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Created != 1 {
			t.Errorf("expected 1 create, got %d", output.Created)
		}
	})
}

func TestSaveBudgetsValidation(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		items   []BudgetItem
		wantErr error
	}{
		{
			name:    "unknown category",
			items:   []BudgetItem{{Category: entity.Category("Crypto"), Amount: decimal.NewFromInt(100)}},
			wantErr: domainerror.ErrInvalidBudgetCategory,
		},
		{
			name:    "negative amount",
			items:   []BudgetItem{{Category: entity.CategoryRent, Amount: decimal.NewFromInt(-50)}},
			wantErr: domainerror.ErrNegativeBudgetAmount,
		},
		{
			name: "duplicate category",
			items: []BudgetItem{
				{Category: entity.CategoryRent, Amount: decimal.NewFromInt(100)},
				{Category: entity.CategoryRent, Amount: decimal.NewFromInt(200)},
			},
			wantErr: domainerror.ErrDuplicateBudgetCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockBudgetRepository()
			uc := NewSaveBudgetsUseCase(repo)

			_, err := uc.Execute(context.Background(), SaveBudgetsInput{UserID: userID, Items: tt.items})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
			if repo.batchCalls != 0 {
				t.Error("validation failure must not reach the store")
			}
		})
	}
}
