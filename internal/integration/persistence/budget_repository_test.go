package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
)

func TestBudgetRepositorySaveBatchCreatesAndUpdates(t *testing.T) {
	repo := NewBudgetRepository(newTestDB(t))
	userID := uuid.New()
	ctx := context.Background()

	groceries := entity.NewBudget(userID, entity.CategoryGroceries, decimal.NewFromInt(500))
	rent := entity.NewBudget(userID, entity.CategoryRent, decimal.NewFromInt(1500))

	if err := repo.SaveBatch(ctx, []*entity.Budget{groceries, rent}, nil); err != nil {
		t.Fatalf("create batch failed: %v", err)
	}

	stored, err := repo.FindByUser(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("got %d budgets, want 2", len(stored))
	}

	groceries.Amount = decimal.NewFromInt(600)
	if err := repo.SaveBatch(ctx, nil, []*entity.Budget{groceries}); err != nil {
		t.Fatalf("update batch failed: %v", err)
	}

	stored, err = repo.FindByUser(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, b := range stored {
		if b.Category == entity.CategoryGroceries && !b.Amount.Equal(decimal.NewFromInt(600)) {
			t.Errorf("groceries amount = %s, want 600", b.Amount)
		}
		if b.Category == entity.CategoryRent && !b.Amount.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("rent amount = %s, want 1500", b.Amount)
		}
	}
}

func TestBudgetRepositorySaveBatchEmptyIsNoop(t *testing.T) {
	repo := NewBudgetRepository(newTestDB(t))
	userID := uuid.New()
	ctx := context.Background()

	if err := repo.SaveBatch(ctx, nil, nil); err != nil {
		t.Fatalf("empty batch must succeed, got: %v", err)
	}

	stored, err := repo.FindByUser(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored) != 0 {
		t.Errorf("expected no budgets, got %d", len(stored))
	}
}

func TestBudgetRepositoryFindByUserOrderedByCategory(t *testing.T) {
	repo := NewBudgetRepository(newTestDB(t))
	userID := uuid.New()
	ctx := context.Background()

	travel := entity.NewBudget(userID, entity.CategoryTravel, decimal.NewFromInt(300))
	dining := entity.NewBudget(userID, entity.CategoryDining, decimal.NewFromInt(200))

	if err := repo.SaveBatch(ctx, []*entity.Budget{travel, dining}, nil); err != nil {
		t.Fatalf("create batch failed: %v", err)
	}

	stored, err := repo.FindByUser(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("got %d budgets, want 2", len(stored))
	}
	if stored[0].Category != entity.CategoryDining {
		t.Errorf("first category = %s, want Dining", stored[0].Category)
	}
}

func TestBudgetRepositoryScopedToUser(t *testing.T) {
	repo := NewBudgetRepository(newTestDB(t))
	ctx := context.Background()

	first := uuid.New()
	second := uuid.New()

	if err := repo.SaveBatch(ctx, []*entity.Budget{
		entity.NewBudget(first, entity.CategoryGroceries, decimal.NewFromInt(100)),
	}, nil); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.FindByUser(ctx, second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored) != 0 {
		t.Errorf("expected no budgets for other user, got %d", len(stored))
	}
}
