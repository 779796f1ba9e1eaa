package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise/backend/internal/domain/entity"
)

func txn(userID uuid.UUID, transactionType entity.TransactionType, category entity.Category, amount float64) *entity.Transaction {
	return entity.NewTransaction(
		userID,
		time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		"test",
		decimal.NewFromFloat(amount),
		transactionType,
		category,
		nil,
	)
}

func TestSumByType(t *testing.T) {
	userID := uuid.New()
	transactions := []*entity.Transaction{
		txn(userID, entity.TransactionTypeIncome, entity.CategorySalary, 5000),
		txn(userID, entity.TransactionTypeExpense, entity.CategoryRent, 1500),
		txn(userID, entity.TransactionTypeExpense, entity.CategoryGroceries, 350.75),
		txn(userID, entity.TransactionTypeIncome, entity.CategoryBonus, 200),
	}

	income := SumByType(transactions, entity.TransactionTypeIncome)
	if !income.Equal(decimal.NewFromInt(5200)) {
		t.Errorf("expected income 5200, got %s", income)
	}

	expenses := SumByType(transactions, entity.TransactionTypeExpense)
	if !expenses.Equal(decimal.NewFromFloat(1850.75)) {
		t.Errorf("expected expenses 1850.75, got %s", expenses)
	}

	balance := income.Sub(expenses)
	if !balance.Equal(decimal.NewFromFloat(3349.25)) {
		t.Errorf("expected balance 3349.25, got %s", balance)
	}
}

func TestSumByTypeEmpty(t *testing.T) {
	income := SumByType(nil, entity.TransactionTypeIncome)
	expenses := SumByType(nil, entity.TransactionTypeExpense)

	if !income.IsZero() || !expenses.IsZero() {
		t.Errorf("expected zero totals for empty set, got income %s expenses %s", income, expenses)
	}
	if !income.Sub(expenses).IsZero() {
		t.Error("expected zero balance for empty set")
	}
}

func TestSumExpensesByCategory(t *testing.T) {
	userID := uuid.New()
	transactions := []*entity.Transaction{
		txn(userID, entity.TransactionTypeExpense, entity.CategoryGroceries, 100),
		txn(userID, entity.TransactionTypeExpense, entity.CategoryGroceries, 50),
		txn(userID, entity.TransactionTypeExpense, entity.CategoryDining, 30),
		// Income must not appear in expense spending, even with an expense-looking amount.
		txn(userID, entity.TransactionTypeIncome, entity.CategorySalary, 5000),
	}

	spending := SumExpensesByCategory(transactions)
	if len(spending) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(spending))
	}

	byCategory := make(map[entity.Category]decimal.Decimal)
	for _, s := range spending {
		byCategory[s.Category] = s.Amount
	}
	if !byCategory[entity.CategoryGroceries].Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected Groceries 150, got %s", byCategory[entity.CategoryGroceries])
	}
	if !byCategory[entity.CategoryDining].Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected Dining 30, got %s", byCategory[entity.CategoryDining])
	}
	if _, ok := byCategory[entity.CategorySalary]; ok {
		t.Error("income category must not appear in expense spending")
	}
}

func TestComputeBudgetProgress(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		budget        int64
		spent         float64
		wantProgress  string
		wantRemaining string
	}{
		{"under budget", 1000, 250, "25", "750"},
		{"exactly on budget", 500, 500, "100", "0"},
		{"overspent exceeds hundred", 200, 300, "150", "-100"},
		{"zero budget yields zero progress", 0, 100, "0", "-100"},
		{"no spending", 400, 0, "0", "400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budgets := []*entity.Budget{
				entity.NewBudget(userID, entity.CategoryGroceries, decimal.NewFromInt(tt.budget)),
			}
			var spending []CategorySpending
			if tt.spent != 0 {
				spending = []CategorySpending{
					{Category: entity.CategoryGroceries, Amount: decimal.NewFromFloat(tt.spent)},
				}
			}

			progress := ComputeBudgetProgress(budgets, spending)
			if len(progress) != 1 {
				t.Fatalf("expected 1 entry, got %d", len(progress))
			}

			p := progress[0]
			if !p.Progress.Equal(decimal.RequireFromString(tt.wantProgress)) {
				t.Errorf("expected progress %s, got %s", tt.wantProgress, p.Progress)
			}
			if !p.Remaining.Equal(decimal.RequireFromString(tt.wantRemaining)) {
				t.Errorf("expected remaining %s, got %s", tt.wantRemaining, p.Remaining)
			}
		})
	}
}

func TestComputeBudgetProgressCoversBudgetsWithoutSpending(t *testing.T) {
	userID := uuid.New()
	budgets := []*entity.Budget{
		entity.NewBudget(userID, entity.CategoryRent, decimal.NewFromInt(1500)),
		entity.NewBudget(userID, entity.CategoryTravel, decimal.NewFromInt(300)),
	}
	spending := []CategorySpending{
		{Category: entity.CategoryRent, Amount: decimal.NewFromInt(1500)},
	}

	progress := ComputeBudgetProgress(budgets, spending)
	if len(progress) != 2 {
		t.Fatalf("expected an entry per budget, got %d", len(progress))
	}
	for _, p := range progress {
		if p.Category == entity.CategoryTravel {
			if !p.Spent.IsZero() {
				t.Errorf("expected zero spent for Travel, got %s", p.Spent)
			}
			if !p.Remaining.Equal(decimal.NewFromInt(300)) {
				t.Errorf("expected full remaining for Travel, got %s", p.Remaining)
			}
		}
	}
}
