// Package entity defines the core business entities for the domain layer.
package entity

// Category is one label from the fixed enumeration classifying a
// transaction's purpose. The set is closed: transactions and budgets must
// carry one of these labels, and the extraction gateway rejects model
// output that falls outside it.
type Category string

// Expense categories.
const (
	CategoryGroceries      Category = "Groceries"
	CategoryDining         Category = "Dining"
	CategoryShopping       Category = "Shopping"
	CategoryEntertainment  Category = "Entertainment"
	CategoryUtilities      Category = "Utilities"
	CategoryRent           Category = "Rent"
	CategoryMortgage       Category = "Mortgage"
	CategoryTransportation Category = "Transportation"
	CategoryHealthcare     Category = "Healthcare"
	CategoryTravel         Category = "Travel"
	CategoryOther          Category = "Other"
)

// Income categories.
const (
	CategorySalary     Category = "Salary"
	CategoryBonus      Category = "Bonus"
	CategoryInvestment Category = "Investment"
	CategoryWithdrawal Category = "Withdrawal"
)

// AllCategories lists every valid category label, expense labels first.
var AllCategories = []Category{
	CategoryGroceries,
	CategoryDining,
	CategoryShopping,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryRent,
	CategoryMortgage,
	CategoryTransportation,
	CategoryHealthcare,
	CategoryTravel,
	CategoryOther,
	CategorySalary,
	CategoryBonus,
	CategoryInvestment,
	CategoryWithdrawal,
}

// ExpenseCategories lists the categories that classify expenses.
var ExpenseCategories = AllCategories[:11]

// IncomeCategories lists the categories that classify income.
var IncomeCategories = AllCategories[11:]

var categorySet = func() map[Category]struct{} {
	set := make(map[Category]struct{}, len(AllCategories))
	for _, c := range AllCategories {
		set[c] = struct{}{}
	}
	return set
}()

// IsValid reports whether c belongs to the closed category enumeration.
func (c Category) IsValid() bool {
	_, ok := categorySet[c]
	return ok
}

// String returns the category label.
func (c Category) String() string {
	return string(c)
}
