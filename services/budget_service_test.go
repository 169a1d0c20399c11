package services

import (
	"testing"
	"time"

	"github.com/paisabook/paisabook-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBudgetStore keeps budgets keyed by user/month/category
type fakeBudgetStore struct {
	budgets map[string]*models.Budget
}

func newFakeBudgetStore() *fakeBudgetStore {
	return &fakeBudgetStore{budgets: make(map[string]*models.Budget)}
}

func budgetKey(userID, month, category string) string {
	return userID + "_" + month + "_" + category
}

func (f *fakeBudgetStore) UpsertBudget(userID, month, category string, limit float64) error {
	key := budgetKey(userID, month, category)
	if existing, ok := f.budgets[key]; ok {
		existing.Limit = limit
		return nil
	}
	f.budgets[key] = &models.Budget{
		ID: key, UserID: userID, Month: month, Category: category, Limit: limit,
	}
	return nil
}

func (f *fakeBudgetStore) ListBudgets(userID, month string) ([]*models.Budget, error) {
	var result []*models.Budget
	for _, budget := range f.budgets {
		if budget.UserID == userID && budget.Month == month {
			result = append(result, budget)
		}
	}
	return result, nil
}

func (f *fakeBudgetStore) UpdateSpent(userID, month, category string, spent float64) error {
	if budget, ok := f.budgets[budgetKey(userID, month, category)]; ok {
		budget.Spent = spent
	}
	return nil
}

func (f *fakeBudgetStore) DeleteBudget(userID, month, category string) error {
	delete(f.budgets, budgetKey(userID, month, category))
	return nil
}

func TestUpsertBudget_ValidatesMonthFormat(t *testing.T) {
	service := NewBudgetService(newFakeBudgetStore(), newFakeTransactionStore())

	err := service.UpsertBudget(&models.UpsertBudgetRequest{
		UserID: "u1", Month: "August 2026", Category: "Food", Limit: 5000,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM")

	err = service.UpsertBudget(&models.UpsertBudgetRequest{
		UserID: "u1", Month: "2026-08", Category: "Food", Limit: 5000,
	})
	require.NoError(t, err)
}

func TestListBudgets_SyncsSpentFromLedger(t *testing.T) {
	budgets := newFakeBudgetStore()
	transactions := newFakeTransactionStore()
	service := NewBudgetService(budgets, transactions)

	require.NoError(t, service.UpsertBudget(&models.UpsertBudgetRequest{
		UserID: "u1", Month: "2026-08", Category: "Food", Limit: 5000,
	}))

	august := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC).UnixMilli()
	transactions.StoreTransaction(&models.Transaction{
		ID: "t1", UserID: "u1", Date: august, Amount: 1200,
		Category: "Food", Type: models.TransactionExpense,
	})
	transactions.StoreTransaction(&models.Transaction{
		ID: "t2", UserID: "u1", Date: august, Amount: 300,
		Category: "Food", Type: models.TransactionExpense,
	})
	// Income and other months are excluded from spend
	transactions.StoreTransaction(&models.Transaction{
		ID: "t3", UserID: "u1", Date: august, Amount: 9999,
		Category: "Food", Type: models.TransactionIncome,
	})

	result, err := service.ListBudgets("u1", "2026-08")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 1500.0, result[0].Spent)
}

func TestListBudgets_CarriesForwardPreviousMonth(t *testing.T) {
	budgets := newFakeBudgetStore()
	service := NewBudgetService(budgets, newFakeTransactionStore())

	require.NoError(t, service.UpsertBudget(&models.UpsertBudgetRequest{
		UserID: "u1", Month: "2026-07", Category: "Food", Limit: 5000,
	}))
	require.NoError(t, service.UpsertBudget(&models.UpsertBudgetRequest{
		UserID: "u1", Month: "2026-07", Category: "Travel", Limit: 2000,
	}))

	result, err := service.ListBudgets("u1", "2026-08")
	require.NoError(t, err)
	assert.Len(t, result, 2, "empty month inherits the previous month's budgets")

	limits := make(map[string]float64)
	for _, budget := range result {
		limits[budget.Category] = budget.Limit
		assert.Equal(t, "2026-08", budget.Month)
	}
	assert.Equal(t, 5000.0, limits["Food"])
	assert.Equal(t, 2000.0, limits["Travel"])
}
