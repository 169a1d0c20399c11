// repository/budget_repository.go
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/paisabook/paisabook-backend/models"
)

// BudgetRepository handles database operations for budgets
type BudgetRepository struct {
	DB *sql.DB
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{DB: db}
}

func budgetID(userID, month, category string) string {
	return fmt.Sprintf("%s_%s_%s", userID, month, category)
}

// UpsertBudget creates or updates a budget for (user, month, category).
// Spent is preserved on update.
func (r *BudgetRepository) UpsertBudget(userID, month, category string, limit float64) error {
	now := time.Now().UnixMilli()
	_, err := r.DB.Exec(
		`INSERT INTO budgets (id, user_id, month, category, spend_limit, spent, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, 0, $6, $6)
		 ON CONFLICT (id) DO UPDATE SET spend_limit = EXCLUDED.spend_limit, updated_at = EXCLUDED.updated_at`,
		budgetID(userID, month, category), userID, month, category, limit, now,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert budget: %v", err)
	}
	return nil
}

// ListBudgets retrieves all budgets for a user and month
func (r *BudgetRepository) ListBudgets(userID, month string) ([]*models.Budget, error) {
	rows, err := r.DB.Query(
		`SELECT id, user_id, month, category, spend_limit, spent, created_at, updated_at
		 FROM budgets WHERE user_id = $1 AND month = $2 ORDER BY category`,
		userID, month,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get budgets: %v", err)
	}
	defer rows.Close()

	var budgets []*models.Budget
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Month, &b.Category, &b.Limit, &b.Spent,
			&b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %v", err)
		}
		budgets = append(budgets, &b)
	}

	return budgets, rows.Err()
}

// UpdateSpent sets the spent amount on a budget
func (r *BudgetRepository) UpdateSpent(userID, month, category string, spent float64) error {
	_, err := r.DB.Exec(
		"UPDATE budgets SET spent = $1, updated_at = $2 WHERE id = $3",
		spent, time.Now().UnixMilli(), budgetID(userID, month, category),
	)
	if err != nil {
		return fmt.Errorf("failed to update budget spent: %v", err)
	}
	return nil
}

// DeleteBudget removes a budget
func (r *BudgetRepository) DeleteBudget(userID, month, category string) error {
	_, err := r.DB.Exec("DELETE FROM budgets WHERE id = $1", budgetID(userID, month, category))
	if err != nil {
		return fmt.Errorf("failed to delete budget: %v", err)
	}
	return nil
}
