// repository/group_expense_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/paisabook/paisabook-backend/models"
)

// GroupExpenseRepository handles database operations for group expenses
type GroupExpenseRepository struct {
	DB *sql.DB
}

// NewGroupExpenseRepository creates a new GroupExpenseRepository
func NewGroupExpenseRepository(db *sql.DB) *GroupExpenseRepository {
	return &GroupExpenseRepository{DB: db}
}

// StoreGroupExpense saves an expense and its splits in one transaction
func (r *GroupExpenseRepository) StoreGroupExpense(expense *models.GroupExpense) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO group_expenses
		 (id, group_id, paid_by, amount, description, category, split_type, date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		expense.ID, expense.GroupID, expense.PaidBy, expense.Amount, expense.Description,
		expense.Category, expense.SplitType, expense.Date, expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group expense: %v", err)
	}

	for _, split := range expense.SplitDetails {
		var settledAt sql.NullInt64
		var settledBy sql.NullString
		if split.SettledAt != 0 {
			settledAt = sql.NullInt64{Int64: split.SettledAt, Valid: true}
		}
		if split.SettledBy != "" {
			settledBy = sql.NullString{String: split.SettledBy, Valid: true}
		}

		_, err = tx.Exec(
			`INSERT INTO group_expense_splits (expense_id, user_id, amount, settled, settled_at, settled_by)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			expense.ID, split.UserID, split.Amount, split.Settled, settledAt, settledBy,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense split: %v", err)
		}
	}

	return tx.Commit()
}

// GetGroupExpenses retrieves all expenses for a group, newest first
func (r *GroupExpenseRepository) GetGroupExpenses(groupID string) ([]*models.GroupExpense, error) {
	rows, err := r.DB.Query(
		`SELECT id, group_id, paid_by, amount, description, category, split_type, date, created_at, updated_at
		 FROM group_expenses WHERE group_id = $1 ORDER BY date DESC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get group expenses: %v", err)
	}
	defer rows.Close()

	var expenses []*models.GroupExpense
	for rows.Next() {
		var expense models.GroupExpense
		if err := rows.Scan(&expense.ID, &expense.GroupID, &expense.PaidBy, &expense.Amount,
			&expense.Description, &expense.Category, &expense.SplitType, &expense.Date,
			&expense.CreatedAt, &expense.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group expense: %v", err)
		}
		expenses = append(expenses, &expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read group expenses: %v", err)
	}

	for _, expense := range expenses {
		if err := r.loadSplits(expense); err != nil {
			return nil, err
		}
	}

	return expenses, nil
}

// MarkSplitSettled acknowledges one member's share of an expense
func (r *GroupExpenseRepository) MarkSplitSettled(expenseID, userID, settledBy string, settledAt int64) error {
	result, err := r.DB.Exec(
		`UPDATE group_expense_splits SET settled = TRUE, settled_at = $1, settled_by = $2
		 WHERE expense_id = $3 AND user_id = $4`,
		settledAt, settledBy, expenseID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark split settled: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check split update: %v", err)
	}
	if affected == 0 {
		return fmt.Errorf("split not found")
	}

	return nil
}

func (r *GroupExpenseRepository) loadSplits(expense *models.GroupExpense) error {
	rows, err := r.DB.Query(
		`SELECT user_id, amount, settled, settled_at, settled_by
		 FROM group_expense_splits WHERE expense_id = $1`,
		expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get expense splits: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var split models.GroupExpenseSplit
		var settledAt sql.NullInt64
		var settledBy sql.NullString
		if err := rows.Scan(&split.UserID, &split.Amount, &split.Settled, &settledAt, &settledBy); err != nil {
			return fmt.Errorf("failed to scan expense split: %v", err)
		}
		if settledAt.Valid {
			split.SettledAt = settledAt.Int64
		}
		if settledBy.Valid {
			split.SettledBy = settledBy.String
		}
		expense.SplitDetails = append(expense.SplitDetails, split)
	}

	return rows.Err()
}
