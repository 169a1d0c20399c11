// repository/transaction_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/paisabook/paisabook-backend/models"
	"github.com/paisabook/paisabook-backend/utils"
)

// TransactionRepository handles database operations for the personal ledger
type TransactionRepository struct {
	DB *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

// StoreTransaction saves a transaction
func (r *TransactionRepository) StoreTransaction(t *models.Transaction) error {
	_, err := r.DB.Exec(
		`INSERT INTO transactions
		 (id, user_id, date, amount, category, item, wallet, type, notes,
		  is_settlement, settled, settled_wallet, from_wallet, to_wallet, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		t.ID, t.UserID, t.Date, t.Amount, t.Category, t.Item, t.Wallet, t.Type, t.Notes,
		t.IsSettlement, t.Settled, nullWallet(t.SettledWallet), nullWallet(t.FromWallet),
		nullWallet(t.ToWallet), t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %v", err)
	}
	return nil
}

// GetTransaction retrieves a transaction by ID for a user
func (r *TransactionRepository) GetTransaction(userID, txID string) (*models.Transaction, error) {
	row := r.DB.QueryRow(
		`SELECT id, user_id, date, amount, category, item, wallet, type, notes,
		        is_settlement, settled, settled_wallet, from_wallet, to_wallet, created_at, updated_at
		 FROM transactions WHERE id = $1 AND user_id = $2`,
		txID, userID,
	)

	t, err := scanTransaction(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.NewNotFoundError("Transaction")
		}
		return nil, err
	}
	return t, nil
}

// ListTransactions retrieves all transactions for a user, newest first
func (r *TransactionRepository) ListTransactions(userID string) ([]*models.Transaction, error) {
	return r.list(
		`SELECT id, user_id, date, amount, category, item, wallet, type, notes,
		        is_settlement, settled, settled_wallet, from_wallet, to_wallet, created_at, updated_at
		 FROM transactions WHERE user_id = $1 ORDER BY date DESC`,
		userID,
	)
}

// ListRecentTransactions retrieves the newest transactions for a user
func (r *TransactionRepository) ListRecentTransactions(userID string, take int) ([]*models.Transaction, error) {
	return r.list(
		`SELECT id, user_id, date, amount, category, item, wallet, type, notes,
		        is_settlement, settled, settled_wallet, from_wallet, to_wallet, created_at, updated_at
		 FROM transactions WHERE user_id = $1 ORDER BY date DESC LIMIT $2`,
		userID, take,
	)
}

// UpdateTransaction persists the full updated transaction row
func (r *TransactionRepository) UpdateTransaction(t *models.Transaction) error {
	_, err := r.DB.Exec(
		`UPDATE transactions SET date = $1, amount = $2, category = $3, item = $4, wallet = $5,
		        type = $6, notes = $7, is_settlement = $8, settled = $9, settled_wallet = $10,
		        from_wallet = $11, to_wallet = $12, updated_at = $13
		 WHERE id = $14 AND user_id = $15`,
		t.Date, t.Amount, t.Category, t.Item, t.Wallet, t.Type, t.Notes,
		t.IsSettlement, t.Settled, nullWallet(t.SettledWallet), nullWallet(t.FromWallet),
		nullWallet(t.ToWallet), t.UpdatedAt, t.ID, t.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %v", err)
	}
	return nil
}

// DeleteTransaction removes a transaction
func (r *TransactionRepository) DeleteTransaction(userID, txID string) error {
	_, err := r.DB.Exec("DELETE FROM transactions WHERE id = $1 AND user_id = $2", txID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %v", err)
	}
	return nil
}

// AggregateMonthlySpend sums expense amounts per category within [start, end)
func (r *TransactionRepository) AggregateMonthlySpend(userID string, start, end int64) (map[string]float64, error) {
	rows, err := r.DB.Query(
		`SELECT category, SUM(amount) FROM transactions
		 WHERE user_id = $1 AND type = $2 AND date >= $3 AND date < $4
		 GROUP BY category`,
		userID, models.TransactionExpense, start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate spend: %v", err)
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var category string
		var total float64
		if err := rows.Scan(&category, &total); err != nil {
			return nil, fmt.Errorf("failed to scan spend total: %v", err)
		}
		totals[category] = total
	}

	return totals, rows.Err()
}

func (r *TransactionRepository) list(query string, args ...interface{}) ([]*models.Transaction, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %v", err)
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	return transactions, rows.Err()
}

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	var t models.Transaction
	var settledWallet, fromWallet, toWallet sql.NullString

	err := row.Scan(&t.ID, &t.UserID, &t.Date, &t.Amount, &t.Category, &t.Item, &t.Wallet,
		&t.Type, &t.Notes, &t.IsSettlement, &t.Settled, &settledWallet, &fromWallet,
		&toWallet, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan transaction: %v", err)
	}

	if settledWallet.Valid {
		t.SettledWallet = models.WalletType(settledWallet.String)
	}
	if fromWallet.Valid {
		t.FromWallet = models.WalletType(fromWallet.String)
	}
	if toWallet.Valid {
		t.ToWallet = models.WalletType(toWallet.String)
	}
	return &t, nil
}

func nullWallet(wallet models.WalletType) sql.NullString {
	if wallet == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: string(wallet), Valid: true}
}
