// repository/wallet_repository.go
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/paisabook/paisabook-backend/models"
	"github.com/paisabook/paisabook-backend/utils"
)

// WalletRepository handles database operations for wallets and wallet history
type WalletRepository struct {
	DB *sql.DB
}

// NewWalletRepository creates a new WalletRepository
func NewWalletRepository(db *sql.DB) *WalletRepository {
	return &WalletRepository{DB: db}
}

func walletID(userID string, wallet models.WalletType) string {
	return fmt.Sprintf("%s_%s", userID, wallet)
}

func walletName(wallet models.WalletType) string {
	switch wallet {
	case models.WalletCash:
		return "Cash"
	case models.WalletGPay:
		return "GPay"
	default:
		return "Investment"
	}
}

func ensureWalletTx(tx *sql.Tx, userID string, wallet models.WalletType, now int64) error {
	_, err := tx.Exec(
		`INSERT INTO wallets (id, user_id, type, name, balance, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, 0, $5, $5)
		 ON CONFLICT (id) DO NOTHING`,
		walletID(userID, wallet), userID, wallet, walletName(wallet), now,
	)
	if err != nil {
		return fmt.Errorf("failed to ensure wallet: %v", err)
	}
	return nil
}

// GetOrCreateWallet returns the user's wallet of the given type, creating it
// with a zero balance when missing
func (r *WalletRepository) GetOrCreateWallet(userID string, wallet models.WalletType) (*models.Wallet, error) {
	now := time.Now().UnixMilli()
	_, err := r.DB.Exec(
		`INSERT INTO wallets (id, user_id, type, name, balance, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, 0, $5, $5)
		 ON CONFLICT (id) DO NOTHING`,
		walletID(userID, wallet), userID, wallet, walletName(wallet), now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure wallet: %v", err)
	}

	var w models.Wallet
	err = r.DB.QueryRow(
		"SELECT id, user_id, type, name, balance, created_at, updated_at FROM wallets WHERE id = $1",
		walletID(userID, wallet),
	).Scan(&w.ID, &w.UserID, &w.Type, &w.Name, &w.Balance, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %v", err)
	}
	return &w, nil
}

// GetWallets returns all three wallets for a user, creating missing ones
func (r *WalletRepository) GetWallets(userID string) (map[models.WalletType]*models.Wallet, error) {
	result := make(map[models.WalletType]*models.Wallet)
	for _, t := range []models.WalletType{models.WalletCash, models.WalletGPay, models.WalletInvestment} {
		wallet, err := r.GetOrCreateWallet(userID, t)
		if err != nil {
			return nil, err
		}
		result[t] = wallet
	}
	return result, nil
}

// AdjustBalance applies a delta to a wallet balance atomically. Positive
// deltas are recorded in wallet history.
func (r *WalletRepository) AdjustBalance(userID string, wallet models.WalletType, delta float64, reason string) error {
	if _, err := r.GetOrCreateWallet(userID, wallet); err != nil {
		return err
	}

	now := time.Now().UnixMilli()
	_, err := r.DB.Exec(
		"UPDATE wallets SET balance = balance + $1, updated_at = $2 WHERE id = $3",
		delta, now, walletID(userID, wallet),
	)
	if err != nil {
		return fmt.Errorf("failed to adjust wallet balance: %v", err)
	}

	if delta > 0 {
		if reason == "" {
			reason = "Manual addition"
		}
		_, err = r.DB.Exec(
			`INSERT INTO wallet_history (id, user_id, wallet, amount, reason, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $6)`,
			utils.GenerateID(), userID, wallet, delta, reason, now,
		)
		if err != nil {
			return fmt.Errorf("failed to insert wallet history: %v", err)
		}
	}

	return nil
}

// ListWalletHistory retrieves wallet history for a user, newest first.
// Pass an empty wallet type to list history across all wallets.
func (r *WalletRepository) ListWalletHistory(userID string, wallet models.WalletType) ([]*models.WalletHistory, error) {
	query := `SELECT id, user_id, wallet, amount, reason, created_at, updated_at
	          FROM wallet_history WHERE user_id = $1 ORDER BY created_at DESC`
	args := []interface{}{userID}
	if wallet != "" {
		query = `SELECT id, user_id, wallet, amount, reason, created_at, updated_at
		         FROM wallet_history WHERE user_id = $1 AND wallet = $2 ORDER BY created_at DESC`
		args = append(args, wallet)
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet history: %v", err)
	}
	defer rows.Close()

	var history []*models.WalletHistory
	for rows.Next() {
		var h models.WalletHistory
		if err := rows.Scan(&h.ID, &h.UserID, &h.Wallet, &h.Amount, &h.Reason, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan wallet history: %v", err)
		}
		history = append(history, &h)
	}

	return history, rows.Err()
}
