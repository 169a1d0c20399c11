// repository/settlement_repository.go
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/paisabook/paisabook-backend/models"
	"github.com/paisabook/paisabook-backend/utils"
)

// SettlementRepository handles database operations for group settlements
type SettlementRepository struct {
	DB *sql.DB
}

// NewSettlementRepository creates a new SettlementRepository
func NewSettlementRepository(db *sql.DB) *SettlementRepository {
	return &SettlementRepository{DB: db}
}

// GetSettlements retrieves all settlements for a group, oldest first
func (r *SettlementRepository) GetSettlements(groupID string) ([]*models.GroupSettlement, error) {
	rows, err := r.DB.Query(
		`SELECT id, group_id, from_user_id, to_user_id, amount, status, supersedes, completed_at, created_at, updated_at
		 FROM group_settlements WHERE group_id = $1 ORDER BY created_at ASC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get settlements: %v", err)
	}
	defer rows.Close()

	var settlements []*models.GroupSettlement
	for rows.Next() {
		settlement, err := scanSettlement(rows)
		if err != nil {
			return nil, err
		}
		settlements = append(settlements, settlement)
	}

	return settlements, rows.Err()
}

// GetSettlementByID retrieves a settlement by its ID
func (r *SettlementRepository) GetSettlementByID(id string) (*models.GroupSettlement, error) {
	row := r.DB.QueryRow(
		`SELECT id, group_id, from_user_id, to_user_id, amount, status, supersedes, completed_at, created_at, updated_at
		 FROM group_settlements WHERE id = $1`,
		id,
	)

	settlement, err := scanSettlement(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.NewNotFoundError("Settlement")
		}
		return nil, err
	}
	return settlement, nil
}

// CreateSettlement persists a settlement record. Inserts are keyed on the
// settlement id; when a pending record with the same id already exists its
// amount is refreshed instead. Completed records are never touched, so a
// concurrent completion cannot be overwritten.
func (r *SettlementRepository) CreateSettlement(settlement *models.GroupSettlement) error {
	var supersedes sql.NullString
	if settlement.Supersedes != "" {
		supersedes = sql.NullString{String: settlement.Supersedes, Valid: true}
	}

	_, err := r.DB.Exec(
		`INSERT INTO group_settlements
		 (id, group_id, from_user_id, to_user_id, amount, status, supersedes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO UPDATE
		 SET amount = EXCLUDED.amount, updated_at = EXCLUDED.updated_at
		 WHERE group_settlements.status = 'pending'`,
		settlement.ID, settlement.GroupID, settlement.FromUserID, settlement.ToUserID,
		settlement.Amount, settlement.Status, supersedes, settlement.CreatedAt, settlement.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %v", err)
	}
	return nil
}

// DeleteSettlement removes a pending settlement record. Completed records are
// never deleted.
func (r *SettlementRepository) DeleteSettlement(id string) error {
	_, err := r.DB.Exec(
		"DELETE FROM group_settlements WHERE id = $1 AND status = $2",
		id, models.SettlementPending,
	)
	if err != nil {
		return fmt.Errorf("failed to delete settlement: %v", err)
	}
	return nil
}

// CompleteSettlement marks a pending settlement completed and, in the same
// transaction, posts the payer's ledger entry, records wallet history, and
// debits the payer's wallet. Returns the updated settlement and the wallet
// balance after the debit.
func (r *SettlementRepository) CompleteSettlement(settlement *models.GroupSettlement, wallet models.WalletType, notes string) (*models.GroupSettlement, float64, error) {
	now := time.Now().UnixMilli()

	tx, err := r.DB.Begin()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`UPDATE group_settlements SET status = $1, completed_at = $2, updated_at = $2
		 WHERE id = $3 AND status = $4`,
		models.SettlementCompleted, now, settlement.ID, models.SettlementPending,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to update settlement: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to check settlement update: %v", err)
	}
	if affected == 0 {
		return nil, 0, utils.NewConflictError("Settlement is not pending")
	}

	// Ledger entry for the payer
	_, err = tx.Exec(
		`INSERT INTO transactions
		 (id, user_id, date, amount, category, wallet, type, notes, is_settlement, settled, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, TRUE, $3, $3)`,
		utils.GenerateID(), settlement.FromUserID, now, settlement.Amount,
		utils.SettlementCategory, wallet, models.TransactionExpense, notes,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to insert settlement transaction: %v", err)
	}

	// Wallet history for the debit
	_, err = tx.Exec(
		`INSERT INTO wallet_history (id, user_id, wallet, amount, reason, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		utils.GenerateID(), settlement.FromUserID, wallet, -settlement.Amount,
		fmt.Sprintf("Group settlement to %s", settlement.ToUserID), now,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to insert wallet history: %v", err)
	}

	if err := ensureWalletTx(tx, settlement.FromUserID, wallet, now); err != nil {
		return nil, 0, err
	}

	var balance float64
	err = tx.QueryRow(
		`UPDATE wallets SET balance = balance - $1, updated_at = $2
		 WHERE id = $3 RETURNING balance`,
		settlement.Amount, now, walletID(settlement.FromUserID, wallet),
	).Scan(&balance)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to debit wallet: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("failed to commit settlement completion: %v", err)
	}

	completed := *settlement
	completed.Status = models.SettlementCompleted
	completed.CompletedAt = now
	completed.UpdatedAt = now
	return &completed, balance, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSettlement(row rowScanner) (*models.GroupSettlement, error) {
	var settlement models.GroupSettlement
	var supersedes sql.NullString
	var completedAt sql.NullInt64

	err := row.Scan(&settlement.ID, &settlement.GroupID, &settlement.FromUserID,
		&settlement.ToUserID, &settlement.Amount, &settlement.Status, &supersedes,
		&completedAt, &settlement.CreatedAt, &settlement.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan settlement: %v", err)
	}

	if supersedes.Valid {
		settlement.Supersedes = supersedes.String
	}
	if completedAt.Valid {
		settlement.CompletedAt = completedAt.Int64
	}
	return &settlement, nil
}
