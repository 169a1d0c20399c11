package services

import (
	"time"

	"github.com/paisabook/paisabook-backend/models"
	"github.com/paisabook/paisabook-backend/utils"
)

// TransactionService manages the personal ledger and its wallet effects
type TransactionService struct {
	transactions TransactionStore
	wallets      WalletStore
}

// NewTransactionService creates a new transaction service
func NewTransactionService(transactions TransactionStore, wallets WalletStore) *TransactionService {
	return &TransactionService{transactions: transactions, wallets: wallets}
}

// walletEffect returns the signed balance delta a transaction applies to its
// wallet. Transfers move money via their own path and have no effect here.
func walletEffect(t *models.Transaction) float64 {
	switch t.Type {
	case models.TransactionExpense:
		return -t.Amount
	case models.TransactionIncome:
		return t.Amount
	}
	return 0
}

// CreateTransaction records a ledger entry and applies its wallet effect
func (s *TransactionService) CreateTransaction(req *models.CreateTransactionRequest) (*models.Transaction, error) {
	if err := utils.ValidateWalletType(string(req.Wallet)); err != nil {
		return nil, err
	}
	if req.Type != models.TransactionExpense && req.Type != models.TransactionIncome {
		return nil, utils.NewValidationError("type must be expense or income")
	}

	now := time.Now().UnixMilli()
	date := req.Date
	if date == 0 {
		date = now
	}

	t := &models.Transaction{
		ID:           utils.GenerateID(),
		UserID:       req.UserID,
		Date:         date,
		Amount:       utils.Round(req.Amount),
		Category:     req.Category,
		Item:         req.Item,
		Wallet:       req.Wallet,
		Type:         req.Type,
		Notes:        req.Notes,
		IsSettlement: req.IsSettlement,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.transactions.StoreTransaction(t); err != nil {
		return nil, err
	}

	if effect := walletEffect(t); effect != 0 {
		reason := "Expense: " + t.Category
		if t.Type == models.TransactionIncome {
			reason = "Income: " + t.Category
		}
		if err := s.wallets.AdjustBalance(t.UserID, t.Wallet, effect, reason); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// UpdateTransaction applies field updates to a ledger entry, reversing the
// old wallet effect and applying the new one. Transfers keep their wallet
// pair and type; only date, amount, and notes can change, with both wallet
// movements re-applied at the new amount.
func (s *TransactionService) UpdateTransaction(req *models.UpdateTransactionRequest) (*models.Transaction, error) {
	t, err := s.transactions.GetTransaction(req.UserID, req.TransactionID)
	if err != nil {
		return nil, err
	}
	if t.Type == models.TransactionTransfer {
		return s.updateTransfer(t, req)
	}

	oldEffect := walletEffect(t)
	oldWallet := t.Wallet

	if req.Date != nil {
		t.Date = *req.Date
	}
	if req.Amount != nil {
		if err := utils.ValidatePositive(*req.Amount, "amount"); err != nil {
			return nil, err
		}
		t.Amount = utils.Round(*req.Amount)
	}
	if req.Category != nil {
		t.Category = *req.Category
	}
	if req.Wallet != nil {
		if err := utils.ValidateWalletType(string(*req.Wallet)); err != nil {
			return nil, err
		}
		t.Wallet = *req.Wallet
	}
	if req.Type != nil {
		if *req.Type != models.TransactionExpense && *req.Type != models.TransactionIncome {
			return nil, utils.NewValidationError("type must be expense or income")
		}
		t.Type = *req.Type
	}
	if req.Notes != nil {
		t.Notes = *req.Notes
	}
	t.UpdatedAt = time.Now().UnixMilli()

	if err := s.transactions.UpdateTransaction(t); err != nil {
		return nil, err
	}

	if oldEffect != 0 {
		if err := s.wallets.AdjustBalance(t.UserID, oldWallet, -oldEffect, "Transaction updated"); err != nil {
			return nil, err
		}
	}
	if effect := walletEffect(t); effect != 0 {
		if err := s.wallets.AdjustBalance(t.UserID, t.Wallet, effect, "Transaction updated"); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (s *TransactionService) updateTransfer(t *models.Transaction, req *models.UpdateTransactionRequest) (*models.Transaction, error) {
	if req.Category != nil || req.Wallet != nil || req.Type != nil {
		return nil, utils.NewValidationError("only date, amount, and notes can change on a transfer")
	}

	oldAmount := t.Amount
	if req.Date != nil {
		t.Date = *req.Date
	}
	if req.Amount != nil {
		if err := utils.ValidatePositive(*req.Amount, "amount"); err != nil {
			return nil, err
		}
		t.Amount = utils.Round(*req.Amount)
	}
	if req.Notes != nil {
		t.Notes = *req.Notes
	}
	t.UpdatedAt = time.Now().UnixMilli()

	if err := s.transactions.UpdateTransaction(t); err != nil {
		return nil, err
	}

	if delta := t.Amount - oldAmount; delta != 0 {
		if err := s.wallets.AdjustBalance(t.UserID, t.FromWallet, -delta, "Transfer updated"); err != nil {
			return nil, err
		}
		if err := s.wallets.AdjustBalance(t.UserID, t.ToWallet, delta, "Transfer updated"); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// DeleteTransaction removes a ledger entry and reverts its wallet effects.
// Transfers put the money back in the source wallet; a settled
// pay-for-someone entry has its repayment credit reverted too.
func (s *TransactionService) DeleteTransaction(userID, txID string) error {
	t, err := s.transactions.GetTransaction(userID, txID)
	if err != nil {
		return err
	}

	if err := s.transactions.DeleteTransaction(userID, txID); err != nil {
		return err
	}

	if t.Type == models.TransactionTransfer {
		if err := s.wallets.AdjustBalance(userID, t.FromWallet, t.Amount, "Transaction deleted"); err != nil {
			return err
		}
		if err := s.wallets.AdjustBalance(userID, t.ToWallet, -t.Amount, "Transaction deleted"); err != nil {
			return err
		}
		return nil
	}

	if effect := walletEffect(t); effect != 0 {
		if err := s.wallets.AdjustBalance(userID, t.Wallet, -effect, "Transaction deleted"); err != nil {
			return err
		}
	}
	if t.IsSettlement && t.Settled && t.SettledWallet != "" {
		if err := s.wallets.AdjustBalance(userID, t.SettledWallet, -t.Amount, "Transaction deleted"); err != nil {
			return err
		}
	}
	return nil
}

// GetTransactions returns the user's ledger, newest first
func (s *TransactionService) GetTransactions(userID string) ([]*models.Transaction, error) {
	return s.transactions.ListTransactions(userID)
}

// GetRecentTransactions returns the most recent ledger entries
func (s *TransactionService) GetRecentTransactions(userID string, take int) ([]*models.Transaction, error) {
	if take <= 0 {
		take = 10
	}
	return s.transactions.ListRecentTransactions(userID, take)
}

// MarkSettled flags a pay-for-someone entry as repaid. When a wallet is
// given, the repayment is credited to it.
func (s *TransactionService) MarkSettled(req *models.MarkTransactionSettledRequest) (*models.Transaction, error) {
	t, err := s.transactions.GetTransaction(req.UserID, req.TransactionID)
	if err != nil {
		return nil, err
	}
	if !t.IsSettlement {
		return nil, utils.NewValidationError("transaction was not paid on someone's behalf")
	}
	if t.Settled {
		return nil, utils.NewConflictError("Transaction is already settled")
	}

	t.Settled = true
	t.SettledWallet = req.Wallet
	t.UpdatedAt = time.Now().UnixMilli()

	if err := s.transactions.UpdateTransaction(t); err != nil {
		return nil, err
	}

	if req.Wallet != "" {
		if err := utils.ValidateWalletType(string(req.Wallet)); err != nil {
			return nil, err
		}
		if err := s.wallets.AdjustBalance(t.UserID, req.Wallet, t.Amount, "Settlement received"); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Transfer moves money between two of the user's wallets and records a
// ledger entry for it
func (s *TransactionService) Transfer(req *models.TransferRequest) (*models.Transaction, error) {
	if err := utils.ValidateWalletType(string(req.FromWallet)); err != nil {
		return nil, err
	}
	if err := utils.ValidateWalletType(string(req.ToWallet)); err != nil {
		return nil, err
	}
	if req.FromWallet == req.ToWallet {
		return nil, utils.NewValidationError("fromWallet and toWallet must differ")
	}

	now := time.Now().UnixMilli()
	t := &models.Transaction{
		ID:         utils.GenerateID(),
		UserID:     req.UserID,
		Date:       now,
		Amount:     utils.Round(req.Amount),
		Category:   "Transfer",
		Wallet:     req.FromWallet,
		Type:       models.TransactionTransfer,
		Settled:    true,
		FromWallet: req.FromWallet,
		ToWallet:   req.ToWallet,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.transactions.StoreTransaction(t); err != nil {
		return nil, err
	}
	if err := s.wallets.AdjustBalance(req.UserID, req.FromWallet, -t.Amount, "Transfer out"); err != nil {
		return nil, err
	}
	if err := s.wallets.AdjustBalance(req.UserID, req.ToWallet, t.Amount, "Transfer in"); err != nil {
		return nil, err
	}
	return t, nil
}
