package services

import (
	"github.com/paisabook/paisabook-backend/models"
	"github.com/paisabook/paisabook-backend/utils"
)

// WalletService manages the user's money pools
type WalletService struct {
	wallets WalletStore
}

// NewWalletService creates a new wallet service
func NewWalletService(wallets WalletStore) *WalletService {
	return &WalletService{wallets: wallets}
}

// GetWallets returns all of the user's wallets, creating missing ones
func (s *WalletService) GetWallets(userID string) (map[models.WalletType]*models.Wallet, error) {
	return s.wallets.GetWallets(userID)
}

// AddFunds credits a wallet and records the addition in history
func (s *WalletService) AddFunds(userID string, wallet models.WalletType, amount float64, reason string) (*models.Wallet, error) {
	if err := utils.ValidateWalletType(string(wallet)); err != nil {
		return nil, err
	}
	if err := utils.ValidatePositive(amount, "amount"); err != nil {
		return nil, err
	}

	if err := s.wallets.AdjustBalance(userID, wallet, utils.Round(amount), reason); err != nil {
		return nil, err
	}
	return s.wallets.GetOrCreateWallet(userID, wallet)
}

// History returns wallet history, optionally filtered to one wallet
func (s *WalletService) History(userID string, wallet models.WalletType) ([]*models.WalletHistory, error) {
	if wallet != "" {
		if err := utils.ValidateWalletType(string(wallet)); err != nil {
			return nil, err
		}
	}
	return s.wallets.ListWalletHistory(userID, wallet)
}
