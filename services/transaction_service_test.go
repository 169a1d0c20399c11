package services

import (
	"testing"

	"github.com/paisabook/paisabook-backend/models"
	"github.com/paisabook/paisabook-backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransactionStore keeps ledger entries in memory
type fakeTransactionStore struct {
	transactions map[string]*models.Transaction
}

func newFakeTransactionStore() *fakeTransactionStore {
	return &fakeTransactionStore{transactions: make(map[string]*models.Transaction)}
}

func (f *fakeTransactionStore) StoreTransaction(t *models.Transaction) error {
	copied := *t
	f.transactions[t.ID] = &copied
	return nil
}

func (f *fakeTransactionStore) GetTransaction(userID, txID string) (*models.Transaction, error) {
	t, ok := f.transactions[txID]
	if !ok || t.UserID != userID {
		return nil, utils.NewNotFoundError("Transaction")
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTransactionStore) ListTransactions(userID string) ([]*models.Transaction, error) {
	var result []*models.Transaction
	for _, t := range f.transactions {
		if t.UserID == userID {
			result = append(result, t)
		}
	}
	return result, nil
}

func (f *fakeTransactionStore) ListRecentTransactions(userID string, take int) ([]*models.Transaction, error) {
	result, _ := f.ListTransactions(userID)
	if len(result) > take {
		result = result[:take]
	}
	return result, nil
}

func (f *fakeTransactionStore) UpdateTransaction(t *models.Transaction) error {
	copied := *t
	f.transactions[t.ID] = &copied
	return nil
}

func (f *fakeTransactionStore) DeleteTransaction(userID, txID string) error {
	delete(f.transactions, txID)
	return nil
}

func (f *fakeTransactionStore) AggregateMonthlySpend(userID string, start, end int64) (map[string]float64, error) {
	result := make(map[string]float64)
	for _, t := range f.transactions {
		if t.UserID == userID && t.Type == models.TransactionExpense && t.Date >= start && t.Date < end {
			result[t.Category] += t.Amount
		}
	}
	return result, nil
}

// fakeWalletStore tracks balances and adjustment reasons
type fakeWalletStore struct {
	balances map[string]float64
	reasons  []string
}

func newFakeWalletStore() *fakeWalletStore {
	return &fakeWalletStore{balances: make(map[string]float64)}
}

func (f *fakeWalletStore) key(userID string, wallet models.WalletType) string {
	return userID + "_" + string(wallet)
}

func (f *fakeWalletStore) GetOrCreateWallet(userID string, wallet models.WalletType) (*models.Wallet, error) {
	return &models.Wallet{
		ID:      f.key(userID, wallet),
		UserID:  userID,
		Type:    wallet,
		Balance: f.balances[f.key(userID, wallet)],
	}, nil
}

func (f *fakeWalletStore) GetWallets(userID string) (map[models.WalletType]*models.Wallet, error) {
	result := make(map[models.WalletType]*models.Wallet)
	for _, t := range []models.WalletType{models.WalletCash, models.WalletGPay, models.WalletInvestment} {
		wallet, _ := f.GetOrCreateWallet(userID, t)
		result[t] = wallet
	}
	return result, nil
}

func (f *fakeWalletStore) AdjustBalance(userID string, wallet models.WalletType, delta float64, reason string) error {
	f.balances[f.key(userID, wallet)] += delta
	f.reasons = append(f.reasons, reason)
	return nil
}

func (f *fakeWalletStore) ListWalletHistory(userID string, wallet models.WalletType) ([]*models.WalletHistory, error) {
	return nil, nil
}

func newTestTransactionService() (*TransactionService, *fakeTransactionStore, *fakeWalletStore) {
	transactions := newFakeTransactionStore()
	wallets := newFakeWalletStore()
	return NewTransactionService(transactions, wallets), transactions, wallets
}

func TestCreateTransaction_ExpenseDebitsWallet(t *testing.T) {
	service, _, wallets := newTestTransactionService()

	created, err := service.CreateTransaction(&models.CreateTransactionRequest{
		UserID:   "u1",
		Amount:   250,
		Category: "Food",
		Wallet:   models.WalletGPay,
		Type:     models.TransactionExpense,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, -250.0, wallets.balances["u1_gpay"])
}

func TestCreateTransaction_IncomeCreditsWallet(t *testing.T) {
	service, _, wallets := newTestTransactionService()

	_, err := service.CreateTransaction(&models.CreateTransactionRequest{
		UserID:   "u1",
		Amount:   5000,
		Category: "Salary",
		Wallet:   models.WalletCash,
		Type:     models.TransactionIncome,
	})
	require.NoError(t, err)
	assert.Equal(t, 5000.0, wallets.balances["u1_cash"])
}

func TestCreateTransaction_RejectsUnknownWallet(t *testing.T) {
	service, _, _ := newTestTransactionService()

	_, err := service.CreateTransaction(&models.CreateTransactionRequest{
		UserID:   "u1",
		Amount:   100,
		Category: "Food",
		Wallet:   models.WalletType("upi"),
		Type:     models.TransactionExpense,
	})
	require.Error(t, err)
}

func TestUpdateTransaction_MovesWalletEffect(t *testing.T) {
	service, _, wallets := newTestTransactionService()

	created, err := service.CreateTransaction(&models.CreateTransactionRequest{
		UserID:   "u1",
		Amount:   100,
		Category: "Food",
		Wallet:   models.WalletCash,
		Type:     models.TransactionExpense,
	})
	require.NoError(t, err)

	newAmount := 150.0
	newWallet := models.WalletGPay
	_, err = service.UpdateTransaction(&models.UpdateTransactionRequest{
		UserID:        "u1",
		TransactionID: created.ID,
		Amount:        &newAmount,
		Wallet:        &newWallet,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, wallets.balances["u1_cash"], "old wallet effect reversed")
	assert.Equal(t, -150.0, wallets.balances["u1_gpay"], "new wallet carries the updated amount")
}

func TestDeleteTransaction_RevertsWalletEffect(t *testing.T) {
	service, _, wallets := newTestTransactionService()

	created, err := service.CreateTransaction(&models.CreateTransactionRequest{
		UserID:   "u1",
		Amount:   100,
		Category: "Food",
		Wallet:   models.WalletCash,
		Type:     models.TransactionExpense,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteTransaction("u1", created.ID))
	assert.Equal(t, 0.0, wallets.balances["u1_cash"])
}

func TestMarkSettled_CreditsChosenWallet(t *testing.T) {
	service, _, wallets := newTestTransactionService()

	created, err := service.CreateTransaction(&models.CreateTransactionRequest{
		UserID:       "u1",
		Amount:       400,
		Category:     "Food",
		Wallet:       models.WalletGPay,
		Type:         models.TransactionExpense,
		IsSettlement: true,
	})
	require.NoError(t, err)
	require.Equal(t, -400.0, wallets.balances["u1_gpay"])

	settled, err := service.MarkSettled(&models.MarkTransactionSettledRequest{
		UserID:        "u1",
		TransactionID: created.ID,
		Wallet:        models.WalletCash,
	})
	require.NoError(t, err)

	assert.True(t, settled.Settled)
	assert.Equal(t, models.WalletCash, settled.SettledWallet)
	assert.Equal(t, 400.0, wallets.balances["u1_cash"], "repayment credited to chosen wallet")

	// Marking twice is rejected
	_, err = service.MarkSettled(&models.MarkTransactionSettledRequest{
		UserID:        "u1",
		TransactionID: created.ID,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already settled")
}

func TestDeleteTransaction_RevertsSettlementCredit(t *testing.T) {
	service, _, wallets := newTestTransactionService()

	created, err := service.CreateTransaction(&models.CreateTransactionRequest{
		UserID:       "u1",
		Amount:       400,
		Category:     "Food",
		Wallet:       models.WalletGPay,
		Type:         models.TransactionExpense,
		IsSettlement: true,
	})
	require.NoError(t, err)

	_, err = service.MarkSettled(&models.MarkTransactionSettledRequest{
		UserID:        "u1",
		TransactionID: created.ID,
		Wallet:        models.WalletCash,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteTransaction("u1", created.ID))
	assert.Equal(t, 0.0, wallets.balances["u1_gpay"])
	assert.Equal(t, 0.0, wallets.balances["u1_cash"])
}

func TestTransfer_MovesBetweenWallets(t *testing.T) {
	service, _, wallets := newTestTransactionService()

	transfer, err := service.Transfer(&models.TransferRequest{
		UserID:     "u1",
		FromWallet: models.WalletCash,
		ToWallet:   models.WalletInvestment,
		Amount:     1000,
	})
	require.NoError(t, err)

	assert.Equal(t, models.TransactionTransfer, transfer.Type)
	assert.True(t, transfer.Settled)
	assert.Equal(t, -1000.0, wallets.balances["u1_cash"])
	assert.Equal(t, 1000.0, wallets.balances["u1_investment"])
}

func TestDeleteTransaction_RevertsTransfer(t *testing.T) {
	service, _, wallets := newTestTransactionService()
	wallets.balances["u1_cash"] = 500

	transfer, err := service.Transfer(&models.TransferRequest{
		UserID:     "u1",
		FromWallet: models.WalletCash,
		ToWallet:   models.WalletGPay,
		Amount:     100,
	})
	require.NoError(t, err)
	require.Equal(t, 400.0, wallets.balances["u1_cash"])
	require.Equal(t, 100.0, wallets.balances["u1_gpay"])

	require.NoError(t, service.DeleteTransaction("u1", transfer.ID))

	assert.Equal(t, 500.0, wallets.balances["u1_cash"], "source wallet gets the money back")
	assert.Equal(t, 0.0, wallets.balances["u1_gpay"], "destination wallet gives the money up")
}

func TestUpdateTransaction_TransferAmountMovesBothWallets(t *testing.T) {
	service, _, wallets := newTestTransactionService()

	transfer, err := service.Transfer(&models.TransferRequest{
		UserID:     "u1",
		FromWallet: models.WalletCash,
		ToWallet:   models.WalletInvestment,
		Amount:     100,
	})
	require.NoError(t, err)

	newAmount := 250.0
	updated, err := service.UpdateTransaction(&models.UpdateTransactionRequest{
		UserID:        "u1",
		TransactionID: transfer.ID,
		Amount:        &newAmount,
	})
	require.NoError(t, err)

	assert.Equal(t, 250.0, updated.Amount)
	assert.Equal(t, -250.0, wallets.balances["u1_cash"])
	assert.Equal(t, 250.0, wallets.balances["u1_investment"])
}

func TestUpdateTransaction_TransferKeepsWalletPair(t *testing.T) {
	service, _, _ := newTestTransactionService()

	transfer, err := service.Transfer(&models.TransferRequest{
		UserID:     "u1",
		FromWallet: models.WalletCash,
		ToWallet:   models.WalletGPay,
		Amount:     100,
	})
	require.NoError(t, err)

	otherWallet := models.WalletInvestment
	_, err = service.UpdateTransaction(&models.UpdateTransactionRequest{
		UserID:        "u1",
		TransactionID: transfer.ID,
		Wallet:        &otherWallet,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only date, amount, and notes")
}

func TestTransfer_RejectsSameWallet(t *testing.T) {
	service, _, _ := newTestTransactionService()

	_, err := service.Transfer(&models.TransferRequest{
		UserID:     "u1",
		FromWallet: models.WalletCash,
		ToWallet:   models.WalletCash,
		Amount:     100,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must differ")
}
