package services

import "github.com/paisabook/paisabook-backend/models"

// Store interfaces consumed by the services. The repository package provides
// the Postgres implementations; tests substitute in-memory fakes.

// GroupStore persists expense groups and their membership
type GroupStore interface {
	StoreGroup(group *models.ExpenseGroup) error
	GetGroup(groupID string) (*models.ExpenseGroup, error)
	GetGroupByInvitationCode(code string) (*models.ExpenseGroup, error)
	ListGroupsForUser(userID string) ([]*models.ExpenseGroup, error)
	AddMember(groupID, userID string) error
}

// GroupExpenseStore persists group expenses and their splits
type GroupExpenseStore interface {
	StoreGroupExpense(expense *models.GroupExpense) error
	GetGroupExpenses(groupID string) ([]*models.GroupExpense, error)
	MarkSplitSettled(expenseID, userID, settledBy string, settledAt int64) error
}

// SettlementStore persists group settlements
type SettlementStore interface {
	GetSettlements(groupID string) ([]*models.GroupSettlement, error)
	GetSettlementByID(id string) (*models.GroupSettlement, error)
	CreateSettlement(settlement *models.GroupSettlement) error
	DeleteSettlement(id string) error
	CompleteSettlement(settlement *models.GroupSettlement, wallet models.WalletType, notes string) (*models.GroupSettlement, float64, error)
}

// TransactionStore persists the personal ledger
type TransactionStore interface {
	StoreTransaction(t *models.Transaction) error
	GetTransaction(userID, txID string) (*models.Transaction, error)
	ListTransactions(userID string) ([]*models.Transaction, error)
	ListRecentTransactions(userID string, take int) ([]*models.Transaction, error)
	UpdateTransaction(t *models.Transaction) error
	DeleteTransaction(userID, txID string) error
	AggregateMonthlySpend(userID string, start, end int64) (map[string]float64, error)
}

// WalletStore persists wallets and wallet history
type WalletStore interface {
	GetOrCreateWallet(userID string, wallet models.WalletType) (*models.Wallet, error)
	GetWallets(userID string) (map[models.WalletType]*models.Wallet, error)
	AdjustBalance(userID string, wallet models.WalletType, delta float64, reason string) error
	ListWalletHistory(userID string, wallet models.WalletType) ([]*models.WalletHistory, error)
}

// BudgetStore persists monthly budgets
type BudgetStore interface {
	UpsertBudget(userID, month, category string, limit float64) error
	ListBudgets(userID, month string) ([]*models.Budget, error)
	UpdateSpent(userID, month, category string, spent float64) error
	DeleteBudget(userID, month, category string) error
}

// PresetStore persists expense presets
type PresetStore interface {
	StorePreset(p *models.Preset) error
	GetPreset(presetID string) (*models.Preset, error)
	ListPresets(userID string) ([]*models.Preset, error)
	UpdatePreset(p *models.Preset) error
	DeletePreset(presetID string) error
}
