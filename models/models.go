// models/models.go
package models

// WalletType identifies one of the user's money pools
type WalletType string

const (
	WalletCash       WalletType = "cash"
	WalletGPay       WalletType = "gpay"
	WalletInvestment WalletType = "investment"
)

// TransactionType identifies how a transaction moves money
type TransactionType string

const (
	TransactionExpense  TransactionType = "expense"
	TransactionIncome   TransactionType = "income"
	TransactionTransfer TransactionType = "transfer"
)

// Wallet represents a named money pool with a running balance
type Wallet struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Type      WalletType `json:"type"`
	Name      string     `json:"name"`
	Balance   float64    `json:"balance"`
	CreatedAt int64      `json:"createdAt"`
	UpdatedAt int64      `json:"updatedAt"`
}

// Transaction represents a single ledger entry. Amount is always positive,
// the sign of the wallet effect is derived from Type.
type Transaction struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	Date          int64           `json:"date"` // epoch ms
	Amount        float64         `json:"amount"`
	Category      string          `json:"category"`
	Item          string          `json:"item,omitempty"`
	Wallet        WalletType      `json:"wallet"`
	Type          TransactionType `json:"type"`
	Notes         string          `json:"notes,omitempty"`
	IsSettlement  bool            `json:"isSettlement"` // paid on someone else's behalf
	Settled       bool            `json:"settled"`      // marked settled later
	SettledWallet WalletType      `json:"settledWallet,omitempty"`
	FromWallet    WalletType      `json:"fromWallet,omitempty"` // when Type == "transfer"
	ToWallet      WalletType      `json:"toWallet,omitempty"`   // when Type == "transfer"
	CreatedAt     int64           `json:"createdAt"`
	UpdatedAt     int64           `json:"updatedAt"`
}

// WalletHistory records a balance adjustment against a wallet
type WalletHistory struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Wallet    WalletType `json:"wallet"`
	Amount    float64    `json:"amount"`
	Reason    string     `json:"reason"`
	CreatedAt int64      `json:"createdAt"`
	UpdatedAt int64      `json:"updatedAt"`
}

// Budget tracks a monthly spending limit for one category
type Budget struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Month     string  `json:"month"` // YYYY-MM
	Category  string  `json:"category"`
	Limit     float64 `json:"limit"`
	Spent     float64 `json:"spent"`
	CreatedAt int64   `json:"createdAt"`
	UpdatedAt int64   `json:"updatedAt"`
}

// Preset is a one-tap expense template
type Preset struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Emoji     string     `json:"emoji"`
	Label     string     `json:"label"`
	Amount    float64    `json:"amount"`
	Category  string     `json:"category"`
	Wallet    WalletType `json:"wallet"`
	CreatedAt int64      `json:"createdAt"`
	UpdatedAt int64      `json:"updatedAt"`
}

// CreateTransactionRequest request model
type CreateTransactionRequest struct {
	UserID       string          `json:"userId" binding:"required"`
	Date         int64           `json:"date"`
	Amount       float64         `json:"amount" binding:"required,gt=0"`
	Category     string          `json:"category" binding:"required"`
	Item         string          `json:"item"`
	Wallet       WalletType      `json:"wallet" binding:"required"`
	Type         TransactionType `json:"type" binding:"required"`
	Notes        string          `json:"notes"`
	IsSettlement bool            `json:"isSettlement"`
}

// UpdateTransactionRequest request model
type UpdateTransactionRequest struct {
	UserID        string           `json:"userId" binding:"required"`
	TransactionID string           `json:"transactionId" binding:"required"`
	Date          *int64           `json:"date"`
	Amount        *float64         `json:"amount"`
	Category      *string          `json:"category"`
	Wallet        *WalletType      `json:"wallet"`
	Type          *TransactionType `json:"type"`
	Notes         *string          `json:"notes"`
}

// MarkTransactionSettledRequest request model
type MarkTransactionSettledRequest struct {
	UserID        string     `json:"userId" binding:"required"`
	TransactionID string     `json:"transactionId" binding:"required"`
	Wallet        WalletType `json:"wallet"` // optional: wallet credited with the repayment
}

// TransferRequest request model
type TransferRequest struct {
	UserID     string     `json:"userId" binding:"required"`
	FromWallet WalletType `json:"fromWallet" binding:"required"`
	ToWallet   WalletType `json:"toWallet" binding:"required"`
	Amount     float64    `json:"amount" binding:"required,gt=0"`
}

// UpsertBudgetRequest request model
type UpsertBudgetRequest struct {
	UserID   string  `json:"userId" binding:"required"`
	Month    string  `json:"month" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Limit    float64 `json:"limit" binding:"required,gt=0"`
}

// CreatePresetRequest request model
type CreatePresetRequest struct {
	UserID   string     `json:"userId" binding:"required"`
	Emoji    string     `json:"emoji"`
	Label    string     `json:"label" binding:"required"`
	Amount   float64    `json:"amount" binding:"required,gt=0"`
	Category string     `json:"category" binding:"required"`
	Wallet   WalletType `json:"wallet" binding:"required"`
}

// UpdatePresetRequest request model
type UpdatePresetRequest struct {
	UserID   string      `json:"userId" binding:"required"`
	PresetID string      `json:"presetId" binding:"required"`
	Emoji    *string     `json:"emoji"`
	Label    *string     `json:"label"`
	Amount   *float64    `json:"amount"`
	Category *string     `json:"category"`
	Wallet   *WalletType `json:"wallet"`
}

// ApplyPresetRequest request model
type ApplyPresetRequest struct {
	UserID   string     `json:"userId" binding:"required"`
	PresetID string     `json:"presetId" binding:"required"`
	Wallet   WalletType `json:"wallet" binding:"required"`
}
