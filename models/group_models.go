// models/group_models.go
package models

// Settlement statuses
const (
	SettlementPending   = "pending"
	SettlementCompleted = "completed"
)

// Split types for group expenses
const (
	SplitEqual  = "equal"
	SplitCustom = "custom"
)

// ExpenseGroup represents a group of users sharing expenses
type ExpenseGroup struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	OwnerID        string   `json:"ownerId"`
	MemberIDs      []string `json:"memberIds"`
	InvitationCode string   `json:"invitationCode"`
	CreatedAt      int64    `json:"createdAt"`
	UpdatedAt      int64    `json:"updatedAt"`
}

// GroupExpense represents a shared expense recorded against a group.
// Expenses are immutable once created.
type GroupExpense struct {
	ID           string              `json:"id"`
	GroupID      string              `json:"groupId"`
	PaidBy       string              `json:"paidBy"`
	Amount       float64             `json:"amount"`
	Description  string              `json:"description"`
	Category     string              `json:"category"`
	SplitType    string              `json:"splitType"`
	SplitDetails []GroupExpenseSplit `json:"splitDetails"`
	Date         int64               `json:"date"` // epoch ms
	CreatedAt    int64               `json:"createdAt"`
	UpdatedAt    int64               `json:"updatedAt"`
}

// GroupExpenseSplit is one member's share of a group expense. Settled here is
// a per-split acknowledgement, independent of the settlement record lifecycle.
type GroupExpenseSplit struct {
	UserID    string  `json:"userId"`
	Amount    float64 `json:"amount"`
	Settled   bool    `json:"settled"`
	SettledAt int64   `json:"settledAt,omitempty"`
	SettledBy string  `json:"settledBy,omitempty"`
}

// GroupSettlement is a directed debt between two group members. Pending
// records carry the natural id groupId_fromUserId_toUserId; records minted
// after an amount drifted past a completed settlement get a timestamp suffix
// and reference the completed record via Supersedes.
type GroupSettlement struct {
	ID          string  `json:"id"`
	GroupID     string  `json:"groupId"`
	FromUserID  string  `json:"fromUserId"` // who owes money
	ToUserID    string  `json:"toUserId"`   // who should receive money
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	Supersedes  string  `json:"supersedes,omitempty"`
	CompletedAt int64   `json:"completedAt,omitempty"`
	CreatedAt   int64   `json:"createdAt"`
	UpdatedAt   int64   `json:"updatedAt"`
}

// CreateGroupRequest request model
type CreateGroupRequest struct {
	UserID      string `json:"userId" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// JoinGroupRequest request model
type JoinGroupRequest struct {
	UserID         string `json:"userId" binding:"required"`
	InvitationCode string `json:"invitationCode" binding:"required"`
}

// GetGroupRequest request model
type GetGroupRequest struct {
	GroupID string `json:"groupId" binding:"required"`
}

// ListGroupsRequest request model
type ListGroupsRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// SplitInput is one member's share in a custom-split expense request
type SplitInput struct {
	UserID string  `json:"userId" binding:"required"`
	Amount float64 `json:"amount" binding:"min=0"`
}

// AddGroupExpenseRequest request model
type AddGroupExpenseRequest struct {
	GroupID     string       `json:"groupId" binding:"required"`
	PaidBy      string       `json:"paidBy" binding:"required"`
	Amount      float64      `json:"amount" binding:"required,gt=0"`
	Description string       `json:"description" binding:"required"`
	Category    string       `json:"category" binding:"required"`
	SplitType   string       `json:"splitType" binding:"required"`
	SplitAmong  []string     `json:"splitAmong"` // equal split
	Splits      []SplitInput `json:"splits"`     // custom split
	Date        int64        `json:"date"`
}

// CompleteSettlementRequest request model
type CompleteSettlementRequest struct {
	SettlementID  string     `json:"settlementId" binding:"required"`
	PaymentMethod WalletType `json:"paymentMethod" binding:"required"`
	Notes         string     `json:"notes"`
}

// SettlementSetResponse is the full current settlement set for a group
type SettlementSetResponse struct {
	GroupID     string             `json:"groupId"`
	Settlements []*GroupSettlement `json:"settlements"`
	Balances    map[string]float64 `json:"balances"`
}
