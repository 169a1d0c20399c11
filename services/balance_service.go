package services

import (
	"github.com/paisabook/paisabook-backend/models"
	"github.com/paisabook/paisabook-backend/utils"
)

// BalanceSheet holds per-user net balances in first-seen order so that
// settlement generation is deterministic. A positive balance means the user
// owes money overall, a negative balance means the user is owed.
type BalanceSheet struct {
	order   []string
	amounts map[string]float64
}

// NewBalanceSheet creates an empty balance sheet
func NewBalanceSheet() *BalanceSheet {
	return &BalanceSheet{amounts: make(map[string]float64)}
}

// Add applies a delta to a user's balance, registering the user on first use
func (b *BalanceSheet) Add(userID string, delta float64) {
	if _, exists := b.amounts[userID]; !exists {
		b.order = append(b.order, userID)
	}
	b.amounts[userID] += delta
}

// Get returns a user's balance (zero for unknown users)
func (b *BalanceSheet) Get(userID string) float64 {
	return b.amounts[userID]
}

// Users returns user IDs in first-seen order
func (b *BalanceSheet) Users() []string {
	return b.order
}

// Balances returns a plain map copy of the sheet
func (b *BalanceSheet) Balances() map[string]float64 {
	result := make(map[string]float64, len(b.amounts))
	for userID, amount := range b.amounts {
		result[userID] = amount
	}
	return result
}

func (b *BalanceSheet) roundAll() {
	for userID, amount := range b.amounts {
		b.amounts[userID] = utils.Round(amount)
	}
}

// ComputeBalances folds a group's expenses and previously completed
// settlements into net balances. The payer of an expense is credited the full
// amount; every participant, payer included, is debited their split. A
// completed settlement reduces the debtor's remaining debt and the creditor's
// remaining credit. Pure function of its inputs.
func ComputeBalances(expenses []*models.GroupExpense, completed []*models.GroupSettlement) *BalanceSheet {
	sheet := NewBalanceSheet()

	for _, expense := range expenses {
		sheet.Add(expense.PaidBy, -expense.Amount)
		for _, split := range expense.SplitDetails {
			sheet.Add(split.UserID, split.Amount)
		}
	}

	for _, settlement := range completed {
		sheet.Add(settlement.FromUserID, -settlement.Amount)
		sheet.Add(settlement.ToUserID, settlement.Amount)
	}

	sheet.roundAll()
	return sheet
}
