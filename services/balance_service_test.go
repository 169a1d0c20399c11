package services

import (
	"testing"

	"github.com/paisabook/paisabook-backend/models"
	"github.com/stretchr/testify/assert"
)

func expense(paidBy string, amount float64, splits ...models.GroupExpenseSplit) *models.GroupExpense {
	return &models.GroupExpense{
		ID:           "exp_" + paidBy,
		GroupID:      "g1",
		PaidBy:       paidBy,
		Amount:       amount,
		SplitType:    models.SplitEqual,
		SplitDetails: splits,
	}
}

func split(userID string, amount float64) models.GroupExpenseSplit {
	return models.GroupExpenseSplit{UserID: userID, Amount: amount}
}

func TestComputeBalances_PayerCreditedParticipantsDebited(t *testing.T) {
	// A pays 300 split equally among A, B, C
	sheet := ComputeBalances([]*models.GroupExpense{
		expense("A", 300, split("A", 100), split("B", 100), split("C", 100)),
	}, nil)

	assert.Equal(t, -200.0, sheet.Get("A"), "payer should be owed the others' shares")
	assert.Equal(t, 100.0, sheet.Get("B"))
	assert.Equal(t, 100.0, sheet.Get("C"))
}

func TestComputeBalances_ZeroSum(t *testing.T) {
	sheet := ComputeBalances([]*models.GroupExpense{
		expense("A", 300, split("A", 100), split("B", 100), split("C", 100)),
		expense("B", 150, split("B", 75), split("C", 75)),
	}, nil)

	var sum float64
	for _, balance := range sheet.Balances() {
		sum += balance
	}
	assert.InDelta(t, 0, sum, 0.001, "balances should always sum to zero")
}

func TestComputeBalances_TwoExpenseScenario(t *testing.T) {
	// A pays 300 among A/B/C, then B pays 150 among B/C
	sheet := ComputeBalances([]*models.GroupExpense{
		expense("A", 300, split("A", 100), split("B", 100), split("C", 100)),
		expense("B", 150, split("B", 75), split("C", 75)),
	}, nil)

	assert.Equal(t, -200.0, sheet.Get("A"))
	assert.Equal(t, 25.0, sheet.Get("B"))
	assert.Equal(t, 175.0, sheet.Get("C"))
}

func TestComputeBalances_CompletedSettlementReducesDebt(t *testing.T) {
	expenses := []*models.GroupExpense{
		expense("A", 300, split("A", 100), split("B", 100), split("C", 100)),
	}
	completed := []*models.GroupSettlement{
		{FromUserID: "B", ToUserID: "A", Amount: 100, Status: models.SettlementCompleted},
	}

	sheet := ComputeBalances(expenses, completed)

	assert.Equal(t, 0.0, sheet.Get("B"), "paid settlement should clear B's debt")
	assert.Equal(t, -100.0, sheet.Get("A"), "A is still owed C's share")
	assert.Equal(t, 100.0, sheet.Get("C"))
}

func TestComputeBalances_InsertionOrderPreserved(t *testing.T) {
	sheet := ComputeBalances([]*models.GroupExpense{
		expense("C", 90, split("C", 30), split("A", 30), split("B", 30)),
	}, nil)

	assert.Equal(t, []string{"C", "A", "B"}, sheet.Users())
}

func TestComputeBalances_Empty(t *testing.T) {
	sheet := ComputeBalances(nil, nil)
	assert.Empty(t, sheet.Users())
	assert.Empty(t, sheet.Balances())
}
