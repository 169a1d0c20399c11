package services

import (
	"regexp"
	"time"

	"github.com/paisabook/paisabook-backend/models"
	"github.com/paisabook/paisabook-backend/utils"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// BudgetService manages monthly category budgets
type BudgetService struct {
	budgets      BudgetStore
	transactions TransactionStore
}

// NewBudgetService creates a new budget service
func NewBudgetService(budgets BudgetStore, transactions TransactionStore) *BudgetService {
	return &BudgetService{budgets: budgets, transactions: transactions}
}

// UpsertBudget creates or updates a category budget for a month
func (s *BudgetService) UpsertBudget(req *models.UpsertBudgetRequest) error {
	if !monthPattern.MatchString(req.Month) {
		return utils.NewValidationError("month must be in YYYY-MM format")
	}
	if err := utils.ValidatePositive(req.Limit, "limit"); err != nil {
		return err
	}
	return s.budgets.UpsertBudget(req.UserID, req.Month, req.Category, utils.Round(req.Limit))
}

// ListBudgets returns the user's budgets for a month with spent amounts
// synced from the ledger. When the month has no budgets yet, the previous
// month's budgets are carried forward.
func (s *BudgetService) ListBudgets(userID, month string) ([]*models.Budget, error) {
	if !monthPattern.MatchString(month) {
		return nil, utils.NewValidationError("month must be in YYYY-MM format")
	}

	budgets, err := s.budgets.ListBudgets(userID, month)
	if err != nil {
		return nil, err
	}

	if len(budgets) == 0 {
		if err := s.carryForward(userID, month); err != nil {
			return nil, err
		}
		budgets, err = s.budgets.ListBudgets(userID, month)
		if err != nil {
			return nil, err
		}
	}

	if err := s.syncSpent(userID, month, budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

// DeleteBudget removes a category budget for a month
func (s *BudgetService) DeleteBudget(userID, month, category string) error {
	return s.budgets.DeleteBudget(userID, month, category)
}

func (s *BudgetService) carryForward(userID, month string) error {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return utils.NewValidationError("month must be in YYYY-MM format")
	}
	previous := t.AddDate(0, -1, 0).Format("2006-01")

	previousBudgets, err := s.budgets.ListBudgets(userID, previous)
	if err != nil {
		return err
	}
	for _, budget := range previousBudgets {
		if err := s.budgets.UpsertBudget(userID, month, budget.Category, budget.Limit); err != nil {
			return err
		}
	}
	return nil
}

func (s *BudgetService) syncSpent(userID, month string, budgets []*models.Budget) error {
	start, end, err := monthRange(month)
	if err != nil {
		return err
	}

	spendByCategory, err := s.transactions.AggregateMonthlySpend(userID, start, end)
	if err != nil {
		return err
	}

	for _, budget := range budgets {
		spent := utils.Round(spendByCategory[budget.Category])
		if spent == budget.Spent {
			continue
		}
		if err := s.budgets.UpdateSpent(userID, month, budget.Category, spent); err != nil {
			return err
		}
		budget.Spent = spent
	}
	return nil
}

// monthRange returns the [start, end) epoch millisecond bounds of a month
func monthRange(month string) (int64, int64, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return 0, 0, utils.NewValidationError("month must be in YYYY-MM format")
	}
	return t.UnixMilli(), t.AddDate(0, 1, 0).UnixMilli(), nil
}
