package services

import (
	"time"

	"github.com/paisabook/paisabook-backend/models"
	"github.com/paisabook/paisabook-backend/utils"
)

// GroupService manages expense groups, membership, and group expenses
type GroupService struct {
	groups   GroupStore
	expenses GroupExpenseStore
}

// NewGroupService creates a new group service
func NewGroupService(groups GroupStore, expenses GroupExpenseStore) *GroupService {
	return &GroupService{groups: groups, expenses: expenses}
}

// CreateGroup creates a group with the creator as owner and first member
func (s *GroupService) CreateGroup(req *models.CreateGroupRequest) (*models.ExpenseGroup, error) {
	if err := utils.ValidateRequired(req.Name, "name"); err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	group := &models.ExpenseGroup{
		ID:             utils.GenerateID(),
		Name:           req.Name,
		Description:    req.Description,
		OwnerID:        req.UserID,
		MemberIDs:      []string{req.UserID},
		InvitationCode: utils.GenerateCode(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.groups.StoreGroup(group); err != nil {
		return nil, err
	}
	return group, nil
}

// JoinGroup adds a user to the group matching the invitation code. Joining a
// group the user already belongs to is a no-op.
func (s *GroupService) JoinGroup(req *models.JoinGroupRequest) (*models.ExpenseGroup, error) {
	group, err := s.groups.GetGroupByInvitationCode(req.InvitationCode)
	if err != nil {
		if utils.IsNotFound(err) {
			return nil, utils.NewNotFoundError("Group with that invitation code")
		}
		return nil, err
	}

	if err := s.groups.AddMember(group.ID, req.UserID); err != nil {
		return nil, err
	}
	return s.groups.GetGroup(group.ID)
}

// GetGroup returns a group with its membership
func (s *GroupService) GetGroup(groupID string) (*models.ExpenseGroup, error) {
	return s.groups.GetGroup(groupID)
}

// ListGroups returns all groups the user is a member of
func (s *GroupService) ListGroups(userID string) ([]*models.ExpenseGroup, error) {
	return s.groups.ListGroupsForUser(userID)
}

// AddExpense records a shared expense against a group. Equal splits are
// divided at paisa precision with the payer's own share marked settled
// up front; custom splits must sum exactly to the expense amount.
func (s *GroupService) AddExpense(req *models.AddGroupExpenseRequest) (*models.GroupExpense, error) {
	group, err := s.groups.GetGroup(req.GroupID)
	if err != nil {
		return nil, err
	}

	members := make(map[string]bool, len(group.MemberIDs))
	for _, memberID := range group.MemberIDs {
		members[memberID] = true
	}
	if !members[req.PaidBy] {
		return nil, utils.NewValidationError("payer is not a member of the group")
	}

	now := time.Now().UnixMilli()
	date := req.Date
	if date == 0 {
		date = now
	}

	var splits []models.GroupExpenseSplit
	switch req.SplitType {
	case models.SplitEqual:
		if err := utils.ValidateNotEmpty(req.SplitAmong, "splitAmong"); err != nil {
			return nil, err
		}
		for _, userID := range req.SplitAmong {
			if !members[userID] {
				return nil, utils.NewValidationError("split includes a non-member")
			}
		}
		shares := utils.SplitEqually(req.Amount, len(req.SplitAmong))
		for i, userID := range req.SplitAmong {
			split := models.GroupExpenseSplit{UserID: userID, Amount: shares[i]}
			if userID == req.PaidBy {
				split.Settled = true
				split.SettledAt = now
				split.SettledBy = req.PaidBy
			}
			splits = append(splits, split)
		}
	case models.SplitCustom:
		if err := utils.ValidateNotEmpty(req.Splits, "splits"); err != nil {
			return nil, err
		}
		amounts := make([]float64, 0, len(req.Splits))
		for _, input := range req.Splits {
			if !members[input.UserID] {
				return nil, utils.NewValidationError("split includes a non-member")
			}
			amounts = append(amounts, input.Amount)
		}
		if !utils.SumsTo(amounts, req.Amount) {
			return nil, utils.NewValidationError("split amounts must sum to expense amount")
		}
		for _, input := range req.Splits {
			split := models.GroupExpenseSplit{UserID: input.UserID, Amount: input.Amount}
			if input.UserID == req.PaidBy {
				split.Settled = true
				split.SettledAt = now
				split.SettledBy = req.PaidBy
			}
			splits = append(splits, split)
		}
	default:
		return nil, utils.NewValidationError("splitType must be equal or custom")
	}

	expense := &models.GroupExpense{
		ID:           utils.GenerateID(),
		GroupID:      req.GroupID,
		PaidBy:       req.PaidBy,
		Amount:       utils.Round(req.Amount),
		Description:  req.Description,
		Category:     req.Category,
		SplitType:    req.SplitType,
		SplitDetails: splits,
		Date:         date,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.expenses.StoreGroupExpense(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses returns a group's expenses, newest first
func (s *GroupService) ListExpenses(groupID string) ([]*models.GroupExpense, error) {
	if _, err := s.groups.GetGroup(groupID); err != nil {
		return nil, err
	}
	return s.expenses.GetGroupExpenses(groupID)
}

// MarkSplitSettled records a per-split acknowledgement on an expense
func (s *GroupService) MarkSplitSettled(expenseID, userID, settledBy string) error {
	return s.expenses.MarkSplitSettled(expenseID, userID, settledBy, time.Now().UnixMilli())
}
