// repository/group_repository.go
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/paisabook/paisabook-backend/models"
	"github.com/paisabook/paisabook-backend/utils"
)

// GroupRepository handles database operations for expense groups
type GroupRepository struct {
	DB *sql.DB
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(db *sql.DB) *GroupRepository {
	return &GroupRepository{DB: db}
}

// StoreGroup saves a group and its initial members
func (r *GroupRepository) StoreGroup(group *models.ExpenseGroup) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO expense_groups (id, name, description, owner_id, invitation_code, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		group.ID, group.Name, group.Description, group.OwnerID, group.InvitationCode,
		group.CreatedAt, group.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %v", err)
	}

	for _, memberID := range group.MemberIDs {
		_, err = tx.Exec(
			"INSERT INTO group_members (group_id, user_id) VALUES ($1, $2)",
			group.ID, memberID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert group member: %v", err)
		}
	}

	return tx.Commit()
}

// GetGroup retrieves a group by its ID
func (r *GroupRepository) GetGroup(groupID string) (*models.ExpenseGroup, error) {
	var group models.ExpenseGroup
	err := r.DB.QueryRow(
		`SELECT id, name, description, owner_id, invitation_code, created_at, updated_at
		 FROM expense_groups WHERE id = $1`,
		groupID,
	).Scan(&group.ID, &group.Name, &group.Description, &group.OwnerID,
		&group.InvitationCode, &group.CreatedAt, &group.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.NewNotFoundError("Group")
		}
		return nil, fmt.Errorf("failed to get group: %v", err)
	}

	if group.MemberIDs, err = r.getMembers(group.ID); err != nil {
		return nil, err
	}

	return &group, nil
}

// GetGroupByInvitationCode retrieves a group by its invitation code
func (r *GroupRepository) GetGroupByInvitationCode(code string) (*models.ExpenseGroup, error) {
	var group models.ExpenseGroup
	err := r.DB.QueryRow(
		`SELECT id, name, description, owner_id, invitation_code, created_at, updated_at
		 FROM expense_groups WHERE invitation_code = $1`,
		code,
	).Scan(&group.ID, &group.Name, &group.Description, &group.OwnerID,
		&group.InvitationCode, &group.CreatedAt, &group.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.NewNotFoundError("Group")
		}
		return nil, fmt.Errorf("failed to get group: %v", err)
	}

	if group.MemberIDs, err = r.getMembers(group.ID); err != nil {
		return nil, err
	}

	return &group, nil
}

// ListGroupsForUser retrieves all groups a user is a member of
func (r *GroupRepository) ListGroupsForUser(userID string) ([]*models.ExpenseGroup, error) {
	rows, err := r.DB.Query(
		`SELECT g.id, g.name, g.description, g.owner_id, g.invitation_code, g.created_at, g.updated_at
		 FROM expense_groups g
		 JOIN group_members m ON m.group_id = g.id
		 WHERE m.user_id = $1
		 ORDER BY g.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %v", err)
	}
	defer rows.Close()

	var groups []*models.ExpenseGroup
	for rows.Next() {
		var group models.ExpenseGroup
		if err := rows.Scan(&group.ID, &group.Name, &group.Description, &group.OwnerID,
			&group.InvitationCode, &group.CreatedAt, &group.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group: %v", err)
		}
		if group.MemberIDs, err = r.getMembers(group.ID); err != nil {
			return nil, err
		}
		groups = append(groups, &group)
	}

	return groups, nil
}

// AddMember adds a user to a group if they are not a member already
func (r *GroupRepository) AddMember(groupID string, userID string) error {
	_, err := r.DB.Exec(
		"INSERT INTO group_members (group_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		groupID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group member: %v", err)
	}

	_, err = r.DB.Exec(
		"UPDATE expense_groups SET updated_at = $1 WHERE id = $2",
		time.Now().UnixMilli(), groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to touch group: %v", err)
	}

	return nil
}

func (r *GroupRepository) getMembers(groupID string) ([]string, error) {
	rows, err := r.DB.Query(
		"SELECT user_id FROM group_members WHERE group_id = $1",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %v", err)
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan group member: %v", err)
		}
		members = append(members, userID)
	}
	return members, nil
}
