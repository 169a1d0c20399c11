// repository/schema.go
package repository

import "fmt"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS expense_groups (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		owner_id TEXT NOT NULL,
		invitation_code TEXT NOT NULL UNIQUE,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS group_members (
		group_id TEXT NOT NULL REFERENCES expense_groups(id) ON DELETE CASCADE,
		user_id TEXT NOT NULL,
		PRIMARY KEY (group_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS group_expenses (
		id TEXT PRIMARY KEY,
		group_id TEXT NOT NULL REFERENCES expense_groups(id) ON DELETE CASCADE,
		paid_by TEXT NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL,
		split_type TEXT NOT NULL,
		date BIGINT NOT NULL,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS group_expense_splits (
		expense_id TEXT NOT NULL REFERENCES group_expenses(id) ON DELETE CASCADE,
		user_id TEXT NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		settled BOOLEAN NOT NULL DEFAULT FALSE,
		settled_at BIGINT,
		settled_by TEXT,
		PRIMARY KEY (expense_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS group_settlements (
		id TEXT PRIMARY KEY,
		group_id TEXT NOT NULL,
		from_user_id TEXT NOT NULL,
		to_user_id TEXT NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		status TEXT NOT NULL,
		supersedes TEXT,
		completed_at BIGINT,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_group_settlements_group ON group_settlements(group_id)`,
	`CREATE TABLE IF NOT EXISTS wallets (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		type TEXT NOT NULL,
		name TEXT NOT NULL,
		balance DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		date BIGINT NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		category TEXT NOT NULL,
		item TEXT NOT NULL DEFAULT '',
		wallet TEXT NOT NULL,
		type TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		is_settlement BOOLEAN NOT NULL DEFAULT FALSE,
		settled BOOLEAN NOT NULL DEFAULT FALSE,
		settled_wallet TEXT,
		from_wallet TEXT,
		to_wallet TEXT,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_user_date ON transactions(user_id, date DESC)`,
	`CREATE TABLE IF NOT EXISTS wallet_history (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		wallet TEXT NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		reason TEXT NOT NULL,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS budgets (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		month TEXT NOT NULL,
		category TEXT NOT NULL,
		spend_limit DOUBLE PRECISION NOT NULL,
		spent DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS presets (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		emoji TEXT NOT NULL DEFAULT '',
		label TEXT NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		category TEXT NOT NULL,
		wallet TEXT NOT NULL,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
}

// EnsureSchema creates all tables if they do not exist yet
func EnsureSchema() error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %v", err)
		}
	}
	return nil
}
