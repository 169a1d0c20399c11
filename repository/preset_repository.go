// repository/preset_repository.go
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/paisabook/paisabook-backend/models"
	"github.com/paisabook/paisabook-backend/utils"
)

// PresetRepository handles database operations for expense presets
type PresetRepository struct {
	DB *sql.DB
}

// NewPresetRepository creates a new PresetRepository
func NewPresetRepository(db *sql.DB) *PresetRepository {
	return &PresetRepository{DB: db}
}

// StorePreset saves a preset
func (r *PresetRepository) StorePreset(p *models.Preset) error {
	_, err := r.DB.Exec(
		`INSERT INTO presets (id, user_id, emoji, label, amount, category, wallet, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.UserID, p.Emoji, p.Label, p.Amount, p.Category, p.Wallet, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert preset: %v", err)
	}
	return nil
}

// GetPreset retrieves a preset by ID
func (r *PresetRepository) GetPreset(presetID string) (*models.Preset, error) {
	var p models.Preset
	err := r.DB.QueryRow(
		`SELECT id, user_id, emoji, label, amount, category, wallet, created_at, updated_at
		 FROM presets WHERE id = $1`,
		presetID,
	).Scan(&p.ID, &p.UserID, &p.Emoji, &p.Label, &p.Amount, &p.Category, &p.Wallet,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.NewNotFoundError("Preset")
		}
		return nil, fmt.Errorf("failed to get preset: %v", err)
	}
	return &p, nil
}

// ListPresets retrieves all presets for a user
func (r *PresetRepository) ListPresets(userID string) ([]*models.Preset, error) {
	rows, err := r.DB.Query(
		`SELECT id, user_id, emoji, label, amount, category, wallet, created_at, updated_at
		 FROM presets WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get presets: %v", err)
	}
	defer rows.Close()

	var presets []*models.Preset
	for rows.Next() {
		var p models.Preset
		if err := rows.Scan(&p.ID, &p.UserID, &p.Emoji, &p.Label, &p.Amount, &p.Category,
			&p.Wallet, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan preset: %v", err)
		}
		presets = append(presets, &p)
	}

	return presets, rows.Err()
}

// UpdatePreset updates a preset's fields
func (r *PresetRepository) UpdatePreset(p *models.Preset) error {
	_, err := r.DB.Exec(
		`UPDATE presets SET emoji = $1, label = $2, amount = $3, category = $4, wallet = $5, updated_at = $6
		 WHERE id = $7`,
		p.Emoji, p.Label, p.Amount, p.Category, p.Wallet, time.Now().UnixMilli(), p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update preset: %v", err)
	}
	return nil
}

// DeletePreset removes a preset
func (r *PresetRepository) DeletePreset(presetID string) error {
	_, err := r.DB.Exec("DELETE FROM presets WHERE id = $1", presetID)
	if err != nil {
		return fmt.Errorf("failed to delete preset: %v", err)
	}
	return nil
}
