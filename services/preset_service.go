package services

import (
	"time"

	"github.com/paisabook/paisabook-backend/models"
	"github.com/paisabook/paisabook-backend/utils"
)

// PresetService manages one-tap expense templates
type PresetService struct {
	presets      PresetStore
	transactions *TransactionService
}

// NewPresetService creates a new preset service
func NewPresetService(presets PresetStore, transactions *TransactionService) *PresetService {
	return &PresetService{presets: presets, transactions: transactions}
}

// CreatePreset saves a new expense template
func (s *PresetService) CreatePreset(req *models.CreatePresetRequest) (*models.Preset, error) {
	if err := utils.ValidateWalletType(string(req.Wallet)); err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	preset := &models.Preset{
		ID:        utils.GenerateID(),
		UserID:    req.UserID,
		Emoji:     req.Emoji,
		Label:     req.Label,
		Amount:    utils.Round(req.Amount),
		Category:  req.Category,
		Wallet:    req.Wallet,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.presets.StorePreset(preset); err != nil {
		return nil, err
	}
	return preset, nil
}

// ListPresets returns the user's presets
func (s *PresetService) ListPresets(userID string) ([]*models.Preset, error) {
	return s.presets.ListPresets(userID)
}

// UpdatePreset edits a preset's fields after verifying ownership
func (s *PresetService) UpdatePreset(req *models.UpdatePresetRequest) (*models.Preset, error) {
	preset, err := s.presets.GetPreset(req.PresetID)
	if err != nil {
		return nil, err
	}
	if preset.UserID != req.UserID {
		return nil, utils.NewNotFoundError("Preset")
	}

	if req.Emoji != nil {
		preset.Emoji = *req.Emoji
	}
	if req.Label != nil {
		preset.Label = *req.Label
	}
	if req.Amount != nil {
		if err := utils.ValidatePositive(*req.Amount, "amount"); err != nil {
			return nil, err
		}
		preset.Amount = utils.Round(*req.Amount)
	}
	if req.Category != nil {
		preset.Category = *req.Category
	}
	if req.Wallet != nil {
		if err := utils.ValidateWalletType(string(*req.Wallet)); err != nil {
			return nil, err
		}
		preset.Wallet = *req.Wallet
	}
	preset.UpdatedAt = time.Now().UnixMilli()

	if err := s.presets.UpdatePreset(preset); err != nil {
		return nil, err
	}
	return preset, nil
}

// DeletePreset removes a preset after verifying ownership
func (s *PresetService) DeletePreset(userID, presetID string) error {
	preset, err := s.presets.GetPreset(presetID)
	if err != nil {
		return err
	}
	if preset.UserID != userID {
		return utils.NewNotFoundError("Preset")
	}
	return s.presets.DeletePreset(presetID)
}

// ApplyPreset records an expense transaction from a template
func (s *PresetService) ApplyPreset(req *models.ApplyPresetRequest) (*models.Transaction, error) {
	preset, err := s.presets.GetPreset(req.PresetID)
	if err != nil {
		return nil, err
	}
	if preset.UserID != req.UserID {
		return nil, utils.NewNotFoundError("Preset")
	}

	return s.transactions.CreateTransaction(&models.CreateTransactionRequest{
		UserID:   req.UserID,
		Amount:   preset.Amount,
		Category: preset.Category,
		Item:     preset.Label,
		Wallet:   req.Wallet,
		Type:     models.TransactionExpense,
	})
}
