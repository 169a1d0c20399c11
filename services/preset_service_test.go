package services

import (
	"testing"

	"github.com/paisabook/paisabook-backend/models"
	"github.com/paisabook/paisabook-backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePresetStore keeps presets in memory
type fakePresetStore struct {
	presets map[string]*models.Preset
}

func newFakePresetStore() *fakePresetStore {
	return &fakePresetStore{presets: make(map[string]*models.Preset)}
}

func (f *fakePresetStore) StorePreset(p *models.Preset) error {
	copied := *p
	f.presets[p.ID] = &copied
	return nil
}

func (f *fakePresetStore) GetPreset(presetID string) (*models.Preset, error) {
	p, ok := f.presets[presetID]
	if !ok {
		return nil, utils.NewNotFoundError("Preset")
	}
	copied := *p
	return &copied, nil
}

func (f *fakePresetStore) ListPresets(userID string) ([]*models.Preset, error) {
	var result []*models.Preset
	for _, p := range f.presets {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePresetStore) UpdatePreset(p *models.Preset) error {
	copied := *p
	f.presets[p.ID] = &copied
	return nil
}

func (f *fakePresetStore) DeletePreset(presetID string) error {
	delete(f.presets, presetID)
	return nil
}

func newTestPresetService() (*PresetService, *fakeWalletStore) {
	transactions := newFakeTransactionStore()
	wallets := newFakeWalletStore()
	return NewPresetService(newFakePresetStore(), NewTransactionService(transactions, wallets)), wallets
}

func TestApplyPreset_DebitsRequestedWallet(t *testing.T) {
	service, wallets := newTestPresetService()

	preset, err := service.CreatePreset(&models.CreatePresetRequest{
		UserID:   "u1",
		Label:    "Morning chai",
		Amount:   20,
		Category: "Food",
		Wallet:   models.WalletGPay,
	})
	require.NoError(t, err)

	// The wallet on the request wins over the one saved on the template
	transaction, err := service.ApplyPreset(&models.ApplyPresetRequest{
		UserID:   "u1",
		PresetID: preset.ID,
		Wallet:   models.WalletCash,
	})
	require.NoError(t, err)

	assert.Equal(t, models.TransactionExpense, transaction.Type)
	assert.Equal(t, "Morning chai", transaction.Item)
	assert.Equal(t, models.WalletCash, transaction.Wallet)
	assert.Equal(t, -20.0, wallets.balances["u1_cash"])
	assert.Equal(t, 0.0, wallets.balances["u1_gpay"])
}

func TestApplyPreset_RejectsForeignPreset(t *testing.T) {
	service, _ := newTestPresetService()

	preset, err := service.CreatePreset(&models.CreatePresetRequest{
		UserID:   "u1",
		Label:    "Lunch",
		Amount:   120,
		Category: "Food",
		Wallet:   models.WalletCash,
	})
	require.NoError(t, err)

	_, err = service.ApplyPreset(&models.ApplyPresetRequest{
		UserID:   "u2",
		PresetID: preset.ID,
		Wallet:   models.WalletCash,
	})
	require.Error(t, err)
	assert.True(t, utils.IsNotFound(err))
}

func TestUpdatePreset_EditsFields(t *testing.T) {
	service, _ := newTestPresetService()

	preset, err := service.CreatePreset(&models.CreatePresetRequest{
		UserID:   "u1",
		Label:    "Lunch",
		Amount:   120,
		Category: "Food",
		Wallet:   models.WalletCash,
	})
	require.NoError(t, err)

	newAmount := 150.0
	newLabel := "Thali"
	updated, err := service.UpdatePreset(&models.UpdatePresetRequest{
		UserID:   "u1",
		PresetID: preset.ID,
		Amount:   &newAmount,
		Label:    &newLabel,
	})
	require.NoError(t, err)

	assert.Equal(t, 150.0, updated.Amount)
	assert.Equal(t, "Thali", updated.Label)
	assert.Equal(t, "Food", updated.Category)
}
