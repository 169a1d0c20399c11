package handlers

import (
	"net/http"

	"github.com/paisabook/paisabook-backend/models"
	"github.com/paisabook/paisabook-backend/services"
	"github.com/paisabook/paisabook-backend/utils"

	"github.com/gin-gonic/gin"
)

// PresetHandler handles preset-related HTTP requests
type PresetHandler struct {
	presetService *services.PresetService
}

// NewPresetHandler creates a new preset handler
func NewPresetHandler(presetService *services.PresetService) *PresetHandler {
	return &PresetHandler{presetService: presetService}
}

// CreatePreset handles POST /presets/create
func (h *PresetHandler) CreatePreset(c *gin.Context) {
	var req models.CreatePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preset, err := h.presetService.CreatePreset(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, preset)
}

// ListPresets handles POST /presets/list
func (h *PresetHandler) ListPresets(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	presets, err := h.presetService.ListPresets(req.UserID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, presets)
}

// UpdatePreset handles POST /presets/update
func (h *PresetHandler) UpdatePreset(c *gin.Context) {
	var req models.UpdatePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preset, err := h.presetService.UpdatePreset(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, preset)
}

// DeletePreset handles POST /presets/delete
func (h *PresetHandler) DeletePreset(c *gin.Context) {
	var req struct {
		UserID   string `json:"userId" binding:"required"`
		PresetID string `json:"presetId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.presetService.DeletePreset(req.UserID, req.PresetID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"message": "Preset deleted successfully"})
}

// ApplyPreset handles POST /presets/apply
func (h *PresetHandler) ApplyPreset(c *gin.Context) {
	var req models.ApplyPresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.presetService.ApplyPreset(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, transaction)
}
