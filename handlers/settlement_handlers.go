package handlers

import (
	"net/http"

	"github.com/paisabook/paisabook-backend/models"
	"github.com/paisabook/paisabook-backend/services"
	"github.com/paisabook/paisabook-backend/utils"

	"github.com/gin-gonic/gin"
)

// SettlementHandler handles settlement-related HTTP requests
type SettlementHandler struct {
	settlementService *services.SettlementService
}

// NewSettlementHandler creates a new settlement handler
func NewSettlementHandler(settlementService *services.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlementService: settlementService}
}

// CalculateSettlements handles POST /groups/settlements/calculate. It
// reconciles the persisted settlement set against current balances and
// returns the result.
func (h *SettlementHandler) CalculateSettlements(c *gin.Context) {
	var req models.GetGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settlements, balances, err := h.settlementService.Reconcile(req.GroupID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.SettlementSetResponse{
		GroupID:     req.GroupID,
		Settlements: settlements,
		Balances:    balances,
	})
}

// ListSettlements handles POST /groups/settlements/list. Read-only view of
// the persisted set.
func (h *SettlementHandler) ListSettlements(c *gin.Context) {
	var req models.GetGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settlements, err := h.settlementService.GetSettlements(req.GroupID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, settlements)
}

// CompleteSettlement handles POST /groups/settlements/complete
func (h *SettlementHandler) CompleteSettlement(c *gin.Context) {
	var req models.CompleteSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settlement, err := h.settlementService.CompleteSettlement(req.SettlementID, req.PaymentMethod, req.Notes)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, settlement)
}
