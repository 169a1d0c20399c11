package handlers

import (
	"net/http"

	"github.com/paisabook/paisabook-backend/models"
	"github.com/paisabook/paisabook-backend/services"
	"github.com/paisabook/paisabook-backend/utils"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet-related HTTP requests
type WalletHandler struct {
	walletService *services.WalletService
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletService *services.WalletService) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// GetWallets handles POST /wallets/get
func (h *WalletHandler) GetWallets(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wallets, err := h.walletService.GetWallets(req.UserID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, wallets)
}

// AddFunds handles POST /wallets/addFunds
func (h *WalletHandler) AddFunds(c *gin.Context) {
	var req struct {
		UserID string            `json:"userId" binding:"required"`
		Wallet models.WalletType `json:"wallet" binding:"required"`
		Amount float64           `json:"amount" binding:"required,gt=0"`
		Reason string            `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wallet, err := h.walletService.AddFunds(req.UserID, req.Wallet, req.Amount, req.Reason)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, wallet)
}

// GetHistory handles POST /wallets/history
func (h *WalletHandler) GetHistory(c *gin.Context) {
	var req struct {
		UserID string            `json:"userId" binding:"required"`
		Wallet models.WalletType `json:"wallet"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	history, err := h.walletService.History(req.UserID, req.Wallet)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, history)
}
