package handlers

import (
	"net/http"

	"github.com/paisabook/paisabook-backend/models"
	"github.com/paisabook/paisabook-backend/services"
	"github.com/paisabook/paisabook-backend/utils"

	"github.com/gin-gonic/gin"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetService *services.BudgetService
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService *services.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// UpsertBudget handles POST /budgets/upsert
func (h *BudgetHandler) UpsertBudget(c *gin.Context) {
	var req models.UpsertBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.budgetService.UpsertBudget(&req); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"message": "Budget saved"})
}

// ListBudgets handles POST /budgets/list
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"`
		Month  string `json:"month" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	budgets, err := h.budgetService.ListBudgets(req.UserID, req.Month)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, budgets)
}

// DeleteBudget handles POST /budgets/delete
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	var req struct {
		UserID   string `json:"userId" binding:"required"`
		Month    string `json:"month" binding:"required"`
		Category string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.budgetService.DeleteBudget(req.UserID, req.Month, req.Category); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"message": "Budget deleted successfully"})
}
