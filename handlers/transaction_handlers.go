package handlers

import (
	"net/http"

	"github.com/paisabook/paisabook-backend/models"
	"github.com/paisabook/paisabook-backend/services"
	"github.com/paisabook/paisabook-backend/utils"

	"github.com/gin-gonic/gin"
)

// TransactionHandler handles personal ledger HTTP requests
type TransactionHandler struct {
	transactionService *services.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransaction handles POST /transactions/create
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.transactionService.CreateTransaction(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// ListTransactions handles POST /transactions/list
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"`
		Take   int    `json:"take"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		transactions []*models.Transaction
		err          error
	)
	if req.Take > 0 {
		transactions, err = h.transactionService.GetRecentTransactions(req.UserID, req.Take)
	} else {
		transactions, err = h.transactionService.GetTransactions(req.UserID)
	}
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, transactions)
}

// UpdateTransaction handles POST /transactions/update
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var req models.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, transaction)
}

// DeleteTransaction handles POST /transactions/delete
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	var req struct {
		UserID        string `json:"userId" binding:"required"`
		TransactionID string `json:"transactionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.transactionService.DeleteTransaction(req.UserID, req.TransactionID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"message": "Transaction deleted successfully"})
}

// MarkSettled handles POST /transactions/markSettled
func (h *TransactionHandler) MarkSettled(c *gin.Context) {
	var req models.MarkTransactionSettledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.transactionService.MarkSettled(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, transaction)
}

// Transfer handles POST /transactions/transfer
func (h *TransactionHandler) Transfer(c *gin.Context) {
	var req models.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.transactionService.Transfer(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, transaction)
}
