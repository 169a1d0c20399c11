package handlers

import (
	"net/http"

	"github.com/paisabook/paisabook-backend/models"
	"github.com/paisabook/paisabook-backend/services"
	"github.com/paisabook/paisabook-backend/utils"

	"github.com/gin-gonic/gin"
)

// GroupHandler handles group-related HTTP requests
type GroupHandler struct {
	groupService *services.GroupService
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(groupService *services.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// CreateGroup handles POST /groups/create
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req models.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.groupService.CreateGroup(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

// JoinGroup handles POST /groups/join
func (h *GroupHandler) JoinGroup(c *gin.Context) {
	var req models.JoinGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.groupService.JoinGroup(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, group)
}

// GetGroup handles POST /groups/get
func (h *GroupHandler) GetGroup(c *gin.Context) {
	var req models.GetGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.groupService.GetGroup(req.GroupID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, group)
}

// ListGroups handles POST /groups/list
func (h *GroupHandler) ListGroups(c *gin.Context) {
	var req models.ListGroupsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	groups, err := h.groupService.ListGroups(req.UserID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, groups)
}

// AddExpense handles POST /groups/expenses/add
func (h *GroupHandler) AddExpense(c *gin.Context) {
	var req models.AddGroupExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, err := h.groupService.AddExpense(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// ListExpenses handles POST /groups/expenses/list
func (h *GroupHandler) ListExpenses(c *gin.Context) {
	var req models.GetGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expenses, err := h.groupService.ListExpenses(req.GroupID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, expenses)
}

// MarkSplitSettled handles POST /groups/expenses/markSplitSettled
func (h *GroupHandler) MarkSplitSettled(c *gin.Context) {
	var req struct {
		ExpenseID string `json:"expenseId" binding:"required"`
		UserID    string `json:"userId" binding:"required"`
		SettledBy string `json:"settledBy" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.groupService.MarkSplitSettled(req.ExpenseID, req.UserID, req.SettledBy); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"message": "Split marked settled"})
}
