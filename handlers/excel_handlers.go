package handlers

import (
	"fmt"
	"net/http"

	"github.com/paisabook/paisabook-backend/models"
	"github.com/paisabook/paisabook-backend/services"
	"github.com/paisabook/paisabook-backend/utils"

	"github.com/gin-gonic/gin"
)

// ExcelHandler handles group export HTTP requests
type ExcelHandler struct {
	excelService *services.ExcelService
}

// NewExcelHandler creates a new Excel handler
func NewExcelHandler(excelService *services.ExcelService) *ExcelHandler {
	return &ExcelHandler{excelService: excelService}
}

// ExportGroup handles POST /groups/export
func (h *ExcelHandler) ExportGroup(c *gin.Context) {
	var req models.GetGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	excelFile, filename, err := h.excelService.ExportGroupToExcel(req.GroupID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := excelFile.Write(c.Writer); err != nil {
		utils.HandleError(c, utils.NewInternalError("Failed to write Excel file: "+err.Error()))
		return
	}
}
