package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExportContractToExcel exports a contract's ledger to Excel format
func ExportContractToExcel(c *gin.Context) {
	var request struct {
		TenantID   string `json:"tenant_id" binding:"required"`
		ContractID string `json:"contract_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	excelFile, filename, err := handlerServices.ExcelService.ExportContractToExcel(request.TenantID, request.ContractID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export contract: " + err.Error()})
		return
	}

	// Set headers for file download
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	// Write Excel file to response
	if err := excelFile.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file: " + err.Error()})
		return
	}
}
