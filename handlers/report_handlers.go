package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rentafacil/rentroll-backend/models"
	"github.com/rentafacil/rentroll-backend/utils"
)

type reportRequest struct {
	TenantID   string `json:"tenant_id" binding:"required"`
	ContractID string `json:"contract_id" binding:"required"`
}

// GetScheduleExport handles POST /reports/schedule
func GetScheduleExport(c *gin.Context) {
	var request reportRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	rows, err := handlerServices.ReportService.GetExportRows(request.TenantID, request.ContractID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, rows)
}

// GetOwnerNetIncome handles POST /reports/ownerNetIncome
func GetOwnerNetIncome(c *gin.Context) {
	var request models.OwnerNetIncomeRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	rows, err := handlerServices.ReportService.OwnerNetIncome(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, rows)
}

// GetPayments handles POST /reports/payments
func GetPayments(c *gin.Context) {
	var request reportRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	events, err := handlerServices.ReportService.GetPaymentsByContract(request.TenantID, request.ContractID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, events)
}

// ExportScheduleCSV handles POST /reports/schedule/csv
func ExportScheduleCSV(c *gin.Context) {
	var request reportRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	rows, err := handlerServices.ReportService.GetExportRows(request.TenantID, request.ContractID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("schedule_%s.csv", utils.CleanFileName(request.ContractID))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))

	writer := csv.NewWriter(c.Writer)
	writer.Write([]string{"period", "owner", "item", "original_amount", "paid_amount", "pending_amount", "status"})
	for _, row := range rows {
		writer.Write([]string{
			row.Period,
			row.Owner,
			row.Item,
			strconv.FormatFloat(row.OriginalAmount, 'f', 2, 64),
			strconv.FormatFloat(row.PaidAmount, 'f', 2, 64),
			strconv.FormatFloat(row.PendingAmount, 'f', 2, 64),
			row.Status,
		})
	}
	writer.Flush()

	if err := writer.Error(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write CSV: " + err.Error()})
	}
}
