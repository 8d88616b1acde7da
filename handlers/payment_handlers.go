package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rentafacil/rentroll-backend/models"
	"github.com/rentafacil/rentroll-backend/utils"
)

// RecordPayment handles POST /payments/record
func RecordPayment(c *gin.Context) {
	var request models.RecordPaymentRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	result, err := handlerServices.LedgerService.RecordPayment(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, result)
}

// SuggestRate handles GET /payments/suggestRate. A failed lookup is reported
// as unavailable, not as an error: the caller falls back to manual entry.
func SuggestRate(c *gin.Context) {
	currency := c.Query("currency")
	if currency == "" {
		utils.HandleError(c, utils.NewBadRequestError("currency query parameter is required"))
		return
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.HandleError(c, utils.NewBadRequestError("invalid date, expected YYYY-MM-DD"))
			return
		}
		date = parsed
	}

	rate, err := handlerServices.RateService.LookupRate(date, currency)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"available": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": true, "rate": rate})
}

// GenerateReceipt handles POST /receipts/generate
func GenerateReceipt(c *gin.Context) {
	var request struct {
		TenantID       string `json:"tenant_id" binding:"required"`
		PaymentEventID string `json:"payment_event_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	receipt, err := handlerServices.ReceiptService.GenerateReceipt(request.TenantID, request.PaymentEventID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, receipt)
}
