package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rentafacil/rentroll-backend/handlers"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine) {
	handlers.InitHandlers()

	v1 := router.Group("/api/v1")
	{
		// Contract endpoints
		v1.POST("/contracts/create", handlers.CreateContract)
		v1.POST("/contracts/update", handlers.UpdateContract)
		v1.POST("/contracts/get", handlers.GetContract)
		v1.POST("/contracts/activate", handlers.ActivateContract)

		// Schedule endpoints
		v1.POST("/schedules/generate", handlers.GenerateSchedule)
		v1.POST("/schedules/regenerate", handlers.RegenerateSchedule)

		// Payment endpoints
		v1.POST("/payments/record", handlers.RecordPayment)
		v1.GET("/payments/suggestRate", handlers.SuggestRate)

		// Receipt endpoints
		v1.POST("/receipts/generate", handlers.GenerateReceipt)

		// Report endpoints
		v1.POST("/reports/schedule", handlers.GetScheduleExport)
		v1.POST("/reports/schedule/csv", handlers.ExportScheduleCSV)
		v1.POST("/reports/ownerNetIncome", handlers.GetOwnerNetIncome)
		v1.POST("/reports/payments", handlers.GetPayments)
		v1.POST("/reports/excel", handlers.ExportContractToExcel)
	}
}
