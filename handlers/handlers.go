package handlers

import (
	"github.com/rentafacil/rentroll-backend/repository"
	"github.com/rentafacil/rentroll-backend/services"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	ContractService *services.ContractService
	ScheduleService *services.ScheduleService
	LedgerService   *services.LedgerService
	RateService     *services.RateService
	ReportService   *services.ReportService
	ExcelService    *services.ExcelService
	ReceiptService  *services.ReceiptService
}

// NewHandlerServices wires the repositories and services together
func NewHandlerServices() *HandlerServices {
	db := repository.GetDB()
	contractRepo := repository.NewContractRepository(db)
	ownershipRepo := repository.NewOwnershipRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	notifications := services.NewNotificationService(services.NewLogNotifier())
	splitService := services.NewSplitService()
	currencyService := services.NewCurrencyService()
	scheduleService := services.NewScheduleService(contractRepo, ownershipRepo, scheduleRepo)
	contractService := services.NewContractService(contractRepo, splitService, scheduleService, notifications)
	ledgerService := services.NewLedgerService(scheduleRepo, paymentRepo, contractRepo, currencyService)
	reportService := services.NewReportService(scheduleRepo, paymentRepo)

	return &HandlerServices{
		ContractService: contractService,
		ScheduleService: scheduleService,
		LedgerService:   ledgerService,
		RateService:     services.NewRateService(),
		ReportService:   reportService,
		ExcelService:    services.NewExcelService(contractService, reportService),
		ReceiptService:  services.NewReceiptService(paymentRepo, scheduleRepo, notifications),
	}
}

var handlerServices *HandlerServices

// InitHandlers initializes the handler services
func InitHandlers() {
	handlerServices = NewHandlerServices()
}
