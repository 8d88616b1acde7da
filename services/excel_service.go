package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/rentafacil/rentroll-backend/models"
	"github.com/rentafacil/rentroll-backend/utils"
)

// ExcelService handles Excel export functionality
type ExcelService struct {
	contractService *ContractService
	reportService   *ReportService
}

// NewExcelService creates a new Excel service
func NewExcelService(contractService *ContractService, reportService *ReportService) *ExcelService {
	return &ExcelService{
		contractService: contractService,
		reportService:   reportService,
	}
}

// ExportContractToExcel generates an Excel workbook for a contract's ledger
func (s *ExcelService) ExportContractToExcel(tenantID, contractID string) (*excelize.File, string, error) {
	contract, err := s.contractService.GetContract(tenantID, contractID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get contract: %v", err)
	}

	rows, err := s.reportService.GetExportRows(tenantID, contractID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build export rows: %v", err)
	}

	netIncome, err := s.reportService.OwnerNetIncome(&models.OwnerNetIncomeRequest{
		TenantID:   tenantID,
		ContractID: contractID,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to build owner summary: %v", err)
	}

	events, err := s.reportService.GetPaymentsByContract(tenantID, contractID)
	if err != nil {
		// Payments are supplementary; export the schedule without them
		events = []models.PaymentEvent{}
	}

	f := excelize.NewFile()

	if err := s.createScheduleSheet(f, rows); err != nil {
		return nil, "", fmt.Errorf("failed to create schedule sheet: %v", err)
	}
	if err := s.createOwnerSummarySheet(f, netIncome); err != nil {
		return nil, "", fmt.Errorf("failed to create owner summary sheet: %v", err)
	}
	if err := s.createPaymentSheet(f, events); err != nil {
		return nil, "", fmt.Errorf("failed to create payment sheet: %v", err)
	}

	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("Contract_%s_Export_%s.xlsx",
		utils.CleanFileName(contract.ID),
		time.Now().Format("2006-01-02"))

	return f, filename, nil
}

func (s *ExcelService) headerStyle(f *excelize.File) int {
	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	return style
}

// createScheduleSheet writes the flat ledger table
func (s *ExcelService) createScheduleSheet(f *excelize.File, rows []models.ScheduleExportRow) error {
	sheetName := "Schedule"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	headers := []string{"Period", "Owner", "Item", "Original Amount", "Paid Amount", "Pending Amount", "Status"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), s.headerStyle(f))

	for i, row := range rows {
		r := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", r), row.Period)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", r), row.Owner)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", r), row.Item)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", r), row.OriginalAmount)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", r), row.PaidAmount)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", r), row.PendingAmount)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", r), row.Status)
	}

	f.SetColWidth(sheetName, "A", "G", 16)

	return nil
}

// createOwnerSummarySheet writes per-owner totals by period
func (s *ExcelService) createOwnerSummarySheet(f *excelize.File, rows []models.OwnerNetIncomeRow) error {
	sheetName := "Owner Summary"
	f.NewSheet(sheetName)

	headers := []string{"Period", "Owner", "Expected", "Paid", "Pending"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), s.headerStyle(f))

	for i, row := range rows {
		r := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", r), row.Period)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", r), row.OwnerName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", r), row.ExpectedTotal)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", r), row.PaidTotal)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", r), row.PendingTotal)
	}

	f.SetColWidth(sheetName, "A", "E", 15)

	return nil
}

// createPaymentSheet writes the payment event history
func (s *ExcelService) createPaymentSheet(f *excelize.File, events []models.PaymentEvent) error {
	sheetName := "Payments"
	f.NewSheet(sheetName)

	headers := []string{"Paid Date", "Amount", "Currency", "Converted Amount", "Rate", "Method", "Reference", "Status"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), s.headerStyle(f))

	for i, event := range events {
		r := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", r), event.PaidDate.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", r), event.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", r), event.Currency)
		if event.ConvertedAmount != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", r), *event.ConvertedAmount)
		}
		if event.ExchangeRate != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", r), *event.ExchangeRate)
		}
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", r), event.Method)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", r), event.Reference)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", r), event.ResultingStatus)
	}

	f.SetColWidth(sheetName, "A", "H", 15)

	return nil
}
