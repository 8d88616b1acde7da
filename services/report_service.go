package services

import (
	"fmt"
	"sort"

	"github.com/rentafacil/rentroll-backend/models"
	"github.com/rentafacil/rentroll-backend/repository"
	"github.com/rentafacil/rentroll-backend/utils"
)

// ReportService aggregates ledger state for reporting. It only reads; the
// ledger is never mutated from here.
type ReportService struct {
	scheduleRepo *repository.ScheduleRepository
	paymentRepo  *repository.PaymentRepository
}

// NewReportService creates a new report service
func NewReportService(scheduleRepo *repository.ScheduleRepository, paymentRepo *repository.PaymentRepository) *ReportService {
	return &ReportService{
		scheduleRepo: scheduleRepo,
		paymentRepo:  paymentRepo,
	}
}

// GetExportRows returns the stable flat export table for a contract's ledger.
func (s *ReportService) GetExportRows(tenantID, contractID string) ([]models.ScheduleExportRow, error) {
	items, err := s.scheduleRepo.GetItemsByContract(tenantID, contractID)
	if err != nil {
		return nil, utils.NewInternalError(fmt.Sprintf("failed to load schedule: %v", err))
	}
	return BuildExportRows(items), nil
}

// BuildExportRows converts scheduled items into the export table shape:
// {period, owner, item, originalAmount, paidAmount, pendingAmount, status}.
func BuildExportRows(items []models.ScheduledItem) []models.ScheduleExportRow {
	rows := make([]models.ScheduleExportRow, len(items))
	for i, item := range items {
		rows[i] = models.ScheduleExportRow{
			Period:         item.Period.Format("2006-01-02"),
			Owner:          utils.FormatNameForDisplay(item.OwnerName),
			Item:           item.ItemTag,
			OriginalAmount: item.OriginalAmount,
			PaidAmount:     item.AccumulatedPaidAmount,
			PendingAmount:  item.ExpectedAmount,
			Status:         item.Status,
		}
	}
	return rows
}

// OwnerNetIncome aggregates per-owner totals for a contract. The accrual view
// groups by period of service; the cash view groups payments by the month
// they were actually paid.
func (s *ReportService) OwnerNetIncome(req *models.OwnerNetIncomeRequest) ([]models.OwnerNetIncomeRow, error) {
	items, err := s.scheduleRepo.GetItemsByContract(req.TenantID, req.ContractID)
	if err != nil {
		return nil, utils.NewInternalError(fmt.Sprintf("failed to load schedule: %v", err))
	}

	if req.View == "cash" {
		events, err := s.paymentRepo.GetEventsByContract(req.TenantID, req.ContractID)
		if err != nil {
			return nil, utils.NewInternalError(fmt.Sprintf("failed to load payments: %v", err))
		}
		return NetIncomeCash(items, events), nil
	}

	return NetIncomeAccrual(items), nil
}

type netIncomeKey struct {
	ownerID string
	period  string
}

// NetIncomeAccrual aggregates scheduled amounts by owner and period of
// service.
func NetIncomeAccrual(items []models.ScheduledItem) []models.OwnerNetIncomeRow {
	totals := make(map[netIncomeKey]*models.OwnerNetIncomeRow)
	for _, item := range items {
		key := netIncomeKey{ownerID: item.OwnerID, period: item.Period.Format("2006-01")}
		row, ok := totals[key]
		if !ok {
			row = &models.OwnerNetIncomeRow{
				OwnerID:   item.OwnerID,
				OwnerName: utils.FormatNameForDisplay(item.OwnerName),
				Period:    key.period,
			}
			totals[key] = row
		}
		row.ExpectedTotal = utils.Round(row.ExpectedTotal + item.OriginalAmount)
		row.PaidTotal = utils.Round(row.PaidTotal + item.AccumulatedPaidAmount)
		row.PendingTotal = utils.Round(row.PendingTotal + item.ExpectedAmount)
	}
	return sortNetIncomeRows(totals)
}

// NetIncomeCash aggregates payment events by owner and the month they were
// paid, in the contract currency. Expected and pending totals are not
// meaningful on a cash basis and stay zero.
func NetIncomeCash(items []models.ScheduledItem, events []models.PaymentEvent) []models.OwnerNetIncomeRow {
	owners := make(map[string]models.ScheduledItem, len(items))
	for _, item := range items {
		owners[item.ID] = item
	}

	totals := make(map[netIncomeKey]*models.OwnerNetIncomeRow)
	for _, event := range events {
		item, ok := owners[event.ScheduledItemID]
		if !ok {
			continue
		}

		amount := event.Amount
		if event.ConvertedAmount != nil {
			amount = *event.ConvertedAmount
		}

		key := netIncomeKey{ownerID: item.OwnerID, period: event.PaidDate.Format("2006-01")}
		row, ok := totals[key]
		if !ok {
			row = &models.OwnerNetIncomeRow{
				OwnerID:   item.OwnerID,
				OwnerName: utils.FormatNameForDisplay(item.OwnerName),
				Period:    key.period,
			}
			totals[key] = row
		}
		row.PaidTotal = utils.Round(row.PaidTotal + amount)
	}
	return sortNetIncomeRows(totals)
}

func sortNetIncomeRows(totals map[netIncomeKey]*models.OwnerNetIncomeRow) []models.OwnerNetIncomeRow {
	rows := make([]models.OwnerNetIncomeRow, 0, len(totals))
	for _, row := range totals {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Period != rows[j].Period {
			return rows[i].Period < rows[j].Period
		}
		return rows[i].OwnerName < rows[j].OwnerName
	})
	return rows
}

// GetPaymentsByContract lists a contract's payment events for the calendar
// view.
func (s *ReportService) GetPaymentsByContract(tenantID, contractID string) ([]models.PaymentEvent, error) {
	events, err := s.paymentRepo.GetEventsByContract(tenantID, contractID)
	if err != nil {
		return nil, utils.NewInternalError(fmt.Sprintf("failed to load payments: %v", err))
	}
	return events, nil
}
