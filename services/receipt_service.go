package services

import (
	"time"

	"github.com/rentafacil/rentroll-backend/models"
	"github.com/rentafacil/rentroll-backend/repository"
	"github.com/rentafacil/rentroll-backend/utils"
)

// ReceiptService issues receipts for recorded payment events
type ReceiptService struct {
	paymentRepo   *repository.PaymentRepository
	scheduleRepo  *repository.ScheduleRepository
	notifications *NotificationService
}

// NewReceiptService creates a new receipt service
func NewReceiptService(paymentRepo *repository.PaymentRepository,
	scheduleRepo *repository.ScheduleRepository,
	notifications *NotificationService) *ReceiptService {
	return &ReceiptService{
		paymentRepo:   paymentRepo,
		scheduleRepo:  scheduleRepo,
		notifications: notifications,
	}
}

// GenerateReceipt issues a receipt for a payment event and dispatches the
// receipt notification. The notification is best-effort and runs after the
// receipt exists.
func (s *ReceiptService) GenerateReceipt(tenantID, eventID string) (*models.Receipt, error) {
	event, err := s.paymentRepo.GetEventByID(tenantID, eventID)
	if err != nil {
		return nil, utils.NewNotFoundError("payment event")
	}

	item, err := s.scheduleRepo.GetItemByID(tenantID, event.ScheduledItemID)
	if err != nil {
		return nil, utils.NewNotFoundError("scheduled item")
	}

	receipt := &models.Receipt{
		ReceiptNumber:  utils.GenerateReceiptNumber(),
		PaymentEventID: event.ID,
		ContractID:     event.ContractID,
		OwnerName:      utils.FormatNameForDisplay(item.OwnerName),
		Amount:         event.Amount,
		Currency:       event.Currency,
		PaidDate:       event.PaidDate,
		IssuedAt:       time.Now(),
	}

	s.notifications.DispatchReceiptIssued(receipt)

	return receipt, nil
}
