package services

import (
	"log"

	"github.com/rentafacil/rentroll-backend/models"
)

// Notifier delivers notifications to the outside world (email dispatch in
// production). Delivery is best-effort from the core's perspective: failures
// are logged by the dispatcher and never roll back the financial state change
// that triggered them.
type Notifier interface {
	NotifyContractActivated(contract *models.Contract, itemCount int) error
	NotifyReceiptIssued(receipt *models.Receipt) error
}

// LogNotifier is the default Notifier; it only logs. Real deployments swap in
// an email-backed implementation.
type LogNotifier struct{}

// NewLogNotifier creates a logging notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) NotifyContractActivated(contract *models.Contract, itemCount int) error {
	log.Printf("notification: contract %s activated with %d scheduled items", contract.ID, itemCount)
	return nil
}

func (n *LogNotifier) NotifyReceiptIssued(receipt *models.Receipt) error {
	log.Printf("notification: receipt %s issued for payment %s", receipt.ReceiptNumber, receipt.PaymentEventID)
	return nil
}

// NotificationService dispatches notifications asynchronously after the
// synchronous mutation that triggered them has committed.
type NotificationService struct {
	notifier Notifier
}

// NewNotificationService creates a new notification service
func NewNotificationService(notifier Notifier) *NotificationService {
	return &NotificationService{notifier: notifier}
}

// DispatchContractActivated sends the activation notification in the
// background, logging any delivery failure.
func (s *NotificationService) DispatchContractActivated(contract *models.Contract, itemCount int) {
	go func() {
		if err := s.notifier.NotifyContractActivated(contract, itemCount); err != nil {
			log.Printf("Warning: contract activation notification failed for %s: %v", contract.ID, err)
		}
	}()
}

// DispatchReceiptIssued sends the receipt notification in the background,
// logging any delivery failure.
func (s *NotificationService) DispatchReceiptIssued(receipt *models.Receipt) {
	go func() {
		if err := s.notifier.NotifyReceiptIssued(receipt); err != nil {
			log.Printf("Warning: receipt notification failed for %s: %v", receipt.ReceiptNumber, err)
		}
	}()
}
