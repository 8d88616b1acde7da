package services

import (
	"fmt"
	"math"
	"time"

	"github.com/rentafacil/rentroll-backend/models"
	"github.com/rentafacil/rentroll-backend/repository"
	"github.com/rentafacil/rentroll-backend/utils"
)

// ScheduleStore is the scheduled item storage the ledger depends on.
// ApplyPayment must be conditional on the expected amount the caller read so
// that concurrent writers cannot both consume the same balance; it returns
// repository.ErrStaleBalance when the condition does not hold.
type ScheduleStore interface {
	GetItemByID(tenantID, itemID string) (*models.ScheduledItem, error)
	ApplyPayment(tenantID, itemID string, readExpected, newAccumulated, newExpected float64, newStatus string) error
}

// EventStore is the append-only payment event storage the ledger writes to.
type EventStore interface {
	CreateEvent(event *models.PaymentEvent) error
}

// ContractStore resolves the contract a scheduled item belongs to, for
// currency normalization.
type ContractStore interface {
	GetContractByID(tenantID, contractID string) (*models.Contract, error)
}

// applyRetries bounds how often a payment is retried after losing a
// conditional update race before giving up.
const applyRetries = 5

// LedgerService records payment events against scheduled items and keeps the
// originalAmount == accumulatedPaidAmount + expectedAmount invariant.
type LedgerService struct {
	items     ScheduleStore
	events    EventStore
	contracts ContractStore
	currency  *CurrencyService
}

// NewLedgerService creates a new ledger service
func NewLedgerService(items ScheduleStore, events EventStore, contracts ContractStore, currency *CurrencyService) *LedgerService {
	return &LedgerService{
		items:     items,
		events:    events,
		contracts: contracts,
		currency:  currency,
	}
}

// RecordPayment validates and records one payment against a scheduled item.
// All validation happens before any write. The balance update is a single
// conditional write: when a concurrent payment invalidates the read balance,
// the operation re-reads and re-validates, so of two simultaneous full
// payments exactly one succeeds and the other is rejected as excess.
func (s *LedgerService) RecordPayment(req *models.RecordPaymentRequest) (*models.RecordPaymentResult, error) {
	paidDate, err := s.validateRequest(req)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < applyRetries; attempt++ {
		item, err := s.items.GetItemByID(req.TenantID, req.ScheduledItemID)
		if err != nil {
			return nil, utils.NewNotFoundError("scheduled item")
		}

		contract, err := s.contracts.GetContractByID(req.TenantID, item.ContractID)
		if err != nil {
			return nil, utils.NewNotFoundError("contract")
		}

		conversion, err := s.currency.Convert(req.Amount, req.Currency, contract.Currency, req.ExchangeRate)
		if err != nil {
			return nil, err
		}

		updated, err := applyPayment(*item, conversion.ConvertedAmount)
		if err != nil {
			return nil, err
		}

		err = s.items.ApplyPayment(req.TenantID, item.ID, item.ExpectedAmount,
			updated.AccumulatedPaidAmount, updated.ExpectedAmount, updated.Status)
		if err == repository.ErrStaleBalance {
			// Lost the race; re-read and re-validate against the fresh balance.
			continue
		}
		if err != nil {
			return nil, utils.NewInternalError(fmt.Sprintf("failed to update scheduled item: %v", err))
		}

		event := s.buildEvent(req, item, conversion, paidDate, updated.Status)
		if err := s.events.CreateEvent(event); err != nil {
			return nil, utils.NewInternalError(fmt.Sprintf("failed to store payment event: %v", err))
		}

		return &models.RecordPaymentResult{Item: updated, Event: *event}, nil
	}

	return nil, utils.NewInternalError("payment could not be applied after repeated balance conflicts")
}

func (s *LedgerService) validateRequest(req *models.RecordPaymentRequest) (time.Time, error) {
	if err := utils.ValidatePositive(req.Amount, "payment amount"); err != nil {
		return time.Time{}, err
	}
	if req.Method == "" {
		return time.Time{}, utils.NewMissingMethodError()
	}
	if !utils.IsValidPaymentMethod(req.Method) {
		return time.Time{}, utils.NewValidationError(fmt.Sprintf("unknown payment method %q", req.Method))
	}
	if err := utils.ValidateCurrencyCode(req.Currency, "payment currency"); err != nil {
		return time.Time{}, err
	}

	paidDate, err := time.Parse("2006-01-02", req.PaidDate)
	if err != nil {
		return time.Time{}, utils.NewValidationError(fmt.Sprintf("invalid paid date %q, expected YYYY-MM-DD", req.PaidDate))
	}
	if err := utils.ValidateNotFuture(paidDate, time.Now(), "paid date"); err != nil {
		return time.Time{}, err
	}

	return paidDate, nil
}

// applyPayment computes the item state after a payment in the contract
// currency. The amount may not exceed the outstanding balance; there is no
// overpayment credit. The returned item satisfies
// originalAmount == accumulatedPaidAmount + expectedAmount.
func applyPayment(item models.ScheduledItem, amount float64) (models.ScheduledItem, error) {
	if amount > item.ExpectedAmount+utils.BalanceTolerance {
		return item, utils.NewExcessPaymentError(amount, item.ExpectedAmount)
	}

	item.AccumulatedPaidAmount = utils.Round(item.AccumulatedPaidAmount + amount)
	item.ExpectedAmount = utils.Round(math.Max(0, item.OriginalAmount-item.AccumulatedPaidAmount))

	if item.ExpectedAmount <= utils.BalanceTolerance {
		item.ExpectedAmount = 0
		item.AccumulatedPaidAmount = item.OriginalAmount
		item.Status = utils.StatusPaid
	} else {
		item.Status = utils.StatusPartial
	}

	return item, nil
}

func (s *LedgerService) buildEvent(req *models.RecordPaymentRequest, item *models.ScheduledItem,
	conversion *models.Conversion, paidDate time.Time, resultingStatus string) *models.PaymentEvent {

	event := &models.PaymentEvent{
		ID:              utils.GenerateID(),
		TenantID:        req.TenantID,
		ScheduledItemID: item.ID,
		ContractID:      item.ContractID,
		PaidDate:        paidDate,
		Amount:          conversion.OriginalAmount,
		Currency:        conversion.OriginalCurrency,
		Method:          req.Method,
		Reference:       req.Reference,
		Notes:           req.Notes,
		ResultingStatus: resultingStatus,
		CreatedAt:       time.Now(),
	}

	if conversion.OriginalCurrency != conversion.ConvertedCurrency {
		event.ExchangeRate = conversion.Rate
		converted := conversion.ConvertedAmount
		event.ConvertedAmount = &converted
	}

	return event
}
