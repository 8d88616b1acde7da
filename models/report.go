package models

import "time"

// ScheduleExportRow is the stable flat shape the ledger exports for
// spreadsheet and CSV consumers.
type ScheduleExportRow struct {
	Period         string  `json:"period"`
	Owner          string  `json:"owner"`
	Item           string  `json:"item"`
	OriginalAmount float64 `json:"original_amount"`
	PaidAmount     float64 `json:"paid_amount"`
	PendingAmount  float64 `json:"pending_amount"`
	Status         string  `json:"status"`
}

// OwnerNetIncomeRow aggregates a single owner's totals for a period.
type OwnerNetIncomeRow struct {
	OwnerID       string  `json:"owner_id"`
	OwnerName     string  `json:"owner_name"`
	Period        string  `json:"period"`
	ExpectedTotal float64 `json:"expected_total"`
	PaidTotal     float64 `json:"paid_total"`
	PendingTotal  float64 `json:"pending_total"`
}

// Receipt represents a generated receipt for a payment event
type Receipt struct {
	ReceiptNumber  string    `json:"receipt_number"`
	PaymentEventID string    `json:"payment_event_id"`
	ContractID     string    `json:"contract_id"`
	OwnerName      string    `json:"owner_name"`
	Amount         float64   `json:"amount"`
	Currency       string    `json:"currency"`
	PaidDate       time.Time `json:"paid_date"`
	IssuedAt       time.Time `json:"issued_at"`
}

// OwnerNetIncomeRequest represents the request body for the net income report
type OwnerNetIncomeRequest struct {
	TenantID   string `json:"tenant_id" binding:"required"`
	ContractID string `json:"contract_id" binding:"required"`
	// View selects the aggregation basis: "accrual" groups by period of
	// service, "cash" groups by the date actually paid.
	View string `json:"view"`
}
