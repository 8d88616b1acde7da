package models

import "time"

// PaymentEvent is one actual payment transaction against a scheduled item.
// Events are append-only: corrections are recorded as new events, never as
// edits or deletions. Every event links to its scheduled item; completion is
// determined by the accumulated-sum invariant, not by the link.
type PaymentEvent struct {
	ID              string    `json:"id" db:"id"`
	TenantID        string    `json:"tenant_id" db:"tenant_id"`
	ScheduledItemID string    `json:"scheduled_item_id" db:"scheduled_item_id"`
	ContractID      string    `json:"contract_id" db:"contract_id"`
	PaidDate        time.Time `json:"paid_date" db:"paid_date"`
	// Amount in the payment currency as tendered
	Amount    float64 `json:"amount" db:"amount"`
	Currency  string  `json:"currency" db:"currency"`
	Method    string  `json:"method" db:"method"`
	Reference string  `json:"reference,omitempty" db:"reference"`
	Notes     string  `json:"notes,omitempty" db:"notes"`
	// ExchangeRate and ConvertedAmount are set only when the payment currency
	// differs from the contract currency; the original figures are always kept.
	ExchangeRate    *float64  `json:"exchange_rate,omitempty" db:"exchange_rate"`
	ConvertedAmount *float64  `json:"converted_amount,omitempty" db:"converted_amount"`
	ResultingStatus string    `json:"resulting_status" db:"resulting_status"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// RecordPaymentRequest represents the request body for recording a payment
type RecordPaymentRequest struct {
	TenantID        string   `json:"tenant_id" binding:"required"`
	ScheduledItemID string   `json:"scheduled_item_id" binding:"required"`
	Amount          float64  `json:"amount" binding:"required,gt=0"`
	Currency        string   `json:"currency" binding:"required"`
	Method          string   `json:"method"`
	Reference       string   `json:"reference"`
	Notes           string   `json:"notes"`
	PaidDate        string   `json:"paid_date" binding:"required"`
	ExchangeRate    *float64 `json:"exchange_rate"`
}

// RecordPaymentResult carries the updated item and the appended event.
type RecordPaymentResult struct {
	Item  ScheduledItem `json:"item"`
	Event PaymentEvent  `json:"event"`
}

// Conversion carries both sides of a currency normalization so downstream
// reporting never loses the original figure.
type Conversion struct {
	OriginalAmount    float64  `json:"original_amount"`
	OriginalCurrency  string   `json:"original_currency"`
	ConvertedAmount   float64  `json:"converted_amount"`
	ConvertedCurrency string   `json:"converted_currency"`
	Rate              *float64 `json:"rate,omitempty"`
}
