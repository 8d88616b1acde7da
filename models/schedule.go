package models

import "time"

// OwnershipShare represents one owner's fractional interest in a property,
// active over a date range. A nil EndDate means the share is open-ended.
type OwnershipShare struct {
	ID         int        `json:"id" db:"id"`
	TenantID   string     `json:"tenant_id" db:"tenant_id"`
	PropertyID string     `json:"property_id" db:"property_id"`
	OwnerID    string     `json:"owner_id" db:"owner_id"`
	OwnerName  string     `json:"owner_name" db:"owner_name"`
	Percentage float64    `json:"percentage" db:"percentage"`
	StartDate  time.Time  `json:"start_date" db:"start_date"`
	EndDate    *time.Time `json:"end_date,omitempty" db:"end_date"`
}

// ActiveOn reports whether the share is active on the given date. The
// activity window is evaluated per period date, not just "currently active".
func (s *OwnershipShare) ActiveOn(date time.Time) bool {
	if date.Before(s.StartDate) {
		return false
	}
	if s.EndDate != nil && date.After(*s.EndDate) {
		return false
	}
	return true
}

// ScheduledItem is one expected payment line, identified by
// (contract, item tag, period, owner).
type ScheduledItem struct {
	ID              string    `json:"id" db:"id"`
	TenantID        string    `json:"tenant_id" db:"tenant_id"`
	ContractID      string    `json:"contract_id" db:"contract_id"`
	ItemTag         string    `json:"item_tag" db:"item_tag"`
	Period          time.Time `json:"period" db:"period"`
	OwnerID         string    `json:"owner_id" db:"owner_id"`
	OwnerName       string    `json:"owner_name" db:"owner_name"`
	OwnerPercentage float64   `json:"owner_percentage" db:"owner_percentage"`
	// OriginalAmount is immutable once set: contract item amount x owner share%
	OriginalAmount float64 `json:"original_amount" db:"original_amount"`
	// ExpectedAmount is the current outstanding balance
	ExpectedAmount float64 `json:"expected_amount" db:"expected_amount"`
	// AccumulatedPaidAmount is the running total paid
	AccumulatedPaidAmount float64   `json:"accumulated_paid_amount" db:"accumulated_paid_amount"`
	Status                string    `json:"status" db:"status"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`
}

// ScheduleKey identifies a scheduled item line within a contract for
// re-linking payment history across regenerations.
type ScheduleKey struct {
	ItemTag string
	Period  time.Time
	OwnerID string
}

// Key returns the re-link identity of the item within its contract.
func (i *ScheduledItem) Key() ScheduleKey {
	return ScheduleKey{ItemTag: i.ItemTag, Period: truncateToDay(i.Period), OwnerID: i.OwnerID}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ScheduleResult is the outcome of generating or regenerating a schedule.
// Warnings carry non-fatal owner resolution problems; the schedule itself
// is still usable.
type ScheduleResult struct {
	Items    []ScheduledItem `json:"items"`
	Warnings []string        `json:"warnings,omitempty"`
}

// GenerateScheduleRequest represents the request body for schedule generation
type GenerateScheduleRequest struct {
	TenantID   string   `json:"tenant_id" binding:"required"`
	ContractID string   `json:"contract_id" binding:"required"`
	Periods    []string `json:"periods" binding:"required,min=1"`
}
