package models

import "time"

// Contract represents a lease with a two-item monthly payment structure.
// ItemBAmount is always derived from MonthlyRent - ItemAAmount and is
// recomputed on every edit, never set directly.
type Contract struct {
	ID          string  `json:"id" db:"id"`
	TenantID    string  `json:"tenant_id" db:"tenant_id"`
	PropertyID  string  `json:"property_id" db:"property_id"`
	Currency    string  `json:"currency" db:"currency"`
	MonthlyRent float64 `json:"monthly_rent" db:"monthly_rent"`
	ItemAAmount float64 `json:"item_a_amount" db:"item_a_amount"`
	ItemBAmount float64 `json:"item_b_amount" db:"item_b_amount"`
	ItemAMethod string  `json:"item_a_method" db:"item_a_method"`
	ItemBMethod string  `json:"item_b_method" db:"item_b_method"`
	// MethodDetail carries the free-form description when a method is "other"
	MethodDetail string    `json:"method_detail,omitempty" db:"method_detail"`
	Active       bool      `json:"active" db:"active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// ItemAmount returns the contract amount for the given item tag.
func (c *Contract) ItemAmount(itemTag string) float64 {
	if itemTag == "A" {
		return c.ItemAAmount
	}
	return c.ItemBAmount
}

// CreateContractRequest represents the request body for creating a contract
type CreateContractRequest struct {
	TenantID     string  `json:"tenant_id" binding:"required"`
	PropertyID   string  `json:"property_id" binding:"required"`
	Currency     string  `json:"currency" binding:"required"`
	MonthlyRent  float64 `json:"monthly_rent" binding:"required,gt=0"`
	ItemAAmount  float64 `json:"item_a_amount" binding:"min=0"`
	ItemAMethod  string  `json:"item_a_method"`
	ItemBMethod  string  `json:"item_b_method" binding:"required"`
	MethodDetail string  `json:"method_detail"`
}

// UpdateContractRequest represents the request body for editing rent or the
// item A amount. Item B is recomputed by the service.
type UpdateContractRequest struct {
	TenantID    string   `json:"tenant_id" binding:"required"`
	ContractID  string   `json:"contract_id" binding:"required"`
	MonthlyRent *float64 `json:"monthly_rent"`
	ItemAAmount *float64 `json:"item_a_amount"`
}

// ActivateContractRequest represents the request body for activating a
// contract and generating its payment schedule.
type ActivateContractRequest struct {
	TenantID   string   `json:"tenant_id" binding:"required"`
	ContractID string   `json:"contract_id" binding:"required"`
	Periods    []string `json:"periods" binding:"required,min=1"`
}
