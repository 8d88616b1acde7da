package services

import (
	"fmt"

	"github.com/rentafacil/rentroll-backend/utils"
)

// SplitService derives the two payment buckets of a contract's monthly rent.
// Item B is always the remainder of rent minus item A and is never
// independently authoritative.
type SplitService struct{}

// NewSplitService creates a new split service
func NewSplitService() *SplitService {
	return &SplitService{}
}

// ComputeItemB derives the item B amount from the monthly rent and the item A
// amount. Callers must re-invoke it whenever either input changes. Inputs that
// violate the split constraints are rejected, never clamped.
func (s *SplitService) ComputeItemB(monthlyRent, itemA float64) (float64, error) {
	if monthlyRent < 0 {
		return 0, utils.NewInvalidAllocationError(
			fmt.Sprintf("monthly rent %.2f cannot be negative", monthlyRent))
	}
	if itemA < 0 {
		return 0, utils.NewInvalidAllocationError(
			fmt.Sprintf("item A amount %.2f cannot be negative", itemA))
	}
	if itemA > monthlyRent {
		return 0, utils.NewInvalidAllocationError(
			fmt.Sprintf("item A amount %.2f exceeds monthly rent %.2f", itemA, monthlyRent))
	}

	return utils.Round(monthlyRent - itemA), nil
}
