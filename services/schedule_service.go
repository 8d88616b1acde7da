package services

import (
	"fmt"
	"math"
	"time"

	"github.com/rentafacil/rentroll-backend/models"
	"github.com/rentafacil/rentroll-backend/repository"
	"github.com/rentafacil/rentroll-backend/utils"
)

// ScheduleService expands a contract's payment structure into per-owner
// scheduled items and manages schedule regeneration.
type ScheduleService struct {
	contractRepo  *repository.ContractRepository
	ownershipRepo *repository.OwnershipRepository
	scheduleRepo  *repository.ScheduleRepository
}

// NewScheduleService creates a new schedule service
func NewScheduleService(contractRepo *repository.ContractRepository,
	ownershipRepo *repository.OwnershipRepository,
	scheduleRepo *repository.ScheduleRepository) *ScheduleService {
	return &ScheduleService{
		contractRepo:  contractRepo,
		ownershipRepo: ownershipRepo,
		scheduleRepo:  scheduleRepo,
	}
}

// BuildSchedule expands one scheduled item per period x active share x
// non-zero contract item. A zero-amount item produces no lines at all, and a
// share's activity window is evaluated against each period date. Shares whose
// owner cannot be resolved are skipped and reported as warnings rather than
// failing the whole schedule.
func (s *ScheduleService) BuildSchedule(contract *models.Contract,
	shares []models.OwnershipShare, periods []time.Time, now time.Time) (*models.ScheduleResult, error) {

	if err := utils.ValidateNotEmpty(periods, "periods"); err != nil {
		return nil, err
	}
	if err := utils.ValidateNotEmpty(shares, "ownership shares"); err != nil {
		return nil, err
	}
	for _, share := range shares {
		if err := utils.ValidatePercentage(share.Percentage, "share percentage"); err != nil {
			return nil, err
		}
	}

	result := &models.ScheduleResult{}
	today := truncateToDay(now)

	for _, period := range periods {
		periodDate := truncateToDay(period)

		var activeTotal float64
		for _, share := range shares {
			if share.ActiveOn(periodDate) && share.OwnerID != "" {
				activeTotal += share.Percentage
			}
		}
		if activeTotal > 0 && !utils.WithinTolerance(activeTotal, 100) {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"ownership shares active on %s sum to %.2f%%, not 100%%",
				periodDate.Format("2006-01-02"), activeTotal))
		}

		for _, share := range shares {
			if !share.ActiveOn(periodDate) {
				continue
			}
			if share.OwnerID == "" {
				result.Warnings = append(result.Warnings, fmt.Sprintf(
					"share %d on property %s has no resolvable owner, skipped",
					share.ID, share.PropertyID))
				continue
			}

			for _, itemTag := range []string{utils.ItemTagA, utils.ItemTagB} {
				itemAmount := contract.ItemAmount(itemTag)
				if itemAmount == 0 {
					continue
				}

				original := utils.Round(itemAmount * share.Percentage / 100)
				status := utils.StatusPending
				if periodDate.Before(today) {
					status = utils.StatusOverdue
				}

				result.Items = append(result.Items, models.ScheduledItem{
					ID:                    utils.GenerateID(),
					TenantID:              contract.TenantID,
					ContractID:            contract.ID,
					ItemTag:               itemTag,
					Period:                periodDate,
					OwnerID:               share.OwnerID,
					OwnerName:             share.OwnerName,
					OwnerPercentage:       share.Percentage,
					OriginalAmount:        original,
					ExpectedAmount:        original,
					AccumulatedPaidAmount: 0,
					Status:                status,
					CreatedAt:             now,
				})
			}
		}
	}

	return result, nil
}

// GenerateSchedule builds and persists a fresh schedule for a contract that
// has none yet.
func (s *ScheduleService) GenerateSchedule(req *models.GenerateScheduleRequest) (*models.ScheduleResult, error) {
	contract, shares, periods, err := s.loadInputs(req.TenantID, req.ContractID, req.Periods)
	if err != nil {
		return nil, err
	}

	result, err := s.BuildSchedule(contract, shares, periods, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.scheduleRepo.InsertItems(result.Items); err != nil {
		return nil, utils.NewInternalError(fmt.Sprintf("failed to store schedule: %v", err))
	}

	return result, nil
}

// RegenerateSchedule atomically rebuilds a contract's schedule. Payment
// history is preserved: new items matching an existing (period, item, owner)
// line inherit its accumulated paid amount, and that line's payment events
// are re-linked to the new row before the old rows are deleted. Any step
// failure rolls the whole operation back.
func (s *ScheduleService) RegenerateSchedule(req *models.GenerateScheduleRequest) (*models.ScheduleResult, error) {
	contract, shares, periods, err := s.loadInputs(req.TenantID, req.ContractID, req.Periods)
	if err != nil {
		return nil, err
	}

	fresh, err := s.BuildSchedule(contract, shares, periods, time.Now())
	if err != nil {
		return nil, err
	}

	var result *models.ScheduleResult
	err = s.scheduleRepo.RegenerateSchedule(req.TenantID, req.ContractID,
		func(existing []models.ScheduledItem) ([]models.ScheduledItem, map[string]string, error) {
			merged, relink := MergeScheduleHistory(fresh.Items, existing)
			result = &models.ScheduleResult{Items: merged, Warnings: fresh.Warnings}
			return merged, relink, nil
		})
	if err != nil {
		return nil, utils.NewRegenerationFailedError(req.ContractID, err)
	}

	return result, nil
}

// MergeScheduleHistory carries payment history from an existing schedule onto
// a freshly built one. New items matching an old line by (period, item,
// owner) inherit its accumulated paid amount with the balance and status
// rederived from the original amount. It returns the merged items plus the
// old-to-new id mapping used to re-link payment events.
func MergeScheduleHistory(fresh, existing []models.ScheduledItem) ([]models.ScheduledItem, map[string]string) {
	byKey := make(map[models.ScheduleKey]models.ScheduledItem, len(existing))
	for _, item := range existing {
		byKey[item.Key()] = item
	}

	relink := make(map[string]string)
	merged := make([]models.ScheduledItem, len(fresh))
	for i, item := range fresh {
		old, ok := byKey[item.Key()]
		if !ok {
			merged[i] = item
			continue
		}

		relink[old.ID] = item.ID
		item.AccumulatedPaidAmount = old.AccumulatedPaidAmount
		item.ExpectedAmount = utils.Round(math.Max(0, item.OriginalAmount-item.AccumulatedPaidAmount))
		switch {
		case item.ExpectedAmount <= utils.BalanceTolerance:
			item.ExpectedAmount = 0
			item.Status = utils.StatusPaid
		case item.AccumulatedPaidAmount > 0:
			item.Status = utils.StatusPartial
		}
		merged[i] = item
	}

	return merged, relink
}

func (s *ScheduleService) loadInputs(tenantID, contractID string, rawPeriods []string) (*models.Contract, []models.OwnershipShare, []time.Time, error) {
	contract, err := s.contractRepo.GetContractByID(tenantID, contractID)
	if err != nil {
		return nil, nil, nil, utils.NewNotFoundError("contract")
	}

	shares, err := s.ownershipRepo.GetSharesByProperty(tenantID, contract.PropertyID)
	if err != nil {
		return nil, nil, nil, utils.NewInternalError(fmt.Sprintf("failed to load ownership shares: %v", err))
	}

	periods, err := ParsePeriods(rawPeriods)
	if err != nil {
		return nil, nil, nil, err
	}

	return contract, shares, periods, nil
}

// ParsePeriods parses period dates in YYYY-MM-DD format
func ParsePeriods(raw []string) ([]time.Time, error) {
	periods := make([]time.Time, len(raw))
	for i, value := range raw {
		parsed, err := time.Parse("2006-01-02", value)
		if err != nil {
			return nil, utils.NewValidationError(fmt.Sprintf("invalid period date %q, expected YYYY-MM-DD", value))
		}
		periods[i] = parsed
	}
	return periods, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
