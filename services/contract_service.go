package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/rentafacil/rentroll-backend/models"
	"github.com/rentafacil/rentroll-backend/repository"
	"github.com/rentafacil/rentroll-backend/utils"
)

// ContractService handles contract lifecycle: creation, edits that recompute
// the item split, and activation with schedule generation.
type ContractService struct {
	contractRepo    *repository.ContractRepository
	splitService    *SplitService
	scheduleService *ScheduleService
	notifications   *NotificationService
}

// NewContractService creates a new contract service
func NewContractService(contractRepo *repository.ContractRepository, splitService *SplitService,
	scheduleService *ScheduleService, notifications *NotificationService) *ContractService {
	return &ContractService{
		contractRepo:    contractRepo,
		splitService:    splitService,
		scheduleService: scheduleService,
		notifications:   notifications,
	}
}

// CreateContract drafts a new contract. Item B is derived from the rent and
// the item A amount; a zero item A degenerates to a single-item contract.
func (s *ContractService) CreateContract(req *models.CreateContractRequest) (*models.Contract, error) {
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if err := utils.ValidateCurrencyCode(currency, "contract currency"); err != nil {
		return nil, err
	}
	if err := s.validateMethods(req); err != nil {
		return nil, err
	}

	itemB, err := s.splitService.ComputeItemB(req.MonthlyRent, req.ItemAAmount)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	contract := &models.Contract{
		ID:           utils.GenerateID(),
		TenantID:     req.TenantID,
		PropertyID:   req.PropertyID,
		Currency:     currency,
		MonthlyRent:  utils.Round(req.MonthlyRent),
		ItemAAmount:  utils.Round(req.ItemAAmount),
		ItemBAmount:  itemB,
		ItemAMethod:  req.ItemAMethod,
		ItemBMethod:  req.ItemBMethod,
		MethodDetail: req.MethodDetail,
		Active:       false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.contractRepo.CreateContract(contract); err != nil {
		return nil, utils.NewInternalError(fmt.Sprintf("failed to store contract: %v", err))
	}

	return contract, nil
}

// UpdateContract applies a rent or item A edit and recomputes item B. The
// split is validated against the edited values before anything is written.
func (s *ContractService) UpdateContract(req *models.UpdateContractRequest) (*models.Contract, error) {
	contract, err := s.contractRepo.GetContractByID(req.TenantID, req.ContractID)
	if err != nil {
		return nil, utils.NewNotFoundError("contract")
	}

	rent := contract.MonthlyRent
	itemA := contract.ItemAAmount
	if req.MonthlyRent != nil {
		rent = *req.MonthlyRent
	}
	if req.ItemAAmount != nil {
		itemA = *req.ItemAAmount
	}

	itemB, err := s.splitService.ComputeItemB(rent, itemA)
	if err != nil {
		return nil, err
	}

	contract.MonthlyRent = utils.Round(rent)
	contract.ItemAAmount = utils.Round(itemA)
	contract.ItemBAmount = itemB
	contract.UpdatedAt = time.Now()

	if err := s.contractRepo.UpdateContractAmounts(contract); err != nil {
		return nil, utils.NewInternalError(fmt.Sprintf("failed to update contract: %v", err))
	}

	return contract, nil
}

// GetContract retrieves a contract scoped to a tenant
func (s *ContractService) GetContract(tenantID, contractID string) (*models.Contract, error) {
	contract, err := s.contractRepo.GetContractByID(tenantID, contractID)
	if err != nil {
		return nil, utils.NewNotFoundError("contract")
	}
	return contract, nil
}

// ActivateContract generates the contract's payment schedule, marks it
// active, then dispatches the activation notification. The notification is
// best-effort and runs after the financial state has committed.
func (s *ContractService) ActivateContract(req *models.ActivateContractRequest) (*models.ScheduleResult, error) {
	contract, err := s.contractRepo.GetContractByID(req.TenantID, req.ContractID)
	if err != nil {
		return nil, utils.NewNotFoundError("contract")
	}

	result, err := s.scheduleService.GenerateSchedule(&models.GenerateScheduleRequest{
		TenantID:   req.TenantID,
		ContractID: req.ContractID,
		Periods:    req.Periods,
	})
	if err != nil {
		return nil, err
	}

	if err := s.contractRepo.SetContractActive(req.TenantID, req.ContractID, true); err != nil {
		return nil, utils.NewInternalError(fmt.Sprintf("failed to activate contract: %v", err))
	}

	s.notifications.DispatchContractActivated(contract, len(result.Items))

	return result, nil
}

func (s *ContractService) validateMethods(req *models.CreateContractRequest) error {
	if req.ItemAAmount > 0 {
		if !utils.IsValidPaymentMethod(req.ItemAMethod) {
			return utils.NewValidationError(fmt.Sprintf("unknown payment method %q for item A", req.ItemAMethod))
		}
	}
	if !utils.IsValidPaymentMethod(req.ItemBMethod) {
		return utils.NewValidationError(fmt.Sprintf("unknown payment method %q for item B", req.ItemBMethod))
	}
	usesOther := req.ItemAMethod == utils.MethodOther || req.ItemBMethod == utils.MethodOther
	if usesOther && strings.TrimSpace(req.MethodDetail) == "" {
		return utils.NewValidationError("method detail is required when a payment method is \"other\"")
	}
	return nil
}
