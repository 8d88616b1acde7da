package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rentafacil/rentroll-backend/models"
	"github.com/rentafacil/rentroll-backend/utils"
)

// CreateContract handles POST /contracts/create
func CreateContract(c *gin.Context) {
	var request models.CreateContractRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	contract, err := handlerServices.ContractService.CreateContract(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, contract)
}

// UpdateContract handles POST /contracts/update. Editing the rent or the
// item A amount recomputes item B before anything is stored.
func UpdateContract(c *gin.Context) {
	var request models.UpdateContractRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	contract, err := handlerServices.ContractService.UpdateContract(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, contract)
}

// GetContract handles POST /contracts/get
func GetContract(c *gin.Context) {
	var request struct {
		TenantID   string `json:"tenant_id" binding:"required"`
		ContractID string `json:"contract_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	contract, err := handlerServices.ContractService.GetContract(request.TenantID, request.ContractID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, contract)
}

// ActivateContract handles POST /contracts/activate
func ActivateContract(c *gin.Context) {
	var request models.ActivateContractRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	result, err := handlerServices.ContractService.ActivateContract(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, result)
}
