package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rentafacil/rentroll-backend/models"
	"github.com/rentafacil/rentroll-backend/utils"
)

// GenerateSchedule handles POST /schedules/generate
func GenerateSchedule(c *gin.Context) {
	var request models.GenerateScheduleRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	result, err := handlerServices.ScheduleService.GenerateSchedule(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, result)
}

// RegenerateSchedule handles POST /schedules/regenerate. Payment history is
// preserved across the rebuild; the whole operation succeeds or fails as one.
func RegenerateSchedule(c *gin.Context) {
	var request models.GenerateScheduleRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	result, err := handlerServices.ScheduleService.RegenerateSchedule(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, result)
}
