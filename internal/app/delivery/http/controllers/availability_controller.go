package controllers

import (
	"net/http"
	"strconv"

	"deskwise-service/internal/app/contracts"
	"deskwise-service/internal/pkg/constvars"
	"deskwise-service/internal/pkg/dto/requests"
	"deskwise-service/internal/pkg/exceptions"
	"deskwise-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AvailabilityController struct {
	Usecase contracts.AvailabilityUsecase
	Log     *zap.Logger
}

func NewAvailabilityController(usecase contracts.AvailabilityUsecase, log *zap.Logger) *AvailabilityController {
	return &AvailabilityController{
		Usecase: usecase,
		Log:     log,
	}
}

func (c *AvailabilityController) FindOptimalSlot(w http.ResponseWriter, r *http.Request) {
	durationMinutes, _ := strconv.Atoi(r.URL.Query().Get("duration_minutes"))
	request := requests.OptimalSlotRequest{
		TechnicianID:    r.URL.Query().Get("technician_id"),
		DurationMinutes: durationMinutes,
		PreferredDate:   r.URL.Query().Get("preferred_date"),
		TimePreference:  r.URL.Query().Get("time_preference"),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := c.Usecase.FindOptimalSlot(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	message := constvars.OptimalSlotFoundSuccess
	if result.Slot == nil {
		message = constvars.NoSlotAvailable
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}

func (c *AvailabilityController) CheckConflicts(w http.ResponseWriter, r *http.Request) {
	var request requests.ConflictCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := c.Usecase.CheckConflicts(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConflictCheckSuccess, result)
}
