package controllers

import (
	"net/http"

	"deskwise-service/internal/app/contracts"
	"deskwise-service/internal/pkg/constvars"
	"deskwise-service/internal/pkg/dto/requests"
	"deskwise-service/internal/pkg/exceptions"
	"deskwise-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ScheduleEntryController struct {
	Usecase contracts.ScheduleEntryUsecase
	Log     *zap.Logger
}

func NewScheduleEntryController(usecase contracts.ScheduleEntryUsecase, log *zap.Logger) *ScheduleEntryController {
	return &ScheduleEntryController{
		Usecase: usecase,
		Log:     log,
	}
}

func (c *ScheduleEntryController) CreateScheduleEntry(w http.ResponseWriter, r *http.Request) {
	var request requests.CreateScheduleEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	entry, conflicts, err := c.Usecase.CreateScheduleEntry(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	if len(conflicts) > 0 {
		utils.BuildConflictResponse(w, constvars.ErrClientScheduleConflict, conflicts)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ScheduleEntryCreatedSuccess, entry)
}

func (c *ScheduleEntryController) CreateRecurringSchedule(w http.ResponseWriter, r *http.Request) {
	var request requests.CreateRecurringScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	series, conflicts, err := c.Usecase.CreateRecurringSchedule(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	if conflicts != nil {
		utils.BuildConflictResponse(w, constvars.ErrClientScheduleConflict, conflicts)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RecurringSeriesCreatedSuccess, series)
}

func (c *ScheduleEntryController) UpdateScheduleEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "entryID")
	if entryID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(nil, "entryID"))
		return
	}

	var request requests.UpdateScheduleEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	entry, conflicts, err := c.Usecase.UpdateScheduleEntry(r.Context(), entryID, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	if len(conflicts) > 0 {
		utils.BuildConflictResponse(w, constvars.ErrClientScheduleConflict, conflicts)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleEntryUpdatedSuccess, entry)
}

func (c *ScheduleEntryController) CancelScheduleEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "entryID")
	if entryID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(nil, "entryID"))
		return
	}

	entry, err := c.Usecase.CancelScheduleEntry(r.Context(), entryID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleEntryCancelledSuccess, entry)
}

func (c *ScheduleEntryController) DeleteScheduleEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "entryID")
	if entryID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(nil, "entryID"))
		return
	}

	if err := c.Usecase.DeleteScheduleEntry(r.Context(), entryID); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleEntryDeletedSuccess, nil)
}

func (c *ScheduleEntryController) FindScheduleEntryByID(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "entryID")
	if entryID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(nil, "entryID"))
		return
	}

	entry, err := c.Usecase.FindScheduleEntryByID(r.Context(), entryID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleEntriesGetSuccess, entry)
}

func (c *ScheduleEntryController) ListScheduleEntries(w http.ResponseWriter, r *http.Request) {
	query := requests.ScheduleEntryListQuery{
		TechnicianID:     r.URL.Query().Get("technician_id"),
		RangeStart:       r.URL.Query().Get("range_start"),
		RangeEnd:         r.URL.Query().Get("range_end"),
		IncludeCancelled: r.URL.Query().Get("include_cancelled") == "true",
	}
	if err := utils.ValidateStruct(query); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	entries, err := c.Usecase.ListScheduleEntries(r.Context(), &query)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleEntriesGetSuccess, entries)
}
