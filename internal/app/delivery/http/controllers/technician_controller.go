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

type TechnicianController struct {
	Usecase contracts.TechnicianUsecase
	Log     *zap.Logger
}

func NewTechnicianController(usecase contracts.TechnicianUsecase, log *zap.Logger) *TechnicianController {
	return &TechnicianController{
		Usecase: usecase,
		Log:     log,
	}
}

func (c *TechnicianController) CreateTechnician(w http.ResponseWriter, r *http.Request) {
	var request requests.CreateTechnicianRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	technician, err := c.Usecase.CreateTechnician(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.TechnicianCreatedSuccess, technician)
}

func (c *TechnicianController) UpdateTechnician(w http.ResponseWriter, r *http.Request) {
	technicianID := chi.URLParam(r, "technicianID")
	if technicianID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(nil, "technicianID"))
		return
	}

	var request requests.UpdateTechnicianRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	technician, err := c.Usecase.UpdateTechnician(r.Context(), technicianID, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TechnicianUpdatedSuccess, technician)
}

func (c *TechnicianController) FindTechnicianByID(w http.ResponseWriter, r *http.Request) {
	technicianID := chi.URLParam(r, "technicianID")
	if technicianID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(nil, "technicianID"))
		return
	}

	technician, err := c.Usecase.FindTechnicianByID(r.Context(), technicianID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TechniciansGetSuccess, technician)
}

func (c *TechnicianController) ListTechnicians(w http.ResponseWriter, r *http.Request) {
	pagination := utils.BuildPaginationRequest(r)

	technicians, paginationResponse, err := c.Usecase.ListTechnicians(r.Context(), pagination)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.TechniciansGetSuccess, paginationResponse, technicians)
}
