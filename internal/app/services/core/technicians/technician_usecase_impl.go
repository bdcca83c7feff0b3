package technicians

import (
	"context"
	"deskwise-service/internal/app/contracts"
	"deskwise-service/internal/pkg/constvars"
	"deskwise-service/internal/pkg/dto/requests"
	"deskwise-service/internal/pkg/dto/responses"
	"deskwise-service/internal/pkg/exceptions"
	"deskwise-service/internal/pkg/utils"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type technicianUsecase struct {
	TechnicianRepository contracts.TechnicianRepository
	Log                  *zap.Logger
}

var (
	technicianUsecaseInstance contracts.TechnicianUsecase
	onceTechnicianUsecase     sync.Once
)

func NewTechnicianUsecase(
	technicianRepository contracts.TechnicianRepository,
	logger *zap.Logger,
) contracts.TechnicianUsecase {
	onceTechnicianUsecase.Do(func() {
		instance := &technicianUsecase{
			TechnicianRepository: technicianRepository,
			Log:                  logger,
		}
		technicianUsecaseInstance = instance
	})
	return technicianUsecaseInstance
}

func (uc *technicianUsecase) CreateTechnician(ctx context.Context, request *requests.CreateTechnicianRequest) (*responses.Technician, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("technicianUsecase.CreateTechnician called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	technician := utils.BuildTechnicianModel(request)
	technician.ID = utils.GenerateEntryID()

	created, err := uc.TechnicianRepository.Insert(ctx, technician)
	if err != nil {
		uc.Log.Error("technicianUsecase.CreateTechnician error inserting technician",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("technicianUsecase.CreateTechnician succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTechnicianIDKey, created.ID),
	)
	return utils.BuildTechnicianResponse(created), nil
}

func (uc *technicianUsecase) UpdateTechnician(ctx context.Context, technicianID string, request *requests.UpdateTechnicianRequest) (*responses.Technician, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("technicianUsecase.UpdateTechnician called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTechnicianIDKey, technicianID),
	)

	existing, err := uc.TechnicianRepository.FindByID(ctx, technicianID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrTechnicianNotFound(fmt.Errorf("technician '%s' not found", technicianID))
	}

	existing.Name = request.Name
	existing.Email = request.Email
	existing.Skills = request.Skills
	existing.Active = *request.Active

	updated, err := uc.TechnicianRepository.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrTechnicianNotFound(fmt.Errorf("technician '%s' disappeared during update", technicianID))
	}

	return utils.BuildTechnicianResponse(updated), nil
}

func (uc *technicianUsecase) FindTechnicianByID(ctx context.Context, technicianID string) (*responses.Technician, error) {
	technician, err := uc.TechnicianRepository.FindByID(ctx, technicianID)
	if err != nil {
		return nil, err
	}
	if technician == nil {
		return nil, exceptions.ErrTechnicianNotFound(fmt.Errorf("technician '%s' not found", technicianID))
	}
	return utils.BuildTechnicianResponse(technician), nil
}

func (uc *technicianUsecase) ListTechnicians(ctx context.Context, request *requests.Pagination) ([]responses.Technician, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("technicianUsecase.ListTechnicians called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	technicians, total, err := uc.TechnicianRepository.FindAll(ctx, request.Page, request.PageSize)
	if err != nil {
		return nil, nil, err
	}

	pagination := utils.BuildPaginationResponse(int(total), request.Page, request.PageSize, constvars.ResourceTechnicians)
	return utils.BuildTechniciansResponse(technicians), pagination, nil
}
