package contracts

import (
	"context"
	"deskwise-service/internal/app/models"
	"deskwise-service/internal/pkg/dto/requests"
	"deskwise-service/internal/pkg/dto/responses"
)

type TechnicianRepository interface {
	FindByID(ctx context.Context, technicianID string) (*models.Technician, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Technician, int64, error)
	Insert(ctx context.Context, technician *models.Technician) (*models.Technician, error)
	Update(ctx context.Context, technician *models.Technician) (*models.Technician, error)
}

type TechnicianUsecase interface {
	CreateTechnician(ctx context.Context, request *requests.CreateTechnicianRequest) (*responses.Technician, error)
	UpdateTechnician(ctx context.Context, technicianID string, request *requests.UpdateTechnicianRequest) (*responses.Technician, error)
	FindTechnicianByID(ctx context.Context, technicianID string) (*responses.Technician, error)
	ListTechnicians(ctx context.Context, request *requests.Pagination) ([]responses.Technician, *responses.Pagination, error)
}
