package contracts

import (
	"context"
	"deskwise-service/internal/pkg/dto/requests"
	"deskwise-service/internal/pkg/dto/responses"
)

type AvailabilityUsecase interface {
	FindOptimalSlot(ctx context.Context, request *requests.OptimalSlotRequest) (*responses.OptimalSlot, error)
	CheckConflicts(ctx context.Context, request *requests.ConflictCheckRequest) (*responses.ConflictCheck, error)
}
