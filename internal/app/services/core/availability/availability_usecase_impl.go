package availability

import (
	"context"
	"deskwise-service/internal/app/config"
	"deskwise-service/internal/app/contracts"
	"deskwise-service/internal/app/services/core/schedules"
	"deskwise-service/internal/pkg/constvars"
	"deskwise-service/internal/pkg/dto/requests"
	"deskwise-service/internal/pkg/dto/responses"
	"deskwise-service/internal/pkg/exceptions"
	"deskwise-service/internal/pkg/utils"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

type availabilityUsecase struct {
	ScheduleEntryRepository contracts.ScheduleEntryRepository
	TechnicianRepository    contracts.TechnicianRepository
	InternalConfig          *config.InternalConfig
	Location                *time.Location
	Log                     *zap.Logger
}

var (
	availabilityUsecaseInstance contracts.AvailabilityUsecase
	onceAvailabilityUsecase     sync.Once
)

func NewAvailabilityUsecase(
	scheduleEntryRepository contracts.ScheduleEntryRepository,
	technicianRepository contracts.TechnicianRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	onceAvailabilityUsecase.Do(func() {
		location, err := time.LoadLocation(internalConfig.App.Timezone)
		if err != nil {
			location = time.UTC
		}
		instance := &availabilityUsecase{
			ScheduleEntryRepository: scheduleEntryRepository,
			TechnicianRepository:    technicianRepository,
			InternalConfig:          internalConfig,
			Location:                location,
			Log:                     logger,
		}
		availabilityUsecaseInstance = instance
	})
	return availabilityUsecaseInstance
}

func (uc *availabilityUsecase) FindOptimalSlot(ctx context.Context, request *requests.OptimalSlotRequest) (*responses.OptimalSlot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.FindOptimalSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTechnicianIDKey, request.TechnicianID),
	)

	if err := uc.ensureTechnicianExists(ctx, request.TechnicianID); err != nil {
		return nil, err
	}

	day, err := utils.ParseCalendarDate(request.PreferredDate, uc.Location)
	if err != nil {
		return nil, err
	}
	window := uc.workingWindow(day)

	booked, err := uc.ScheduleEntryRepository.FindByTechnicianAndRange(ctx, request.TechnicianID, window.Start, window.End, false)
	if err != nil {
		return nil, err
	}

	timePreference := request.TimePreference
	if timePreference == "" {
		timePreference = constvars.TimePreferenceAny
	}

	slot, err := FindOptimalSlot(window, booked, request.DurationMinutes, timePreference)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		uc.Log.Info("availabilityUsecase.FindOptimalSlot no fitting gap",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTechnicianIDKey, request.TechnicianID),
		)
		return &responses.OptimalSlot{Slot: nil}, nil
	}

	uc.Log.Info("availabilityUsecase.FindOptimalSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Time("slot_start", slot.Start),
	)
	return &responses.OptimalSlot{
		Slot: &responses.SlotInterval{Start: slot.Start, End: slot.End},
	}, nil
}

func (uc *availabilityUsecase) CheckConflicts(ctx context.Context, request *requests.ConflictCheckRequest) (*responses.ConflictCheck, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.CheckConflicts called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTechnicianIDKey, request.TechnicianID),
	)

	start, err := utils.ParseRFC3339UTC(request.Start)
	if err != nil {
		return nil, err
	}
	end, err := utils.ParseRFC3339UTC(request.End)
	if err != nil {
		return nil, err
	}

	if request.ExcludeEntryID != "" {
		excluded, err := uc.ScheduleEntryRepository.FindByID(ctx, request.ExcludeEntryID)
		if err != nil {
			return nil, err
		}
		if excluded == nil {
			return nil, exceptions.ErrScheduleEntryNotFound(fmt.Errorf("schedule entry '%s' not found", request.ExcludeEntryID))
		}
	}

	requested := schedules.Interval{Start: start, End: end}
	candidates, err := uc.ScheduleEntryRepository.FindByTechnicianAndRange(ctx, request.TechnicianID, start, end, false)
	if err != nil {
		return nil, err
	}
	conflicts, err := schedules.DetectConflicts(candidates, requested, request.ExcludeEntryID)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("availabilityUsecase.CheckConflicts succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingConflictCount, len(conflicts)),
	)
	return &responses.ConflictCheck{
		HasConflicts: len(conflicts) > 0,
		Conflicts:    utils.BuildScheduleConflictsResponse(conflicts),
	}, nil
}

// workingWindow maps the configured business-hours minutes onto one calendar
// day in the service timezone.
func (uc *availabilityUsecase) workingWindow(day time.Time) schedules.Interval {
	return schedules.Interval{
		Start: day.Add(time.Duration(uc.InternalConfig.Scheduling.BusinessHoursStartMinute) * time.Minute),
		End:   day.Add(time.Duration(uc.InternalConfig.Scheduling.BusinessHoursEndMinute) * time.Minute),
	}
}

func (uc *availabilityUsecase) ensureTechnicianExists(ctx context.Context, technicianID string) error {
	technician, err := uc.TechnicianRepository.FindByID(ctx, technicianID)
	if err != nil {
		return err
	}
	if technician == nil {
		return exceptions.ErrTechnicianNotFound(fmt.Errorf("technician '%s' not found", technicianID))
	}
	return nil
}
