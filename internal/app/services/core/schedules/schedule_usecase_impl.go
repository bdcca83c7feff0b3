package schedules

import (
	"context"
	"deskwise-service/internal/app/config"
	"deskwise-service/internal/app/contracts"
	"deskwise-service/internal/app/models"
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

type scheduleUsecase struct {
	ScheduleEntryRepository contracts.ScheduleEntryRepository
	TechnicianRepository    contracts.TechnicianRepository
	LockService             contracts.LockerService
	InternalConfig          *config.InternalConfig
	Log                     *zap.Logger
}

var (
	scheduleUsecaseInstance contracts.ScheduleEntryUsecase
	onceScheduleUsecase     sync.Once
)

func NewScheduleUsecase(
	scheduleEntryRepository contracts.ScheduleEntryRepository,
	technicianRepository contracts.TechnicianRepository,
	lockService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ScheduleEntryUsecase {
	onceScheduleUsecase.Do(func() {
		instance := &scheduleUsecase{
			ScheduleEntryRepository: scheduleEntryRepository,
			TechnicianRepository:    technicianRepository,
			LockService:             lockService,
			InternalConfig:          internalConfig,
			Log:                     logger,
		}
		scheduleUsecaseInstance = instance
	})
	return scheduleUsecaseInstance
}

func (uc *scheduleUsecase) CreateScheduleEntry(ctx context.Context, request *requests.CreateScheduleEntryRequest) (*responses.ScheduleEntry, []responses.ScheduleConflict, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.CreateScheduleEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTechnicianIDKey, request.TechnicianID),
	)

	draft, err := utils.BuildScheduleEntryDraft(request)
	if err != nil {
		return nil, nil, err
	}
	if !draft.Start.Before(draft.End) {
		return nil, nil, exceptions.ErrInvalidInterval(fmt.Errorf("entry start %s is not before end %s", draft.Start, draft.End))
	}

	if err := uc.ensureTechnicianBookable(ctx, draft.TechnicianID); err != nil {
		return nil, nil, err
	}

	lockValue, err := uc.lockTechnician(ctx, draft.TechnicianID)
	if err != nil {
		return nil, nil, err
	}
	defer uc.unlockTechnician(ctx, draft.TechnicianID, lockValue)

	conflicts, err := uc.findStoredConflicts(ctx, draft.TechnicianID, Interval{Start: draft.Start, End: draft.End}, "")
	if err != nil {
		return nil, nil, err
	}
	if len(conflicts) > 0 {
		uc.Log.Info("scheduleUsecase.CreateScheduleEntry rejected with conflicts",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingConflictCount, len(conflicts)),
		)
		return nil, utils.BuildScheduleConflictsResponse(conflicts), nil
	}

	draft.ID = utils.GenerateEntryID()
	created, err := uc.ScheduleEntryRepository.Insert(ctx, draft)
	if err != nil {
		uc.Log.Error("scheduleUsecase.CreateScheduleEntry error inserting entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	uc.Log.Info("scheduleUsecase.CreateScheduleEntry succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntryIDKey, created.ID),
	)
	return utils.BuildScheduleEntryResponse(created), nil, nil
}

func (uc *scheduleUsecase) CreateRecurringSchedule(ctx context.Context, request *requests.CreateRecurringScheduleRequest) (*responses.RecurringSeries, *responses.RecurringSeriesConflicts, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.CreateRecurringSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTechnicianIDKey, request.Entry.TechnicianID),
	)

	template, err := utils.BuildScheduleEntryDraft(&request.Entry)
	if err != nil {
		return nil, nil, err
	}
	pattern, err := utils.BuildRecurrencePattern(&request.Recurrence)
	if err != nil {
		return nil, nil, err
	}

	if err := uc.ensureTechnicianBookable(ctx, template.TechnicianID); err != nil {
		return nil, nil, err
	}

	template.ID = utils.GenerateEntryID()
	series, err := ExpandRecurrence(*template, *pattern, utils.GenerateEntryID)
	if err != nil {
		return nil, nil, err
	}

	uc.Log.Info("scheduleUsecase.CreateRecurringSchedule series expanded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingOccurrenceCount, len(series)),
	)

	lockValue, err := uc.lockTechnician(ctx, template.TechnicianID)
	if err != nil {
		return nil, nil, err
	}
	defer uc.unlockTechnician(ctx, template.TechnicianID, lockValue)

	// All-or-nothing: every occurrence is checked before anything is written,
	// so a rejected series leaves no partial data behind.
	var instanceConflicts []responses.InstanceConflict
	for i := range series {
		conflicts, err := uc.findStoredConflicts(ctx, series[i].TechnicianID, Interval{Start: series[i].Start, End: series[i].End}, "")
		if err != nil {
			return nil, nil, err
		}
		if len(conflicts) > 0 {
			instanceConflicts = append(instanceConflicts, responses.InstanceConflict{
				OccurrenceIndex: i,
				Start:           series[i].Start,
				End:             series[i].End,
				With:            utils.BuildScheduleConflictsResponse(conflicts),
			})
		}
	}
	if len(instanceConflicts) > 0 {
		uc.Log.Info("scheduleUsecase.CreateRecurringSchedule rejected with conflicts",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingConflictCount, len(instanceConflicts)),
		)
		return nil, &responses.RecurringSeriesConflicts{Conflicts: instanceConflicts}, nil
	}

	created, err := uc.ScheduleEntryRepository.InsertMany(ctx, series)
	if err != nil {
		uc.Log.Error("scheduleUsecase.CreateRecurringSchedule error inserting series",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	uc.Log.Info("scheduleUsecase.CreateRecurringSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntryIDKey, template.ID),
		zap.Int(constvars.LoggingOccurrenceCount, len(created)),
	)
	return &responses.RecurringSeries{
		ParentID: template.ID,
		Entries:  utils.BuildScheduleEntriesResponse(created),
	}, nil, nil
}

func (uc *scheduleUsecase) UpdateScheduleEntry(ctx context.Context, entryID string, request *requests.UpdateScheduleEntryRequest) (*responses.ScheduleEntry, []responses.ScheduleConflict, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.UpdateScheduleEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntryIDKey, entryID),
	)

	existing, err := uc.ScheduleEntryRepository.FindByID(ctx, entryID)
	if err != nil {
		return nil, nil, err
	}
	if existing == nil {
		return nil, nil, exceptions.ErrScheduleEntryNotFound(fmt.Errorf("schedule entry '%s' not found", entryID))
	}

	patch, err := utils.BuildScheduleEntryPatch(request)
	if err != nil {
		return nil, nil, err
	}
	if !patch.Start.Before(patch.End) {
		return nil, nil, exceptions.ErrInvalidInterval(fmt.Errorf("entry start %s is not before end %s", patch.Start, patch.End))
	}

	patch.ID = existing.ID
	patch.RecurrenceParentID = existing.RecurrenceParentID
	patch.CreatedAt = existing.CreatedAt

	if err := uc.ensureTechnicianBookable(ctx, patch.TechnicianID); err != nil {
		return nil, nil, err
	}

	lockValue, err := uc.lockTechnician(ctx, patch.TechnicianID)
	if err != nil {
		return nil, nil, err
	}
	defer uc.unlockTechnician(ctx, patch.TechnicianID, lockValue)

	// The entry being edited never conflicts with itself, even when the new
	// range still overlaps the stored one.
	conflicts, err := uc.findStoredConflicts(ctx, patch.TechnicianID, Interval{Start: patch.Start, End: patch.End}, patch.ID)
	if err != nil {
		return nil, nil, err
	}
	if len(conflicts) > 0 {
		uc.Log.Info("scheduleUsecase.UpdateScheduleEntry rejected with conflicts",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingConflictCount, len(conflicts)),
		)
		return nil, utils.BuildScheduleConflictsResponse(conflicts), nil
	}

	updated, err := uc.ScheduleEntryRepository.Update(ctx, patch)
	if err != nil {
		return nil, nil, err
	}
	if updated == nil {
		return nil, nil, exceptions.ErrScheduleEntryNotFound(fmt.Errorf("schedule entry '%s' disappeared during update", entryID))
	}

	uc.Log.Info("scheduleUsecase.UpdateScheduleEntry succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntryIDKey, updated.ID),
	)
	return utils.BuildScheduleEntryResponse(updated), nil, nil
}

func (uc *scheduleUsecase) CancelScheduleEntry(ctx context.Context, entryID string) (*responses.ScheduleEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.CancelScheduleEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntryIDKey, entryID),
	)

	existing, err := uc.ScheduleEntryRepository.FindByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrScheduleEntryNotFound(fmt.Errorf("schedule entry '%s' not found", entryID))
	}

	existing.Status = constvars.ScheduleStatusCancelled
	updated, err := uc.ScheduleEntryRepository.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrScheduleEntryNotFound(fmt.Errorf("schedule entry '%s' disappeared during cancel", entryID))
	}

	return utils.BuildScheduleEntryResponse(updated), nil
}

func (uc *scheduleUsecase) DeleteScheduleEntry(ctx context.Context, entryID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.DeleteScheduleEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEntryIDKey, entryID),
	)

	existing, err := uc.ScheduleEntryRepository.FindByID(ctx, entryID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrScheduleEntryNotFound(fmt.Errorf("schedule entry '%s' not found", entryID))
	}

	return uc.ScheduleEntryRepository.Delete(ctx, entryID)
}

func (uc *scheduleUsecase) FindScheduleEntryByID(ctx context.Context, entryID string) (*responses.ScheduleEntry, error) {
	entry, err := uc.ScheduleEntryRepository.FindByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, exceptions.ErrScheduleEntryNotFound(fmt.Errorf("schedule entry '%s' not found", entryID))
	}
	return utils.BuildScheduleEntryResponse(entry), nil
}

func (uc *scheduleUsecase) ListScheduleEntries(ctx context.Context, query *requests.ScheduleEntryListQuery) ([]responses.ScheduleEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.ListScheduleEntries called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTechnicianIDKey, query.TechnicianID),
	)

	rangeStart, err := utils.ParseRFC3339UTC(query.RangeStart)
	if err != nil {
		return nil, err
	}
	rangeEnd, err := utils.ParseRFC3339UTC(query.RangeEnd)
	if err != nil {
		return nil, err
	}
	if !rangeStart.Before(rangeEnd) {
		return nil, exceptions.ErrInvalidInterval(fmt.Errorf("range start %s is not before end %s", rangeStart, rangeEnd))
	}

	entries, err := uc.ScheduleEntryRepository.FindByTechnicianAndRange(ctx, query.TechnicianID, rangeStart, rangeEnd, query.IncludeCancelled)
	if err != nil {
		return nil, err
	}
	return utils.BuildScheduleEntriesResponse(entries), nil
}

// findStoredConflicts runs the store range query and the overlap filter in one
// step. The repository already excludes cancelled entries and orders by start
// then id; DetectConflicts re-applies both so the guarantee does not depend on
// the store implementation.
func (uc *scheduleUsecase) findStoredConflicts(ctx context.Context, technicianID string, requested Interval, excludeID string) ([]models.ScheduleEntry, error) {
	candidates, err := uc.ScheduleEntryRepository.FindByTechnicianAndRange(ctx, technicianID, requested.Start, requested.End, false)
	if err != nil {
		return nil, err
	}
	return DetectConflicts(candidates, requested, excludeID)
}

func (uc *scheduleUsecase) ensureTechnicianBookable(ctx context.Context, technicianID string) error {
	technician, err := uc.TechnicianRepository.FindByID(ctx, technicianID)
	if err != nil {
		return err
	}
	if technician == nil {
		return exceptions.ErrTechnicianNotFound(fmt.Errorf("technician '%s' not found", technicianID))
	}
	if !technician.Active {
		return exceptions.ErrTechnicianInactive(fmt.Errorf("technician '%s' is inactive", technicianID))
	}
	return nil
}

// lockTechnician serializes check-then-create for one technician so two
// concurrent requests cannot both pass the conflict check and both insert.
func (uc *scheduleUsecase) lockTechnician(ctx context.Context, technicianID string) (string, error) {
	lockKey := fmt.Sprintf(constvars.RedisKeyTechnicianLockFormat, technicianID)
	lockTTL := time.Duration(uc.InternalConfig.Scheduling.TechnicianLockTTLSeconds) * time.Second

	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return "", err
	}
	if !acquired {
		return "", exceptions.ErrTechnicianLockNotAcquired(fmt.Errorf("technician '%s' schedule is locked by another request", technicianID))
	}
	return lockValue, nil
}

func (uc *scheduleUsecase) unlockTechnician(ctx context.Context, technicianID, lockValue string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	lockKey := fmt.Sprintf(constvars.RedisKeyTechnicianLockFormat, technicianID)
	if err := uc.LockService.Unlock(ctx, lockKey, lockValue); err != nil {
		uc.Log.Error("scheduleUsecase.unlockTechnician error releasing lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lockKey),
			zap.Error(err),
		)
	}
}
