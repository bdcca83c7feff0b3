package contracts

import (
	"context"
	"deskwise-service/internal/app/models"
	"deskwise-service/internal/pkg/dto/requests"
	"deskwise-service/internal/pkg/dto/responses"
	"time"
)

// ScheduleEntryRepository is the store contract the scheduling engine relies
// on. FindByTechnicianAndRange must return entries whose half-open interval
// overlaps [rangeStart, rangeEnd), excluding cancelled entries unless
// includeCancelled is set, ordered ascending by start with id as tiebreak.
type ScheduleEntryRepository interface {
	FindByID(ctx context.Context, entryID string) (*models.ScheduleEntry, error)
	FindByTechnicianAndRange(ctx context.Context, technicianID string, rangeStart, rangeEnd time.Time, includeCancelled bool) ([]models.ScheduleEntry, error)
	FindUpcoming(ctx context.Context, rangeStart, rangeEnd time.Time) ([]models.ScheduleEntry, error)
	Insert(ctx context.Context, entry *models.ScheduleEntry) (*models.ScheduleEntry, error)
	InsertMany(ctx context.Context, entries []models.ScheduleEntry) ([]models.ScheduleEntry, error)
	Update(ctx context.Context, entry *models.ScheduleEntry) (*models.ScheduleEntry, error)
	Delete(ctx context.Context, entryID string) error
}

type ScheduleEntryUsecase interface {
	CreateScheduleEntry(ctx context.Context, request *requests.CreateScheduleEntryRequest) (*responses.ScheduleEntry, []responses.ScheduleConflict, error)
	CreateRecurringSchedule(ctx context.Context, request *requests.CreateRecurringScheduleRequest) (*responses.RecurringSeries, *responses.RecurringSeriesConflicts, error)
	UpdateScheduleEntry(ctx context.Context, entryID string, request *requests.UpdateScheduleEntryRequest) (*responses.ScheduleEntry, []responses.ScheduleConflict, error)
	CancelScheduleEntry(ctx context.Context, entryID string) (*responses.ScheduleEntry, error)
	DeleteScheduleEntry(ctx context.Context, entryID string) error
	FindScheduleEntryByID(ctx context.Context, entryID string) (*responses.ScheduleEntry, error)
	ListScheduleEntries(ctx context.Context, query *requests.ScheduleEntryListQuery) ([]responses.ScheduleEntry, error)
}
