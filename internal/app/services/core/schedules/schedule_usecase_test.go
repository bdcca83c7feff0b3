package schedules

import (
	"context"
	"deskwise-service/internal/app/config"
	"deskwise-service/internal/app/models"
	"deskwise-service/internal/pkg/constvars"
	"deskwise-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeScheduleEntryRepository struct {
	entries     []models.ScheduleEntry
	inserted    []models.ScheduleEntry
	insertCalls int
}

func (f *fakeScheduleEntryRepository) FindByID(ctx context.Context, entryID string) (*models.ScheduleEntry, error) {
	for i := range f.entries {
		if f.entries[i].ID == entryID {
			entry := f.entries[i]
			return &entry, nil
		}
	}
	return nil, nil
}

func (f *fakeScheduleEntryRepository) FindByTechnicianAndRange(ctx context.Context, technicianID string, rangeStart, rangeEnd time.Time, includeCancelled bool) ([]models.ScheduleEntry, error) {
	var result []models.ScheduleEntry
	for _, entry := range f.entries {
		if entry.TechnicianID != technicianID {
			continue
		}
		if !includeCancelled && entry.Status == constvars.ScheduleStatusCancelled {
			continue
		}
		if entry.Start.Before(rangeEnd) && rangeStart.Before(entry.End) {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (f *fakeScheduleEntryRepository) FindUpcoming(ctx context.Context, rangeStart, rangeEnd time.Time) ([]models.ScheduleEntry, error) {
	return nil, nil
}

func (f *fakeScheduleEntryRepository) Insert(ctx context.Context, entry *models.ScheduleEntry) (*models.ScheduleEntry, error) {
	f.insertCalls++
	f.inserted = append(f.inserted, *entry)
	f.entries = append(f.entries, *entry)
	return entry, nil
}

func (f *fakeScheduleEntryRepository) InsertMany(ctx context.Context, entries []models.ScheduleEntry) ([]models.ScheduleEntry, error) {
	f.insertCalls++
	f.inserted = append(f.inserted, entries...)
	f.entries = append(f.entries, entries...)
	return entries, nil
}

func (f *fakeScheduleEntryRepository) Update(ctx context.Context, entry *models.ScheduleEntry) (*models.ScheduleEntry, error) {
	for i := range f.entries {
		if f.entries[i].ID == entry.ID {
			f.entries[i] = *entry
			return entry, nil
		}
	}
	return nil, nil
}

func (f *fakeScheduleEntryRepository) Delete(ctx context.Context, entryID string) error {
	for i := range f.entries {
		if f.entries[i].ID == entryID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeTechnicianRepository struct {
	technicians map[string]*models.Technician
}

func (f *fakeTechnicianRepository) FindByID(ctx context.Context, technicianID string) (*models.Technician, error) {
	return f.technicians[technicianID], nil
}

func (f *fakeTechnicianRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Technician, int64, error) {
	return nil, 0, nil
}

func (f *fakeTechnicianRepository) Insert(ctx context.Context, technician *models.Technician) (*models.Technician, error) {
	return technician, nil
}

func (f *fakeTechnicianRepository) Update(ctx context.Context, technician *models.Technician) (*models.Technician, error) {
	return technician, nil
}

type fakeLockerService struct {
	acquire     bool
	lockCalls   int
	unlockCalls int
}

func (f *fakeLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	f.lockCalls++
	if !f.acquire {
		return false, "", nil
	}
	return true, "lock-value", nil
}

func (f *fakeLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	f.unlockCalls++
	return nil
}

func newTestScheduleUsecase(repo *fakeScheduleEntryRepository, locker *fakeLockerService) *scheduleUsecase {
	technicianRepo := &fakeTechnicianRepository{
		technicians: map[string]*models.Technician{
			"tech-1": {ID: "tech-1", Name: "Dana", Email: "dana@example.com", Active: true},
		},
	}
	return &scheduleUsecase{
		ScheduleEntryRepository: repo,
		TechnicianRepository:    technicianRepo,
		LockService:             locker,
		InternalConfig: &config.InternalConfig{
			Scheduling: config.Scheduling{TechnicianLockTTLSeconds: 10},
		},
		Log: zap.NewNop(),
	}
}

func createRequest(start, end time.Time) *requests.CreateScheduleEntryRequest {
	return &requests.CreateScheduleEntryRequest{
		TechnicianID: "tech-1",
		Type:         constvars.ScheduleTypeAppointment,
		Start:        start.Format(time.RFC3339),
		End:          end.Format(time.RFC3339),
		Title:        "On-site visit",
	}
}

func TestCreateScheduleEntry(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Creates When No Conflict", func(t *testing.T) {
		repo := &fakeScheduleEntryRepository{}
		locker := &fakeLockerService{acquire: true}
		uc := newTestScheduleUsecase(repo, locker)

		entry, conflicts, err := uc.CreateScheduleEntry(context.Background(), createRequest(day.Add(9*time.Hour), day.Add(10*time.Hour)))

		assert.NoError(t, err)
		assert.Empty(t, conflicts)
		assert.NotNil(t, entry)
		assert.Equal(t, 1, repo.insertCalls)
		assert.Equal(t, 1, locker.unlockCalls, "lock must be released after create")
	})

	t.Run("Rejects Overlap With Conflict List", func(t *testing.T) {
		repo := &fakeScheduleEntryRepository{entries: []models.ScheduleEntry{entryAt("existing", 9, 10)}}
		locker := &fakeLockerService{acquire: true}
		uc := newTestScheduleUsecase(repo, locker)

		entry, conflicts, err := uc.CreateScheduleEntry(context.Background(), createRequest(day.Add(9*time.Hour+30*time.Minute), day.Add(10*time.Hour+30*time.Minute)))

		assert.NoError(t, err)
		assert.Nil(t, entry)
		assert.Len(t, conflicts, 1)
		assert.Equal(t, "existing", conflicts[0].EntryID)
		assert.Zero(t, repo.insertCalls, "a conflicting create must not write")
	})

	t.Run("Rejects Invalid Interval", func(t *testing.T) {
		repo := &fakeScheduleEntryRepository{}
		locker := &fakeLockerService{acquire: true}
		uc := newTestScheduleUsecase(repo, locker)

		_, _, err := uc.CreateScheduleEntry(context.Background(), createRequest(day.Add(10*time.Hour), day.Add(10*time.Hour)))

		assert.Error(t, err)
		assert.Zero(t, locker.lockCalls, "validation happens before locking")
	})

	t.Run("Fails When Lock Not Acquired", func(t *testing.T) {
		repo := &fakeScheduleEntryRepository{}
		locker := &fakeLockerService{acquire: false}
		uc := newTestScheduleUsecase(repo, locker)

		_, _, err := uc.CreateScheduleEntry(context.Background(), createRequest(day.Add(9*time.Hour), day.Add(10*time.Hour)))

		assert.Error(t, err)
		assert.Zero(t, repo.insertCalls)
	})

	t.Run("Fails For Unknown Technician", func(t *testing.T) {
		repo := &fakeScheduleEntryRepository{}
		locker := &fakeLockerService{acquire: true}
		uc := newTestScheduleUsecase(repo, locker)

		request := createRequest(day.Add(9*time.Hour), day.Add(10*time.Hour))
		request.TechnicianID = "missing"

		_, _, err := uc.CreateScheduleEntry(context.Background(), request)

		assert.Error(t, err)
	})
}

func TestCreateRecurringSchedule(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	recurringRequest := func() *requests.CreateRecurringScheduleRequest {
		return &requests.CreateRecurringScheduleRequest{
			Entry: *createRequest(day.Add(9*time.Hour), day.Add(10*time.Hour)),
			Recurrence: requests.RecurrencePatternRequest{
				Type:           constvars.RecurrenceTypeWeekly,
				Interval:       1,
				MaxOccurrences: 5,
			},
		}
	}

	t.Run("Creates Full Series", func(t *testing.T) {
		repo := &fakeScheduleEntryRepository{}
		locker := &fakeLockerService{acquire: true}
		uc := newTestScheduleUsecase(repo, locker)

		series, conflicts, err := uc.CreateRecurringSchedule(context.Background(), recurringRequest())

		assert.NoError(t, err)
		assert.Nil(t, conflicts)
		assert.NotNil(t, series)
		assert.Len(t, series.Entries, 5)
		assert.Equal(t, series.ParentID, series.Entries[0].ID)
		for _, instance := range series.Entries[1:] {
			assert.Equal(t, series.ParentID, instance.RecurrenceParentID)
		}
	})

	t.Run("All Or Nothing On Conflict", func(t *testing.T) {
		// Unrelated booking collides with the third occurrence (two weeks out).
		blocking := entryAt("blocking", 9, 10)
		blocking.Start = blocking.Start.AddDate(0, 0, 14)
		blocking.End = blocking.End.AddDate(0, 0, 14)
		repo := &fakeScheduleEntryRepository{entries: []models.ScheduleEntry{blocking}}
		locker := &fakeLockerService{acquire: true}
		uc := newTestScheduleUsecase(repo, locker)

		series, conflicts, err := uc.CreateRecurringSchedule(context.Background(), recurringRequest())

		assert.NoError(t, err)
		assert.Nil(t, series)
		assert.NotNil(t, conflicts)
		assert.Len(t, conflicts.Conflicts, 1)
		assert.Equal(t, 2, conflicts.Conflicts[0].OccurrenceIndex)
		assert.Zero(t, repo.insertCalls, "a rejected series must create zero entries")
	})

	t.Run("Invalid Pattern Rejected Before Locking", func(t *testing.T) {
		repo := &fakeScheduleEntryRepository{}
		locker := &fakeLockerService{acquire: true}
		uc := newTestScheduleUsecase(repo, locker)

		request := recurringRequest()
		request.Recurrence.MaxOccurrences = 0

		_, _, err := uc.CreateRecurringSchedule(context.Background(), request)

		assert.Error(t, err)
		assert.Zero(t, locker.lockCalls)
		assert.Zero(t, repo.insertCalls)
	})
}

func TestUpdateScheduleEntry(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	updateRequest := func(start, end time.Time) *requests.UpdateScheduleEntryRequest {
		return &requests.UpdateScheduleEntryRequest{
			TechnicianID: "tech-1",
			Type:         constvars.ScheduleTypeAppointment,
			Status:       constvars.ScheduleStatusScheduled,
			Start:        start.Format(time.RFC3339),
			End:          end.Format(time.RFC3339),
			Title:        "Rescheduled visit",
		}
	}

	t.Run("Edit Never Conflicts With Itself", func(t *testing.T) {
		repo := &fakeScheduleEntryRepository{entries: []models.ScheduleEntry{entryAt("x", 9, 10)}}
		locker := &fakeLockerService{acquire: true}
		uc := newTestScheduleUsecase(repo, locker)

		// Shift by 30 minutes; the new range still overlaps the stored one.
		entry, conflicts, err := uc.UpdateScheduleEntry(context.Background(), "x", updateRequest(day.Add(9*time.Hour+30*time.Minute), day.Add(10*time.Hour+30*time.Minute)))

		assert.NoError(t, err)
		assert.Empty(t, conflicts)
		assert.NotNil(t, entry)
	})

	t.Run("Conflicts With Other Entries", func(t *testing.T) {
		repo := &fakeScheduleEntryRepository{entries: []models.ScheduleEntry{
			entryAt("x", 9, 10),
			entryAt("other", 11, 12),
		}}
		locker := &fakeLockerService{acquire: true}
		uc := newTestScheduleUsecase(repo, locker)

		entry, conflicts, err := uc.UpdateScheduleEntry(context.Background(), "x", updateRequest(day.Add(11*time.Hour), day.Add(12*time.Hour)))

		assert.NoError(t, err)
		assert.Nil(t, entry)
		assert.Len(t, conflicts, 1)
		assert.Equal(t, "other", conflicts[0].EntryID)
	})

	t.Run("Unknown Entry Returns Not Found", func(t *testing.T) {
		repo := &fakeScheduleEntryRepository{}
		locker := &fakeLockerService{acquire: true}
		uc := newTestScheduleUsecase(repo, locker)

		_, _, err := uc.UpdateScheduleEntry(context.Background(), "missing", updateRequest(day.Add(9*time.Hour), day.Add(10*time.Hour)))

		assert.Error(t, err)
	})
}

func TestCancelScheduleEntry(t *testing.T) {
	t.Run("Cancel Excludes Entry From Future Conflicts", func(t *testing.T) {
		repo := &fakeScheduleEntryRepository{entries: []models.ScheduleEntry{entryAt("x", 9, 10)}}
		locker := &fakeLockerService{acquire: true}
		uc := newTestScheduleUsecase(repo, locker)

		cancelled, err := uc.CancelScheduleEntry(context.Background(), "x")
		assert.NoError(t, err)
		assert.Equal(t, constvars.ScheduleStatusCancelled, cancelled.Status)

		day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
		entry, conflicts, err := uc.CreateScheduleEntry(context.Background(), createRequest(day.Add(9*time.Hour), day.Add(10*time.Hour)))
		assert.NoError(t, err)
		assert.Empty(t, conflicts, "a cancelled entry must not block new bookings")
		assert.NotNil(t, entry)
	})
}
