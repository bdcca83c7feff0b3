package reminders

import (
	"context"
	"deskwise-service/internal/app/models"
	"deskwise-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	sets map[string]map[string]bool
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{sets: make(map[string]map[string]bool)}
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error { return nil }
func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}
func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) { return "", nil }

func (f *fakeRedisRepository) AddToSet(ctx context.Context, key string, values ...interface{}) error {
	if f.sets[key] == nil {
		f.sets[key] = make(map[string]bool)
	}
	for _, value := range values {
		f.sets[key][value.(string)] = true
	}
	return nil
}

func (f *fakeRedisRepository) IsSetMember(ctx context.Context, key string, value interface{}) (bool, error) {
	return f.sets[key][value.(string)], nil
}

func (f *fakeRedisRepository) ExpireKey(ctx context.Context, key string, exp time.Duration) error {
	return nil
}

func (f *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return true, nil
}

type fakePublisher struct {
	published [][]byte
}

func (f *fakePublisher) PublishReminder(ctx context.Context, payload []byte) error {
	f.published = append(f.published, payload)
	return nil
}

func upcomingEntry(minutesUntilStart int, reminders ...models.Reminder) models.ScheduleEntry {
	start := time.Now().UTC().Add(time.Duration(minutesUntilStart) * time.Minute)
	return models.ScheduleEntry{
		ID:           "entry-1",
		TechnicianID: "tech-1",
		Title:        "On-site visit",
		Status:       constvars.ScheduleStatusScheduled,
		Start:        start,
		End:          start.Add(time.Hour),
		Reminders:    reminders,
	}
}

func TestDispatchDueReminders(t *testing.T) {
	t.Run("Publishes Due Reminder Once", func(t *testing.T) {
		redisRepo := newFakeRedisRepository()
		publisher := &fakePublisher{}
		worker := &Worker{log: zap.NewNop(), redisRepo: redisRepo, publisher: publisher}

		entry := upcomingEntry(10, models.Reminder{MinutesBefore: 15, Channel: "email"})
		now := time.Now().UTC()

		worker.dispatchDueReminders(context.Background(), &entry, now)
		worker.dispatchDueReminders(context.Background(), &entry, now)

		assert.Len(t, publisher.published, 1, "a reminder must not be dispatched twice")

		var message ReminderMessage
		assert.NoError(t, json.Unmarshal(publisher.published[0], &message))
		assert.Equal(t, "entry-1", message.EntryID)
		assert.Equal(t, "email", message.Channel)
	})

	t.Run("Dedupes Across A Midnight Scan Boundary", func(t *testing.T) {
		redisRepo := newFakeRedisRepository()
		publisher := &fakePublisher{}
		worker := &Worker{log: zap.NewNop(), redisRepo: redisRepo, publisher: publisher}

		// Reminder falls due at 23:58; the second scan runs the next day.
		start := time.Date(2025, time.March, 11, 0, 13, 0, 0, time.UTC)
		entry := models.ScheduleEntry{
			ID:           "entry-1",
			TechnicianID: "tech-1",
			Status:       constvars.ScheduleStatusScheduled,
			Start:        start,
			End:          start.Add(time.Hour),
			Reminders:    []models.Reminder{{MinutesBefore: 15, Channel: "email"}},
		}

		worker.dispatchDueReminders(context.Background(), &entry, start.Add(-14*time.Minute))
		worker.dispatchDueReminders(context.Background(), &entry, start.Add(-12*time.Minute))

		assert.Len(t, publisher.published, 1, "a scan after midnight must see the pre-midnight dedupe entry")
	})

	t.Run("Skips Reminder Not Yet Due", func(t *testing.T) {
		redisRepo := newFakeRedisRepository()
		publisher := &fakePublisher{}
		worker := &Worker{log: zap.NewNop(), redisRepo: redisRepo, publisher: publisher}

		entry := upcomingEntry(30, models.Reminder{MinutesBefore: 15, Channel: "sms"})

		worker.dispatchDueReminders(context.Background(), &entry, time.Now().UTC())

		assert.Empty(t, publisher.published)
	})

	t.Run("Dispatches Each Channel Separately", func(t *testing.T) {
		redisRepo := newFakeRedisRepository()
		publisher := &fakePublisher{}
		worker := &Worker{log: zap.NewNop(), redisRepo: redisRepo, publisher: publisher}

		entry := upcomingEntry(5,
			models.Reminder{MinutesBefore: 15, Channel: "email"},
			models.Reminder{MinutesBefore: 10, Channel: "push"},
		)

		worker.dispatchDueReminders(context.Background(), &entry, time.Now().UTC())

		assert.Len(t, publisher.published, 2)
	})
}
