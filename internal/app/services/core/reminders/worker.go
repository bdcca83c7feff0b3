package reminders

import (
	"context"
	"deskwise-service/internal/app/config"
	"deskwise-service/internal/app/contracts"
	"deskwise-service/internal/app/models"
	"deskwise-service/internal/pkg/constvars"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Worker periodically scans upcoming schedule entries and publishes a message
// per due reminder. A Redis leader lock keeps exactly one instance scanning;
// a per-day Redis set keeps reminders from being dispatched twice.
type Worker struct {
	log       *zap.Logger
	cfg       *config.InternalConfig
	locker    contracts.LockerService
	redisRepo contracts.RedisRepository
	entries   contracts.ScheduleEntryRepository
	publisher contracts.ReminderPublisher
	cron      *cron.Cron
	runCtx    context.Context
	cancel    context.CancelFunc
}

// ReminderMessage is the queue payload consumed by the notification dispatcher.
type ReminderMessage struct {
	EntryID      string    `json:"entry_id"`
	TechnicianID string    `json:"technician_id"`
	Title        string    `json:"title,omitempty"`
	Channel      string    `json:"channel"`
	Start        time.Time `json:"start"`
	DueAt        time.Time `json:"due_at"`
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	redisRepo contracts.RedisRepository,
	entries contracts.ScheduleEntryRepository,
	publisher contracts.ReminderPublisher,
) *Worker {
	return &Worker{
		log:       log,
		cfg:       cfg,
		locker:    lockerSvc,
		redisRepo: redisRepo,
		entries:   entries,
		publisher: publisher,
	}
}

// Start begins the periodic scan loop.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.Scheduling.ReminderCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("reminders.worker: failed to schedule with provided cron spec; falling back to @every 1m", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@every 1m", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop gracefully stops the cron and waits for an in-flight scan to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := 2 * time.Minute
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyReminderLeaderLock, ttl)
	if err != nil {
		w.log.Warn("reminders.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("reminders.worker: leader lock not acquired; another instance is scanning")
		return
	}
	defer w.locker.Unlock(ctx, constvars.RedisKeyReminderLeaderLock, token)

	now := time.Now().UTC()
	lookAhead := time.Duration(w.cfg.Scheduling.ReminderLookAheadMinutes) * time.Minute
	upcoming, err := w.entries.FindUpcoming(ctx, now, now.Add(lookAhead))
	if err != nil {
		w.log.Warn("reminders.worker: upcoming entries query failed", zap.Error(err))
		return
	}

	for i := range upcoming {
		w.dispatchDueReminders(ctx, &upcoming[i], now)
	}
}

func (w *Worker) dispatchDueReminders(ctx context.Context, entry *models.ScheduleEntry, now time.Time) {
	for _, reminder := range entry.Reminders {
		dueAt := entry.Start.Add(-time.Duration(reminder.MinutesBefore) * time.Minute)
		if dueAt.After(now) {
			continue
		}

		// Keyed by the due day, not the scan day, so a reminder falling due
		// just before midnight stays in the same set across the boundary.
		sentSetKey := fmt.Sprintf(constvars.RedisKeyReminderSentSetFormat, dueAt.Format("2006-01-02"))

		dedupeMember := fmt.Sprintf("%s:%d:%s", entry.ID, reminder.MinutesBefore, reminder.Channel)
		alreadySent, err := w.redisRepo.IsSetMember(ctx, sentSetKey, dedupeMember)
		if err != nil {
			w.log.Warn("reminders.worker: dedupe check failed",
				zap.String(constvars.LoggingEntryIDKey, entry.ID),
				zap.Error(err),
			)
			continue
		}
		if alreadySent {
			continue
		}

		payload, err := json.Marshal(ReminderMessage{
			EntryID:      entry.ID,
			TechnicianID: entry.TechnicianID,
			Title:        entry.Title,
			Channel:      reminder.Channel,
			Start:        entry.Start,
			DueAt:        dueAt,
		})
		if err != nil {
			w.log.Warn("reminders.worker: payload marshal failed",
				zap.String(constvars.LoggingEntryIDKey, entry.ID),
				zap.Error(err),
			)
			continue
		}

		if err := w.publisher.PublishReminder(ctx, payload); err != nil {
			w.log.Warn("reminders.worker: publish failed",
				zap.String(constvars.LoggingEntryIDKey, entry.ID),
				zap.Error(err),
			)
			continue
		}

		if err := w.redisRepo.AddToSet(ctx, sentSetKey, dedupeMember); err != nil {
			w.log.Warn("reminders.worker: dedupe record failed",
				zap.String(constvars.LoggingEntryIDKey, entry.ID),
				zap.Error(err),
			)
			continue
		}
		// The sent set only matters for the current day plus one look-ahead
		// window.
		_ = w.redisRepo.ExpireKey(ctx, sentSetKey, 48*time.Hour)

		w.log.Info("reminders.worker: reminder dispatched",
			zap.String(constvars.LoggingEntryIDKey, entry.ID),
			zap.String(constvars.LoggingTechnicianIDKey, entry.TechnicianID),
		)
	}
}
