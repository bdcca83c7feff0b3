package contracts

import "context"

// ReminderPublisher pushes due-reminder payloads onto the messaging broker.
type ReminderPublisher interface {
	PublishReminder(ctx context.Context, payload []byte) error
}
