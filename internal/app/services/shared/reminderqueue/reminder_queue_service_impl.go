package reminderqueue

import (
	"context"
	"deskwise-service/internal/app/contracts"
	"deskwise-service/internal/pkg/constvars"
	"deskwise-service/internal/pkg/exceptions"
	"sync"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type reminderQueueService struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

var (
	reminderQueueServiceInstance contracts.ReminderPublisher
	onceReminderQueueService     sync.Once
	reminderQueueServiceError    error
)

func NewReminderQueueService(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queue string) (contracts.ReminderPublisher, error) {
	onceReminderQueueService.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			reminderQueueServiceError = err
			return
		}
		if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			reminderQueueServiceError = err
			return
		}
		instance := &reminderQueueService{
			Channel: channel,
			Queue:   queue,
			Log:     logger,
		}
		reminderQueueServiceInstance = instance
	})
	return reminderQueueServiceInstance, reminderQueueServiceError
}

func (s *reminderQueueService) PublishReminder(ctx context.Context, payload []byte) error {
	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         payload,
		DeliveryMode: amqp091.Persistent,
	}

	err := s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("reminderQueueService.PublishReminder error publishing message",
			zap.String(constvars.LoggingQueueKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublish(err)
	}
	return nil
}
