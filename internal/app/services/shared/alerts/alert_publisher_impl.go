package alerts

import (
	"context"
	"postcare-service/internal/pkg/constvars"
	"postcare-service/internal/pkg/dto/requests"
	"postcare-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type alertPublisher struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

var (
	alertPublisherInstance AlertPublisher
	onceAlertPublisher     sync.Once
	alertPublisherError    error
)

func NewAlertPublisher(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queue string) (AlertPublisher, error) {
	onceAlertPublisher.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			alertPublisherError = err
			return
		}
		_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			alertPublisherError = err
			return
		}
		alertPublisherInstance = &alertPublisher{
			Channel: channel,
			Queue:   queue,
			Log:     logger,
		}
	})
	return alertPublisherInstance, alertPublisherError
}

func (s *alertPublisher) PublishUrgent(ctx context.Context, alert *requests.UrgentAlert) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	s.Log.Info("alertPublisher.PublishUrgent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMessageIDKey, alert.MessageID),
	)

	body, err := json.Marshal(alert)
	if err != nil {
		s.Log.Error("alertPublisher.PublishUrgent error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("alertPublisher.PublishUrgent error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	return nil
}
