package alerts

import (
	"context"
	"postcare-service/internal/pkg/dto/requests"
)

type AlertPublisher interface {
	PublishUrgent(ctx context.Context, alert *requests.UrgentAlert) error
}
