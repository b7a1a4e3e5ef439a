package messages

import (
	"context"
	"postcare-service/internal/app/models"
	"postcare-service/internal/pkg/dto/requests"
	"postcare-service/internal/pkg/dto/responses"
	"time"
)

type MessageRepository interface {
	Insert(ctx context.Context, message *models.SMSMessage) (string, error)
	FindByID(ctx context.Context, messageID string) (*models.SMSMessage, error)
	FindByProviderMessageID(ctx context.Context, providerMessageID string) (*models.SMSMessage, error)
	List(ctx context.Context, request *requests.ListMessages) ([]models.SMSMessage, error)
	Count(ctx context.Context, request *requests.ListMessages) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatuses(ctx context.Context, statuses []string) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	CountByCategory(ctx context.Context) (map[string]int64, error)
	FindRecent(ctx context.Context, limit int) ([]models.SMSMessage, error)
	MarkRead(ctx context.Context, messageID string) (int64, error)
	MarkManyRead(ctx context.Context, messageIDs []string) (int64, error)
	MarkAllUnreadRead(ctx context.Context) (int64, error)
}

type MessageUsecase interface {
	ReceiveInbound(ctx context.Context, request *requests.InboundMessage) (*models.SMSMessage, error)
	Send(ctx context.Context, request *requests.SendMessage) (*responses.SendMessage, error)
	List(ctx context.Context, request *requests.ListMessages, baseURL string) ([]models.SMSMessage, *responses.Pagination, error)
	Statistics(ctx context.Context) (*responses.MessageStatistics, error)
	MarkRead(ctx context.Context, messageID string) error
	MarkManyRead(ctx context.Context, request *requests.MarkMessagesRead) (*responses.MarkMessagesRead, error)
}
