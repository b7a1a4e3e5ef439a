package messages

import (
	"context"
	"fmt"
	"postcare-service/internal/app/models"
	"postcare-service/internal/app/services/core/profiles"
	"postcare-service/internal/app/services/shared/alerts"
	redisrepo "postcare-service/internal/app/services/shared/redis"
	"postcare-service/internal/app/services/shared/smsgateway"
	"postcare-service/internal/pkg/constvars"
	"postcare-service/internal/pkg/dto/requests"
	"postcare-service/internal/pkg/dto/responses"
	"postcare-service/internal/pkg/exceptions"
	"postcare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// webhookDedupTTL bounds how long a gateway delivery id is remembered. The
// gateway retries for at most a few hours, so a day is comfortably past it.
const webhookDedupTTL = 24 * time.Hour

type messageUsecase struct {
	Log               *zap.Logger
	MessageRepository MessageRepository
	PatientRepository profiles.PatientProfileRepository
	RedisRepository   redisrepo.RedisRepository
	SMSGateway        smsgateway.SMSGatewayService
	AlertPublisher    alerts.AlertPublisher
}

func NewMessageUsecase(
	logger *zap.Logger,
	messageRepository MessageRepository,
	patientRepository profiles.PatientProfileRepository,
	redisRepository redisrepo.RedisRepository,
	smsGateway smsgateway.SMSGatewayService,
	alertPublisher alerts.AlertPublisher,
) MessageUsecase {
	return &messageUsecase{
		Log:               logger,
		MessageRepository: messageRepository,
		PatientRepository: patientRepository,
		RedisRepository:   redisRepository,
		SMSGateway:        smsGateway,
		AlertPublisher:    alertPublisher,
	}
}

// ReceiveInbound stores a webhook delivery exactly once. Unidentified
// senders are kept too; losing a patient message is worse than storing one
// without a profile link.
func (uc *messageUsecase) ReceiveInbound(ctx context.Context, request *requests.InboundMessage) (*models.SMSMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("messageUsecase.ReceiveInbound called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneNumberKey, request.PhoneNumber),
	)

	if request.ProviderMessageID != "" {
		dedupKey := constvars.WebhookDedupKeyPrefix + request.ProviderMessageID
		seen, err := uc.RedisRepository.Get(ctx, dedupKey)
		if err != nil {
			// Dedup is an optimization; a cache failure must not drop the webhook.
			uc.Log.Warn("messageUsecase.ReceiveInbound dedup cache unavailable",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		if seen != "" {
			existing, err := uc.MessageRepository.FindByProviderMessageID(ctx, request.ProviderMessageID)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				uc.Log.Info("messageUsecase.ReceiveInbound duplicate webhook ignored",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingMessageIDKey, existing.ID),
				)
				return existing, nil
			}
		}
	}

	patientID, patientName := uc.resolvePatient(ctx, request)

	status := constvars.MessageStatusUnread
	if IsUrgent(request.Message) {
		status = constvars.MessageStatusUrgent
	}

	// A missing or "general" category means the sender's gateway did not
	// classify the message, so classification runs here.
	category := request.Category
	if category == "" || category == constvars.MessageCategoryGeneral {
		category = ClassifyCategory(request.Message)
	}

	now := time.Now()
	message := &models.SMSMessage{
		PatientID:         patientID,
		PatientName:       patientName,
		PhoneNumber:       request.PhoneNumber,
		Message:           request.Message,
		Direction:         constvars.MessageDirectionInbound,
		Status:            status,
		Category:          category,
		Timestamp:         now,
		Processed:         false,
		ProviderMessageID: request.ProviderMessageID,
		Metadata:          request.Metadata,
		TimeModel:         models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	messageID, err := uc.MessageRepository.Insert(ctx, message)
	if err != nil {
		return nil, err
	}
	message.ID = messageID

	if request.ProviderMessageID != "" {
		dedupKey := constvars.WebhookDedupKeyPrefix + request.ProviderMessageID
		if err := uc.RedisRepository.Set(ctx, dedupKey, messageID, webhookDedupTTL); err != nil {
			uc.Log.Warn("messageUsecase.ReceiveInbound failed to record dedup key",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	if status == constvars.MessageStatusUrgent {
		uc.publishUrgentAlert(ctx, message)
	}

	return message, nil
}

// Send always stores the outbound message; gateway failures are reported in
// the delivery result instead of an error so the care record stays complete.
func (uc *messageUsecase) Send(ctx context.Context, request *requests.SendMessage) (*responses.SendMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("messageUsecase.Send called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	phoneNumber := request.PhoneNumber
	patientName := constvars.UnknownPatientName
	if request.PatientID != "" {
		patient, err := uc.PatientRepository.FindPatientByID(ctx, request.PatientID)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, exceptions.ErrProfileNotExist(fmt.Errorf("patient profile %s not found", request.PatientID))
		}
		patientName = patient.FirstName + " " + patient.LastName
		if phoneNumber == "" {
			phoneNumber = patient.PhoneNumber
		}
	}

	category := request.Category
	if category == "" {
		category = constvars.MessageCategoryResponse
	}

	delivery := responses.DeliveryResult{Delivered: true}
	if err := uc.SMSGateway.Send(ctx, phoneNumber, request.Message); err != nil {
		uc.Log.Error("messageUsecase.Send gateway delivery failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPhoneNumberKey, phoneNumber),
			zap.Error(err),
		)
		delivery = responses.DeliveryResult{Delivered: false, Error: err.Error()}
	}

	now := time.Now()
	message := &models.SMSMessage{
		PatientID:   request.PatientID,
		PatientName: patientName,
		PhoneNumber: phoneNumber,
		Message:     request.Message,
		Direction:   constvars.MessageDirectionOutbound,
		Status:      constvars.MessageStatusRead,
		Category:    category,
		Timestamp:   now,
		Processed:   true,
		TimeModel:   models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	messageID, err := uc.MessageRepository.Insert(ctx, message)
	if err != nil {
		return nil, err
	}
	message.ID = messageID

	return &responses.SendMessage{
		Message:  message,
		Delivery: delivery,
	}, nil
}

func (uc *messageUsecase) List(ctx context.Context, request *requests.ListMessages, baseURL string) ([]models.SMSMessage, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("messageUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	total, err := uc.MessageRepository.Count(ctx, request)
	if err != nil {
		return nil, nil, err
	}

	result, err := uc.MessageRepository.List(ctx, request)
	if err != nil {
		return nil, nil, err
	}

	pagination := utils.BuildPaginationResponse(int(total), request.Page, request.PageSize, baseURL)
	return result, pagination, nil
}

func (uc *messageUsecase) Statistics(ctx context.Context) (*responses.MessageStatistics, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("messageUsecase.Statistics called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	total, err := uc.MessageRepository.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	// Urgent messages have not been read either, so they count as unread.
	unread, err := uc.MessageRepository.CountByStatuses(ctx, []string{
		constvars.MessageStatusUnread,
		constvars.MessageStatusUrgent,
	})
	if err != nil {
		return nil, err
	}

	urgent, err := uc.MessageRepository.CountByStatuses(ctx, []string{constvars.MessageStatusUrgent})
	if err != nil {
		return nil, err
	}

	todayCount, err := uc.MessageRepository.CountSince(ctx, utils.StartOfDay(time.Now()))
	if err != nil {
		return nil, err
	}

	byCategory, err := uc.MessageRepository.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	recentMessages, err := uc.MessageRepository.FindRecent(ctx, constvars.RecentMessageCount)
	if err != nil {
		return nil, err
	}

	recent := make([]responses.RecentMessage, 0, len(recentMessages))
	for _, message := range recentMessages {
		recent = append(recent, responses.RecentMessage{
			ID:          message.ID,
			PatientName: message.PatientName,
			Message:     truncate(message.Message, constvars.RecentBodyMaxChars),
			Status:      message.Status,
			Category:    message.Category,
			Timestamp:   message.Timestamp,
		})
	}

	return &responses.MessageStatistics{
		Total:      total,
		Unread:     unread,
		Urgent:     urgent,
		TodayCount: todayCount,
		ByCategory: byCategory,
		Recent:     recent,
	}, nil
}

func (uc *messageUsecase) MarkRead(ctx context.Context, messageID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("messageUsecase.MarkRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMessageIDKey, messageID),
	)

	matched, err := uc.MessageRepository.MarkRead(ctx, messageID)
	if err != nil {
		return err
	}
	if matched == 0 {
		return exceptions.ErrMessageNotExist(fmt.Errorf("message %s not found", messageID))
	}
	return nil
}

// MarkManyRead with no ids marks every unread and urgent message read,
// mirroring a "clear inbox" action on the dashboard.
func (uc *messageUsecase) MarkManyRead(ctx context.Context, request *requests.MarkMessagesRead) (*responses.MarkMessagesRead, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("messageUsecase.MarkManyRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("message_count", len(request.MessageIDs)),
	)

	var updated int64
	var err error
	if len(request.MessageIDs) == 0 {
		updated, err = uc.MessageRepository.MarkAllUnreadRead(ctx)
	} else {
		updated, err = uc.MessageRepository.MarkManyRead(ctx, request.MessageIDs)
	}
	if err != nil {
		return nil, err
	}

	return &responses.MarkMessagesRead{Updated: updated}, nil
}

// resolvePatient links the message to a profile by explicit id first, then
// by phone number. The fallback name keeps unidentified senders visible on
// the dashboard.
func (uc *messageUsecase) resolvePatient(ctx context.Context, request *requests.InboundMessage) (string, string) {
	if request.PatientID != "" {
		patient, err := uc.PatientRepository.FindPatientByID(ctx, request.PatientID)
		if err == nil && patient != nil {
			return patient.ID, patient.FirstName + " " + patient.LastName
		}
	}

	patient, err := uc.PatientRepository.FindPatientByPhoneNumber(ctx, request.PhoneNumber)
	if err == nil && patient != nil {
		return patient.ID, patient.FirstName + " " + patient.LastName
	}

	if request.PatientName != "" {
		return request.PatientID, request.PatientName
	}
	return request.PatientID, constvars.UnknownPatientName
}

// publishUrgentAlert is best effort: alerting is a secondary channel and an
// unreachable broker must not fail the webhook.
func (uc *messageUsecase) publishUrgentAlert(ctx context.Context, message *models.SMSMessage) {
	alert := &requests.UrgentAlert{
		MessageID:   message.ID,
		PatientID:   message.PatientID,
		PatientName: message.PatientName,
		PhoneNumber: message.PhoneNumber,
		Message:     message.Message,
		Category:    message.Category,
		Timestamp:   message.Timestamp.Format(time.RFC3339),
	}
	if err := uc.AlertPublisher.PublishUrgent(ctx, alert); err != nil {
		uc.Log.Error("messageUsecase.ReceiveInbound failed to publish urgent alert",
			zap.String(constvars.LoggingMessageIDKey, message.ID),
			zap.Error(err),
		)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
