package messages

import (
	"context"
	"errors"
	"postcare-service/internal/app/models"
	"postcare-service/internal/pkg/constvars"
	"postcare-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Insert(ctx context.Context, message *models.SMSMessage) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

func (m *MockMessageRepository) FindByID(ctx context.Context, messageID string) (*models.SMSMessage, error) {
	args := m.Called(ctx, messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SMSMessage), args.Error(1)
}

func (m *MockMessageRepository) FindByProviderMessageID(ctx context.Context, providerMessageID string) (*models.SMSMessage, error) {
	args := m.Called(ctx, providerMessageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SMSMessage), args.Error(1)
}

func (m *MockMessageRepository) List(ctx context.Context, request *requests.ListMessages) ([]models.SMSMessage, error) {
	args := m.Called(ctx, request)
	return args.Get(0).([]models.SMSMessage), args.Error(1)
}

func (m *MockMessageRepository) Count(ctx context.Context, request *requests.ListMessages) (int64, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageRepository) CountByStatuses(ctx context.Context, statuses []string) (int64, error) {
	args := m.Called(ctx, statuses)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageRepository) CountByCategory(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockMessageRepository) FindRecent(ctx context.Context, limit int) ([]models.SMSMessage, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.SMSMessage), args.Error(1)
}

func (m *MockMessageRepository) MarkRead(ctx context.Context, messageID string) (int64, error) {
	args := m.Called(ctx, messageID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageRepository) MarkManyRead(ctx context.Context, messageIDs []string) (int64, error) {
	args := m.Called(ctx, messageIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageRepository) MarkAllUnreadRead(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) CreatePatient(ctx context.Context, profile *models.PatientProfile) (string, error) {
	args := m.Called(ctx, profile)
	return args.String(0), args.Error(1)
}

func (m *MockPatientRepository) FindPatientByID(ctx context.Context, profileID string) (*models.PatientProfile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PatientProfile), args.Error(1)
}

func (m *MockPatientRepository) FindPatientByPhoneNumber(ctx context.Context, phoneNumber string) (*models.PatientProfile, error) {
	args := m.Called(ctx, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PatientProfile), args.Error(1)
}

func (m *MockPatientRepository) UpdatePatient(ctx context.Context, profile *models.PatientProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockPatientRepository) DeletePatientByID(ctx context.Context, profileID string) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

type MockSMSGateway struct {
	mock.Mock
}

func (m *MockSMSGateway) Send(ctx context.Context, phoneNumber, message string) error {
	args := m.Called(ctx, phoneNumber, message)
	return args.Error(0)
}

type MockAlertPublisher struct {
	mock.Mock
}

func (m *MockAlertPublisher) PublishUrgent(ctx context.Context, alert *requests.UrgentAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

type usecaseMocks struct {
	messageRepo *MockMessageRepository
	patientRepo *MockPatientRepository
	redis       *MockRedisRepository
	gateway     *MockSMSGateway
	alerts      *MockAlertPublisher
}

func newTestUsecase() (MessageUsecase, *usecaseMocks) {
	mocks := &usecaseMocks{
		messageRepo: new(MockMessageRepository),
		patientRepo: new(MockPatientRepository),
		redis:       new(MockRedisRepository),
		gateway:     new(MockSMSGateway),
		alerts:      new(MockAlertPublisher),
	}
	uc := NewMessageUsecase(zap.NewNop(), mocks.messageRepo, mocks.patientRepo, mocks.redis, mocks.gateway, mocks.alerts)
	return uc, mocks
}

func TestReceiveInbound_UrgentMessagePublishesAlert(t *testing.T) {
	uc, mocks := newTestUsecase()

	patient := &models.PatientProfile{
		ID:          "64f1b2a3c4d5e6f7a8b9c0d1",
		FirstName:   "Jane",
		LastName:    "Doe",
		PhoneNumber: "+15551234567",
	}
	mocks.patientRepo.On("FindPatientByPhoneNumber", mock.Anything, "+15551234567").Return(patient, nil)
	mocks.messageRepo.On("Insert", mock.Anything, mock.AnythingOfType("*models.SMSMessage")).Return("64f1b2a3c4d5e6f7a8b9c0d2", nil)
	mocks.alerts.On("PublishUrgent", mock.Anything, mock.AnythingOfType("*requests.UrgentAlert")).Return(nil)

	result, err := uc.ReceiveInbound(context.Background(), &requests.InboundMessage{
		PhoneNumber: "+15551234567",
		Message:     "I have severe pain near the incision",
	})

	require.NoError(t, err)
	assert.Equal(t, constvars.MessageStatusUrgent, result.Status)
	assert.Equal(t, constvars.MessageCategorySymptom, result.Category)
	assert.Equal(t, "Jane Doe", result.PatientName)
	assert.Equal(t, patient.ID, result.PatientID)
	mocks.alerts.AssertCalled(t, "PublishUrgent", mock.Anything, mock.AnythingOfType("*requests.UrgentAlert"))
}

func TestReceiveInbound_AlertFailureDoesNotFailWebhook(t *testing.T) {
	uc, mocks := newTestUsecase()

	mocks.patientRepo.On("FindPatientByPhoneNumber", mock.Anything, mock.Anything).Return(nil, nil)
	mocks.messageRepo.On("Insert", mock.Anything, mock.AnythingOfType("*models.SMSMessage")).Return("64f1b2a3c4d5e6f7a8b9c0d2", nil)
	mocks.alerts.On("PublishUrgent", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	result, err := uc.ReceiveInbound(context.Background(), &requests.InboundMessage{
		PhoneNumber: "+15559999999",
		Message:     "urgent help needed",
	})

	require.NoError(t, err)
	assert.Equal(t, constvars.UnknownPatientName, result.PatientName)
}

func TestReceiveInbound_ExplicitCategoryIsKept(t *testing.T) {
	uc, mocks := newTestUsecase()

	mocks.patientRepo.On("FindPatientByPhoneNumber", mock.Anything, mock.Anything).Return(nil, nil)
	mocks.messageRepo.On("Insert", mock.Anything, mock.AnythingOfType("*models.SMSMessage")).Return("64f1b2a3c4d5e6f7a8b9c0d2", nil)

	result, err := uc.ReceiveInbound(context.Background(), &requests.InboundMessage{
		PhoneNumber: "+15559999999",
		Message:     "ran out of pills",
		Category:    constvars.MessageCategoryCheckup,
	})

	require.NoError(t, err)
	assert.Equal(t, constvars.MessageCategoryCheckup, result.Category)
}

func TestReceiveInbound_GeneralCategoryIsReclassified(t *testing.T) {
	uc, mocks := newTestUsecase()

	mocks.patientRepo.On("FindPatientByPhoneNumber", mock.Anything, mock.Anything).Return(nil, nil)
	mocks.messageRepo.On("Insert", mock.Anything, mock.AnythingOfType("*models.SMSMessage")).Return("64f1b2a3c4d5e6f7a8b9c0d2", nil)
	mocks.alerts.On("PublishUrgent", mock.Anything, mock.Anything).Return(nil)

	result, err := uc.ReceiveInbound(context.Background(), &requests.InboundMessage{
		PhoneNumber: "+15559999999",
		Message:     "severe pain since this morning",
		Category:    constvars.MessageCategoryGeneral,
	})

	require.NoError(t, err)
	assert.Equal(t, constvars.MessageCategorySymptom, result.Category)
	assert.Equal(t, constvars.MessageStatusUrgent, result.Status)
}

func TestReceiveInbound_DuplicateWebhookReturnsExisting(t *testing.T) {
	uc, mocks := newTestUsecase()

	existing := &models.SMSMessage{ID: "64f1b2a3c4d5e6f7a8b9c0d2", Message: "already stored"}
	mocks.redis.On("Get", mock.Anything, constvars.WebhookDedupKeyPrefix+"gw-123").Return(existing.ID, nil)
	mocks.messageRepo.On("FindByProviderMessageID", mock.Anything, "gw-123").Return(existing, nil)

	result, err := uc.ReceiveInbound(context.Background(), &requests.InboundMessage{
		PhoneNumber:       "+15559999999",
		Message:           "already stored",
		ProviderMessageID: "gw-123",
	})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, result.ID)
	mocks.messageRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestSend_GatewayFailureStillStoresMessage(t *testing.T) {
	uc, mocks := newTestUsecase()

	mocks.gateway.On("Send", mock.Anything, "+15551234567", "How are you feeling?").Return(errors.New("gateway unreachable"))
	mocks.messageRepo.On("Insert", mock.Anything, mock.AnythingOfType("*models.SMSMessage")).Return("64f1b2a3c4d5e6f7a8b9c0d3", nil)

	result, err := uc.Send(context.Background(), &requests.SendMessage{
		PhoneNumber: "+15551234567",
		Message:     "How are you feeling?",
	})

	require.NoError(t, err)
	assert.False(t, result.Delivery.Delivered)
	assert.NotEmpty(t, result.Delivery.Error)
	mocks.messageRepo.AssertCalled(t, "Insert", mock.Anything, mock.AnythingOfType("*models.SMSMessage"))
}

func TestSend_ResolvesPatientPhoneNumber(t *testing.T) {
	uc, mocks := newTestUsecase()

	patient := &models.PatientProfile{
		ID:          "64f1b2a3c4d5e6f7a8b9c0d1",
		FirstName:   "Jane",
		LastName:    "Doe",
		PhoneNumber: "+15551234567",
	}
	mocks.patientRepo.On("FindPatientByID", mock.Anything, patient.ID).Return(patient, nil)
	mocks.gateway.On("Send", mock.Anything, "+15551234567", "Checking in").Return(nil)
	mocks.messageRepo.On("Insert", mock.Anything, mock.AnythingOfType("*models.SMSMessage")).Return("64f1b2a3c4d5e6f7a8b9c0d3", nil)

	result, err := uc.Send(context.Background(), &requests.SendMessage{
		PatientID: patient.ID,
		Message:   "Checking in",
	})

	require.NoError(t, err)
	assert.True(t, result.Delivery.Delivered)
	message := result.Message.(*models.SMSMessage)
	assert.Equal(t, "+15551234567", message.PhoneNumber)
	assert.Equal(t, "Jane Doe", message.PatientName)
	assert.Equal(t, constvars.MessageCategoryResponse, message.Category)
}

func TestMarkRead_NotFound(t *testing.T) {
	uc, mocks := newTestUsecase()

	mocks.messageRepo.On("MarkRead", mock.Anything, "64f1b2a3c4d5e6f7a8b9c0d9").Return(int64(0), nil)

	err := uc.MarkRead(context.Background(), "64f1b2a3c4d5e6f7a8b9c0d9")
	assert.Error(t, err)
}

func TestMarkManyRead_EmptyListMarksAll(t *testing.T) {
	uc, mocks := newTestUsecase()

	mocks.messageRepo.On("MarkAllUnreadRead", mock.Anything).Return(int64(7), nil)

	result, err := uc.MarkManyRead(context.Background(), &requests.MarkMessagesRead{})
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.Updated)
	mocks.messageRepo.AssertNotCalled(t, "MarkManyRead", mock.Anything, mock.Anything)
}

func TestStatistics_AggregatesCounts(t *testing.T) {
	uc, mocks := newTestUsecase()

	mocks.messageRepo.On("CountAll", mock.Anything).Return(int64(42), nil)
	mocks.messageRepo.On("CountByStatuses", mock.Anything, []string{constvars.MessageStatusUnread, constvars.MessageStatusUrgent}).Return(int64(10), nil)
	mocks.messageRepo.On("CountByStatuses", mock.Anything, []string{constvars.MessageStatusUrgent}).Return(int64(3), nil)
	mocks.messageRepo.On("CountSince", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(5), nil)
	mocks.messageRepo.On("CountByCategory", mock.Anything).Return(map[string]int64{
		constvars.MessageCategorySymptom: 20,
		constvars.MessageCategoryGeneral: 22,
	}, nil)
	longBody := make([]byte, 150)
	for i := range longBody {
		longBody[i] = 'a'
	}
	mocks.messageRepo.On("FindRecent", mock.Anything, constvars.RecentMessageCount).Return([]models.SMSMessage{
		{ID: "64f1b2a3c4d5e6f7a8b9c0d1", PatientName: "Jane Doe", Message: string(longBody), Status: constvars.MessageStatusUnread, Category: constvars.MessageCategorySymptom, Timestamp: time.Now()},
	}, nil)

	result, err := uc.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.Total)
	assert.Equal(t, int64(10), result.Unread)
	assert.Equal(t, int64(3), result.Urgent)
	assert.Equal(t, int64(5), result.TodayCount)
	assert.Len(t, result.Recent, 1)
	assert.Len(t, result.Recent[0].Message, constvars.RecentBodyMaxChars)
}
