package auth

import (
	"context"
	"errors"
	"postcare-service/internal/app/config"
	"postcare-service/internal/app/models"
	"postcare-service/internal/app/services/shared/jwtmanager"
	"postcare-service/internal/pkg/constvars"
	"postcare-service/internal/pkg/dto/requests"
	"postcare-service/internal/pkg/exceptions"
	"postcare-service/internal/pkg/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
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

type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) CreateProvider(ctx context.Context, profile *models.ProviderProfile) (string, error) {
	args := m.Called(ctx, profile)
	return args.String(0), args.Error(1)
}

func (m *MockProviderRepository) FindProviderByID(ctx context.Context, profileID string) (*models.ProviderProfile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProviderProfile), args.Error(1)
}

func (m *MockProviderRepository) UpdateProvider(ctx context.Context, profile *models.ProviderProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProviderRepository) DeleteProviderByID(ctx context.Context, profileID string) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

type MockHospitalRepository struct {
	mock.Mock
}

func (m *MockHospitalRepository) CreateHospital(ctx context.Context, profile *models.HospitalProfile) (string, error) {
	args := m.Called(ctx, profile)
	return args.String(0), args.Error(1)
}

func (m *MockHospitalRepository) FindHospitalByID(ctx context.Context, profileID string) (*models.HospitalProfile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HospitalProfile), args.Error(1)
}

func (m *MockHospitalRepository) UpdateHospital(ctx context.Context, profile *models.HospitalProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockHospitalRepository) DeleteHospitalByID(ctx context.Context, profileID string) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

type authMocks struct {
	userRepo     *MockUserRepository
	patientRepo  *MockPatientRepository
	providerRepo *MockProviderRepository
	hospitalRepo *MockHospitalRepository
}

func newTestAuthUsecase(t *testing.T) (AuthUsecase, *authMocks) {
	t.Helper()
	jwtManager, err := jwtmanager.NewJWTManager(&config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret"},
	}, zap.NewNop())
	require.NoError(t, err)

	mocks := &authMocks{
		userRepo:     new(MockUserRepository),
		patientRepo:  new(MockPatientRepository),
		providerRepo: new(MockProviderRepository),
		hospitalRepo: new(MockHospitalRepository),
	}
	uc := NewAuthUsecase(zap.NewNop(), mocks.userRepo, mocks.patientRepo, mocks.providerRepo, mocks.hospitalRepo, jwtManager)
	return uc, mocks
}

func patientRegisterRequest() *requests.Register {
	return &requests.Register{
		Email:            "jane@example.com",
		Password:         "Sup3rSecret",
		UserType:         constvars.UserTypePatient,
		FirstName:        "Jane",
		LastName:         "Doe",
		DateOfBirth:      "1990-04-12",
		PhoneNumber:      "+15551234567",
		EmergencyContact: "+15557654321",
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, mocks := newTestAuthUsecase(t)

	mocks.userRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(&models.User{ID: "64f1b2a3c4d5e6f7a8b9c0d1"}, nil)

	_, err := uc.Register(context.Background(), patientRegisterRequest())
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	mocks.patientRepo.AssertNotCalled(t, "CreatePatient", mock.Anything, mock.Anything)
}

func TestRegister_PatientSuccess(t *testing.T) {
	uc, mocks := newTestAuthUsecase(t)

	mocks.userRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, nil)
	mocks.patientRepo.On("CreatePatient", mock.Anything, mock.AnythingOfType("*models.PatientProfile")).Return("64f1b2a3c4d5e6f7a8b9c0d1", nil)
	mocks.userRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).Return("64f1b2a3c4d5e6f7a8b9c0d2", nil)

	result, err := uc.Register(context.Background(), patientRegisterRequest())
	require.NoError(t, err)

	assert.Equal(t, "64f1b2a3c4d5e6f7a8b9c0d2", result.ID)
	assert.Equal(t, constvars.UserTypePatient, result.UserType)
	assert.NotEmpty(t, result.Token)

	createdUser := mocks.userRepo.Calls[1].Arguments.Get(1).(*models.User)
	assert.Equal(t, "64f1b2a3c4d5e6f7a8b9c0d1", createdUser.ProfileID)
	assert.NotEqual(t, "Sup3rSecret", createdUser.Password)
	assert.True(t, utils.CheckPasswordHash("Sup3rSecret", createdUser.Password))
}

func TestRegister_RollsBackProfileWhenIdentityFails(t *testing.T) {
	uc, mocks := newTestAuthUsecase(t)

	mocks.userRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, nil)
	mocks.patientRepo.On("CreatePatient", mock.Anything, mock.AnythingOfType("*models.PatientProfile")).Return("64f1b2a3c4d5e6f7a8b9c0d1", nil)
	mocks.userRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).Return("", errors.New("insert failed"))
	mocks.patientRepo.On("DeletePatientByID", mock.Anything, "64f1b2a3c4d5e6f7a8b9c0d1").Return(nil)

	_, err := uc.Register(context.Background(), patientRegisterRequest())
	require.Error(t, err)
	mocks.patientRepo.AssertCalled(t, "DeletePatientByID", mock.Anything, "64f1b2a3c4d5e6f7a8b9c0d1")
}

func TestRegister_MissingRoleFields(t *testing.T) {
	uc, mocks := newTestAuthUsecase(t)

	mocks.userRepo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, nil)

	request := patientRegisterRequest()
	request.FirstName = ""

	_, err := uc.Register(context.Background(), request)
	require.Error(t, err)
	mocks.patientRepo.AssertNotCalled(t, "CreatePatient", mock.Anything, mock.Anything)
}

func TestRegister_UnknownUserType(t *testing.T) {
	uc, mocks := newTestAuthUsecase(t)

	mocks.userRepo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, nil)

	request := patientRegisterRequest()
	request.UserType = "clinic"

	_, err := uc.Register(context.Background(), request)
	require.Error(t, err)
}

func TestLogin_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	uc, mocks := newTestAuthUsecase(t)

	hashed, err := utils.HashPassword("Sup3rSecret")
	require.NoError(t, err)

	mocks.userRepo.On("FindByEmail", mock.Anything, "unknown@example.com").Return(nil, nil)
	mocks.userRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(&models.User{
		ID:        "64f1b2a3c4d5e6f7a8b9c0d2",
		Email:     "jane@example.com",
		Password:  hashed,
		Role:      constvars.UserTypePatient,
		ProfileID: "64f1b2a3c4d5e6f7a8b9c0d1",
	}, nil)

	_, unknownErr := uc.Login(context.Background(), &requests.Login{Email: "unknown@example.com", Password: "whatever"})
	_, wrongPassErr := uc.Login(context.Background(), &requests.Login{Email: "jane@example.com", Password: "wrong"})

	var unknownCustom, wrongCustom *exceptions.CustomError
	require.ErrorAs(t, unknownErr, &unknownCustom)
	require.ErrorAs(t, wrongPassErr, &wrongCustom)
	assert.Equal(t, unknownCustom.ClientMessage, wrongCustom.ClientMessage)
	assert.Equal(t, constvars.StatusUnauthorized, unknownCustom.StatusCode)
}

func TestLogin_Success(t *testing.T) {
	uc, mocks := newTestAuthUsecase(t)

	hashed, err := utils.HashPassword("Sup3rSecret")
	require.NoError(t, err)

	mocks.userRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(&models.User{
		ID:        "64f1b2a3c4d5e6f7a8b9c0d2",
		Email:     "jane@example.com",
		Password:  hashed,
		UserType:  constvars.UserTypePatient,
		Role:      constvars.UserTypePatient,
		ProfileID: "64f1b2a3c4d5e6f7a8b9c0d1",
	}, nil)
	mocks.patientRepo.On("FindPatientByID", mock.Anything, "64f1b2a3c4d5e6f7a8b9c0d1").Return(&models.PatientProfile{
		ID:        "64f1b2a3c4d5e6f7a8b9c0d1",
		FirstName: "Jane",
		LastName:  "Doe",
	}, nil)

	result, err := uc.Login(context.Background(), &requests.Login{Email: "jane@example.com", Password: "Sup3rSecret"})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", result.Email)
	assert.NotEmpty(t, result.Token)
	assert.NotNil(t, result.Profile)
}

func TestRegisterPatientByProvider_SetsRegisteredBy(t *testing.T) {
	uc, mocks := newTestAuthUsecase(t)

	caller := &models.User{ID: "64f1b2a3c4d5e6f7a8b9c0aa", Role: constvars.UserTypeProvider}
	mocks.patientRepo.On("CreatePatient", mock.Anything, mock.AnythingOfType("*models.PatientProfile")).Return("64f1b2a3c4d5e6f7a8b9c0d1", nil)

	result, err := uc.RegisterPatientByProvider(context.Background(), caller, &requests.RegisterPatientByProvider{
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: "1990-04-12",
		PhoneNumber: "+15551234567",
	})
	require.NoError(t, err)
	assert.Equal(t, caller.ID, result.RegisteredBy)

	created := mocks.patientRepo.Calls[0].Arguments.Get(1).(*models.PatientProfile)
	assert.Equal(t, caller.ID, created.RegisteredBy)
}

func TestRegisterPatientByProvider_RejectsNonProvider(t *testing.T) {
	uc, _ := newTestAuthUsecase(t)

	caller := &models.User{ID: "64f1b2a3c4d5e6f7a8b9c0aa", Role: constvars.UserTypePatient}
	_, err := uc.RegisterPatientByProvider(context.Background(), caller, &requests.RegisterPatientByProvider{
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: "1990-04-12",
		PhoneNumber: "+15551234567",
	})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
}
