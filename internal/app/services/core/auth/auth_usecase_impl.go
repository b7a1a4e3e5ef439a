package auth

import (
	"context"
	"fmt"
	"postcare-service/internal/app/models"
	"postcare-service/internal/app/services/core/profiles"
	"postcare-service/internal/app/services/core/users"
	"postcare-service/internal/app/services/shared/jwtmanager"
	"postcare-service/internal/pkg/constvars"
	"postcare-service/internal/pkg/dto/requests"
	"postcare-service/internal/pkg/dto/responses"
	"postcare-service/internal/pkg/exceptions"
	"postcare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	Log                *zap.Logger
	UserRepository     users.UserRepository
	PatientRepository  profiles.PatientProfileRepository
	ProviderRepository profiles.ProviderProfileRepository
	HospitalRepository profiles.HospitalProfileRepository
	JWTManager         *jwtmanager.JWTManager
}

func NewAuthUsecase(
	logger *zap.Logger,
	userRepository users.UserRepository,
	patientRepository profiles.PatientProfileRepository,
	providerRepository profiles.ProviderProfileRepository,
	hospitalRepository profiles.HospitalProfileRepository,
	jwtManager *jwtmanager.JWTManager,
) AuthUsecase {
	return &authUsecase{
		Log:                logger,
		UserRepository:     userRepository,
		PatientRepository:  patientRepository,
		ProviderRepository: providerRepository,
		HospitalRepository: hospitalRepository,
		JWTManager:         jwtManager,
	}
}

// Register creates the role profile first, then the identity that points at
// it. A failed identity insert rolls the profile back so no orphan profile
// is reachable through login.
func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Register, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(fmt.Errorf("email %s already registered", request.Email))
	}

	profileID, profile, err := uc.createProfile(ctx, request)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		uc.rollbackProfile(ctx, request.UserType, profileID, request.Email)
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Email:     request.Email,
		Password:  hashedPassword,
		UserType:  request.UserType,
		Role:      request.UserType,
		ProfileID: profileID,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.rollbackProfile(ctx, request.UserType, profileID, request.Email)
		return nil, err
	}

	token, err := uc.JWTManager.CreateToken(userID)
	if err != nil {
		return nil, err
	}

	return &responses.Register{
		ID:       userID,
		Email:    request.Email,
		UserType: request.UserType,
		Profile:  profile,
		Token:    token,
	}, nil
}

// Login deliberately returns the same error for an unknown email and a wrong
// password.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(fmt.Errorf("email %s not registered", request.Email))
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(fmt.Errorf("password mismatch for %s", request.Email))
	}

	profile, err := uc.loadProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := uc.JWTManager.CreateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &responses.Login{
		ID:       user.ID,
		Email:    user.Email,
		UserType: user.UserType,
		Profile:  profile,
		Token:    token,
	}, nil
}

// RegisterPatientByProvider creates a patient profile with no login
// credential; the patient interacts through SMS only.
func (uc *authUsecase) RegisterPatientByProvider(ctx context.Context, caller *models.User, request *requests.RegisterPatientByProvider) (*responses.RegisterPatientByProvider, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RegisterPatientByProvider called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, caller.ID),
	)

	if caller.Role != constvars.UserTypeProvider {
		return nil, exceptions.ErrCallerNotProvider(fmt.Errorf("caller role is %q", caller.Role))
	}

	dateOfBirth, err := utils.ParseDate(request.DateOfBirth)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	now := time.Now()
	profile := &models.PatientProfile{
		FirstName:        request.FirstName,
		LastName:         request.LastName,
		DateOfBirth:      dateOfBirth,
		PhoneNumber:      request.PhoneNumber,
		EmergencyContact: request.EmergencyContact,
		MedicalHistory:   utils.MapMedicalHistory(request.MedicalHistory),
		Surgeries:        utils.MapSurgeries(request.Surgeries),
		Medications:      utils.MapMedications(request.Medications),
		RegisteredBy:     caller.ID,
		TimeModel:        models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	profileID, err := uc.PatientRepository.CreatePatient(ctx, profile)
	if err != nil {
		return nil, err
	}
	profile.ID = profileID

	return &responses.RegisterPatientByProvider{
		Profile:      profile,
		RegisteredBy: caller.ID,
	}, nil
}

// createProfile validates the role payload assembled from the flattened
// request, so missing fields report per-role errors, then inserts it.
func (uc *authUsecase) createProfile(ctx context.Context, request *requests.Register) (string, interface{}, error) {
	now := time.Now()
	switch request.UserType {
	case constvars.UserTypePatient:
		payload := &requests.PatientProfilePayload{
			FirstName:        request.FirstName,
			LastName:         request.LastName,
			DateOfBirth:      request.DateOfBirth,
			PhoneNumber:      request.PhoneNumber,
			EmergencyContact: request.EmergencyContact,
			MedicalHistory:   request.MedicalHistory,
			Surgeries:        request.Surgeries,
			Medications:      request.Medications,
		}
		if err := utils.ValidateStruct(payload); err != nil {
			return "", nil, exceptions.ErrInputValidation(err)
		}
		dateOfBirth, err := utils.ParseDate(payload.DateOfBirth)
		if err != nil {
			return "", nil, exceptions.ErrInputValidation(err)
		}
		profile := &models.PatientProfile{
			FirstName:        payload.FirstName,
			LastName:         payload.LastName,
			DateOfBirth:      dateOfBirth,
			PhoneNumber:      payload.PhoneNumber,
			EmergencyContact: payload.EmergencyContact,
			MedicalHistory:   utils.MapMedicalHistory(payload.MedicalHistory),
			Surgeries:        utils.MapSurgeries(payload.Surgeries),
			Medications:      utils.MapMedications(payload.Medications),
			TimeModel:        models.TimeModel{CreatedAt: now, UpdatedAt: now},
		}
		profileID, err := uc.PatientRepository.CreatePatient(ctx, profile)
		if err != nil {
			return "", nil, err
		}
		profile.ID = profileID
		return profileID, profile, nil

	case constvars.UserTypeProvider:
		payload := &requests.ProviderProfilePayload{
			Title:             request.Title,
			Specialization:    request.Specialization,
			LicenseNumber:     request.LicenseNumber,
			YearsOfExperience: request.YearsOfExperience,
		}
		if err := utils.ValidateStruct(payload); err != nil {
			return "", nil, exceptions.ErrInputValidation(err)
		}
		profile := &models.ProviderProfile{
			Title:             payload.Title,
			Specialization:    payload.Specialization,
			LicenseNumber:     payload.LicenseNumber,
			YearsOfExperience: payload.YearsOfExperience,
			TimeModel:         models.TimeModel{CreatedAt: now, UpdatedAt: now},
		}
		profileID, err := uc.ProviderRepository.CreateProvider(ctx, profile)
		if err != nil {
			return "", nil, err
		}
		profile.ID = profileID
		return profileID, profile, nil

	case constvars.UserTypeHospital:
		payload := &requests.HospitalProfilePayload{
			Name:          request.Name,
			Address:       request.Address,
			ContactNumber: request.ContactNumber,
		}
		if err := utils.ValidateStruct(payload); err != nil {
			return "", nil, exceptions.ErrInputValidation(err)
		}
		profile := &models.HospitalProfile{
			Name:          payload.Name,
			Address:       payload.Address,
			ContactNumber: payload.ContactNumber,
			TimeModel:     models.TimeModel{CreatedAt: now, UpdatedAt: now},
		}
		profileID, err := uc.HospitalRepository.CreateHospital(ctx, profile)
		if err != nil {
			return "", nil, err
		}
		profile.ID = profileID
		return profileID, profile, nil

	default:
		return "", nil, exceptions.ErrInvalidUserType(fmt.Errorf("user type %q is not supported", request.UserType))
	}
}

// rollbackProfile removes the profile created before an identity insert
// failed. A failed rollback leaves an orphan profile, which is logged loudly
// because it needs manual cleanup.
func (uc *authUsecase) rollbackProfile(ctx context.Context, userType, profileID, email string) {
	var err error
	switch userType {
	case constvars.UserTypePatient:
		err = uc.PatientRepository.DeletePatientByID(ctx, profileID)
	case constvars.UserTypeProvider:
		err = uc.ProviderRepository.DeleteProviderByID(ctx, profileID)
	case constvars.UserTypeHospital:
		err = uc.HospitalRepository.DeleteHospitalByID(ctx, profileID)
	}
	if err != nil {
		uc.Log.Error("authUsecase.Register orphan profile left behind after failed rollback",
			zap.String(constvars.LoggingEmailKey, email),
			zap.String(constvars.LoggingProfileIDKey, profileID),
			zap.Error(err),
		)
	}
}

func (uc *authUsecase) loadProfile(ctx context.Context, user *models.User) (interface{}, error) {
	switch user.Role {
	case constvars.UserTypePatient:
		profile, err := uc.PatientRepository.FindPatientByID(ctx, user.ProfileID)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			return nil, exceptions.ErrProfileNotExist(fmt.Errorf("patient profile %s not found", user.ProfileID))
		}
		return profile, nil
	case constvars.UserTypeProvider:
		profile, err := uc.ProviderRepository.FindProviderByID(ctx, user.ProfileID)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			return nil, exceptions.ErrProfileNotExist(fmt.Errorf("provider profile %s not found", user.ProfileID))
		}
		return profile, nil
	case constvars.UserTypeHospital:
		profile, err := uc.HospitalRepository.FindHospitalByID(ctx, user.ProfileID)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			return nil, exceptions.ErrProfileNotExist(fmt.Errorf("hospital profile %s not found", user.ProfileID))
		}
		return profile, nil
	default:
		return nil, exceptions.ErrInvalidUserType(fmt.Errorf("unknown role %q on identity %s", user.Role, user.ID))
	}
}
