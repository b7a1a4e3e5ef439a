package users

import (
	"context"
	"fmt"
	"postcare-service/internal/app/models"
	"postcare-service/internal/app/services/core/profiles"
	"postcare-service/internal/pkg/constvars"
	"postcare-service/internal/pkg/dto/requests"
	"postcare-service/internal/pkg/dto/responses"
	"postcare-service/internal/pkg/exceptions"
	"postcare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type userUsecase struct {
	Log                *zap.Logger
	UserRepository     UserRepository
	PatientRepository  profiles.PatientProfileRepository
	ProviderRepository profiles.ProviderProfileRepository
	HospitalRepository profiles.HospitalProfileRepository
}

func NewUserUsecase(
	logger *zap.Logger,
	userRepository UserRepository,
	patientRepository profiles.PatientProfileRepository,
	providerRepository profiles.ProviderProfileRepository,
	hospitalRepository profiles.HospitalProfileRepository,
) UserUsecase {
	return &userUsecase{
		Log:                logger,
		UserRepository:     userRepository,
		PatientRepository:  patientRepository,
		ProviderRepository: providerRepository,
		HospitalRepository: hospitalRepository,
	}
}

func (uc *userUsecase) GetProfile(ctx context.Context, user *models.User) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)

	profile, err := uc.loadProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.UserProfile{
		ID:       user.ID,
		Email:    user.Email,
		UserType: user.UserType,
		Profile:  profile,
	}, nil
}

func (uc *userUsecase) UpdateProfile(ctx context.Context, user *models.User, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)

	var profile interface{}
	var err error
	switch user.Role {
	case constvars.UserTypePatient:
		profile, err = uc.updatePatientProfile(ctx, user.ProfileID, request)
	case constvars.UserTypeProvider:
		profile, err = uc.updateProviderProfile(ctx, user.ProfileID, request)
	case constvars.UserTypeHospital:
		profile, err = uc.updateHospitalProfile(ctx, user.ProfileID, request)
	default:
		err = exceptions.ErrInvalidUserType(fmt.Errorf("unknown role %q on identity %s", user.Role, user.ID))
	}
	if err != nil {
		return nil, err
	}

	return &responses.UserProfile{
		ID:       user.ID,
		Email:    user.Email,
		UserType: user.UserType,
		Profile:  profile,
	}, nil
}

func (uc *userUsecase) loadProfile(ctx context.Context, user *models.User) (interface{}, error) {
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

func (uc *userUsecase) updatePatientProfile(ctx context.Context, profileID string, request *requests.UpdateProfile) (*models.PatientProfile, error) {
	profile, err := uc.PatientRepository.FindPatientByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotExist(fmt.Errorf("patient profile %s not found", profileID))
	}

	if request.FirstName != "" {
		profile.FirstName = request.FirstName
	}
	if request.LastName != "" {
		profile.LastName = request.LastName
	}
	if request.DateOfBirth != "" {
		if parsed := utils.ParseOptionalDate(request.DateOfBirth); parsed != nil {
			profile.DateOfBirth = *parsed
		}
	}
	if request.PhoneNumber != "" {
		profile.PhoneNumber = request.PhoneNumber
	}
	if request.EmergencyContact != "" {
		profile.EmergencyContact = request.EmergencyContact
	}
	if request.MedicalHistory != nil {
		profile.MedicalHistory = utils.MapMedicalHistory(request.MedicalHistory)
	}
	if request.Surgeries != nil {
		profile.Surgeries = utils.MapSurgeries(request.Surgeries)
	}
	if request.Medications != nil {
		profile.Medications = utils.MapMedications(request.Medications)
	}
	if request.RecoveryProgress != nil {
		profile.RecoveryProgress = utils.MapRecoveryProgress(request.RecoveryProgress)
	}
	profile.UpdatedAt = time.Now()

	if err := uc.PatientRepository.UpdatePatient(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (uc *userUsecase) updateProviderProfile(ctx context.Context, profileID string, request *requests.UpdateProfile) (*models.ProviderProfile, error) {
	profile, err := uc.ProviderRepository.FindProviderByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotExist(fmt.Errorf("provider profile %s not found", profileID))
	}

	if request.Title != "" {
		profile.Title = request.Title
	}
	if request.Specialization != "" {
		profile.Specialization = request.Specialization
	}
	if request.LicenseNumber != "" {
		profile.LicenseNumber = request.LicenseNumber
	}
	if request.YearsOfExperience > 0 {
		profile.YearsOfExperience = request.YearsOfExperience
	}
	if request.Appointments != nil {
		profile.Appointments = utils.MapAppointments(request.Appointments)
	}
	if request.Availability != nil {
		profile.Availability = utils.MapAvailability(request.Availability)
	}
	profile.UpdatedAt = time.Now()

	if err := uc.ProviderRepository.UpdateProvider(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (uc *userUsecase) updateHospitalProfile(ctx context.Context, profileID string, request *requests.UpdateProfile) (*models.HospitalProfile, error) {
	profile, err := uc.HospitalRepository.FindHospitalByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotExist(fmt.Errorf("hospital profile %s not found", profileID))
	}

	if request.Name != "" {
		profile.Name = request.Name
	}
	if request.Address != "" {
		profile.Address = request.Address
	}
	if request.ContactNumber != "" {
		profile.ContactNumber = request.ContactNumber
	}
	profile.UpdatedAt = time.Now()

	if err := uc.HospitalRepository.UpdateHospital(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
