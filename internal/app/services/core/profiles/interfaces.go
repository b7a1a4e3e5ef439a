package profiles

import (
	"context"
	"postcare-service/internal/app/models"
)

type PatientProfileRepository interface {
	CreatePatient(ctx context.Context, profile *models.PatientProfile) (string, error)
	FindPatientByID(ctx context.Context, profileID string) (*models.PatientProfile, error)
	FindPatientByPhoneNumber(ctx context.Context, phoneNumber string) (*models.PatientProfile, error)
	UpdatePatient(ctx context.Context, profile *models.PatientProfile) error
	DeletePatientByID(ctx context.Context, profileID string) error
}

type ProviderProfileRepository interface {
	CreateProvider(ctx context.Context, profile *models.ProviderProfile) (string, error)
	FindProviderByID(ctx context.Context, profileID string) (*models.ProviderProfile, error)
	UpdateProvider(ctx context.Context, profile *models.ProviderProfile) error
	DeleteProviderByID(ctx context.Context, profileID string) error
}

type HospitalProfileRepository interface {
	CreateHospital(ctx context.Context, profile *models.HospitalProfile) (string, error)
	FindHospitalByID(ctx context.Context, profileID string) (*models.HospitalProfile, error)
	UpdateHospital(ctx context.Context, profile *models.HospitalProfile) error
	DeleteHospitalByID(ctx context.Context, profileID string) error
}
