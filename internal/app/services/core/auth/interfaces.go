package auth

import (
	"context"
	"postcare-service/internal/app/models"
	"postcare-service/internal/pkg/dto/requests"
	"postcare-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.Register) (*responses.Register, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	RegisterPatientByProvider(ctx context.Context, caller *models.User, request *requests.RegisterPatientByProvider) (*responses.RegisterPatientByProvider, error)
}
