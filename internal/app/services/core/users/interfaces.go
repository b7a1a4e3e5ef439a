package users

import (
	"context"
	"postcare-service/internal/app/models"
	"postcare-service/internal/pkg/dto/requests"
	"postcare-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	DeleteByID(ctx context.Context, userID string) error
}

type UserUsecase interface {
	GetProfile(ctx context.Context, user *models.User) (*responses.UserProfile, error)
	UpdateProfile(ctx context.Context, user *models.User, request *requests.UpdateProfile) (*responses.UserProfile, error)
}
