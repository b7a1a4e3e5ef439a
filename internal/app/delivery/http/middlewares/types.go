package middlewares

import (
	"postcare-service/internal/app/config"
	"postcare-service/internal/app/services/core/users"
	"postcare-service/internal/app/services/shared/jwtmanager"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	JWTManager     *jwtmanager.JWTManager
	UserRepository users.UserRepository
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	jwtManager *jwtmanager.JWTManager,
	userRepository users.UserRepository,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		JWTManager:     jwtManager,
		UserRepository: userRepository,
		InternalConfig: internalConfig,
	}
}
