package routers

import (
	"postcare-service/internal/app/delivery/http/middlewares"
	"postcare-service/internal/app/services/core/auth"
	"postcare-service/internal/app/services/core/users"
	"postcare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController, userController *users.UserController) {
	router.Post("/register", authController.Register)
	router.Post("/login", authController.Login)

	router.With(
		middlewares.Authenticate,
		middlewares.RestrictTo(constvars.RoleDoctor, constvars.UserTypeProvider),
	).Post("/register-patient", authController.RegisterPatient)

	router.With(middlewares.Authenticate).Get("/profile", userController.GetProfile)
	router.With(middlewares.Authenticate).Put("/profile", userController.UpdateProfile)
}
