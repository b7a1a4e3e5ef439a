package routers

import (
	"postcare-service/internal/app/delivery/http/middlewares"
	"postcare-service/internal/app/services/core/messages"

	"github.com/go-chi/chi/v5"
)

func attachSMSRoutes(router chi.Router, middlewares *middlewares.Middlewares, messageController *messages.MessageController) {
	// The gateway webhook authenticates at the network layer, not with a
	// user token.
	router.Post("/messages/incoming", messageController.ReceiveMessage)

	router.With(middlewares.Authenticate).Get("/messages", messageController.GetMessages)
	router.With(middlewares.Authenticate).Get("/statistics", messageController.GetStatistics)
	router.With(middlewares.Authenticate).Post("/messages/send", messageController.SendMessage)
	router.With(middlewares.Authenticate).Patch("/messages/{messageID}/read", messageController.MarkMessageRead)
	router.With(middlewares.Authenticate).Patch("/messages/read", messageController.MarkMessagesRead)
}
