package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/service-marketplace/controllers"
	"github.com/meinhoongagan/service-marketplace/middleware"
)

// SetupMessageRoutes configures all messaging related routes
func SetupMessageRoutes(api fiber.Router, messages *controllers.MessageController, auth *middleware.AuthMiddleware) {
	group := api.Group("/messages", auth.Protected())
	group.Post("/threads", messages.CreateThread)
	group.Get("/threads", messages.ListThreads)
	group.Post("/threads/:id/messages", messages.PostMessage)
	group.Get("/threads/:id/messages", messages.ListMessages)
}
