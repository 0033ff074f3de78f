package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/service-marketplace/controllers"
	"github.com/meinhoongagan/service-marketplace/middleware"
)

// SetupUserRoutes configures all user related routes
func SetupUserRoutes(api fiber.Router, users *controllers.UserController, auth *middleware.AuthMiddleware) {
	group := api.Group("/users")
	group.Get("/me", auth.Protected(), users.Me)
	group.Get("/", users.ListProviders)
}
