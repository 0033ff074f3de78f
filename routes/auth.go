package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/service-marketplace/controllers"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(api fiber.Router, auth *controllers.AuthController) {
	group := api.Group("/auth")
	group.Post("/register", auth.Register)
	group.Post("/login", auth.Login)
	group.Post("/refresh", auth.Refresh)
}
