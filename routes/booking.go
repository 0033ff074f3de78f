package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/service-marketplace/controllers"
	"github.com/meinhoongagan/service-marketplace/middleware"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(api fiber.Router, bookings *controllers.BookingController, auth *middleware.AuthMiddleware) {
	group := api.Group("/bookings", auth.Protected())
	group.Post("/", bookings.Create)
	group.Get("/", bookings.List)
	group.Patch("/:id/status", bookings.UpdateStatus)
}
