package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/service-marketplace/controllers"
	"github.com/meinhoongagan/service-marketplace/middleware"
)

// SetupServiceRoutes configures category and listing routes
func SetupServiceRoutes(api fiber.Router, services *controllers.ServiceController, auth *middleware.AuthMiddleware) {
	group := api.Group("/services")

	group.Get("/categories", services.ListCategories)
	group.Post("/categories", services.CreateCategory)

	group.Get("/listings", services.ListListings)
	group.Get("/listings/:id", services.GetListing)
	group.Post("/listings", auth.Protected(), auth.RequireProvider(), services.CreateListing)
	group.Patch("/listings/:id", auth.Protected(), auth.RequireProvider(), services.UpdateListing)
	group.Delete("/listings/:id", auth.Protected(), auth.RequireProvider(), services.DeleteListing)
	group.Post("/listings/:id/media", auth.Protected(), auth.RequireProvider(), services.AddListingMedia)
}
