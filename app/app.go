package app

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"

	"github.com/meinhoongagan/service-marketplace/config"
	"github.com/meinhoongagan/service-marketplace/controllers"
	"github.com/meinhoongagan/service-marketplace/middleware"
	"github.com/meinhoongagan/service-marketplace/repository"
	"github.com/meinhoongagan/service-marketplace/routes"
)

// New assembles the marketplace HTTP app: repositories over the given DB,
// controllers, auth middleware and all routes under /api/v1.
func New(cfg *config.Config, conn *gorm.DB, upload controllers.UploadFunc) *fiber.App {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	userRepo := repository.NewUserRepository(conn)
	serviceRepo := repository.NewServiceRepository(conn)
	bookingRepo := repository.NewBookingRepository(conn)
	messageRepo := repository.NewMessageRepository(conn)

	auth := middleware.NewAuthMiddleware(cfg, userRepo)

	api := app.Group("/api/v1")
	routes.SetupAuthRoutes(api, controllers.NewAuthController(cfg, userRepo))
	routes.SetupUserRoutes(api, controllers.NewUserController(userRepo), auth)
	routes.SetupServiceRoutes(api, controllers.NewServiceController(serviceRepo, upload), auth)
	routes.SetupBookingRoutes(api, controllers.NewBookingController(bookingRepo, serviceRepo), auth)
	routes.SetupMessageRoutes(api, controllers.NewMessageController(messageRepo), auth)

	return app
}
