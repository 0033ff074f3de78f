package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/service-marketplace/middleware"
	"github.com/meinhoongagan/service-marketplace/repository"
)

type UserController struct {
	users *repository.UserRepository
}

func NewUserController(users *repository.UserRepository) *UserController {
	return &UserController{users: users}
}

// Me returns the authenticated caller's profile.
func (uc *UserController) Me(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentUser(c))
}

// ListProviders returns the public profiles of all providers.
func (uc *UserController) ListProviders(c *fiber.Ctx) error {
	providers, err := uc.users.ListProviders()
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(providers)
}
