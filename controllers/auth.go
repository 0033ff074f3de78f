package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/service-marketplace/config"
	"github.com/meinhoongagan/service-marketplace/models"
	"github.com/meinhoongagan/service-marketplace/repository"
	"github.com/meinhoongagan/service-marketplace/utils"
)

type AuthController struct {
	cfg   *config.Config
	users *repository.UserRepository
}

func NewAuthController(cfg *config.Config, users *repository.UserRepository) *AuthController {
	return &AuthController{cfg: cfg, users: users}
}

type AddressInput struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Notes      string `json:"notes"`
}

type AvailabilityInput struct {
	DayOfWeek   models.DayOfWeek `json:"day_of_week"`
	StartTime   string           `json:"start_time"`
	EndTime     string           `json:"end_time"`
	IsAvailable *bool            `json:"is_available"`
}

type RegisterInput struct {
	Phone        string              `json:"phone"`
	Email        string              `json:"email"`
	Password     string              `json:"password"`
	FirstName    string              `json:"first_name"`
	LastName     string              `json:"last_name"`
	AvatarURL    string              `json:"avatar_url"`
	Bio          string              `json:"bio"`
	Role         models.UserRole     `json:"role"`
	Address      *AddressInput       `json:"address"`
	Availability []AvailabilityInput `json:"availability"`
}

// Register handles user registration. The user row and any address or
// availability rows are committed as one transaction.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	input := new(RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	phone := strings.TrimSpace(input.Phone)
	if exists, err := ac.users.PhoneExists(phone); err != nil {
		return serverError(c, err)
	} else if exists {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Phone already in use",
		})
	}
	if !utils.ValidPhone(phone) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Phone number must be 11 digits",
		})
	}

	if !utils.ValidPassword(input.Password) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Password must be at least 8 characters with a capital letter, number, and symbol",
		})
	}

	var email *string
	if input.Email != "" {
		normalized := strings.ToLower(strings.TrimSpace(input.Email))
		if exists, err := ac.users.EmailExists(normalized); err != nil {
			return serverError(c, err)
		} else if exists {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Email already in use",
			})
		}
		email = &normalized
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return serverError(c, err)
	}

	role := input.Role
	if role == "" {
		role = models.RoleSeeker
	}

	user := &models.User{
		Phone:        phone,
		Email:        email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		AvatarURL:    input.AvatarURL,
		Bio:          input.Bio,
		Role:         role,
		IsActive:     true,
	}

	var address *models.Address
	if input.Address != nil {
		address = &models.Address{
			Street:     input.Address.Street,
			City:       input.Address.City,
			State:      input.Address.State,
			PostalCode: input.Address.PostalCode,
			Notes:      input.Address.Notes,
		}
	}

	var availabilities []models.Availability
	if role == models.RoleProvider {
		for _, a := range input.Availability {
			available := true
			if a.IsAvailable != nil {
				available = *a.IsAvailable
			}
			availabilities = append(availabilities, models.Availability{
				DayOfWeek:   a.DayOfWeek,
				StartTime:   a.StartTime,
				EndTime:     a.EndTime,
				IsAvailable: available,
			})
		}
	}

	if err := ac.users.CreateWithProfile(user, address, availabilities); err != nil {
		return serverError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login authenticates by phone and password and returns an access/refresh
// token pair. The form field is named username to match the OAuth2
// password-grant shape.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Username string `form:"username" json:"username"`
		Password string `form:"password" json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse request body",
		})
	}

	user, err := ac.users.FindByPhone(strings.TrimSpace(input.Username))
	if err != nil || !utils.CheckPassword(input.Password, user.PasswordHash) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Incorrect phone or password",
		})
	}

	accessToken, err := utils.CreateToken(ac.cfg.SecretKey, ac.cfg.Algorithm, user.ID, ac.cfg.AccessTTL, utils.TokenKindAccess)
	if err != nil {
		return serverError(c, err)
	}
	refreshToken, err := utils.CreateToken(ac.cfg.SecretKey, ac.cfg.Algorithm, user.ID, ac.cfg.RefreshTTL, utils.TokenKindRefresh)
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"token_type":    "bearer",
		"user":          user,
	})
}

// Refresh exchanges a valid refresh token for a new access token. The
// refresh token itself is not rotated.
func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	type RefreshInput struct {
		RefreshToken string `json:"refresh_token"`
	}

	input := new(RefreshInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	userID, err := utils.ParseToken(ac.cfg.SecretKey, input.RefreshToken, utils.TokenKindRefresh)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid refresh token",
		})
	}

	user, err := ac.users.FindByID(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	accessToken, err := utils.CreateToken(ac.cfg.SecretKey, ac.cfg.Algorithm, user.ID, ac.cfg.AccessTTL, utils.TokenKindAccess)
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(fiber.Map{
		"access_token": accessToken,
		"token_type":   "bearer",
	})
}

func serverError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
