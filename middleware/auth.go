package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"github.com/meinhoongagan/service-marketplace/config"
	"github.com/meinhoongagan/service-marketplace/models"
	"github.com/meinhoongagan/service-marketplace/repository"
	"github.com/meinhoongagan/service-marketplace/utils"
)

const currentUserKey = "currentUser"

// AuthMiddleware resolves the caller from the bearer token on every
// protected route. No session state is kept; identity is derived from the
// token on each request.
type AuthMiddleware struct {
	cfg   *config.Config
	users *repository.UserRepository
}

func NewAuthMiddleware(cfg *config.Config, users *repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg, users: users}
}

// Protected validates the bearer token (signature, expiry, access kind),
// loads the user and stores it in locals. Missing or invalid tokens and
// unknown users get 401; deactivated users get 403.
func (m *AuthMiddleware) Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:    []byte(m.cfg.SecretKey),
		SigningMethod: m.cfg.Algorithm,
		ErrorHandler:  jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return unauthorized(c, "Invalid token")
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return unauthorized(c, "Invalid token claims")
			}
			if kind, _ := claims["kind"].(string); kind != utils.TokenKindAccess {
				return unauthorized(c, "Invalid token kind")
			}

			userID, err := subjectID(claims)
			if err != nil {
				return unauthorized(c, "Invalid user ID in token")
			}

			user, err := m.users.FindByID(userID)
			if err != nil {
				return unauthorized(c, "User not found")
			}
			if !user.IsActive {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"error": "Inactive user",
				})
			}

			c.Locals(currentUserKey, user)
			return c.Next()
		},
	})
}

// RequireProvider gates a route on the provider role. It must run after
// Protected.
func (m *AuthMiddleware) RequireProvider() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || user.Role != models.RoleProvider {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Only providers can perform this action",
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user set by Protected, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}

func subjectID(claims jwt.MapClaims) (uint, error) {
	sub, _ := claims["sub"].(string)
	var id uint
	if _, err := fmt.Sscanf(sub, "%d", &id); err != nil {
		return 0, err
	}
	return id, nil
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": msg,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":   "Unauthorized",
		"message": "Invalid or expired token",
	})
}
