package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/greenloop/plantcare/internal/config"
	"github.com/greenloop/plantcare/internal/services"
	"github.com/greenloop/plantcare/internal/types"
)

// AuthUser validates the bearer token on the request and stores the subject
// user id in locals. A missing or rejected token is always a 401 so the
// dashboard can transition to its logged-out state.
func AuthUser(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return &types.AppError{
				Code:    fiber.StatusUnauthorized,
				Message: "Bearer token not found",
				Kind:    types.KindUnauthorized,
			}
		}

		// Authorizer is initialized lazily on the first authenticated request
		if !services.IsAuthorizerInitialized() {
			if err := services.InitAuthorizer(cfg, c.Protocol(), c.Hostname()); err != nil {
				return &types.AppError{
					Code:    fiber.StatusUnauthorized,
					Message: fmt.Sprintf("Authorizer unavailable: %v", err),
					Kind:    types.KindUnauthorized,
				}
			}
		}

		userID, err := services.ValidateToken(token)
		if err != nil {
			return &types.AppError{
				Code:    fiber.StatusUnauthorized,
				Message: fmt.Sprintf("Invalid token: %v", err),
				Kind:    types.KindUnauthorized,
			}
		}

		c.Locals("userID", userID)

		return c.Next()
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if auth == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
