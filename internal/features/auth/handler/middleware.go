package handler

import (
	"net/http"

	"shoedash-gateway/internal/features/auth/service"

	"github.com/gofiber/fiber/v2"
)

// RequireSession rejects requests when no staff session is active.
func RequireSession(s *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := s.CurrentUser(); err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not signed in",
			})
		}
		return c.Next()
	}
}

// RequirePermission gates a route behind a permission code. Gating is a
// flat membership check on the signed-in user's codes; the backend enforces
// the real rules.
func RequirePermission(s *service.AuthService, code string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := s.CurrentUser()
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not signed in",
			})
		}
		if !user.HasPermission(code) {
			return c.Status(http.StatusForbidden).JSON(fiber.Map{
				"error": "Missing permission: " + code,
			})
		}
		return c.Next()
	}
}
