package handler

import (
	"errors"
	"net/http"

	"shoedash-gateway/internal/core/logger"
	"shoedash-gateway/internal/features/auth/domain"
	"shoedash-gateway/internal/features/auth/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler handles HTTP requests for the staff session.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{
		service: s,
	}
}

// SignInRequest represents the request body for signing in.
type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignIn handles POST /auth/sign-in.
// @Summary Sign in a staff member
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body SignInRequest true "Staff credentials"
// @Success 200 {object} domain.StaffUser
// @Failure 401 {object} map[string]string
// @Router /auth/sign-in [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req SignInRequest
	if err := c.BodyParser(&req); err != nil || req.Username == "" || req.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "username and password are required",
		})
	}

	user, err := h.service.SignIn(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid username or password",
			})
		}
		logger.Get().Error("Sign-in failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(user)
}

// SignOut handles POST /auth/sign-out.
// @Summary Sign out the current staff member
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/sign-out [post]
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	if err := h.service.SignOut(c.Context()); err != nil {
		logger.Get().Error("Sign-out failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Signed out",
	})
}

// Me handles GET /auth/me.
// @Summary Get the current staff user and permissions
// @Tags Auth
// @Produce json
// @Success 200 {object} domain.StaffUser
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.service.CurrentUser()
	if err != nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not signed in",
		})
	}

	return c.Status(http.StatusOK).JSON(user)
}
