package handler

import (
	"errors"
	"net/http"
	"time"

	"shoedash-gateway/internal/core/backend"
	"shoedash-gateway/internal/core/logger"
	"shoedash-gateway/internal/features/stats/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StatsHandler handles HTTP requests for revenue aggregates.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(s *service.StatsService) *StatsHandler {
	return &StatsHandler{service: s}
}

const dateLayout = "2006-01-02"

// Revenue handles GET /stats/revenue.
// @Summary Get revenue stats for a date range
// @Tags Stats
// @Produce json
// @Param from query string true "Range start, YYYY-MM-DD"
// @Param to query string true "Range end, YYYY-MM-DD"
// @Success 200 {object} domain.RevenueStats
// @Failure 400 {object} map[string]string
// @Router /stats/revenue [get]
func (h *StatsHandler) Revenue(c *fiber.Ctx) error {
	from := c.Query("from")
	to := c.Query("to")

	if _, err := time.Parse(dateLayout, from); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "from must be a YYYY-MM-DD date",
		})
	}
	if _, err := time.Parse(dateLayout, to); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "to must be a YYYY-MM-DD date",
		})
	}

	stats, err := h.service.Revenue(c.Context(), from, to)
	if err != nil {
		var serverErr *backend.ServerError
		switch {
		case errors.Is(err, backend.ErrSessionExpired):
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"message": "Staff session expired, sign in again",
			})
		case errors.As(err, &serverErr):
			return c.Status(serverErr.StatusCode).JSON(fiber.Map{
				"message": serverErr.Message,
			})
		default:
			logger.Named("stats").Error("Failed to get revenue stats", zap.Error(err))
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
				"message": "Internal Server Error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(stats)
}
