package handler

import (
	"errors"
	"net/http"

	"shoedash-gateway/internal/core/backend"
	"shoedash-gateway/internal/core/logger"
	"shoedash-gateway/internal/features/orders/domain"
	"shoedash-gateway/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests related to orders and the status
// transition configuration.
type OrderHandler struct {
	// service is the OrderService instance.
	service *service.OrderService
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(s *service.OrderService) *OrderHandler {
	return &OrderHandler{
		service: s,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

// fail maps domain and pipeline errors to HTTP statuses.
func fail(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "Internal Server Error"

	var illegal *domain.IllegalTransitionError
	var serverErr *backend.ServerError

	switch {
	case errors.As(err, &illegal):
		status = http.StatusUnprocessableEntity
		msg = illegal.Error()
	case errors.Is(err, service.ErrOrderNotFound):
		status = http.StatusNotFound
		msg = "Order not found"
	case errors.Is(err, backend.ErrSessionExpired):
		status = http.StatusUnauthorized
		msg = "Staff session expired, sign in again"
	case errors.As(err, &serverErr):
		// The backend is the final authority; surface its verdict.
		status = serverErr.StatusCode
		msg = serverErr.Message
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID(c),
	})
}

// ListOrders handles GET /orders.
// @Summary List orders
// @Description Lists orders, optionally filtered by status.
// @Tags Orders
// @Produce json
// @Param statusId query string false "Status filter"
// @Success 200 {array} domain.Order
// @Failure 401 {object} ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	status := domain.StatusID(c.Query("statusId"))

	orders, err := h.service.ListOrders(c.Context(), status)
	if err != nil {
		logger.Get().Error("Failed to list orders",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return fail(c, err)
	}

	return c.Status(http.StatusOK).JSON(orders)
}

// GetOrder handles GET /orders/:id.
// @Summary Get order by ID
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	if orderID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Order ID is required",
			RayID:   rayID(c),
		})
	}

	order, err := h.service.GetOrder(c.Context(), orderID)
	if err != nil {
		logger.Get().Error("Failed to fetch order",
			zap.String("order_id", orderID),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return fail(c, err)
	}

	return c.Status(http.StatusOK).JSON(order)
}

// StatusLogs handles GET /orders/:id/logs.
// @Summary Get the status audit trail of an order
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {array} domain.OrderStatusUpdateLog
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id}/logs [get]
func (h *OrderHandler) StatusLogs(c *fiber.Ctx) error {
	orderID := c.Params("id")

	logs, err := h.service.StatusLogs(c.Context(), orderID)
	if err != nil {
		logger.Get().Error("Failed to fetch status logs",
			zap.String("order_id", orderID),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return fail(c, err)
	}

	return c.Status(http.StatusOK).JSON(logs)
}

// UpdateStatusRequest is the request body for a status transition.
type UpdateStatusRequest struct {
	// ToStatusID is the target status.
	ToStatusID domain.StatusID `json:"toStatusId"`
}

// UpdateStatus handles POST /orders/:id/status.
// @Summary Apply a status transition to an order
// @Description Validates the move against the transition graph before asking the backend; illegal moves are rejected without a backend call.
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param transition body UpdateStatusRequest true "Target status"
// @Success 200 {object} domain.Order
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /orders/{id}/status [post]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil || req.ToStatusID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "toStatusId is required",
			RayID:   rayID(c),
		})
	}

	order, err := h.service.ApplyTransition(c.Context(), orderID, req.ToStatusID)
	if err != nil {
		logger.Get().Warn("Status transition rejected",
			zap.String("order_id", orderID),
			zap.String("to", string(req.ToStatusID)),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return fail(c, err)
	}

	return c.Status(http.StatusOK).JSON(order)
}

// ListStatuses handles GET /order-statuses.
// @Summary List the order status configuration
// @Tags Statuses
// @Produce json
// @Success 200 {array} domain.OrderStatus
// @Router /order-statuses [get]
func (h *OrderHandler) ListStatuses(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.Statuses())
}

// ListTransitions handles GET /order-statuses/transitions.
// @Summary List the transition configuration grouped by source status
// @Tags Statuses
// @Produce json
// @Success 200 {array} domain.TransitionGroup
// @Router /order-statuses/transitions [get]
func (h *OrderHandler) ListTransitions(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.TransitionGroups())
}

// CreateTransition handles POST /order-statuses/transitions.
// @Summary Add a transition edge
// @Tags Statuses
// @Accept json
// @Produce json
// @Param edge body domain.TransitionEdge true "Transition edge"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Router /order-statuses/transitions [post]
func (h *OrderHandler) CreateTransition(c *fiber.Ctx) error {
	var edge domain.TransitionEdge
	if err := c.BodyParser(&edge); err != nil || edge.From == "" || edge.To == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "fromStatusId and toStatusId are required",
			RayID:   rayID(c),
		})
	}

	if err := h.service.CreateTransition(c.Context(), edge); err != nil {
		logger.Get().Error("Failed to create transition", zap.Error(err))
		return fail(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Transition created",
	})
}

// DeleteTransition handles DELETE /order-statuses/transitions/:from/:to.
// @Summary Remove a transition edge
// @Tags Statuses
// @Produce json
// @Param from path string true "Source status"
// @Param to path string true "Target status"
// @Success 200 {object} map[string]string
// @Router /order-statuses/transitions/{from}/{to} [delete]
func (h *OrderHandler) DeleteTransition(c *fiber.Ctx) error {
	from := domain.StatusID(c.Params("from"))
	to := domain.StatusID(c.Params("to"))

	if err := h.service.DeleteTransition(c.Context(), from, to); err != nil {
		logger.Get().Error("Failed to delete transition", zap.Error(err))
		return fail(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Transition deleted",
	})
}
