package handler

import (
	"errors"
	"net/http"

	"shoedash-gateway/internal/core/backend"
	"shoedash-gateway/internal/core/logger"
	"shoedash-gateway/internal/features/customers/domain"
	"shoedash-gateway/internal/features/customers/ports"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CustomerHandler handles HTTP requests for customers and their support
// chat threads.
type CustomerHandler struct {
	provider ports.CustomerProvider
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(p ports.CustomerProvider) *CustomerHandler {
	return &CustomerHandler{provider: p}
}

func fail(c *fiber.Ctx, err error) error {
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
		logger.Named("customers").Error("Customer request failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal Server Error",
		})
	}
}

// ListCustomers handles GET /customers.
// @Summary List customers
// @Tags Customers
// @Produce json
// @Success 200 {array} domain.Customer
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *fiber.Ctx) error {
	customers, err := h.provider.ListCustomers(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(customers)
}

// GetCustomer handles GET /customers/:id.
// @Summary Get customer by ID
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} domain.Customer
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	customer, err := h.provider.GetCustomer(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(customer)
}

// ListMessages handles GET /customers/:id/messages.
// @Summary Get the chat thread of a customer
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {array} domain.ChatMessage
// @Router /customers/{id}/messages [get]
func (h *CustomerHandler) ListMessages(c *fiber.Ctx) error {
	messages, err := h.provider.ListMessages(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(messages)
}

// SendMessageRequest is the request body for a staff chat message.
type SendMessageRequest struct {
	Body string `json:"body"`
}

// SendMessage handles POST /customers/:id/messages.
// @Summary Send a staff message to a customer
// @Description Assigns a client message id so the backend can deduplicate a retried send.
// @Tags Customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param message body SendMessageRequest true "Message"
// @Success 201 {object} domain.ChatMessage
// @Failure 400 {object} map[string]string
// @Router /customers/{id}/messages [post]
func (h *CustomerHandler) SendMessage(c *fiber.Ctx) error {
	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil || req.Body == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Message body is required",
		})
	}

	message := domain.ChatMessage{
		ClientMessageID: uuid.NewString(),
		CustomerID:      c.Params("id"),
		FromStaff:       true,
		Body:            req.Body,
	}

	sent, err := h.provider.SendMessage(c.Context(), message)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(sent)
}
