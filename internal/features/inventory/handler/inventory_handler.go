package handler

import (
	"errors"
	"net/http"

	"shoedash-gateway/internal/core/backend"
	"shoedash-gateway/internal/core/logger"
	"shoedash-gateway/internal/features/inventory/domain"
	"shoedash-gateway/internal/features/inventory/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InventoryHandler handles HTTP requests for stock levels, purchase imports,
// and damage reports. Stock math stays server-side.
type InventoryHandler struct {
	provider ports.InventoryProvider
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(p ports.InventoryProvider) *InventoryHandler {
	return &InventoryHandler{provider: p}
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
		logger.Named("inventory").Error("Inventory request failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal Server Error",
		})
	}
}

// StockLevels handles GET /inventory/stock.
// @Summary List current stock levels
// @Tags Inventory
// @Produce json
// @Success 200 {array} domain.StockLevel
// @Router /inventory/stock [get]
func (h *InventoryHandler) StockLevels(c *fiber.Ctx) error {
	levels, err := h.provider.StockLevels(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(levels)
}

// ListPurchaseImports handles GET /inventory/imports.
// @Summary List purchase imports
// @Tags Inventory
// @Produce json
// @Success 200 {array} domain.PurchaseImport
// @Router /inventory/imports [get]
func (h *InventoryHandler) ListPurchaseImports(c *fiber.Ctx) error {
	imports, err := h.provider.ListPurchaseImports(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(imports)
}

// CreatePurchaseImport handles POST /inventory/imports.
// @Summary Record a stock intake from a supplier
// @Tags Inventory
// @Accept json
// @Produce json
// @Param import body domain.PurchaseImport true "Purchase import"
// @Success 201 {object} domain.PurchaseImport
// @Failure 400 {object} map[string]string
// @Router /inventory/imports [post]
func (h *InventoryHandler) CreatePurchaseImport(c *fiber.Ctx) error {
	var imp domain.PurchaseImport
	if err := c.BodyParser(&imp); err != nil || len(imp.Items) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "At least one import item is required",
		})
	}
	for _, item := range imp.Items {
		if item.Quantity <= 0 {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"message": "Item quantities must be positive",
			})
		}
	}

	created, err := h.provider.CreatePurchaseImport(c.Context(), imp)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(created)
}

// ListDamageReports handles GET /inventory/damage-reports.
// @Summary List damage reports
// @Tags Inventory
// @Produce json
// @Success 200 {array} domain.DamageReport
// @Router /inventory/damage-reports [get]
func (h *InventoryHandler) ListDamageReports(c *fiber.Ctx) error {
	reports, err := h.provider.ListDamageReports(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(reports)
}

// CreateDamageReport handles POST /inventory/damage-reports.
// @Summary Write off damaged stock
// @Tags Inventory
// @Accept json
// @Produce json
// @Param report body domain.DamageReport true "Damage report"
// @Success 201 {object} domain.DamageReport
// @Failure 400 {object} map[string]string
// @Router /inventory/damage-reports [post]
func (h *InventoryHandler) CreateDamageReport(c *fiber.Ctx) error {
	var report domain.DamageReport
	if err := c.BodyParser(&report); err != nil || report.ProductID == "" || report.Quantity <= 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Product and a positive quantity are required",
		})
	}

	created, err := h.provider.CreateDamageReport(c.Context(), report)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(created)
}
