package handler

import (
	"errors"
	"net/http"

	"shoedash-gateway/internal/core/backend"
	"shoedash-gateway/internal/core/logger"
	"shoedash-gateway/internal/features/catalog/domain"
	"shoedash-gateway/internal/features/catalog/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CatalogHandler handles HTTP requests for products, brands, and categories.
// The backend owns all catalog rules; these handlers proxy and map errors.
type CatalogHandler struct {
	provider ports.CatalogProvider
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(p ports.CatalogProvider) *CatalogHandler {
	return &CatalogHandler{provider: p}
}

// fail maps pipeline errors to HTTP statuses.
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
		logger.Named("catalog").Error("Catalog request failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal Server Error",
		})
	}
}

// ListProducts handles GET /products.
// @Summary List products
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.Product
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.provider.ListProducts(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(products)
}

// GetProduct handles GET /products/:id.
// @Summary Get product by ID
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Router /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.provider.GetProduct(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(product)
}

// CreateProduct handles POST /products.
// @Summary Create a product
// @Tags Catalog
// @Accept json
// @Produce json
// @Param product body domain.Product true "Product"
// @Success 201 {object} domain.Product
// @Router /products [post]
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var product domain.Product
	if err := c.BodyParser(&product); err != nil || product.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Product name is required",
		})
	}

	created, err := h.provider.CreateProduct(c.Context(), product)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(created)
}

// UpdateProduct handles PUT /products/:id.
// @Summary Update a product
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body domain.Product true "Product"
// @Success 200 {object} domain.Product
// @Router /products/{id} [put]
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	var product domain.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product payload",
		})
	}

	updated, err := h.provider.UpdateProduct(c.Context(), c.Params("id"), product)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(updated)
}

// DeleteProduct handles DELETE /products/:id.
// @Summary Delete a product
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]string
// @Router /products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.provider.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Product deleted"})
}

// ListBrands handles GET /brands.
// @Summary List brands
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.Brand
// @Router /brands [get]
func (h *CatalogHandler) ListBrands(c *fiber.Ctx) error {
	brands, err := h.provider.ListBrands(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(brands)
}

// CreateBrand handles POST /brands.
// @Summary Create a brand
// @Tags Catalog
// @Accept json
// @Produce json
// @Param brand body domain.Brand true "Brand"
// @Success 201 {object} domain.Brand
// @Router /brands [post]
func (h *CatalogHandler) CreateBrand(c *fiber.Ctx) error {
	var brand domain.Brand
	if err := c.BodyParser(&brand); err != nil || brand.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Brand name is required",
		})
	}

	created, err := h.provider.CreateBrand(c.Context(), brand)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(created)
}

// DeleteBrand handles DELETE /brands/:id.
// @Summary Delete a brand
// @Tags Catalog
// @Produce json
// @Param id path string true "Brand ID"
// @Success 200 {object} map[string]string
// @Router /brands/{id} [delete]
func (h *CatalogHandler) DeleteBrand(c *fiber.Ctx) error {
	if err := h.provider.DeleteBrand(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Brand deleted"})
}

// ListCategories handles GET /categories.
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.Category
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.provider.ListCategories(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(categories)
}

// CreateCategory handles POST /categories.
// @Summary Create a category
// @Tags Catalog
// @Accept json
// @Produce json
// @Param category body domain.Category true "Category"
// @Success 201 {object} domain.Category
// @Router /categories [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var category domain.Category
	if err := c.BodyParser(&category); err != nil || category.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Category name is required",
		})
	}

	created, err := h.provider.CreateCategory(c.Context(), category)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(created)
}

// DeleteCategory handles DELETE /categories/:id.
// @Summary Delete a category
// @Tags Catalog
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]string
// @Router /categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.provider.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Category deleted"})
}
