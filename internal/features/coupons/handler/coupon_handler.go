package handler

import (
	"errors"
	"net/http"
	"time"

	"shoedash-gateway/internal/core/backend"
	"shoedash-gateway/internal/core/logger"
	"shoedash-gateway/internal/features/coupons/domain"
	"shoedash-gateway/internal/features/coupons/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CouponHandler handles HTTP requests for discount coupons. Listings are
// annotated with a computed active flag so the dashboard can gray out dead
// coupons without re-deriving the rules.
type CouponHandler struct {
	provider ports.CouponProvider
	// now is swappable for tests.
	now func() time.Time
}

// NewCouponHandler creates a new CouponHandler.
func NewCouponHandler(p ports.CouponProvider) *CouponHandler {
	return &CouponHandler{provider: p, now: time.Now}
}

// CouponView is a coupon plus its computed active state.
type CouponView struct {
	domain.Coupon
	Active bool `json:"active"`
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
		logger.Named("coupons").Error("Coupon request failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal Server Error",
		})
	}
}

// ListCoupons handles GET /coupons.
// @Summary List coupons with their computed active state
// @Tags Coupons
// @Produce json
// @Success 200 {array} CouponView
// @Router /coupons [get]
func (h *CouponHandler) ListCoupons(c *fiber.Ctx) error {
	coupons, err := h.provider.ListCoupons(c.Context())
	if err != nil {
		return fail(c, err)
	}

	now := h.now()
	views := make([]CouponView, 0, len(coupons))
	for _, coupon := range coupons {
		views = append(views, CouponView{
			Coupon: coupon,
			Active: coupon.ActiveAt(now),
		})
	}
	return c.Status(http.StatusOK).JSON(views)
}

// CreateCoupon handles POST /coupons.
// @Summary Create a coupon
// @Tags Coupons
// @Accept json
// @Produce json
// @Param coupon body domain.Coupon true "Coupon"
// @Success 201 {object} domain.Coupon
// @Failure 400 {object} map[string]string
// @Router /coupons [post]
func (h *CouponHandler) CreateCoupon(c *fiber.Ctx) error {
	var coupon domain.Coupon
	if err := c.BodyParser(&coupon); err != nil || coupon.Code == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Coupon code is required",
		})
	}
	if coupon.DiscountPercent <= 0 || coupon.DiscountPercent > 100 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"message": "Discount must be between 0 and 100 percent",
		})
	}

	created, err := h.provider.CreateCoupon(c.Context(), coupon)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(created)
}

// DeleteCoupon handles DELETE /coupons/:id.
// @Summary Delete a coupon
// @Tags Coupons
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} map[string]string
// @Router /coupons/{id} [delete]
func (h *CouponHandler) DeleteCoupon(c *fiber.Ctx) error {
	if err := h.provider.DeleteCoupon(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Coupon deleted"})
}
