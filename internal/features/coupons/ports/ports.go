package ports

import (
	"context"

	"shoedash-gateway/internal/features/coupons/domain"
)

// CouponProvider proxies the backend's coupon resource through the
// authenticated pipeline.
type CouponProvider interface {
	ListCoupons(ctx context.Context) ([]domain.Coupon, error)
	CreateCoupon(ctx context.Context, coupon domain.Coupon) (*domain.Coupon, error)
	DeleteCoupon(ctx context.Context, couponID string) error
}
