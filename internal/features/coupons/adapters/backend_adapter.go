package adapters

import (
	"context"
	"fmt"
	"net/url"

	"shoedash-gateway/internal/core/backend"
	"shoedash-gateway/internal/features/coupons/domain"
)

// BackendCouponAdapter implements the CouponProvider interface against the
// commerce backend's REST API through the authenticated pipeline.
type BackendCouponAdapter struct {
	client *backend.Client
}

// NewBackendCouponAdapter creates a new BackendCouponAdapter.
func NewBackendCouponAdapter(client *backend.Client) *BackendCouponAdapter {
	return &BackendCouponAdapter{client: client}
}

func (a *BackendCouponAdapter) ListCoupons(ctx context.Context) ([]domain.Coupon, error) {
	var coupons []domain.Coupon
	if err := a.client.GetJSON(ctx, "/coupons", &coupons); err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	return coupons, nil
}

func (a *BackendCouponAdapter) CreateCoupon(ctx context.Context, coupon domain.Coupon) (*domain.Coupon, error) {
	var created domain.Coupon
	if err := a.client.PostJSON(ctx, "/coupons", coupon, &created); err != nil {
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}
	return &created, nil
}

func (a *BackendCouponAdapter) DeleteCoupon(ctx context.Context, couponID string) error {
	if err := a.client.DeleteJSON(ctx, "/coupons/"+url.PathEscape(couponID), nil); err != nil {
		return fmt.Errorf("failed to delete coupon %s: %w", couponID, err)
	}
	return nil
}
