package domain

import "time"

// Coupon is a discount code. The backend enforces redemption; the gateway
// mirrors the validity rules so the dashboard can flag dead coupons.
type Coupon struct {
	ID string `json:"id"`
	// Code is the string customers enter at checkout.
	Code string `json:"code"`
	// DiscountPercent is the discount in percent, 0 < n <= 100.
	DiscountPercent float64 `json:"discountPercent"`
	// StartsAt and ExpiresAt bound the validity window. A zero ExpiresAt
	// means the coupon never expires.
	StartsAt  time.Time `json:"startsAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	// UsageLimit caps total redemptions. Zero means unlimited.
	UsageLimit int `json:"usageLimit"`
	// UsageCount is the redemptions so far, reported by the backend.
	UsageCount int `json:"usageCount"`
}

// ActiveAt reports whether the coupon can be redeemed at the given instant:
// inside the validity window and under the usage limit.
func (c Coupon) ActiveAt(now time.Time) bool {
	if now.Before(c.StartsAt) {
		return false
	}
	if !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt) {
		return false
	}
	if c.UsageLimit > 0 && c.UsageCount >= c.UsageLimit {
		return false
	}
	return true
}
