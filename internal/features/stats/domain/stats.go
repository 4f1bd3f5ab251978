package domain

// RevenueStats is a revenue aggregate over a date range, computed by the
// backend and cached by the gateway.
type RevenueStats struct {
	// From and To bound the range, inclusive, as YYYY-MM-DD.
	From string `json:"from"`
	To   string `json:"to"`
	// TotalRevenue is the summed order value in the range.
	TotalRevenue float64 `json:"totalRevenue"`
	// OrderCount is the number of orders in the range.
	OrderCount int `json:"orderCount"`
	// Daily is the per-day breakdown in range order.
	Daily []DailyRevenue `json:"daily"`
}

// DailyRevenue is one day of the revenue breakdown.
type DailyRevenue struct {
	Date       string  `json:"date"`
	Revenue    float64 `json:"revenue"`
	OrderCount int     `json:"orderCount"`
}
