package admin

type EarningsResponse struct {
	TotalBookings      int     `json:"total_bookings"`
	TotalEarnings      float64 `json:"total_earnings"`
	PlatformCommission float64 `json:"platform_commission"`
	NetEarnings        float64 `json:"net_earnings"`
	CommissionRate     float64 `json:"commission_rate"`
}

type StatsResponse struct {
	TotalUsers      int64   `json:"total_users"`
	TotalBookings   int64   `json:"total_bookings"`
	TotalVendors    int64   `json:"total_vendors"`
	PendingVendors  int64   `json:"pending_vendors"`
	TotalRevenue    float64 `json:"total_revenue"`
	PlatformRevenue float64 `json:"platform_revenue"`
}
