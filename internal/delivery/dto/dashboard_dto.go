package dto

type MonthlyRevenue struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

type DashboardResponse struct {
	Customers             int              `json:"customers"`
	Staff                 int              `json:"staff"`
	Services              int              `json:"services"`
	Appointments          int              `json:"appointments"`
	CompletedAppointments int              `json:"completed_appointments"`
	TotalRevenue          int64            `json:"total_revenue"`
	FormattedRevenue      string           `json:"formatted_revenue"`
	AverageRevenue        string           `json:"average_revenue"`
	RevenueByMonth        []MonthlyRevenue `json:"revenue_by_month"`
}
