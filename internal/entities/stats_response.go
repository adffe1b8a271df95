package entities

type StatsResponse struct {
	TotalSlots         int     `json:"total_slots"`
	Available          int     `json:"available"`
	Occupied           int     `json:"occupied"`
	Reserved           int     `json:"reserved"`
	TotalRevenue       int     `json:"total_revenue"`
	OccupancyRate      float64 `json:"occupancy_rate"`
	HourlyEarnings     float64 `json:"hourly_earnings"`
	AvgBookingDuration float64 `json:"avg_booking_duration"`
}
