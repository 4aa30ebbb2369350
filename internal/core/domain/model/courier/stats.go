package courier

import "time"

// Stats is one row of the analytics service's per-courier report.
type Stats struct {
	CourierID           string
	CourierName         string
	CompletedOrders     int
	TotalRevenue        float64
	AverageDeliveryTime time.Duration
}

// AverageDeliveryMinutes is the figure the dashboard shows, rounded to one decimal.
func (s Stats) AverageDeliveryMinutes() float64 {
	minutes := s.AverageDeliveryTime.Minutes()
	return float64(int64(minutes*10+0.5)) / 10
}
