// Package analyticsservice is the client of the analytics service.
package analyticsservice

import (
	"context"
	"math"
	"net/http"
	"time"

	"trackview/internal/adapters/out/platform"
	"trackview/internal/core/domain/model/courier"
	"trackview/internal/core/ports"
)

var _ ports.AnalyticsClient = (*Client)(nil)

type Client struct {
	api *platform.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{api: platform.NewClient("analytics", baseURL, httpClient)}
}

type CourierStatsDTO struct {
	CourierID              string  `json:"courier_id"`
	CourierName            string  `json:"courier_name"`
	CompletedOrders        int     `json:"completed_orders"`
	TotalRevenue           float64 `json:"total_revenue"`
	AverageDeliveryTimeSec float64 `json:"average_delivery_time_sec"`
}

func (c *Client) CourierStats(ctx context.Context, credential string) ([]courier.Stats, error) {
	var dtos []CourierStatsDTO
	if err := c.api.Do(ctx, http.MethodGet, "/analytics/couriers", credential, nil, &dtos); err != nil {
		return nil, err
	}

	stats := make([]courier.Stats, 0, len(dtos))
	for _, dto := range dtos {
		seconds := dto.AverageDeliveryTimeSec
		if math.IsNaN(seconds) || seconds < 0 {
			seconds = 0
		}
		stats = append(stats, courier.Stats{
			CourierID:           dto.CourierID,
			CourierName:         dto.CourierName,
			CompletedOrders:     dto.CompletedOrders,
			TotalRevenue:        dto.TotalRevenue,
			AverageDeliveryTime: time.Duration(seconds * float64(time.Second)),
		})
	}
	return stats, nil
}
