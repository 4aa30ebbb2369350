package queries

import (
	"context"
	"sort"

	"trackview/internal/core/ports"
)

type GetCourierStatsQueryHandler struct {
	analytics ports.AnalyticsClient
}

func NewGetCourierStatsQueryHandler(analytics ports.AnalyticsClient) GetCourierStatsQueryHandler {
	return GetCourierStatsQueryHandler{analytics: analytics}
}

// Handle returns the report sorted by completed orders, busiest courier first.
func (h GetCourierStatsQueryHandler) Handle(
	ctx context.Context,
	query GetCourierStatsQuery,
) ([]GetCourierStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stats, err := h.analytics.CourierStats(ctx, query.Credential())
	if err != nil {
		return nil, err
	}

	result := make([]GetCourierStatsQueryResponse, 0, len(stats))
	for _, s := range stats {
		result = append(result, GetCourierStatsQueryResponse{
			CourierID:              s.CourierID,
			CourierName:            s.CourierName,
			CompletedOrders:        s.CompletedOrders,
			TotalRevenue:           s.TotalRevenue,
			AverageDeliveryMinutes: s.AverageDeliveryMinutes(),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CompletedOrders > result[j].CompletedOrders
	})

	return result, nil
}
