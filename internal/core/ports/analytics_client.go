package ports

import (
	"context"

	"trackview/internal/core/domain/model/courier"
)

// AnalyticsClient reads aggregated statistics from the analytics service.
type AnalyticsClient interface {
	CourierStats(ctx context.Context, credential string) ([]courier.Stats, error)
}
