package queries

import (
	"errors"

	"trackview/internal/pkg/guard"
)

var ErrGetCourierStatsQueryIsNotConstructed = errors.New(
	"GetCourierStatsQuery must be created via NewGetCourierStatsQuery constructor",
)

// GetCourierStatsQuery reads the per-courier delivery report of the
// analytics service.
type GetCourierStatsQuery struct {
	credential string

	guard guard.ConstructorGuard
}

func NewGetCourierStatsQuery(credential string) GetCourierStatsQuery {
	return GetCourierStatsQuery{credential: credential, guard: guard.NewConstructorGuard()}
}

func (q GetCourierStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierStatsQueryIsNotConstructed)
}

func (q GetCourierStatsQuery) Credential() string {
	return q.credential
}

type GetCourierStatsQueryResponse struct {
	CourierID              string
	CourierName            string
	CompletedOrders        int
	TotalRevenue           float64
	AverageDeliveryMinutes float64
}
