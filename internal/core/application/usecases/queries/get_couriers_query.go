package queries

import (
	"errors"

	"trackview/internal/core/domain/model/courier"
	"trackview/internal/core/domain/model/kernel"
	"trackview/internal/pkg/guard"
)

var ErrGetCouriersQueryIsNotConstructed = errors.New(
	"GetCouriersQuery must be created via NewGetCouriersQuery constructor",
)

// GetCouriersQuery lists the courier registry, e.g. to pick a courier for
// AssignCourierCommand.
type GetCouriersQuery struct {
	credential string

	guard guard.ConstructorGuard
}

func NewGetCouriersQuery(credential string) GetCouriersQuery {
	return GetCouriersQuery{credential: credential, guard: guard.NewConstructorGuard()}
}

func (q GetCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCouriersQueryIsNotConstructed)
}

func (q GetCouriersQuery) Credential() string {
	return q.credential
}

// GetCouriersQueryResponse is one courier. Position is nil when the registry
// has no coordinates for the courier.
type GetCouriersQueryResponse struct {
	ID            string
	Name          string
	Phone         string
	Vehicle       courier.VehicleType
	Availability  courier.Availability
	Position      *kernel.Point
	ActiveOrderID string
}
