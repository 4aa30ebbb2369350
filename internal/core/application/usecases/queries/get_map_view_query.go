// Package queries contains read operations. Each query returns a read
// model shaped for the HTTP adapter rather than the domain objects
// themselves.
package queries

import (
	"errors"

	"trackview/internal/core/domain/model/kernel"
	"trackview/internal/core/domain/model/order"
	"trackview/internal/core/domain/model/tracking"
	"trackview/internal/pkg/guard"
)

var ErrGetMapViewQueryIsNotConstructed = errors.New(
	"GetMapViewQuery must be created via NewGetMapViewQuery constructor",
)

// MapViewer exposes the current state of the tracking view.
type MapViewer interface {
	View() tracking.View
}

// GetMapViewQuery reads what the map should show right now.
//
// Example:
//
//	resp, err := NewGetMapViewQueryHandler(view).Handle(ctx, NewGetMapViewQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("center %s, %d markers\n", resp.Center, len(resp.Markers))
type GetMapViewQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMapViewQuery() GetMapViewQuery {
	return GetMapViewQuery{guard: guard.NewConstructorGuard()}
}

func (q GetMapViewQuery) Validate() error {
	return q.guard.Validate(ErrGetMapViewQueryIsNotConstructed)
}

// GetMapViewQueryResponse is the map read model. OrderStatus is empty while
// no order snapshot is held.
type GetMapViewQueryResponse struct {
	Phase       tracking.Phase
	OrderID     string
	OrderStatus order.Status
	Center      kernel.Point
	Zoom        int
	Markers     []tracking.Marker
}
