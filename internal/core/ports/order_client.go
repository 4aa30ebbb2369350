// Package ports defines the contracts between the tracking view and the
// platform services it consumes. Adapters under internal/adapters/out
// implement them over HTTP and WebSocket; tests implement them with testify mocks.
package ports

import (
	"context"

	"trackview/internal/core/domain/model/courier"
	"trackview/internal/core/domain/model/order"
)

// OrderClient reads orders and couriers from the order service.
// credential is a bearer token; an empty credential sends no Authorization header.
type OrderClient interface {
	// Get returns one order. A 404 yields errs.ErrObjectNotFound, any other
	// non-success status errs.ErrUnexpectedStatus.
	Get(ctx context.Context, orderID, credential string) (*order.Order, error)

	// List returns every order the service knows, in service order.
	List(ctx context.Context, credential string) ([]*order.Order, error)

	// ListCouriers returns the courier registry.
	ListCouriers(ctx context.Context, credential string) ([]*courier.Courier, error)

	// Create submits draft and returns the order as the service stored it.
	Create(ctx context.Context, draft order.Draft, credential string) (*order.Order, error)

	// Delete removes an order. A 404 yields errs.ErrObjectNotFound.
	Delete(ctx context.Context, orderID, credential string) error

	// CreateCourier adds a courier named name to the registry.
	CreateCourier(ctx context.Context, name, credential string) (*courier.Courier, error)

	// AssignCourier asks the order service to assign courierID to orderID.
	// Assignment rules are enforced by the service, not here.
	AssignCourier(ctx context.Context, orderID, courierID, credential string) error
}
