package commands

import (
	"context"
	"fmt"

	"trackview/internal/core/domain/model/order"
	"trackview/internal/core/ports"
)

// CreateOrderCommandHandler creates the order and makes it the tracked one.
type CreateOrderCommandHandler struct {
	orders ports.OrderClient
	view   TrackingView
}

func NewCreateOrderCommandHandler(orders ports.OrderClient, view TrackingView) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{orders: orders, view: view}
}

// Handle returns the created order. If the order was created but could not
// be selected, both the order and the error are returned.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Create(ctx, command.Draft(), command.Credential())
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err := h.view.Select(o.ID(), command.Credential()); err != nil {
		return o, fmt.Errorf("select created order %s: %w", o.ID(), err)
	}

	return o, nil
}
