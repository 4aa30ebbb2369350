package commands

import (
	"context"
	"fmt"

	"trackview/internal/core/ports"
)

// DeleteOrderCommandHandler deletes an order. When the deleted order is the
// tracked one, the view moves on to the first remaining order, or to no
// order when none is left or the remaining orders cannot be listed.
type DeleteOrderCommandHandler struct {
	orders ports.OrderClient
	view   TrackingView
}

func NewDeleteOrderCommandHandler(orders ports.OrderClient, view TrackingView) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{orders: orders, view: view}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, command DeleteOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := h.orders.Delete(ctx, command.OrderID(), command.Credential()); err != nil {
		return fmt.Errorf("delete order %s: %w", command.OrderID(), err)
	}

	if h.view.SelectedOrderID() != command.OrderID() {
		return nil
	}

	next := ""
	if remaining, err := h.orders.List(ctx, command.Credential()); err == nil {
		for _, o := range remaining {
			if o.ID() != command.OrderID() {
				next = o.ID()
				break
			}
		}
	}

	credential := command.Credential()
	if next == "" {
		credential = ""
	}
	return h.view.Select(next, credential)
}
