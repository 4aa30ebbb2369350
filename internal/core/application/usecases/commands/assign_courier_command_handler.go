package commands

import (
	"context"
	"fmt"

	"trackview/internal/core/ports"
)

// AssignCourierCommandHandler forwards an assignment to the order service.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("order or courier does not exist")
//	case err != nil:
//	    log.Printf("assignment rejected: %v", err)
//	}
type AssignCourierCommandHandler struct {
	orders ports.OrderClient
}

func NewAssignCourierCommandHandler(orders ports.OrderClient) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{orders: orders}
}

func (h AssignCourierCommandHandler) Handle(ctx context.Context, command AssignCourierCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	err := h.orders.AssignCourier(ctx, command.OrderID(), command.CourierID(), command.Credential())
	if err != nil {
		return fmt.Errorf("assign courier %s to order %s: %w", command.CourierID(), command.OrderID(), err)
	}

	return nil
}
