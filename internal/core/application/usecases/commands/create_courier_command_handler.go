package commands

import (
	"context"

	"trackview/internal/core/domain/model/courier"
	"trackview/internal/core/ports"
)

type CreateCourierCommandHandler struct {
	orders ports.OrderClient
}

func NewCreateCourierCommandHandler(orders ports.OrderClient) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{orders: orders}
}

func (h CreateCourierCommandHandler) Handle(ctx context.Context, command CreateCourierCommand) (*courier.Courier, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return h.orders.CreateCourier(ctx, command.Name(), command.Credential())
}
