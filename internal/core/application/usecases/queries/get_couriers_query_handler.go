package queries

import (
	"context"

	"trackview/internal/core/ports"
)

type GetCouriersQueryHandler struct {
	orders ports.OrderClient
}

func NewGetCouriersQueryHandler(orders ports.OrderClient) GetCouriersQueryHandler {
	return GetCouriersQueryHandler{orders: orders}
}

func (h GetCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetCouriersQuery,
) ([]GetCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers, err := h.orders.ListCouriers(ctx, query.Credential())
	if err != nil {
		return nil, err
	}

	result := make([]GetCouriersQueryResponse, 0, len(couriers))
	for _, c := range couriers {
		resp := GetCouriersQueryResponse{
			ID:           c.ID(),
			Name:         c.Name(),
			Phone:        c.Phone(),
			Vehicle:      c.Vehicle(),
			Availability: c.Availability(),
		}
		if position, ok := c.Position(); ok {
			resp.Position = &position
		}
		if orderID, ok := c.ActiveOrderID(); ok {
			resp.ActiveOrderID = orderID
		}
		result = append(result, resp)
	}

	return result, nil
}
