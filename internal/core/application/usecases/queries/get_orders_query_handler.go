package queries

import (
	"context"

	"trackview/internal/core/domain/model/order"
	"trackview/internal/core/ports"
)

type GetOrdersQueryHandler struct {
	orders ports.OrderClient
}

func NewGetOrdersQueryHandler(orders ports.OrderClient) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orders: orders}
}

// Handle returns the orders in the order the service listed them.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.List(ctx, query.Credential())
	if err != nil {
		return nil, err
	}

	result := make([]GetOrdersQueryResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, toOrderResponse(o))
	}

	return result, nil
}

func toOrderResponse(o *order.Order) GetOrdersQueryResponse {
	resp := GetOrdersQueryResponse{
		ID:            o.ID(),
		SenderName:    o.SenderName(),
		RecipientName: o.RecipientName(),
		AddressFrom:   o.AddressFrom(),
		AddressTo:     o.AddressTo(),
		Status:        o.Status(),
		CreatedAt:     o.CreatedAt(),
		Parcel:        o.Parcel(),
	}
	if courierID, ok := o.CourierID(); ok {
		resp.CourierID = courierID
	}
	if completedAt, ok := o.CompletedAt(); ok {
		resp.CompletedAt = &completedAt
	}
	return resp
}
