// Package orderservice is the client of the order service: orders, the
// courier registry and courier assignment.
package orderservice

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"trackview/internal/adapters/out/platform"
	"trackview/internal/core/domain/model/courier"
	"trackview/internal/core/domain/model/order"
	"trackview/internal/core/ports"
	"trackview/internal/pkg/errs"
)

var _ ports.OrderClient = (*Client)(nil)

type Client struct {
	api *platform.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{api: platform.NewClient("orders", baseURL, httpClient)}
}

func (c *Client) Get(ctx context.Context, orderID, credential string) (*order.Order, error) {
	var dto OrderDTO
	err := c.api.Do(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderID), credential, nil, &dto)
	if platform.StatusCode(err) == http.StatusNotFound {
		return nil, errs.NewObjectNotFoundErrorWithCause("orderId", orderID, err)
	}
	if err != nil {
		return nil, err
	}

	o, err := dto.toDomain()
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order", err)
	}
	return o, nil
}

// List skips records the service returns without an id.
func (c *Client) List(ctx context.Context, credential string) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := c.api.Do(ctx, http.MethodGet, "/orders", credential, nil, &dtos); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := dto.toDomain()
		if err != nil {
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (c *Client) ListCouriers(ctx context.Context, credential string) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	if err := c.api.Do(ctx, http.MethodGet, "/couriers", credential, nil, &dtos); err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		cr, err := dto.toDomain()
		if err != nil {
			continue
		}
		couriers = append(couriers, cr)
	}
	return couriers, nil
}

func (c *Client) Create(ctx context.Context, draft order.Draft, credential string) (*order.Order, error) {
	var dto OrderDTO
	if err := c.api.Do(ctx, http.MethodPost, "/orders", credential, newCreateOrderRequest(draft), &dto); err != nil {
		return nil, err
	}

	o, err := dto.toDomain()
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order", err)
	}
	return o, nil
}

func (c *Client) Delete(ctx context.Context, orderID, credential string) error {
	err := c.api.Do(ctx, http.MethodDelete, "/orders/"+url.PathEscape(orderID), credential, nil, nil)
	if platform.StatusCode(err) == http.StatusNotFound {
		return errs.NewObjectNotFoundErrorWithCause("orderId", orderID, err)
	}
	return err
}

func (c *Client) CreateCourier(ctx context.Context, name, credential string) (*courier.Courier, error) {
	var dto CourierDTO
	if err := c.api.Do(ctx, http.MethodPost, "/couriers", credential, createCourierRequest{Name: name}, &dto); err != nil {
		return nil, err
	}

	cr, err := dto.toDomain()
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("courier", err)
	}
	return cr, nil
}

func (c *Client) AssignCourier(ctx context.Context, orderID, courierID, credential string) error {
	path := fmt.Sprintf("/orders/%s/assign-courier", url.PathEscape(orderID))
	err := c.api.Do(ctx, http.MethodPut, path, credential, assignCourierRequest{CourierID: courierID}, nil)
	if platform.StatusCode(err) == http.StatusNotFound {
		return errs.NewObjectNotFoundErrorWithCause("orderId", orderID, err)
	}
	return err
}
