// Package trackingservice talks to the tracking service. Client reads the
// latest courier position over REST; PollingFeed and StreamFeed are the pull
// and push implementations of ports.PositionFeed.
package trackingservice

import (
	"context"
	"net/http"
	"net/url"

	"trackview/internal/adapters/out/platform"
	"trackview/internal/core/domain/model/kernel"
	"trackview/internal/core/domain/model/tracking"
	"trackview/internal/jobs"
	"trackview/internal/pkg/errs"
)

var _ jobs.PositionSource = (*Client)(nil)

type Client struct {
	api *platform.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{api: platform.NewClient("tracking", baseURL, httpClient)}
}

type CourierLocationDTO struct {
	CourierID string   `json:"courier_id"`
	Status    string   `json:"status"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// CourierPosition returns the last position reported for courierID. A
// response without coordinates is errs.ErrValueIsRequired.
func (c *Client) CourierPosition(ctx context.Context, courierID, credential string) (tracking.CourierSample, error) {
	var dto CourierLocationDTO
	path := "/couriers/tracking/" + url.PathEscape(courierID)
	err := c.api.Do(ctx, http.MethodGet, path, credential, nil, &dto)
	if platform.StatusCode(err) == http.StatusNotFound {
		return tracking.CourierSample{}, errs.NewObjectNotFoundErrorWithCause("courierId", courierID, err)
	}
	if err != nil {
		return tracking.CourierSample{}, err
	}

	if dto.Latitude == nil || dto.Longitude == nil {
		return tracking.CourierSample{}, errs.NewValueIsRequiredError("latitude/longitude")
	}
	position, err := kernel.NewPoint(*dto.Latitude, *dto.Longitude)
	if err != nil {
		return tracking.CourierSample{}, err
	}

	if dto.CourierID == "" {
		dto.CourierID = courierID
	}
	return tracking.CourierSample{CourierID: dto.CourierID, Position: position}, nil
}
