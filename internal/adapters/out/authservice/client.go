// Package authservice is the client of the auth service.
package authservice

import (
	"context"
	"net/http"

	"trackview/internal/adapters/out/platform"
	"trackview/internal/core/ports"
	"trackview/internal/pkg/errs"
)

var _ ports.AuthClient = (*Client)(nil)

type Client struct {
	api *platform.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{api: platform.NewClient("auth", baseURL, httpClient)}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login returns the issued bearer token. Rejected credentials surface as an
// *errs.UnexpectedStatusError with status 401 and the service's message.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	req := loginRequest{Username: username, Password: password}
	if err := c.api.Do(ctx, http.MethodPost, "/login", "", req, &resp); err != nil {
		return "", err
	}

	if resp.Token == "" {
		return "", errs.NewValueIsInvalidError("auth response")
	}
	return resp.Token, nil
}
