// Package platform holds the JSON-over-HTTP plumbing shared by the clients of
// the auth, order, tracking and analytics services.
package platform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"trackview/internal/pkg/errs"
)

// maxErrorBody caps how much of a failed response is read for its message.
const maxErrorBody = 4 << 10

// Client calls one platform service. Service names the service in errors and
// logs, e.g. "orders".
type Client struct {
	service string
	baseURL string
	http    *http.Client
}

func NewClient(service, baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) Service() string {
	return c.service
}

// URL joins path onto the service base URL.
func (c *Client) URL(path string) string {
	return c.baseURL + path
}

// Do sends in as the JSON request body (when non-nil) and decodes a success
// response into out (when non-nil). A non-2xx answer yields an
// *errs.UnexpectedStatusError carrying the service's "error" or "message"
// text; an undecodable body yields errs.ErrValueIsInvalid.
func (c *Client) Do(ctx context.Context, method, path, credential string, in, out any) error {
	var body io.Reader = http.NoBody
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", c.service, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.URL(path), body)
	if err != nil {
		return fmt.Errorf("create %s request: %w", c.service, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	SetBearer(req.Header, credential)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", c.service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errs.NewUnexpectedStatusError(c.service, resp.StatusCode, readErrorMessage(resp.Body))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(c.service+" response", err)
	}
	return nil
}

// SetBearer adds the Authorization header when a credential is present.
func SetBearer(h http.Header, credential string) {
	if credential != "" {
		h.Set("Authorization", "Bearer "+credential)
	}
}

// StatusCode extracts the HTTP status of an *errs.UnexpectedStatusError, or 0.
func StatusCode(err error) int {
	var statusErr *errs.UnexpectedStatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}

func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}

	return strings.TrimSpace(string(raw))
}
