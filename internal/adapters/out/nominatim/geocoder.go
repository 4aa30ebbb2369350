// Package nominatim resolves addresses with an OpenStreetMap Nominatim
// search endpoint.
package nominatim

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"trackview/internal/core/domain/model/kernel"
	"trackview/internal/core/domain/model/tracking"
	"trackview/internal/core/ports"
	"trackview/internal/pkg/errs"
)

const DefaultURL = "https://nominatim.openstreetmap.org/search"

var _ ports.Geocoder = (*Geocoder)(nil)

// Geocoder is safe for concurrent use. All lookups share one limiter so the
// process as a whole stays within the provider's usage policy.
type Geocoder struct {
	searchURL string
	userAgent string
	limiter   *rate.Limiter
	http      *http.Client
}

// NewGeocoder builds a geocoder allowing ratePerSec lookups per second.
// A non-positive rate disables limiting, which only suits private instances.
func NewGeocoder(searchURL, userAgent string, ratePerSec float64, httpClient *http.Client) *Geocoder {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	limit := rate.Inf
	if ratePerSec > 0 {
		limit = rate.Limit(ratePerSec)
	}

	return &Geocoder{
		searchURL: searchURL,
		userAgent: userAgent,
		limiter:   rate.NewLimiter(limit, 1),
		http:      httpClient,
	}
}

type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode returns the first match for address. No match is
// errs.ErrObjectNotFound; coordinates outside the valid range are
// errs.ErrValueIsOutOfRange.
func (g *Geocoder) Geocode(ctx context.Context, address string) (tracking.GeoPoint, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return tracking.GeoPoint{}, errs.NewValueIsRequiredError("address")
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return tracking.GeoPoint{}, fmt.Errorf("geocoder rate limit: %w", err)
	}

	places, err := g.search(ctx, address)
	if err != nil {
		return tracking.GeoPoint{}, err
	}
	if len(places) == 0 {
		return tracking.GeoPoint{}, errs.NewObjectNotFoundError("address", address)
	}

	first := places[0]
	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return tracking.GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("latitude", err)
	}
	lon, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return tracking.GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("longitude", err)
	}

	position, err := kernel.NewPoint(lat, lon)
	if err != nil {
		return tracking.GeoPoint{}, err
	}

	label := first.DisplayName
	if label == "" {
		label = address
	}
	return tracking.NewGeoPoint(position, label)
}

func (g *Geocoder) search(ctx context.Context, address string) ([]place, error) {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("q", address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.searchURL+"?"+query.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create geocoder request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if g.userAgent != "" {
		req.Header.Set("User-Agent", g.userAgent)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoder request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, errs.NewUnexpectedStatusError("geocoder", resp.StatusCode, "")
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("geocoder response", err)
	}
	return places, nil
}
