package ports

import (
	"context"

	"trackview/internal/core/domain/model/tracking"
)

// Geocoder turns a free-text address into coordinates and a display label.
// An address the provider cannot resolve yields errs.ErrObjectNotFound.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (tracking.GeoPoint, error)
}
