package tracking

import "trackview/internal/core/domain/model/kernel"

// GeoPoint is a geocoded address: where it is and how the geocoder named it.
type GeoPoint struct {
	Position kernel.Point
	Label    string
}

func NewGeoPoint(position kernel.Point, label string) (GeoPoint, error) {
	if err := position.Validate(); err != nil {
		return GeoPoint{}, err
	}
	return GeoPoint{Position: position, Label: label}, nil
}

// CourierSample is one courier position received from a position feed.
// Samples are ordered by arrival only.
type CourierSample struct {
	OrderID   string
	CourierID string
	Position  kernel.Point
}
