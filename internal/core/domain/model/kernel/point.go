package kernel

import (
	"errors"
	"fmt"
	"math"

	"trackview/internal/pkg/errs"
	"trackview/internal/pkg/guard"
)

const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

// ErrPointIsNotConstructed is returned when a zero Point is used.
var ErrPointIsNotConstructed = errs.NewValueIsRequiredError(
	"point must be created via NewPoint or MustNewPoint constructors")

// Point is a WGS84 coordinate. The zero value is invalid: the map shows no
// marker for it rather than one at (0, 0).
//
//	p, err := kernel.NewPoint(55.7558, 37.6176)
//	fmt.Println(p) // Point(55.755800,37.617600)
type Point struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewPoint validates both coordinates and reports every violation at once.
func NewPoint(lat, lon float64) (Point, error) {
	p := Point{guard: guard.NewConstructorGuard()}

	if err := errors.Join(p.setLat(lat), p.setLon(lon)); err != nil {
		return Point{}, err
	}

	return p, nil
}

// MustNewPoint is NewPoint for compile-time constants; it panics on invalid input.
func MustNewPoint(lat, lon float64) Point {
	p, err := NewPoint(lat, lon)
	if err != nil {
		panic(err)
	}
	return p
}

// DefaultCenter is where the map looks while no courier position is known.
func DefaultCenter() Point {
	return MustNewPoint(55.7558, 37.6176)
}

func (p Point) Validate() error {
	return p.guard.Validate(ErrPointIsNotConstructed)
}

func (p Point) Lat() float64 {
	return p.lat
}

func (p Point) Lon() float64 {
	return p.lon
}

// IsZero reports whether p was never constructed.
func (p Point) IsZero() bool {
	return p.Validate() != nil
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%f,%f)", p.lat, p.lon)
}

// IsEqual compares coordinates exactly; both points must be constructed.
func (p Point) IsEqual(other Point) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lon == other.lon, nil
}

func (p *Point) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax || math.IsNaN(lat) {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}

	p.lat = lat
	return nil
}

func (p *Point) setLon(lon float64) error {
	if lon < LongitudeMin || lon > LongitudeMax || math.IsNaN(lon) {
		return errs.NewValueIsOutOfRangeError("longitude", lon, LongitudeMin, LongitudeMax)
	}

	p.lon = lon
	return nil
}
