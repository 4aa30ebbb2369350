package tracking

import (
	"trackview/internal/core/domain/model/kernel"
	"trackview/internal/core/domain/model/order"
)

// DefaultZoom is the map zoom level the view is rendered with.
const DefaultZoom = 12

// MarkerKind tells sender, recipient and courier markers apart.
type MarkerKind string

const (
	SenderMarker    MarkerKind = "sender"
	RecipientMarker MarkerKind = "recipient"
	CourierMarker   MarkerKind = "courier"
)

type Marker struct {
	Kind     MarkerKind
	Position kernel.Point
	Label    string
}

// View is the display state of one tracking view. Every slice of it may be
// absent independently; absence means "no marker", never an error.
type View struct {
	Phase   Phase
	OrderID string
	Order   *order.Order
	From    *GeoPoint
	To      *GeoPoint
	Courier *CourierSample
}

// Center is the courier position when one is known, otherwise the default center.
func (v View) Center() kernel.Point {
	if v.Courier != nil && !v.Courier.Position.IsZero() {
		return v.Courier.Position
	}
	return kernel.DefaultCenter()
}

// Markers returns at most three markers in sender, recipient, courier order.
// Without an order snapshot there are none.
func (v View) Markers() []Marker {
	if v.Order == nil {
		return nil
	}

	markers := make([]Marker, 0, 3)
	if v.From != nil {
		markers = append(markers, Marker{Kind: SenderMarker, Position: v.From.Position, Label: v.From.Label})
	}
	if v.To != nil {
		markers = append(markers, Marker{Kind: RecipientMarker, Position: v.To.Position, Label: v.To.Label})
	}
	if v.Courier != nil && !v.Courier.Position.IsZero() {
		markers = append(markers, Marker{
			Kind:     CourierMarker,
			Position: v.Courier.Position,
			Label:    "Order ID: " + v.OrderID,
		})
	}
	return markers
}

// Clone copies the view so callers can read it without holding the owner's lock.
func (v View) Clone() View {
	c := v
	if v.From != nil {
		from := *v.From
		c.From = &from
	}
	if v.To != nil {
		to := *v.To
		c.To = &to
	}
	if v.Courier != nil {
		sample := *v.Courier
		c.Courier = &sample
	}
	return c
}
