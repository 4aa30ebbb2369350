package order

import (
	"errors"
	"strings"
	"time"

	"trackview/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order was not obtained through RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")

// Urgency mirrors the order service's delivery urgency: 1 standard, 2 express.
type Urgency int

const (
	UrgencyStandard Urgency = 1
	UrgencyExpress  Urgency = 2
)

// Parcel describes the physical package. Weight is in kilograms, dimensions in metres.
type Parcel struct {
	Weight  float64
	Length  float64
	Width   float64
	Height  float64
	Urgency Urgency
}

// Snapshot carries the raw fields of an order record as the order service
// returned them. It is the input of RestoreOrder.
type Snapshot struct {
	ID            string
	SenderName    string
	RecipientName string
	AddressFrom   string
	AddressTo     string
	Status        Status
	CourierID     string
	CreatedAt     time.Time
	CompletedAt   *time.Time
	Parcel        Parcel
}

// Order is a read-only snapshot of an order owned by the order service.
//
// Invariants:
//   - the identifier is non-empty
//   - an empty courier id means no courier is assigned
type Order struct {
	id            string
	senderName    string
	recipientName string
	addressFrom   string
	addressTo     string
	status        Status
	courierID     string
	createdAt     time.Time
	completedAt   *time.Time
	parcel        Parcel

	isConstructed bool
}

// RestoreOrder rebuilds an Order from a service response. Only the
// identifier is mandatory: addresses may be blank, in which case the view
// simply shows no marker for them.
func RestoreOrder(s Snapshot) (*Order, error) {
	id := strings.TrimSpace(s.ID)
	if id == "" {
		return nil, errs.NewValueIsRequiredError("order id")
	}

	var completedAt *time.Time
	if s.CompletedAt != nil {
		t := *s.CompletedAt
		completedAt = &t
	}

	return &Order{
		id:            id,
		senderName:    s.SenderName,
		recipientName: s.RecipientName,
		addressFrom:   strings.TrimSpace(s.AddressFrom),
		addressTo:     strings.TrimSpace(s.AddressTo),
		status:        s.Status,
		courierID:     strings.TrimSpace(s.CourierID),
		createdAt:     s.CreatedAt,
		completedAt:   completedAt,
		parcel:        s.Parcel,
		isConstructed: true,
	}, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) ID() string {
	return o.id
}

func (o *Order) SenderName() string {
	return o.senderName
}

func (o *Order) RecipientName() string {
	return o.recipientName
}

func (o *Order) AddressFrom() string {
	return o.addressFrom
}

func (o *Order) AddressTo() string {
	return o.addressTo
}

func (o *Order) Status() Status {
	return o.status
}

// CourierID returns the assigned courier and whether there is one.
func (o *Order) CourierID() (string, bool) {
	return o.courierID, o.courierID != ""
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CompletedAt returns the completion time, or false while the order is open.
func (o *Order) CompletedAt() (time.Time, bool) {
	if o.completedAt == nil {
		return time.Time{}, false
	}
	return *o.completedAt, true
}

func (o *Order) Parcel() Parcel {
	return o.parcel
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}
