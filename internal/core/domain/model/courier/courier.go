package courier

import (
	"errors"
	"strings"

	"trackview/internal/core/domain/model/kernel"
	"trackview/internal/pkg/errs"
)

var ErrCourierIsNotConstructed = errors.New("Courier must be created via RestoreCourier constructor")

// VehicleType is how the courier travels: "foot", "bike" or "car".
type VehicleType string

// Availability is the registry status of a courier: "available", "busy" or "offline".
type Availability string

const (
	Available Availability = "available"
	Busy      Availability = "busy"
	Offline   Availability = "offline"
)

// Courier is a read-only entry of the courier registry.
type Courier struct {
	id            string
	name          string
	phone         string
	vehicle       VehicleType
	availability  Availability
	position      kernel.Point
	activeOrderID string

	isConstructed bool
}

// RestoreCourier rebuilds a registry entry. A zero position means the
// registry has no coordinates for the courier.
func RestoreCourier(
	id, name, phone string,
	vehicle VehicleType,
	availability Availability,
	position kernel.Point,
	activeOrderID string,
) (*Courier, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errs.NewValueIsRequiredError("courier id")
	}

	return &Courier{
		id:            id,
		name:          name,
		phone:         phone,
		vehicle:       vehicle,
		availability:  availability,
		position:      position,
		activeOrderID: activeOrderID,
		isConstructed: true,
	}, nil
}

func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotConstructed
	}
	return nil
}

func (c *Courier) ID() string                 { return c.id }
func (c *Courier) Name() string               { return c.name }
func (c *Courier) Phone() string              { return c.phone }
func (c *Courier) Vehicle() VehicleType       { return c.vehicle }
func (c *Courier) Availability() Availability { return c.availability }

// Position returns the last coordinates the registry holds, if any.
func (c *Courier) Position() (kernel.Point, bool) {
	return c.position, !c.position.IsZero()
}

// ActiveOrderID returns the order the courier is delivering, if any.
func (c *Courier) ActiveOrderID() (string, bool) {
	return c.activeOrderID, c.activeOrderID != ""
}
