package commands

import (
	"errors"
	"strings"

	"trackview/internal/pkg/errs"
	"trackview/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand asks the order service to put a courier on an order.
// Whether the assignment is allowed is decided by the service.
//
// Example:
//
//	cmd, err := NewAssignCourierCommand("42", "C1", token)
//	if err != nil {
//	    return err
//	}
//	err = NewAssignCourierCommandHandler(orderClient).Handle(ctx, cmd)
type AssignCourierCommand struct {
	orderID    string
	courierID  string
	credential string

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand requires both ids to be non-blank.
func NewAssignCourierCommand(orderID, courierID, credential string) (AssignCourierCommand, error) {
	cmd := AssignCourierCommand{
		credential: credential,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

func (c AssignCourierCommand) OrderID() string {
	return c.orderID
}

func (c AssignCourierCommand) CourierID() string {
	return c.courierID
}

func (c AssignCourierCommand) Credential() string {
	return c.credential
}

func (c *AssignCourierCommand) setOrderID(orderID string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *AssignCourierCommand) setCourierID(courierID string) error {
	courierID = strings.TrimSpace(courierID)
	if courierID == "" {
		return errs.NewValueIsRequiredError("courierId")
	}

	c.courierID = courierID
	return nil
}
