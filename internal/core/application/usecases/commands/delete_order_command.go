package commands

import (
	"errors"
	"strings"

	"trackview/internal/pkg/errs"
	"trackview/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes an order from the order service.
type DeleteOrderCommand struct {
	orderID    string
	credential string

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(orderID, credential string) (DeleteOrderCommand, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return DeleteOrderCommand{}, errs.NewValueIsRequiredError("orderId")
	}

	return DeleteOrderCommand{
		orderID:    orderID,
		credential: credential,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderID() string {
	return c.orderID
}

func (c DeleteOrderCommand) Credential() string {
	return c.credential
}
