package commands

import (
	"errors"
	"strings"

	"trackview/internal/pkg/errs"
	"trackview/internal/pkg/guard"
)

var ErrSelectOrderCommandIsNotConstructed = errors.New(
	"SelectOrderCommand must be created via NewSelectOrderCommand constructor",
)

// SelectOrderCommand points the tracking view at an order.
// The credential is forwarded to every platform call the view makes for it.
//
// Example:
//
//	cmd, err := NewSelectOrderCommand("42", token)
//	if err != nil {
//	    return err
//	}
//	err = NewSelectOrderCommandHandler(view).Handle(ctx, cmd)
type SelectOrderCommand struct {
	orderID    string
	credential string

	guard guard.ConstructorGuard
}

// NewSelectOrderCommand requires a non-blank order id. An empty credential is
// allowed: the platform decides whether anonymous reads are permitted.
func NewSelectOrderCommand(orderID, credential string) (SelectOrderCommand, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return SelectOrderCommand{}, errs.NewValueIsRequiredError("orderId")
	}

	return SelectOrderCommand{
		orderID:    orderID,
		credential: credential,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SelectOrderCommand) Validate() error {
	return c.guard.Validate(ErrSelectOrderCommandIsNotConstructed)
}

func (c SelectOrderCommand) OrderID() string {
	return c.orderID
}

func (c SelectOrderCommand) Credential() string {
	return c.credential
}
