package commands

import (
	"errors"

	"trackview/internal/core/domain/model/order"
	"trackview/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand submits a new order to the order service.
type CreateOrderCommand struct {
	draft      order.Draft
	credential string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the order fields with order.NewDraft.
func NewCreateOrderCommand(
	senderName, recipientName, addressFrom, addressTo string,
	parcel order.Parcel,
	credential string,
) (CreateOrderCommand, error) {
	draft, err := order.NewDraft(senderName, recipientName, addressFrom, addressTo, parcel)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		draft:      draft,
		credential: credential,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Draft() order.Draft {
	return c.draft
}

func (c CreateOrderCommand) Credential() string {
	return c.credential
}
