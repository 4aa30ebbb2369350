package queries

import (
	"errors"
	"time"

	"trackview/internal/core/domain/model/order"
	"trackview/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists the orders of the order service on behalf of the
// holder of credential.
type GetOrdersQuery struct {
	credential string

	guard guard.ConstructorGuard
}

func NewGetOrdersQuery(credential string) GetOrdersQuery {
	return GetOrdersQuery{credential: credential, guard: guard.NewConstructorGuard()}
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Credential() string {
	return q.credential
}

// GetOrdersQueryResponse is one row of the order table. CourierID is empty
// and CompletedAt nil when not applicable.
type GetOrdersQueryResponse struct {
	ID            string
	SenderName    string
	RecipientName string
	AddressFrom   string
	AddressTo     string
	Status        order.Status
	CourierID     string
	CreatedAt     time.Time
	CompletedAt   *time.Time
	Parcel        order.Parcel
}
