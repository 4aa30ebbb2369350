package commands_test

import (
	"errors"
	"testing"

	"trackview/internal/core/application/reconciler"
	"trackview/internal/core/application/usecases/commands"
	"trackview/internal/core/domain/model/courier"
	"trackview/internal/core/domain/model/kernel"
	"trackview/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredOrder(t *testing.T, id string) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Snapshot{ID: id, AddressFrom: "A", AddressTo: "B", Status: order.StatusNew})
	require.NoError(t, err)
	return o
}

func TestCreateOrderCommandHandler_Handle_SelectsCreatedOrder(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand("Иван", "Мария", "A", "B", parcel(), "token")
	require.NoError(t, err)

	orders := new(MockOrderClient)
	orders.On("Create", ctx, cmd.Draft(), "token").Return(restoredOrder(t, "7"), nil).Once()
	view := new(MockTrackingView)
	view.On("Select", "7", "token").Return(nil).Once()

	o, err := commands.NewCreateOrderCommandHandler(orders, view).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "7", o.ID())
	orders.AssertExpectations(t)
	view.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CreateFails(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand("", "", "A", "B", parcel(), "")
	require.NoError(t, err)

	orders := new(MockOrderClient)
	orders.On("Create", ctx, cmd.Draft(), "").Return(nil, errors.New("orders down")).Once()
	view := new(MockTrackingView)

	_, err = commands.NewCreateOrderCommandHandler(orders, view).Handle(ctx, cmd)

	require.EqualError(t, err, "create order: orders down")
	view.AssertNotCalled(t, "Select", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_ViewClosed(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand("", "", "A", "B", parcel(), "")
	require.NoError(t, err)

	orders := new(MockOrderClient)
	orders.On("Create", ctx, cmd.Draft(), "").Return(restoredOrder(t, "7"), nil).Once()
	view := new(MockTrackingView)
	view.On("Select", "7", "").Return(reconciler.ErrReconcilerClosed).Once()

	o, err := commands.NewCreateOrderCommandHandler(orders, view).Handle(ctx, cmd)

	require.ErrorIs(t, err, reconciler.ErrReconcilerClosed)
	require.NotNil(t, o)
	assert.Equal(t, "7", o.ID())
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	_, err := commands.NewCreateOrderCommandHandler(new(MockOrderClient), new(MockTrackingView)).
		Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCreateCourierCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCourierCommand("Пётр", "token")
	require.NoError(t, err)

	created, err := courier.RestoreCourier("C9", "Пётр", "", "", "", kernel.Point{}, "")
	require.NoError(t, err)

	orders := new(MockOrderClient)
	orders.On("CreateCourier", ctx, "Пётр", "token").Return(created, nil).Once()

	c, err := commands.NewCreateCourierCommandHandler(orders).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "C9", c.ID())
	orders.AssertExpectations(t)
}
