package commands_test

import (
	"testing"

	"trackview/internal/core/application/usecases/commands"
	"trackview/internal/core/domain/model/order"
	"trackview/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parcel() order.Parcel {
	return order.Parcel{Weight: 2.5, Length: 0.4, Width: 0.3, Height: 0.2, Urgency: order.UrgencyStandard}
}

func TestNewCreateOrderCommand(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("Иван", "Мария", "Тверская 1", "Арбат 10", parcel(), "token")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Тверская 1", cmd.Draft().AddressFrom)
	assert.Equal(t, "token", cmd.Credential())
}

func TestNewCreateOrderCommand_Invalid(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("", "", "", "Арбат 10", parcel(), "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	bad := parcel()
	bad.Weight = 0
	_, err = commands.NewCreateOrderCommand("", "", "A", "B", bad, "")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewDeleteOrderCommand(t *testing.T) {
	cmd, err := commands.NewDeleteOrderCommand(" 42 ", "token")
	require.NoError(t, err)
	assert.Equal(t, "42", cmd.OrderID())

	_, err = commands.NewDeleteOrderCommand(" ", "token")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	require.ErrorIs(t, commands.DeleteOrderCommand{}.Validate(), commands.ErrDeleteOrderCommandIsNotConstructed)
}

func TestNewCreateCourierCommand(t *testing.T) {
	cmd, err := commands.NewCreateCourierCommand(" Пётр ", "token")
	require.NoError(t, err)
	assert.Equal(t, "Пётр", cmd.Name())

	_, err = commands.NewCreateCourierCommand("", "token")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	require.ErrorIs(t, commands.CreateCourierCommand{}.Validate(), commands.ErrCreateCourierCommandIsNotConstructed)
}
