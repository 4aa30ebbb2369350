package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackview/internal/core/domain/model/order"
	"trackview/internal/pkg/errs"
)

func TestRestoreOrder(t *testing.T) {
	created := time.Date(2025, 5, 14, 13, 5, 51, 0, time.UTC)

	tests := []struct {
		name        string
		snapshot    order.Snapshot
		wantErr     error
		wantCourier string
		hasCourier  bool
	}{
		{
			name: "assigned order",
			snapshot: order.Snapshot{
				ID:          "20250514130551",
				AddressFrom: "Тверская 1",
				AddressTo:   "Арбат 10",
				Status:      order.StatusInTransit,
				CourierID:   "C1",
				CreatedAt:   created,
			},
			wantCourier: "C1",
			hasCourier:  true,
		},
		{
			name: "unassigned order",
			snapshot: order.Snapshot{
				ID:     "42",
				Status: order.StatusNew,
			},
		},
		{
			name: "blank courier id is no courier",
			snapshot: order.Snapshot{
				ID:        "42",
				CourierID: "   ",
			},
		},
		{
			name:     "empty id",
			snapshot: order.Snapshot{ID: " "},
			wantErr:  errs.ErrValueIsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := order.RestoreOrder(tt.snapshot)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, o)
				return
			}

			require.NoError(t, err)
			require.NoError(t, o.Validate())
			courierID, ok := o.CourierID()
			assert.Equal(t, tt.hasCourier, ok)
			assert.Equal(t, tt.wantCourier, courierID)
		})
	}
}

func TestOrder_Accessors(t *testing.T) {
	completed := time.Date(2025, 5, 14, 15, 0, 0, 0, time.UTC)
	snapshot := order.Snapshot{
		ID:            "42",
		SenderName:    "Иван",
		RecipientName: "Пётр",
		AddressFrom:   "  A  ",
		AddressTo:     "B",
		Status:        order.StatusCompleted,
		CompletedAt:   &completed,
		Parcel:        order.Parcel{Weight: 1.5, Length: 0.3, Width: 0.2, Height: 0.1, Urgency: order.UrgencyExpress},
	}

	o, err := order.RestoreOrder(snapshot)
	require.NoError(t, err)

	assert.Equal(t, "42", o.ID())
	assert.Equal(t, "Иван", o.SenderName())
	assert.Equal(t, "Пётр", o.RecipientName())
	assert.Equal(t, "A", o.AddressFrom())
	assert.Equal(t, "B", o.AddressTo())
	assert.True(t, o.Status().IsCompleted())
	assert.Equal(t, order.UrgencyExpress, o.Parcel().Urgency)

	at, ok := o.CompletedAt()
	require.True(t, ok)
	assert.Equal(t, completed, at)

	// the snapshot owns its own copy of the completion time
	completed = completed.Add(time.Hour)
	at, _ = o.CompletedAt()
	assert.NotEqual(t, completed, at)
}

func TestOrder_CompletedAtAbsent(t *testing.T) {
	o, err := order.RestoreOrder(order.Snapshot{ID: "42"})
	require.NoError(t, err)

	_, ok := o.CompletedAt()
	assert.False(t, ok)
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)

	zero := &order.Order{}
	require.ErrorIs(t, zero.Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_IsEqual(t *testing.T) {
	a, _ := order.RestoreOrder(order.Snapshot{ID: "1"})
	b, _ := order.RestoreOrder(order.Snapshot{ID: "1", SenderName: "other"})
	c, _ := order.RestoreOrder(order.Snapshot{ID: "2"})

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}

func TestStatus(t *testing.T) {
	tests := []struct {
		status    order.Status
		known     bool
		completed bool
	}{
		{order.StatusNew, true, false},
		{order.StatusInTransit, true, false},
		{order.StatusCompleted, true, true},
		{order.Status("assigned"), false, false},
		{order.Status(""), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.known, tt.status.IsKnown())
			assert.Equal(t, tt.completed, tt.status.IsCompleted())
		})
	}
}
