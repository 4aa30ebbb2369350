package orderservice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"trackview/internal/core/domain/model/courier"
	"trackview/internal/core/domain/model/kernel"
	"trackview/internal/core/domain/model/order"
)

type OrderDTO struct {
	ID            string       `json:"id"`
	SenderName    string       `json:"sender_name"`
	RecipientName string       `json:"recipient_name"`
	AddressFrom   string       `json:"address_from"`
	AddressTo     string       `json:"address_to"`
	Status        string       `json:"status"`
	CourierID     string       `json:"courier_id"`
	CreatedAt     time.Time    `json:"created_at"`
	CompletedAt   NullableTime `json:"completed_at"`
	Weight        float64      `json:"weight"`
	Length        float64      `json:"length"`
	Width         float64      `json:"width"`
	Height        float64      `json:"height"`
	Urgency       int          `json:"urgency"`
}

// NullableTime decodes every shape the order service uses for an optional
// timestamp: an RFC3339 string, an empty string, null, or the
// {"Time": ..., "Valid": bool} object of a serialized SQL null time.
type NullableTime struct {
	Time  time.Time
	Valid bool
}

func (t *NullableTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*t = NullableTime{}

	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			return nil
		}
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("completed_at: %w", err)
		}
		t.Time, t.Valid = parsed, true
		return nil
	case data[0] == '{':
		var sqlTime struct {
			Time  time.Time `json:"Time"`
			Valid bool      `json:"Valid"`
		}
		if err := json.Unmarshal(data, &sqlTime); err != nil {
			return err
		}
		if sqlTime.Valid {
			t.Time, t.Valid = sqlTime.Time, true
		}
		return nil
	default:
		return fmt.Errorf("completed_at: unsupported value %s", data)
	}
}

func (dto OrderDTO) toDomain() (*order.Order, error) {
	snapshot := order.Snapshot{
		ID:            dto.ID,
		SenderName:    dto.SenderName,
		RecipientName: dto.RecipientName,
		AddressFrom:   dto.AddressFrom,
		AddressTo:     dto.AddressTo,
		Status:        order.Status(dto.Status),
		CourierID:     dto.CourierID,
		CreatedAt:     dto.CreatedAt,
		Parcel: order.Parcel{
			Weight:  dto.Weight,
			Length:  dto.Length,
			Width:   dto.Width,
			Height:  dto.Height,
			Urgency: order.Urgency(dto.Urgency),
		},
	}
	if dto.CompletedAt.Valid {
		completedAt := dto.CompletedAt.Time
		snapshot.CompletedAt = &completedAt
	}

	return order.RestoreOrder(snapshot)
}

type CourierDTO struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	VehicleType   string   `json:"vehicle_type"`
	Status        string   `json:"status"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	ActiveOrderID string   `json:"active_order_id"`
}

// toDomain leaves the position unset when a coordinate is missing or out of
// range; the courier itself is kept.
func (dto CourierDTO) toDomain() (*courier.Courier, error) {
	var position kernel.Point
	if dto.Latitude != nil && dto.Longitude != nil {
		if p, err := kernel.NewPoint(*dto.Latitude, *dto.Longitude); err == nil {
			position = p
		}
	}

	return courier.RestoreCourier(
		dto.ID,
		dto.Name,
		dto.Phone,
		courier.VehicleType(dto.VehicleType),
		courier.Availability(dto.Status),
		position,
		dto.ActiveOrderID,
	)
}

type createOrderRequest struct {
	SenderName    string  `json:"sender_name"`
	RecipientName string  `json:"recipient_name"`
	AddressFrom   string  `json:"address_from"`
	AddressTo     string  `json:"address_to"`
	Weight        float64 `json:"weight"`
	Length        float64 `json:"length"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	Urgency       int     `json:"urgency"`
}

func newCreateOrderRequest(d order.Draft) createOrderRequest {
	return createOrderRequest{
		SenderName:    d.SenderName,
		RecipientName: d.RecipientName,
		AddressFrom:   d.AddressFrom,
		AddressTo:     d.AddressTo,
		Weight:        d.Parcel.Weight,
		Length:        d.Parcel.Length,
		Width:         d.Parcel.Width,
		Height:        d.Parcel.Height,
		Urgency:       int(d.Parcel.Urgency),
	}
}

type createCourierRequest struct {
	Name string `json:"name"`
}

type assignCourierRequest struct {
	CourierID string `json:"courier_id"`
}
