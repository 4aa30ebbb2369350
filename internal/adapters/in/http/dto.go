package http

import "time"

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type AssignCourierRequest struct {
	CourierID string `json:"courier_id"`
}

type CreateOrderRequest struct {
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

type CreateCourierRequest struct {
	Name string `json:"name"`
}

type SelectOrderRequest struct {
	OrderID string `json:"order_id"`
}

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Order struct {
	ID            string     `json:"id"`
	SenderName    string     `json:"sender_name,omitempty"`
	RecipientName string     `json:"recipient_name,omitempty"`
	AddressFrom   string     `json:"address_from,omitempty"`
	AddressTo     string     `json:"address_to,omitempty"`
	Status        string     `json:"status"`
	CourierID     string     `json:"courier_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	Weight        float64    `json:"weight"`
	Length        float64    `json:"length"`
	Width         float64    `json:"width"`
	Height        float64    `json:"height"`
	Urgency       int        `json:"urgency"`
}

type Courier struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone,omitempty"`
	VehicleType   string `json:"vehicle_type,omitempty"`
	Status        string `json:"status"`
	Position      *Point `json:"position,omitempty"`
	ActiveOrderID string `json:"active_order_id,omitempty"`
}

type CourierStats struct {
	CourierID              string  `json:"courier_id"`
	CourierName            string  `json:"courier_name"`
	CompletedOrders        int     `json:"completed_orders"`
	TotalRevenue           float64 `json:"total_revenue"`
	AverageDeliveryMinutes float64 `json:"average_delivery_minutes"`
}

type Marker struct {
	Kind     string `json:"kind"`
	Position Point  `json:"position"`
	Label    string `json:"label"`
}

type MapView struct {
	Phase       string   `json:"phase"`
	OrderID     string   `json:"order_id,omitempty"`
	OrderStatus string   `json:"order_status,omitempty"`
	Center      Point    `json:"center"`
	Zoom        int      `json:"zoom"`
	Markers     []Marker `json:"markers"`
}
