package tracking

// Phase is where a mounted view is in its lifecycle.
//
//	Idle ──select──> FetchingOrder ──ok──> OrderReady ──courier──> Subscribed
//	                      │
//	                      └──fail──> OrderUnavailable
//
// Selecting another order from any phase tears everything down and starts
// over at FetchingOrder; clearing the selection or closing the view returns
// to Idle.
type Phase int

const (
	Idle Phase = iota
	FetchingOrder
	OrderReady
	Subscribed
	OrderUnavailable
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case FetchingOrder:
		return "fetching_order"
	case OrderReady:
		return "order_ready"
	case Subscribed:
		return "subscribed"
	case OrderUnavailable:
		return "order_unavailable"
	default:
		return "unknown"
	}
}
