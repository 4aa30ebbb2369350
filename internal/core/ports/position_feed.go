package ports

import (
	"context"

	"trackview/internal/core/domain/model/tracking"
)

// Subscription identifies what a position feed should follow. Pull feeds key
// on CourierID, push feeds filter frames by OrderID.
type Subscription struct {
	OrderID    string
	CourierID  string
	Credential string
}

// Unsubscribe stops a subscription. When it returns, the feed has released
// its timer or connection and will not call onUpdate again. It is safe to
// call more than once.
type Unsubscribe func()

// PositionFeed yields courier positions over time regardless of transport.
//
// Subscribe establishes the feed and returns once it is live. onUpdate is
// called from the feed's own goroutine, one sample at a time. Transport
// errors after Subscribe has returned are the feed's business: they are
// logged and skipped, never surfaced.
type PositionFeed interface {
	Subscribe(ctx context.Context, sub Subscription, onUpdate func(tracking.CourierSample)) (Unsubscribe, error)
}
