// Package reconciler implements the tracking view: given a selected order and
// a credential it keeps one map display state in sync with three sources that
// arrive and fail independently (the order fetch, two geocode lookups and a
// courier position feed).
package reconciler

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"trackview/internal/core/domain/model/order"
	"trackview/internal/core/domain/model/tracking"
	"trackview/internal/core/ports"

	"github.com/google/uuid"
)

var ErrReconcilerClosed = errors.New("tracking view is closed")

// Reconciler is one mounted tracking view. Construct it with New, drive it
// with Select and release it with Close.
//
// Each Select starts a new activation stamped with a generation number.
// Every asynchronous result carries the generation it was issued under and
// is dropped if the view has moved on since. The previous activation's feed
// subscription is released before Select returns, so at most one
// subscription exists per view at any time.
type Reconciler struct {
	orders   ports.OrderClient
	geocoder ports.Geocoder
	feed     ports.PositionFeed
	logger   *slog.Logger

	// selectMu serializes Select and Close.
	selectMu sync.Mutex
	// subMu serializes establishing and releasing feed subscriptions.
	subMu sync.Mutex

	mu          sync.Mutex
	generation  uint64
	credential  string
	view        tracking.View
	cancel      context.CancelFunc
	unsubscribe ports.Unsubscribe
	closed      bool

	wg sync.WaitGroup
}

func New(
	orders ports.OrderClient,
	geocoder ports.Geocoder,
	feed ports.PositionFeed,
	logger *slog.Logger,
) *Reconciler {
	return &Reconciler{
		orders:   orders,
		geocoder: geocoder,
		feed:     feed,
		logger:   logger.With("component", "tracking_view"),
		view:     tracking.View{Phase: tracking.Idle},
	}
}

// Select makes orderID the tracked order. An empty orderID clears the
// selection. Selecting the order and credential already in effect is a no-op.
// Select does not wait for any network call except the release of the
// previous feed subscription.
func (r *Reconciler) Select(orderID, credential string) error {
	r.selectMu.Lock()
	defer r.selectMu.Unlock()

	orderID = strings.TrimSpace(orderID)

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrReconcilerClosed
	}
	if orderID == r.view.OrderID && credential == r.credential {
		r.mu.Unlock()
		return nil
	}

	previous := r.resetLocked(orderID, credential)
	if orderID == "" {
		r.mu.Unlock()
		r.release(previous)
		r.logger.Info("Tracking selection cleared")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	gen := r.generation
	r.mu.Unlock()

	r.release(previous)

	logger := r.logger.With("order_id", orderID, "activation_id", uuid.NewString())
	logger.Info("Tracking order selected")

	r.wg.Add(1)
	go r.activate(ctx, gen, orderID, credential, logger)

	return nil
}

// Close deactivates the view. When it returns the feed subscription has been
// released and every goroutine the view started has exited. Close is idempotent.
func (r *Reconciler) Close() {
	r.selectMu.Lock()
	defer r.selectMu.Unlock()

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	previous := r.resetLocked("", "")
	r.mu.Unlock()

	r.release(previous)
	r.wg.Wait()
	r.logger.Info("Tracking view closed")
}

// View returns a copy of the current display state.
func (r *Reconciler) View() tracking.View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view.Clone()
}

// SelectedOrderID returns the tracked order, or "" when nothing is selected.
func (r *Reconciler) SelectedOrderID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view.OrderID
}

// resetLocked ends the current activation and returns its subscription for
// the caller to release outside r.mu.
func (r *Reconciler) resetLocked(orderID, credential string) ports.Unsubscribe {
	r.generation++
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}

	previous := r.unsubscribe
	r.unsubscribe = nil

	r.credential = credential
	r.view = tracking.View{Phase: tracking.Idle, OrderID: orderID}
	if orderID != "" {
		r.view.Phase = tracking.FetchingOrder
	}
	return previous
}

func (r *Reconciler) release(unsubscribe ports.Unsubscribe) {
	r.subMu.Lock()
	defer r.subMu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (r *Reconciler) activate(
	ctx context.Context,
	gen uint64,
	orderID, credential string,
	logger *slog.Logger,
) {
	defer r.wg.Done()

	o, err := r.orders.Get(ctx, orderID, credential)
	if err != nil {
		if ctx.Err() == nil {
			logger.Warn("Order fetch failed, showing no markers", "error", err)
		}
		r.apply(gen, func(v *tracking.View) { v.Phase = tracking.OrderUnavailable })
		return
	}

	if !r.apply(gen, func(v *tracking.View) {
		v.Order = o
		v.Phase = tracking.OrderReady
	}) {
		return
	}

	r.geocodeAsync(ctx, gen, o.AddressFrom(), logger.With("marker", tracking.SenderMarker),
		func(v *tracking.View, gp tracking.GeoPoint) { v.From = &gp })
	r.geocodeAsync(ctx, gen, o.AddressTo(), logger.With("marker", tracking.RecipientMarker),
		func(v *tracking.View, gp tracking.GeoPoint) { v.To = &gp })

	r.subscribe(ctx, gen, o, credential, logger)
}

func (r *Reconciler) geocodeAsync(
	ctx context.Context,
	gen uint64,
	address string,
	logger *slog.Logger,
	set func(*tracking.View, tracking.GeoPoint),
) {
	if address == "" {
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		gp, err := r.geocoder.Geocode(ctx, address)
		if err != nil {
			if ctx.Err() == nil {
				logger.Debug("Geocoding failed, marker left empty", "address", address, "error", err)
			}
			return
		}
		r.apply(gen, func(v *tracking.View) { set(v, gp) })
	}()
}

func (r *Reconciler) subscribe(
	ctx context.Context,
	gen uint64,
	o *order.Order,
	credential string,
	logger *slog.Logger,
) {
	courierID, ok := o.CourierID()
	if !ok {
		logger.Debug("Order has no courier, position feed not started")
		return
	}

	r.subMu.Lock()
	defer r.subMu.Unlock()

	if !r.isCurrent(gen) {
		return
	}

	sub := ports.Subscription{OrderID: o.ID(), CourierID: courierID, Credential: credential}
	unsubscribe, err := r.feed.Subscribe(ctx, sub, func(sample tracking.CourierSample) {
		r.applySample(gen, o.ID(), sample)
	})
	if err != nil {
		if ctx.Err() == nil {
			logger.Warn("Position feed unavailable", "courier_id", courierID, "error", err)
		}
		return
	}

	r.mu.Lock()
	if r.generation != gen || r.closed {
		r.mu.Unlock()
		unsubscribe()
		return
	}
	r.unsubscribe = unsubscribe
	r.view.Phase = tracking.Subscribed
	r.mu.Unlock()

	logger.Info("Position feed subscribed", "courier_id", courierID)
}

// applySample drops samples without a position. (0,0) is a position.
func (r *Reconciler) applySample(gen uint64, orderID string, sample tracking.CourierSample) {
	if sample.Position.IsZero() {
		return
	}
	if sample.OrderID != "" && sample.OrderID != orderID {
		return
	}

	r.apply(gen, func(v *tracking.View) { v.Courier = &sample })
}

// apply runs mutate under the lock if gen is still the current activation
// and reports whether it did.
func (r *Reconciler) apply(gen uint64, mutate func(*tracking.View)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.generation != gen || r.closed {
		return false
	}
	mutate(&r.view)
	return true
}

func (r *Reconciler) isCurrent(gen uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generation == gen && !r.closed
}
