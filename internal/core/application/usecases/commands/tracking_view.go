// Package commands contains operations that change state: the tracking
// selection held by this process, or data owned by the platform services.
// Every command is built by its constructor and checked with a
// ConstructorGuard before its handler acts on it.
package commands

// TrackingView is the mounted tracking view the selection commands drive.
type TrackingView interface {
	Select(orderID, credential string) error
	// SelectedOrderID is the order the view tracks, or "" when idle.
	SelectedOrderID() string
}
