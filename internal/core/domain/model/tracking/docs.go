// Package tracking models what a tracking view displays: an order snapshot,
// up to two geocoded addresses and the latest courier sample, plus the phase
// the view is in.
//
// The model is passive. internal/core/application/reconciler owns a View and
// decides when each slice of it changes.
package tracking
