// Package kernel holds the value objects shared by the order and tracking
// models. Point is the only one: a validated latitude/longitude pair whose zero
// value means "unknown position".
package kernel
