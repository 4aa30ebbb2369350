// Package order holds the read-only order snapshot the tracking view works
// from. Orders are persisted and moved through their lifecycle by the order
// service; nothing here mutates them.
//
// The snapshot exposes the three fields the map needs (AddressFrom,
// AddressTo and CourierID) alongside the rest of the record for listing.
package order
