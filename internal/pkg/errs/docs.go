// Package errs provides the error types shared by the tracking view and the
// platform clients.
//
// Every type pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ...) with
// a struct that carries the details and unwraps to that sentinel, so callers
// classify with errors.Is and inspect with errors.As:
//
//	_, err := orders.Get(ctx, "42", token)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // the order service does not know order 42
//	}
//
// Constructors come in two flavours, with and without a cause.
package errs
