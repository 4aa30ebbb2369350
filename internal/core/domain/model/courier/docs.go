// Package courier holds read-only views of the courier registry and of the
// analytics service's courier statistics.
package courier
