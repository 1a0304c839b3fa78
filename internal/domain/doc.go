// Package domain holds the error values shared by the keyer internals and
// its public API.
//
// It has no dependencies on devices or logging.
package domain
