package domain

import "errors"

// Lifecycle errors returned by the keyer. Check them with errors.Is.
var (
	// ErrBusy is returned when a message is sent while another one is
	// still being keyed on the same keyer.
	ErrBusy = errors.New("morsekey: keyer busy")

	// ErrIdle is returned when an operation needs a message in flight.
	ErrIdle = errors.New("morsekey: keyer idle")

	// ErrAlreadyStarted is returned when Start is called on a started keyer.
	ErrAlreadyStarted = errors.New("morsekey: keyer already started")

	// ErrNotStarted is returned when Stop is called before Start.
	ErrNotStarted = errors.New("morsekey: keyer not started")

	// ErrShutdownTimeout is returned when an in-flight message does not stop
	// within the shutdown timeout.
	ErrShutdownTimeout = errors.New("morsekey: shutdown timeout")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("morsekey: invalid configuration")
)
