package keyer

import (
	"github.com/bft-labs/morsekey/pkg/log"
	"github.com/bft-labs/morsekey/pkg/schedule"
)

// Option configures optional behavior of a Keyer.
type Option func(*options)

type options struct {
	logger       log.Logger
	effector     schedule.Effector
	clock        schedule.Clock
	eventHandler EventHandler
	plugins      []Plugin
}

func defaultOptions() options {
	return options{
		logger:   log.NoopLogger{},
		effector: schedule.Callbacks{},
		clock:    schedule.SystemClock{},
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = log.OrNoop(logger)
	}
}

// WithEffector sets the device that receives ON and OFF events.
// Without one, plans are timed but drive nothing.
func WithEffector(eff schedule.Effector) Option {
	return func(o *options) {
		if eff != nil {
			o.effector = eff
		}
	}
}

// WithClock replaces the system clock.
func WithClock(c schedule.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithEventHandler sets a handler for keyer events.
// Events are called synchronously from the goroutine calling Send.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}

// WithPlugin registers a plugin to be initialized when the Keyer starts.
// Plugins are initialized in registration order and shut down in reverse order.
func WithPlugin(plugin Plugin) Option {
	return func(o *options) {
		o.plugins = append(o.plugins, plugin)
	}
}
