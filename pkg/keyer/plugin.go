package keyer

import (
	"context"

	"github.com/bft-labs/morsekey/pkg/log"
	"github.com/bft-labs/morsekey/pkg/speed"
)

// Plugin extends a Keyer with background behavior such as config reloads.
type Plugin interface {
	// Name returns a short identifier used in logs.
	Name() string

	// Initialize is called by Start. The context is canceled by Stop.
	Initialize(ctx context.Context, cfg PluginConfig) error

	// Shutdown is called by Stop in reverse registration order.
	Shutdown(ctx context.Context) error
}

// PluginConfig is what a plugin gets from the keyer it is attached to.
type PluginConfig struct {
	Logger log.Logger

	// Speed is the speed in effect when the plugin was initialized.
	Speed speed.Spec

	// Reconfigure changes the speed used by the next message.
	Reconfigure func(speed.Spec) error
}
