// Package morsekey keys text as timed Morse code.
//
// Example usage:
//
//	cfg := morsekey.DefaultConfig()
//	cfg.Speed = speed.Spec{WPM: 20}
//	res, err := morsekey.Send(ctx, cfg, "CQ CQ", effector.NewConsole(os.Stdout))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For repeated sends, events and plugins use package keyer directly.
package morsekey

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bft-labs/morsekey/internal/cliconfig"
	"github.com/bft-labs/morsekey/pkg/codec"
	"github.com/bft-labs/morsekey/pkg/keyer"
	"github.com/bft-labs/morsekey/pkg/log"
	"github.com/bft-labs/morsekey/pkg/schedule"
	"github.com/bft-labs/morsekey/pkg/signal"
)

// Config holds the keyer settings.
type Config = keyer.Config

// Result describes one keyed message.
type Result = keyer.Result

// Effector receives ON and OFF events.
type Effector = schedule.Effector

// DefaultConfig returns a Config keying at one second per unit.
func DefaultConfig() Config {
	return Config{}
}

// Send keys message once on eff and blocks until it is done or ctx is
// canceled.
func Send(ctx context.Context, cfg Config, message string, eff Effector) (Result, error) {
	k, err := keyer.New(cfg,
		keyer.WithEffector(eff),
		keyer.WithLogger(log.NewZerologAdapterWithLogger(Logger())),
	)
	if err != nil {
		return Result{}, err
	}
	return k.Send(ctx, message)
}

// Encode returns the keying sequence of message, one entry per unit.
func Encode(message string) signal.Bits {
	return codec.EncodeBits(message)
}

// Decode converts morse text back to plain text.
func Decode(morse string) string {
	return codec.DecodeMorse(morse)
}

// Logger returns the package-level zerolog logger.
func Logger() zerolog.Logger {
	return cliconfig.Logger()
}
