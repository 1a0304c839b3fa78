// Package led keys a GPIO output pin, typically wired to an LED or a
// transmitter key line.
package led

import (
	"fmt"
	"time"

	"github.com/davecheney/gpio"

	"github.com/bft-labs/morsekey/pkg/schedule"
)

// DefaultPin is the output pin used when none is configured.
const DefaultPin = 13

// Pin is the subset of gpio.Pin used by LED.
type Pin interface {
	Set()
	Clear()
	Err() error
	Close() error
}

// LED drives a pin high while the signal is ON.
type LED struct {
	pin Pin
}

// Open exports GPIO pin n as an output and returns an LED driving it. The
// pin starts low.
func Open(n int) (*LED, error) {
	p, err := gpio.OpenPin(n, gpio.ModeOutput)
	if err != nil {
		return nil, fmt.Errorf("open gpio pin %d: %w", n, err)
	}
	return New(p), nil
}

// New wraps an already opened pin and drives it low.
func New(p Pin) *LED {
	p.Clear()
	return &LED{pin: p}
}

func (l *LED) On(duration, offset time.Duration) error {
	l.pin.Set()
	return l.pin.Err()
}

func (l *LED) Off(duration, offset time.Duration) error {
	l.pin.Clear()
	return l.pin.Err()
}

// Close drives the pin low and releases it.
func (l *LED) Close() error {
	l.pin.Clear()
	return l.pin.Close()
}

var _ schedule.Effector = (*LED)(nil)
