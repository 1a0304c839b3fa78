package effector

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bft-labs/morsekey/pkg/schedule"
)

// Console writes a human-readable line for every transition.
type Console struct {
	w io.Writer
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) On(duration, offset time.Duration) error {
	_, err := fmt.Fprintf(c.w, "ON  %-10s @ %s\n", duration, offset)
	return err
}

func (c *Console) Off(duration, offset time.Duration) error {
	_, err := fmt.Fprintf(c.w, "OFF %-10s @ %s\n", duration, offset)
	return err
}

// Bits writes '1' for every ON unit and '0' for every OFF unit as the
// message is keyed.
type Bits struct {
	w    io.Writer
	unit time.Duration
}

// NewBits returns a Bits effector for the given unit duration.
func NewBits(w io.Writer, unit time.Duration) *Bits {
	return &Bits{w: w, unit: unit}
}

// SetUnit changes the unit used to count bits. Call it between messages.
func (b *Bits) SetUnit(unit time.Duration) {
	b.unit = unit
}

func (b *Bits) On(duration, offset time.Duration) error {
	return b.write('1', duration)
}

func (b *Bits) Off(duration, offset time.Duration) error {
	return b.write('0', duration)
}

func (b *Bits) write(c byte, duration time.Duration) error {
	if b.unit <= 0 || duration <= 0 {
		return nil
	}
	n := int((duration + b.unit/2) / b.unit)
	_, err := io.WriteString(b.w, strings.Repeat(string(c), n))
	return err
}

var (
	_ schedule.Effector = (*Console)(nil)
	_ schedule.Effector = (*Bits)(nil)
)
