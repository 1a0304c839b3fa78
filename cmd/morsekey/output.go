package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bft-labs/morsekey/internal/cliconfig"
	"github.com/bft-labs/morsekey/pkg/effector"
	"github.com/bft-labs/morsekey/pkg/effector/audio"
	"github.com/bft-labs/morsekey/pkg/effector/led"
	"github.com/bft-labs/morsekey/pkg/schedule"
)

// outputs is the set of effectors selected by --output.
type outputs struct {
	effector schedule.Effector
	bits     *effector.Bits
	closers  []io.Closer
}

func openOutputs(cfg cliconfig.Config, unit time.Duration, w io.Writer) (*outputs, error) {
	o := &outputs{}
	var multi effector.Multi

	for _, name := range cfg.Outputs() {
		switch name {
		case cliconfig.OutputConsole:
			multi = append(multi, effector.NewConsole(w))
		case cliconfig.OutputBits:
			o.bits = effector.NewBits(w, unit)
			multi = append(multi, o.bits)
		case cliconfig.OutputLED:
			l, err := led.Open(cfg.PinOut)
			if err != nil {
				o.Close()
				return nil, err
			}
			multi = append(multi, l)
			o.closers = append(o.closers, l)
		case cliconfig.OutputSound:
			t, err := audio.New(cfg.Frequency)
			if err != nil {
				o.Close()
				return nil, err
			}
			multi = append(multi, t)
			o.closers = append(o.closers, t)
		case cliconfig.OutputNone:
		default:
			o.Close()
			return nil, fmt.Errorf("unknown output %q", name)
		}
	}

	if len(multi) == 1 {
		o.effector = multi[0]
	} else {
		o.effector = multi
	}
	return o, nil
}

// setUnit keeps the bits output in step with a reconfigured speed.
func (o *outputs) setUnit(unit time.Duration) {
	if o.bits != nil {
		o.bits.SetUnit(unit)
	}
}

// Close releases devices in reverse order.
func (o *outputs) Close() error {
	var errs []error
	for i := len(o.closers) - 1; i >= 0; i-- {
		if err := o.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	o.closers = nil
	return errors.Join(errs...)
}
