package effector

import (
	"time"

	"github.com/bft-labs/morsekey/pkg/schedule"
)

// Multi calls several effectors in order and stops at the first error.
type Multi []schedule.Effector

func (m Multi) On(duration, offset time.Duration) error {
	for _, e := range m {
		if err := e.On(duration, offset); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) Off(duration, offset time.Duration) error {
	for _, e := range m {
		if err := e.Off(duration, offset); err != nil {
			return err
		}
	}
	return nil
}

var _ schedule.Effector = Multi(nil)
