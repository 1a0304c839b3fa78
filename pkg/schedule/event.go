package schedule

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/bft-labs/morsekey/pkg/rle"
	"github.com/bft-labs/morsekey/pkg/signal"
)

var (
	// ErrMalformedBitSequence is returned by Build when runs do not start ON,
	// do not alternate, or contain a run shorter than one unit.
	ErrMalformedBitSequence = errors.New("schedule: malformed bit sequence")

	// ErrInvalidUnit is returned by Build for a non-positive unit duration.
	ErrInvalidUnit = errors.New("schedule: unit duration must be positive")

	// ErrSchedulerBusy is returned by Run when the scheduler is already
	// playing another plan.
	ErrSchedulerBusy = errors.New("schedule: scheduler busy")
)

// Event is one keying interval of a plan.
type Event struct {
	State    signal.State  `json:"state" yaml:"state" toml:"state"`
	Offset   time.Duration `json:"offset" yaml:"offset" toml:"offset"`
	Duration time.Duration `json:"duration" yaml:"duration" toml:"duration"`
	Units    int           `json:"units" yaml:"units" toml:"units"`
	Terminal bool          `json:"terminal,omitempty" yaml:"terminal,omitempty" toml:"terminal,omitempty"`
}

// End returns the offset at which the event finishes.
func (e Event) End() time.Duration {
	return e.Offset + e.Duration
}

// String is used in debug output.
func (e Event) String() string {
	return fmt.Sprintf("%s %s @ %s", e.State, e.Duration, e.Offset)
}

// Build converts runs into a contiguous plan. The first run must be ON and
// runs must alternate. An empty run list yields an empty plan.
func Build(runs []rle.Run, unit time.Duration) ([]Event, error) {
	if unit <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidUnit, unit)
	}
	if len(runs) == 0 {
		return nil, nil
	}

	events := make([]Event, 0, len(runs)+1)
	want := signal.On
	cursor := 0
	limit := int64(math.MaxInt64 / unit)
	for i, r := range runs {
		if r.State != want {
			return nil, fmt.Errorf("%w: run %d is %s, want %s", ErrMalformedBitSequence, i, r.State, want)
		}
		if r.Length < 1 {
			return nil, fmt.Errorf("%w: run %d has length %d", ErrMalformedBitSequence, i, r.Length)
		}
		if int64(r.Length) > limit-int64(cursor) {
			return nil, fmt.Errorf("%w: unit %s overflows plan at run %d", ErrInvalidUnit, unit, i)
		}
		events = append(events, Event{
			State:    r.State,
			Offset:   time.Duration(cursor) * unit,
			Duration: time.Duration(r.Length) * unit,
			Units:    r.Length,
		})
		cursor += r.Length
		want = want.Opposite()
	}

	return append(events, Event{
		State:    want,
		Offset:   time.Duration(cursor) * unit,
		Terminal: true,
	}), nil
}

// Total returns the wall-clock length of a plan.
func Total(events []Event) time.Duration {
	if len(events) == 0 {
		return 0
	}
	return events[len(events)-1].End()
}
