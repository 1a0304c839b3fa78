package schedule

import (
	"context"
	"sync/atomic"

	"github.com/bft-labs/morsekey/pkg/log"
	"github.com/bft-labs/morsekey/pkg/signal"
)

// Scheduler plays plans in real time. A Scheduler owns a single timeline:
// Run returns ErrSchedulerBusy while another Run is in progress. Use one
// Scheduler per concurrent message.
type Scheduler struct {
	clock  Clock
	logger log.Logger
	busy   atomic.Bool
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces the system clock, mostly for tests.
func WithClock(c Clock) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLogger sets the logger used for per-event debug output.
func WithLogger(l log.Logger) Option {
	return func(s *Scheduler) {
		s.logger = log.OrNoop(l)
	}
}

// New creates a Scheduler.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		clock:  SystemClock{},
		logger: log.NoopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run plays events against eff and returns the number of events delivered.
//
// Each event is delivered once its offset has elapsed since Run started, so
// time spent inside callbacks does not accumulate as drift. An error
// returned by eff aborts the run and is returned unchanged. When ctx is
// done, Run stops before the next event and returns ctx.Err().
func (s *Scheduler) Run(ctx context.Context, events []Event, eff Effector) (int, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return 0, ErrSchedulerBusy
	}
	defer s.busy.Store(false)

	if eff == nil {
		eff = Callbacks{}
	}

	start := s.clock.Now()
	for i, ev := range events {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if wait := ev.Offset - s.clock.Now().Sub(start); wait > 0 {
			if err := s.clock.Sleep(ctx, wait); err != nil {
				return i, err
			}
		}

		s.logger.Debug("keying event",
			log.Int("index", i),
			log.Stringer("state", ev.State),
			log.Duration("offset", ev.Offset),
			log.Duration("duration", ev.Duration),
			log.Bool("terminal", ev.Terminal),
		)

		var err error
		if ev.State == signal.On {
			err = eff.On(ev.Duration, ev.Offset)
		} else {
			err = eff.Off(ev.Duration, ev.Offset)
		}
		if err != nil {
			return i, err
		}
	}
	return len(events), nil
}
