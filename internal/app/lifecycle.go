package app

import (
	"context"
	"sync"
	"time"

	"github.com/bft-labs/morsekey/internal/domain"
	"github.com/bft-labs/morsekey/pkg/log"
)

// ShutdownTimeout is the maximum time Stop waits for an in-flight message.
const ShutdownTimeout = 5 * time.Second

// State is the lifecycle state of a keyer timeline.
type State int

const (
	// StateIdle accepts a new message.
	StateIdle State = iota
	// StateScheduling is encoding the message and building its plan.
	StateScheduling
	// StateKeying is playing the plan against the effector.
	StateKeying
	// StateFailed means the last message aborted; a new one may be sent.
	StateFailed
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateScheduling:
		return "Scheduling"
	case StateKeying:
		return "Keying"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Lifecycle guards the single timeline of a keyer.
type Lifecycle struct {
	mu           sync.RWMutex
	state        State
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	logger       log.Logger
	eventEmitter EventEmitter
}

// EventEmitter is called when lifecycle state changes.
type EventEmitter interface {
	OnStateChange(previous, current State, reason string)
}

// NewLifecycle creates a lifecycle in StateIdle.
func NewLifecycle(logger log.Logger, emitter EventEmitter) *Lifecycle {
	return &Lifecycle{
		state:        StateIdle,
		logger:       log.OrNoop(logger),
		eventEmitter: emitter,
	}
}

// State returns the current lifecycle state.
func (l *Lifecycle) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Acquire claims the timeline for a new message. It moves Idle or Failed
// to Scheduling, stores cancel and registers one worker in a single step,
// or returns ErrBusy.
func (l *Lifecycle) Acquire(reason string, cancel context.CancelFunc) error {
	l.mu.Lock()
	if l.state != StateIdle && l.state != StateFailed {
		l.mu.Unlock()
		return domain.ErrBusy
	}
	prev := l.state
	l.state = StateScheduling
	l.cancel = cancel
	l.wg.Add(1)
	l.mu.Unlock()

	l.emit(prev, StateScheduling, reason)
	return nil
}

// Release ends the message started by Acquire, moving to Idle on success
// or Failed otherwise, and unregisters the worker.
func (l *Lifecycle) Release(failed bool, reason string) {
	target := StateIdle
	if failed {
		target = StateFailed
	}
	if err := l.TransitionTo(target, reason); err != nil {
		l.logger.Warn("unexpected release", log.Err(err))
	}
	l.SetCancel(nil)
	l.wg.Done()
}

// TransitionTo attempts to transition to a new state.
// Returns an error if the transition is not valid.
func (l *Lifecycle) TransitionTo(newState State, reason string) error {
	l.mu.Lock()
	oldState := l.state

	switch oldState {
	case StateIdle, StateFailed:
		if newState != StateScheduling {
			l.mu.Unlock()
			return domain.ErrIdle
		}
	case StateScheduling:
		if newState != StateKeying && newState != StateIdle && newState != StateFailed {
			l.mu.Unlock()
			return domain.ErrBusy
		}
	case StateKeying:
		if newState != StateIdle && newState != StateFailed {
			l.mu.Unlock()
			return domain.ErrBusy
		}
	}

	l.state = newState
	l.mu.Unlock()

	l.emit(oldState, newState, reason)
	return nil
}

func (l *Lifecycle) emit(oldState, newState State, reason string) {
	if l.eventEmitter != nil {
		l.eventEmitter.OnStateChange(oldState, newState, reason)
	}
	l.logger.Debug("state transition",
		log.String("from", oldState.String()),
		log.String("to", newState.String()),
		log.String("reason", reason),
	)
}

// Busy reports whether a message is in flight.
func (l *Lifecycle) Busy() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state == StateScheduling || l.state == StateKeying
}

// SetCancel stores the cancel function of the in-flight message.
func (l *Lifecycle) SetCancel(cancel context.CancelFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cancel = cancel
}

// Cancel stops the in-flight message at its next event boundary.
func (l *Lifecycle) Cancel() {
	l.mu.Lock()
	cancel := l.cancel
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// WaitWithTimeout waits for the in-flight message to finish.
// Returns ErrShutdownTimeout if the timeout expires.
func (l *Lifecycle) WaitWithTimeout(timeout time.Duration) error {
	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		l.logger.Warn("shutdown timeout, message still keying",
			log.Duration("timeout", timeout),
		)
		return domain.ErrShutdownTimeout
	}
}
