package keyer

import (
	"time"

	"github.com/bft-labs/morsekey/internal/app"
)

// State is the lifecycle state of a Keyer.
type State int

const (
	// StateIdle means the keyer accepts a new message.
	StateIdle State = iota
	// StateScheduling means a message is being encoded and planned.
	StateScheduling
	// StateKeying means a plan is being played.
	StateKeying
	// StateFailed means the last message was aborted.
	StateFailed
)

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

// StateChangeEvent is passed to EventHandler.OnStateChange.
type StateChangeEvent struct {
	Previous State
	Current  State
	Reason   string
}

// MessageSentEvent is passed to EventHandler.OnMessageSent.
type MessageSentEvent struct {
	RunID   string
	Message string
	Events  int
	Elapsed time.Duration
}

// MessageFailedEvent is passed to EventHandler.OnMessageFailed.
type MessageFailedEvent struct {
	RunID     string
	Message   string
	Delivered int
	Error     error
}

// EventHandler receives keyer notifications. Handlers run synchronously
// and should return quickly.
type EventHandler interface {
	OnStateChange(event StateChangeEvent)
	OnMessageSent(event MessageSentEvent)
	OnMessageFailed(event MessageFailedEvent)
}

// BaseEventHandler implements EventHandler with no-ops. Embed it to
// override only the callbacks you need.
type BaseEventHandler struct{}

func (BaseEventHandler) OnStateChange(StateChangeEvent)     {}
func (BaseEventHandler) OnMessageSent(MessageSentEvent)     {}
func (BaseEventHandler) OnMessageFailed(MessageFailedEvent) {}

// eventEmitterWrapper adapts EventHandler to the lifecycle emitter.
type eventEmitterWrapper struct {
	handler EventHandler
}

func (e *eventEmitterWrapper) OnStateChange(previous, current app.State, reason string) {
	if e.handler == nil {
		return
	}
	e.handler.OnStateChange(StateChangeEvent{
		Previous: convertState(previous),
		Current:  convertState(current),
		Reason:   reason,
	})
}

func (e *eventEmitterWrapper) onSent(ev MessageSentEvent) {
	if e.handler != nil {
		e.handler.OnMessageSent(ev)
	}
}

func (e *eventEmitterWrapper) onFailed(ev MessageFailedEvent) {
	if e.handler != nil {
		e.handler.OnMessageFailed(ev)
	}
}

func convertState(s app.State) State {
	switch s {
	case app.StateScheduling:
		return StateScheduling
	case app.StateKeying:
		return StateKeying
	case app.StateFailed:
		return StateFailed
	default:
		return StateIdle
	}
}
