package effector

import (
	"sync"
	"time"

	"github.com/bft-labs/morsekey/pkg/schedule"
	"github.com/bft-labs/morsekey/pkg/signal"
)

// Call is one recorded effector invocation.
type Call struct {
	State    signal.State
	Duration time.Duration
	Offset   time.Duration
	At       time.Time
}

// Recorder stores every call it receives. It is safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
	now   func() time.Time
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{now: time.Now}
}

func (r *Recorder) On(duration, offset time.Duration) error {
	r.add(signal.On, duration, offset)
	return nil
}

func (r *Recorder) Off(duration, offset time.Duration) error {
	r.add(signal.Off, duration, offset)
	return nil
}

func (r *Recorder) add(s signal.State, duration, offset time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{State: s, Duration: duration, Offset: offset, At: r.now()})
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

var _ schedule.Effector = (*Recorder)(nil)
