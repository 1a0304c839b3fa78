package schedule

import "time"

// Effector performs the side effect of a keying transition. duration is how
// long the state lasts and offset is the event start relative to the
// beginning of the plan.
type Effector interface {
	On(duration, offset time.Duration) error
	Off(duration, offset time.Duration) error
}

// Func is a single effector callback.
type Func func(duration, offset time.Duration) error

// Callbacks adapts two functions to an Effector. A nil function is skipped.
type Callbacks struct {
	OnFunc  Func
	OffFunc Func
}

// On calls OnFunc if set.
func (c Callbacks) On(duration, offset time.Duration) error {
	if c.OnFunc == nil {
		return nil
	}
	return c.OnFunc(duration, offset)
}

// Off calls OffFunc if set.
func (c Callbacks) Off(duration, offset time.Duration) error {
	if c.OffFunc == nil {
		return nil
	}
	return c.OffFunc(duration, offset)
}

var _ Effector = Callbacks{}
