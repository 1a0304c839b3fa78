// Package schedule turns run-length encoded keying into timed events and
// plays them against an [Effector].
//
// [Build] is pure: it validates the runs and returns an immutable, totally
// ordered plan in which every event starts exactly where the previous one
// ends. A zero-length terminal event of the opposite state closes the plan
// so the final transition is always observed.
//
// [Scheduler.Run] walks the plan on the calling goroutine. Before each event
// it sleeps until the event's offset from the start of the run, then calls
// the effector. Events are never skipped, reordered or delivered early, and
// callbacks for one plan never overlap. Cancellation through the context is
// honored between events only.
package schedule
