package chatflow

import "time"

// Cancel stops a scheduled task if it has not fired yet.
type Cancel func()

// Scheduler defers work: the typing simulation before each bot prompt and the
// post-completion navigation handoff. Every scheduled task returns a handle so
// a later traveler action can cancel it instead of racing engine state.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Cancel
}

// TimerScheduler is the production implementation over time.AfterFunc.
type TimerScheduler struct{}

func (TimerScheduler) Schedule(d time.Duration, fn func()) Cancel {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// ImmediateScheduler runs tasks synchronously, collapsing the simulated
// delays. Used by tests and by callers that want prompt-per-request behavior.
type ImmediateScheduler struct{}

func (ImmediateScheduler) Schedule(_ time.Duration, fn func()) Cancel {
	fn()
	return func() {}
}
