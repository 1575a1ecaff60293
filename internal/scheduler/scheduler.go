package scheduler

import "time"

// Timer - a pending one-shot callback. Stop reports whether it prevented the call.
type Timer interface {
	Stop() bool
}

type Scheduler interface {
	After(delay time.Duration, fn func()) Timer
}

type runtimeScheduler struct{}

// New - scheduler backed by the runtime timer heap, one timer per call.
func New() Scheduler {
	return runtimeScheduler{}
}

func (runtimeScheduler) After(delay time.Duration, fn func()) Timer {
	return time.AfterFunc(delay, fn)
}
