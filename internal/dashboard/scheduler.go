package dashboard

import "time"

// Timer is a handle to a pending callback
type Timer interface {
	// Stop cancels the callback and reports whether it was still pending
	Stop() bool
}

// Scheduler runs a callback once after a delay
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemScheduler struct{}

func (systemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemScheduler schedules callbacks on the wall clock
func SystemScheduler() Scheduler {
	return systemScheduler{}
}
