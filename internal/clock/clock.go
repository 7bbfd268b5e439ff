// Package clock abstracts time so that the hover threshold and the
// filesystem debounce can be driven deterministically in tests.
package clock

import "time"

// Clock provides the current time and single-shot timers
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a handle to a pending AfterFunc call
type Timer interface {
	// Stop prevents the call from firing. It reports whether the timer
	// was still pending.
	Stop() bool
	// Reset reschedules the call d from now. It reports whether the
	// timer was still pending.
	Reset(d time.Duration) bool
}

// Real returns a Clock backed by the time package
func Real() Clock {
	return realClock{}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
