package clock

import "time"

// Clock is the time source for log lines that record when a user acted
type Clock interface {
	Now() time.Time
}

// System reads the wall clock
type System struct{}

// New returns the system clock
func New() System {
	return System{}
}

// Now returns the current local time
func (System) Now() time.Time {
	return time.Now()
}
