// Package clock provides an injectable source of time so code that reads
// the wall clock stays testable.
package clock

import "time"

// Clocker is the minimal time source consumed by the rest of the codebase.
type Clocker interface {
	Now() time.Time
}

// TimeClocker reads the real system clock.
type TimeClocker struct{}

// New returns the production clock.
func New() *TimeClocker {
	return &TimeClocker{}
}

// Now reports the current wall-clock time.
func (*TimeClocker) Now() time.Time {
	return time.Now()
}
