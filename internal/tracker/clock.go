package tracker

import "time"

// Clock returns the current time. Every time-dependent rule takes its "now" from a Clock.
type Clock func() time.Time

// SystemClock reports the machine's local wall time.
func SystemClock() Clock {
	return time.Now
}

// LocalClock reports the wall time in loc, so calendar days are cut in that zone.
func LocalClock(loc *time.Location) Clock {
	if loc == nil {
		return SystemClock()
	}
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// FixedClock always returns t.
func FixedClock(t time.Time) Clock {
	return func() time.Time {
		return t
	}
}
