package tetris

import "time"

// Clock supplies the current time for gravity. Durations are measured
// with Time.Sub, so the monotonic reading of time.Now is used when present.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
