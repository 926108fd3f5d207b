package domain

import "time"

// TimestampLayout is the canonical format of item and history timestamps
const TimestampLayout = "2006-01-02 15:04:05"

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

// Now returns the current local time
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant
type FixedClock struct {
	T time.Time
}

// Now returns the fixed instant
func (c FixedClock) Now() time.Time {
	return c.T
}

// FormatTimestamp renders t in local time using TimestampLayout
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}
