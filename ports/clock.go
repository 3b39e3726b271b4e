package ports

import "time"

// Clock supplies the current protocol time in milliseconds since epoch.
type Clock interface {
	Now() int64
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() int64 {
	return time.Now().UnixMilli()
}

// FixedClock always returns the same instant. Useful in tests.
type FixedClock int64

func (c FixedClock) Now() int64 {
	return int64(c)
}
