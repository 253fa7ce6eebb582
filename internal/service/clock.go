package service

import "time"

// Clock supplies the current time. Services take it as a dependency so the
// attempt timing rules can be exercised deterministically.
type Clock func() time.Time

func SystemClock() Clock {
	return func() time.Time { return time.Now().UTC() }
}
