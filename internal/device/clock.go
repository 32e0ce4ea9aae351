package device

import "time"

// Clock provides monotonic time reads and delays. The engine only
// suspends through Clock.Sleep, so tests can substitute a synthetic
// clock and run timing scenarios instantly.
type Clock interface {
	// Now returns the current time. The monotonic reading matters;
	// the wall value does not.
	Now() time.Time

	// Sleep blocks for the given duration.
	Sleep(d time.Duration)
}

// SystemClock is the real clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep calls time.Sleep.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }
