package gesture

import "time"

// Edge selects which button edge advances the click count for
// double-click detection.
type Edge uint8

const (
	// EdgePress counts clicks on press edges. Two rapid presses
	// trigger a double-click even if the first release is delayed,
	// which matches a human double-tap.
	EdgePress Edge = iota

	// EdgeRelease counts clicks on release edges, requiring full
	// press-release cycles.
	EdgeRelease
)

func (e Edge) String() string {
	if e == EdgeRelease {
		return "release"
	}
	return "press"
}

// Config holds the classifier timing thresholds.
type Config struct {
	// DoublePressGap is the maximum time between clicks of a
	// double-press, and the wait before a pending click resolves.
	DoublePressGap time.Duration

	// LongPressDuration is the hold time that triggers keep-alive.
	LongPressDuration time.Duration

	// ClickEdge selects press-edge or release-edge click counting.
	ClickEdge Edge
}

// Classifier turns a raw button level, sampled once per tick, into
// gesture events. The button is active-low: false means pressed.
//
// The per-tick checks run in a fixed order that resolves ties:
// keep-alive cancel, press edge, release edge, long-press,
// double-click timeout. A press during keep-alive always cancels and
// never counts as a click; long-press fires by polling the hold time
// so the action lands while the button is still held.
type Classifier struct {
	cfg Config

	lastLevel  bool
	pressStart time.Time // zero = no press being timed
	clickCount int
	lastClick  time.Time
	keepAlive  bool
}

// NewClassifier creates a classifier. The button is assumed released
// at startup.
func NewClassifier(cfg Config) *Classifier {
	return &Classifier{cfg: cfg, lastLevel: true}
}

// KeepAliveActive reports whether keep-alive mode owns the input.
func (c *Classifier) KeepAliveActive() bool {
	return c.keepAlive
}

// Feed consumes one level sample and returns at most one gesture.
// The second return is false when no gesture was produced this tick.
func (c *Classifier) Feed(level bool, now time.Time) (Event, bool) {
	pressEdge := !level && c.lastLevel
	releaseEdge := level && !c.lastLevel
	c.lastLevel = level

	// A press while keep-alive is active cancels it, and nothing
	// else: the press is not timed and never increments the click
	// count.
	if c.keepAlive && pressEdge {
		c.keepAlive = false
		c.pressStart = time.Time{}
		return Event{Type: EventKeepAliveCancelled}, true
	}

	if pressEdge {
		c.pressStart = now
		if c.cfg.ClickEdge == EdgePress {
			c.clickCount++
			c.lastClick = now
		}
		return Event{Type: EventPressStart}, true
	}

	if releaseEdge {
		if c.cfg.ClickEdge == EdgeRelease && !c.keepAlive {
			c.clickCount++
			c.lastClick = now
		}
		if c.pressStart.IsZero() {
			return Event{}, false
		}
		return Event{Type: EventRelease, Hold: now.Sub(c.pressStart)}, true
	}

	// Long-press is detected while the button is still held. Zeroing
	// pressStart prevents a re-trigger during the same hold.
	if !level && !c.keepAlive && !c.pressStart.IsZero() &&
		now.Sub(c.pressStart) >= c.cfg.LongPressDuration {
		c.keepAlive = true
		c.clickCount = 0
		c.pressStart = time.Time{}
		return Event{Type: EventLongPress}, true
	}

	// Once the gap elapses, two clicks resolve to a double-click and
	// anything else is silently discarded. There is no single-click
	// action.
	if c.clickCount > 0 && now.Sub(c.lastClick) > c.cfg.DoublePressGap {
		count := c.clickCount
		c.clickCount = 0
		if count == 2 && !c.keepAlive {
			return Event{Type: EventDoubleClick}, true
		}
	}

	return Event{}, false
}
