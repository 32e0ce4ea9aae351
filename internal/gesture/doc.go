// Package gesture classifies a single noisy button level into
// click, double-click, long-hold and cancel gestures.
//
// The classifier is fed one sample per tick of the polling loop and
// emits at most one Event per tick. It has no error states: level
// bouncing is treated as legitimate edges, with the tick period
// acting as the implicit debounce window (the hardware pull-up does
// the rest).
package gesture
