// Package keepalive schedules the background keystroke sequence that
// defeats idle and screen-lock timers.
//
// While active, the scheduler replays the configured macro sequence
// at uniformly random intervals drawn from a configured range, so
// the traffic does not look metronomic to the host. The random
// source is injected for deterministic tests.
package keepalive
