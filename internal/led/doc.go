// Package led renders the gadget's visual feedback: a non-blocking
// breathing glow while keep-alive runs, a flash after macro
// playback, and a pulse when keep-alive is cancelled.
package led
