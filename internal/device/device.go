// Package device defines the hardware capabilities the engine runs
// against, and the real system clock.
//
// The core never touches hardware directly: it samples a Button,
// reads a Clock, sets a Pixel, and emits keystrokes through a
// macro.Sink. Backends (USB gadget, GPIO, terminal simulator)
// provide concrete implementations; tests provide fakes.
package device

import "github.com/keywedge/keywedge/internal/led"

// Button samples the raw button level. The level is active-low:
// false means pressed. Reads must be cheap, they happen every tick.
type Button interface {
	// Read returns the current level.
	Read() bool
}

// Pixel sets the RGB feedback LED. Implementations apply the
// device's native channel order; the color is always logical RGB.
type Pixel interface {
	// Set drives the LED to the given color immediately.
	Set(c led.Color) error

	// Close releases the underlying device.
	Close() error
}
