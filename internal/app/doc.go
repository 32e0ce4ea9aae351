// Package app wires the device together and runs the tick loop.
//
// The loop is single threaded. Every tick it samples the button,
// feeds the gesture classifier, dispatches at most one event, drives
// the LED and the keep-alive scheduler, and sleeps. All hardware is
// reached through the capability interfaces in internal/device, so
// the same loop runs against the USB gadget, Raspberry Pi GPIO, or
// the terminal simulator.
package app
