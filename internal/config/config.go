package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/keywedge/keywedge/internal/gesture"
	"github.com/keywedge/keywedge/internal/led"
)

// Backend names a hardware implementation.
type Backend string

const (
	// BackendGadget is the Linux USB gadget HID keyboard.
	BackendGadget Backend = "gadget"

	// BackendGPIO is BackendGadget with button and LED on Raspberry
	// Pi GPIO pins.
	BackendGPIO Backend = "gpio"

	// BackendSim is the terminal simulator.
	BackendSim Backend = "sim"
)

// Config is the run configuration. It is assembled once at startup
// and treated as immutable; the watcher delivers whole replacement
// snapshots, never in-place mutation.
type Config struct {
	// Gesture timing.
	DoublePressGap    time.Duration
	LongPressDuration time.Duration
	ClickEdge         gesture.Edge

	// Keep-alive interval bounds. Min == Max gives a fixed interval.
	KeepAliveMin time.Duration
	KeepAliveMax time.Duration

	// TickPeriod is the polling loop period.
	TickPeriod time.Duration

	// Feedback colors.
	MacroColor     led.Color
	KeepAliveColor led.Color
	CancelColor    led.Color
	LEDOrder       led.Order

	// Macro sources. Inline text wins over the file; a .lua file is
	// evaluated as a script.
	MacroText     string
	MacroFile     string
	KeepAliveText string
	KeepAliveFile string

	// Backend wiring.
	Backend   Backend
	HIDDevice string
	ButtonPin int
	LEDPins   [3]int

	LogLevel string
}

const (
	defaultMacroFile     = "macro.txt"
	defaultKeepAliveText = "{SPACE}{LEFT}"

	// FallbackMacroText is typed when the macro source cannot be
	// read at all.
	FallbackMacroText = "fallback-text"
)

// Default returns the built-in configuration, mirroring the original
// firmware's settings.
func Default() Config {
	return Config{
		DoublePressGap:    500 * time.Millisecond,
		LongPressDuration: time.Second,
		ClickEdge:         gesture.EdgePress,
		KeepAliveMin:      800 * time.Millisecond,
		KeepAliveMax:      2 * time.Second,
		TickPeriod:        10 * time.Millisecond,

		MacroColor:     led.Color{R: 255, B: 255}, // purple
		KeepAliveColor: led.Color{R: 255, G: 191}, // amber
		CancelColor:    led.Color{R: 255},         // red
		LEDOrder:       led.OrderGRB,

		// KeepAliveText stays empty here; ResolveMacroTexts falls
		// back to defaultKeepAliveText only when no file is set
		// either, so keep_alive_file remains reachable.
		MacroFile: defaultMacroFile,

		Backend:   BackendGadget,
		HIDDevice: "/dev/hidg0",
		ButtonPin: 17,
		LEDPins:   [3]int{12, 13, 18},

		LogLevel: "info",
	}
}

// parseColor accepts "R,G,B" decimal triples or "#RRGGBB".
func parseColor(s string) (led.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return led.Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return led.Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		return led.Color{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
		}, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return led.Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return led.Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		ch[i] = uint8(v)
	}
	return led.Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// parseEdge maps the click_edge setting to a gesture.Edge.
func parseEdge(s string) (gesture.Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "press":
		return gesture.EdgePress, nil
	case "release":
		return gesture.EdgeRelease, nil
	default:
		return 0, fmt.Errorf("%w: click_edge %q", ErrBadValue, s)
	}
}

// validate enforces the cross-field constraints. Load-time only;
// nothing validates at tick time.
func (c Config) validate() error {
	if c.TickPeriod <= 0 {
		return fmt.Errorf("%w: tick_period must be positive", ErrBadValue)
	}
	if c.DoublePressGap <= 0 || c.LongPressDuration <= 0 {
		return fmt.Errorf("%w: gesture timings must be positive", ErrBadValue)
	}
	if c.KeepAliveMin <= 0 || c.KeepAliveMax < c.KeepAliveMin {
		return fmt.Errorf("%w: keep-alive interval [%v, %v]", ErrBadValue, c.KeepAliveMin, c.KeepAliveMax)
	}
	switch c.Backend {
	case BackendGadget, BackendGPIO, BackendSim:
	default:
		return fmt.Errorf("%w: backend %q", ErrBadValue, c.Backend)
	}
	return nil
}
