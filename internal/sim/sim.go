// Package sim runs the gadget against a terminal instead of
// hardware, for development without a flashed device.
//
// The space bar toggles the button level (a terminal cannot report
// key-up, so press and release are two taps), the LED renders as a
// colored swatch, and injected keystrokes append to an on-screen
// transcript instead of going to a host.
package sim

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/keywedge/keywedge/internal/key"
	"github.com/keywedge/keywedge/internal/led"
)

const transcriptLines = 16

// Device is the simulated hardware. It implements the engine's
// Button and Pixel capabilities and the macro Sink.
type Device struct {
	screen tcell.Screen

	mu         sync.Mutex
	pressed    bool
	color      led.Color
	transcript []string
	line       strings.Builder

	done chan struct{}
	once sync.Once
}

// New creates a simulator on a real terminal screen.
func New() (*Device, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("sim: create screen: %w", err)
	}
	return NewWithScreen(screen)
}

// NewWithScreen creates a simulator on the given screen. Tests pass
// a tcell simulation screen.
func NewWithScreen(screen tcell.Screen) (*Device, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("sim: init screen: %w", err)
	}
	d := &Device{screen: screen, done: make(chan struct{})}
	d.draw()
	go d.poll()
	return d, nil
}

// Done is closed when the user quits the simulator.
func (d *Device) Done() <-chan struct{} {
	return d.done
}

// Close shuts the screen down.
func (d *Device) Close() error {
	d.once.Do(func() { close(d.done) })
	d.screen.Fini()
	return nil
}

// Read implements the button capability: true released, false
// pressed, matching the hardware's active-low level.
func (d *Device) Read() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.pressed
}

// Set implements the pixel capability.
func (d *Device) Set(c led.Color) error {
	d.mu.Lock()
	d.color = c
	d.mu.Unlock()
	d.draw()
	return nil
}

// Text implements the sink capability for literal text.
func (d *Device) Text(s string) error {
	d.mu.Lock()
	for _, r := range s {
		if r == '\n' {
			d.flushLineLocked()
			continue
		}
		d.line.WriteRune(r)
	}
	d.mu.Unlock()
	d.draw()
	return nil
}

// Key implements the sink capability for keystrokes.
func (d *Device) Key(mods key.Modifier, k key.Key, r rune) error {
	name := k.String()
	if k == key.KeyRune {
		name = string(r)
	}
	if !mods.IsEmpty() {
		name = mods.String() + "+" + name
	}

	d.mu.Lock()
	switch {
	case k == key.KeyEnter && mods.IsEmpty():
		d.flushLineLocked()
	default:
		d.line.WriteString("<" + name + ">")
	}
	d.mu.Unlock()
	d.draw()
	return nil
}

// poll feeds terminal events into the simulated button.
func (d *Device) poll() {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape,
				ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				d.once.Do(func() { close(d.done) })
				return
			case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
				d.mu.Lock()
				d.pressed = !d.pressed
				d.mu.Unlock()
				d.draw()
			}
		case *tcell.EventResize:
			d.screen.Sync()
			d.draw()
		}
	}
}

func (d *Device) flushLineLocked() {
	d.transcript = append(d.transcript, d.line.String())
	if len(d.transcript) > transcriptLines {
		d.transcript = d.transcript[len(d.transcript)-transcriptLines:]
	}
	d.line.Reset()
}

func (d *Device) draw() {
	d.mu.Lock()
	pressed := d.pressed
	color := d.color
	lines := append([]string(nil), d.transcript...)
	lines = append(lines, d.line.String())
	d.mu.Unlock()

	d.screen.Clear()
	putText(d.screen, 0, 0, "keywedge simulator — space: button, q: quit", tcell.StyleDefault.Bold(true))

	state := "released"
	if pressed {
		state = "PRESSED"
	}
	putText(d.screen, 0, 1, "button: "+state, tcell.StyleDefault)

	swatch := tcell.StyleDefault.Background(
		tcell.NewRGBColor(int32(color.R), int32(color.G), int32(color.B)))
	for x := 0; x < 8; x++ {
		d.screen.SetContent(x, 2, ' ', nil, swatch)
	}
	putText(d.screen, 10, 2, "led "+color.String(), tcell.StyleDefault)

	putText(d.screen, 0, 4, "typed:", tcell.StyleDefault.Underline(true))
	for i, line := range lines {
		putText(d.screen, 0, 5+i, line, tcell.StyleDefault)
	}
	d.screen.Show()
}

func putText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
