// Package gpio provides the button and RGB LED on Raspberry Pi
// GPIO, for builds where the gadget runs on a Pi wired like the
// original hardware: a momentary button against ground on a pull-up
// input, and an LED on three PWM-capable pins.
package gpio

import (
	"fmt"

	rpio "github.com/stianeikeland/go-rpio/v4"

	"github.com/keywedge/keywedge/internal/led"
)

// pwmFreq is the PWM base frequency per channel. 19.2MHz / cycle
// keeps flicker well above visibility.
const pwmFreq = 76800

// pwmCycle is the duty cycle resolution, matched to 8-bit color.
const pwmCycle = 255

// Open maps the GPIO register range. Call once before creating
// buttons or pixels; pair with Close at shutdown.
func Open() error {
	if err := rpio.Open(); err != nil {
		return fmt.Errorf("gpio: open: %w", err)
	}
	return nil
}

// Close unmaps the GPIO register range.
func Close() error {
	return rpio.Close()
}

// Button reads a momentary button wired between a GPIO pin and
// ground. The internal pull-up makes the level active-low.
type Button struct {
	pin rpio.Pin
}

// NewButton configures the pin as a pulled-up input.
func NewButton(pin int) *Button {
	p := rpio.Pin(pin)
	p.Input()
	p.PullUp()
	return &Button{pin: p}
}

// Read returns the raw level: true released, false pressed.
func (b *Button) Read() bool {
	return b.pin.Read() == rpio.High
}

// Pixel drives an RGB LED on three PWM pins. pins are given in the
// LED's wire order; order maps logical RGB onto them.
type Pixel struct {
	pins  [3]rpio.Pin
	order led.Order
}

// NewPixel configures the three pins for PWM output. The pins must
// be PWM-capable (12, 13, 18, 19 on a Pi).
func NewPixel(pins [3]int, order led.Order) *Pixel {
	px := &Pixel{order: order}
	for i, n := range pins {
		p := rpio.Pin(n)
		p.Mode(rpio.Pwm)
		p.Freq(pwmFreq)
		p.DutyCycle(0, pwmCycle)
		px.pins[i] = p
	}
	return px
}

// Set applies the color as per-channel duty cycles.
func (p *Pixel) Set(c led.Color) error {
	w := p.order.Apply(c)
	for i, pin := range p.pins {
		pin.DutyCycle(uint32(w[i]), pwmCycle)
	}
	return nil
}

// Close turns the LED off.
func (p *Pixel) Close() error {
	return p.Set(led.Color{})
}
