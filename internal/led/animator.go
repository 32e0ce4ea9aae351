package led

import "time"

const (
	// breatheStep is the brightness change per tick.
	breatheStep = 2

	// breatheMax is the breathing brightness ceiling. 127/255 keeps
	// the idle glow at half intensity.
	breatheMax = 127

	flashSteps     = 20
	flashMaxLevel  = 204 // 80% of full scale
	flashStepDelay = 25 * time.Millisecond

	pulseCycles   = 2
	pulseOnDelay  = 150 * time.Millisecond
	pulseOffDelay = 150 * time.Millisecond
)

// Pixel is the output the animator drives.
type Pixel interface {
	Set(c Color) error
}

// Sleeper provides the animator's delays. device.Clock satisfies it.
type Sleeper interface {
	Sleep(d time.Duration)
}

// Animator renders the three LED effects. Breathe is a non-blocking
// per-tick step; Flash and Pulse block the calling goroutine for
// their full duration, which is part of the engine's contract: no
// button sampling happens while they run.
type Animator struct {
	pix   Pixel
	sleep Sleeper

	// Breathing state, the only state that persists across ticks.
	brightness int
	direction  int
}

// NewAnimator creates an animator driving pix, sleeping through s.
func NewAnimator(pix Pixel, s Sleeper) *Animator {
	return &Animator{pix: pix, sleep: s, direction: 1}
}

// Breathe advances the triangle-wave brightness one step and applies
// it to the color. Call once per tick while keep-alive is active.
func (a *Animator) Breathe(c Color) error {
	a.brightness += a.direction * breatheStep
	if a.brightness >= breatheMax {
		a.brightness = breatheMax
		a.direction = -1
	} else if a.brightness <= 0 {
		a.brightness = 0
		a.direction = 1
	}
	return a.pix.Set(c.Scale(uint8(a.brightness)))
}

// Flash ramps the color up to 80% over 20 steps and back down, then
// turns the LED off. Blocking; used after macro playback.
func (a *Animator) Flash(c Color) error {
	for i := 0; i < flashSteps; i++ {
		if err := a.pix.Set(c.Scale(uint8(i * flashMaxLevel / flashSteps))); err != nil {
			return err
		}
		a.sleep.Sleep(flashStepDelay)
	}
	for i := flashSteps; i >= 0; i-- {
		if err := a.pix.Set(c.Scale(uint8(i * flashMaxLevel / flashSteps))); err != nil {
			return err
		}
		a.sleep.Sleep(flashStepDelay)
	}
	return a.Off()
}

// Pulse blinks the color at full brightness twice. Blocking; used
// when keep-alive is cancelled.
func (a *Animator) Pulse(c Color) error {
	for i := 0; i < pulseCycles; i++ {
		if err := a.pix.Set(c); err != nil {
			return err
		}
		a.sleep.Sleep(pulseOnDelay)
		if err := a.Off(); err != nil {
			return err
		}
		a.sleep.Sleep(pulseOffDelay)
	}
	return nil
}

// Off turns the LED off. The breathing state is left as-is; the next
// keep-alive session resumes the wave where it stopped.
func (a *Animator) Off() error {
	return a.pix.Set(Color{})
}
