package led

import (
	"testing"
	"time"
)

type fakePixel struct {
	colors []Color
}

func (p *fakePixel) Set(c Color) error {
	p.colors = append(p.colors, c)
	return nil
}

type fakeSleeper struct {
	slept []time.Duration
}

func (s *fakeSleeper) Sleep(d time.Duration) {
	s.slept = append(s.slept, d)
}

func TestBreatheStaysInBounds(t *testing.T) {
	pix := &fakePixel{}
	a := NewAnimator(pix, &fakeSleeper{})
	amber := Color{R: 255, G: 191, B: 0}

	prev := 0
	for i := 0; i < 1000; i++ {
		if err := a.Breathe(amber); err != nil {
			t.Fatalf("Breathe error = %v", err)
		}
		if a.brightness < 0 || a.brightness > breatheMax {
			t.Fatalf("tick %d: brightness %d outside [0, %d]", i, a.brightness, breatheMax)
		}
		// Direction flips exactly at the bounds, never overshoots.
		if prev == breatheMax && a.brightness > prev {
			t.Fatalf("tick %d: overshot ceiling", i)
		}
		if prev == 0 && i > 0 && a.brightness < prev {
			t.Fatalf("tick %d: overshot floor", i)
		}
		prev = a.brightness
	}
}

func TestBreatheTriangleWave(t *testing.T) {
	a := NewAnimator(&fakePixel{}, &fakeSleeper{})
	c := Color{R: 255, G: 255, B: 255}

	// Rising by 2 per call until the ceiling.
	for i := 0; i < 10; i++ {
		_ = a.Breathe(c)
	}
	if a.brightness != 20 || a.direction != 1 {
		t.Fatalf("after 10 ticks: brightness %d dir %d, want 20 +1", a.brightness, a.direction)
	}

	// Drive to the flip.
	for a.direction == 1 {
		_ = a.Breathe(c)
	}
	if a.brightness != breatheMax {
		t.Errorf("flip at brightness %d, want %d", a.brightness, breatheMax)
	}
}

func TestBreatheScalesColor(t *testing.T) {
	pix := &fakePixel{}
	a := NewAnimator(pix, &fakeSleeper{})
	_ = a.Breathe(Color{R: 255, G: 191, B: 0})

	want := Color{R: 255, G: 191, B: 0}.Scale(2)
	if pix.colors[0] != want {
		t.Errorf("first breathe color = %v, want %v", pix.colors[0], want)
	}
}

func TestFlashShape(t *testing.T) {
	pix := &fakePixel{}
	sleeper := &fakeSleeper{}
	a := NewAnimator(pix, sleeper)

	if err := a.Flash(Color{R: 255, B: 255}); err != nil {
		t.Fatalf("Flash error = %v", err)
	}

	// 20 up + 21 down + final off.
	if len(pix.colors) != flashSteps+flashSteps+1+1 {
		t.Fatalf("Flash set %d colors, want %d", len(pix.colors), flashSteps*2+2)
	}
	if last := pix.colors[len(pix.colors)-1]; last != (Color{}) {
		t.Errorf("Flash ended on %v, want off", last)
	}

	// Peak is the first step of the down ramp at 80% scale.
	peak := pix.colors[flashSteps]
	want := Color{R: 255, B: 255}.Scale(flashMaxLevel)
	if peak != want {
		t.Errorf("Flash peak = %v, want %v", peak, want)
	}

	// Brightness never exceeds 80%.
	for i, c := range pix.colors {
		if c.R > want.R || c.B > want.B {
			t.Errorf("step %d color %v exceeds 80%% scale %v", i, c, want)
		}
	}

	if len(sleeper.slept) != flashSteps*2+1 {
		t.Errorf("Flash slept %d times, want %d", len(sleeper.slept), flashSteps*2+1)
	}
}

func TestPulseShape(t *testing.T) {
	pix := &fakePixel{}
	sleeper := &fakeSleeper{}
	a := NewAnimator(pix, sleeper)
	red := Color{R: 255}

	if err := a.Pulse(red); err != nil {
		t.Fatalf("Pulse error = %v", err)
	}

	want := []Color{red, {}, red, {}}
	if len(pix.colors) != len(want) {
		t.Fatalf("Pulse set %d colors, want %d", len(pix.colors), len(want))
	}
	for i := range want {
		if pix.colors[i] != want[i] {
			t.Errorf("Pulse step %d = %v, want %v", i, pix.colors[i], want[i])
		}
	}
	if len(sleeper.slept) != pulseCycles*2 {
		t.Errorf("Pulse slept %d times, want %d", len(sleeper.slept), pulseCycles*2)
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		c     Color
		level uint8
		want  Color
	}{
		{Color{255, 255, 255}, 255, Color{255, 255, 255}},
		{Color{255, 255, 255}, 0, Color{}},
		{Color{255, 191, 0}, 127, Color{127, 95, 0}},
		{Color{100, 0, 0}, 51, Color{20, 0, 0}},
	}
	for _, tt := range tests {
		if got := tt.c.Scale(tt.level); got != tt.want {
			t.Errorf("%v.Scale(%d) = %v, want %v", tt.c, tt.level, got, tt.want)
		}
	}
}

func TestOrderApply(t *testing.T) {
	c := Color{R: 1, G: 2, B: 3}
	tests := []struct {
		order Order
		want  [3]uint8
	}{
		{OrderRGB, [3]uint8{1, 2, 3}},
		{OrderGRB, [3]uint8{2, 1, 3}},
		{OrderBGR, [3]uint8{3, 2, 1}},
		{Order("XYZ"), [3]uint8{1, 2, 3}},
	}
	for _, tt := range tests {
		if got := tt.order.Apply(c); got != tt.want {
			t.Errorf("Order(%s).Apply = %v, want %v", tt.order, got, tt.want)
		}
	}
}
