package app

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/keywedge/keywedge/internal/config"
	"github.com/keywedge/keywedge/internal/key"
	"github.com/keywedge/keywedge/internal/led"
)

func testLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

// fakeClock advances only when the loop sleeps, so animation and
// gesture timing are deterministic.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

// scriptButton replays one level per tick and closes done when the
// script runs out.
type scriptButton struct {
	levels []bool
	i      int
	done   chan struct{}
}

func newScriptButton(levels []bool) *scriptButton {
	return &scriptButton{levels: levels, done: make(chan struct{})}
}

func (b *scriptButton) Read() bool {
	if b.i >= len(b.levels) {
		select {
		case <-b.done:
		default:
			close(b.done)
		}
		return true
	}
	v := b.levels[b.i]
	b.i++
	return v
}

type recordPixel struct {
	colors []led.Color
}

func (p *recordPixel) Set(c led.Color) error {
	p.colors = append(p.colors, c)
	return nil
}

func (p *recordPixel) Close() error { return nil }

type captureSink struct {
	texts []string
	keys  []string
}

func (s *captureSink) Text(t string) error {
	s.texts = append(s.texts, t)
	return nil
}

func (s *captureSink) Key(mods key.Modifier, k key.Key, r rune) error {
	if k == key.KeyRune {
		s.keys = append(s.keys, fmt.Sprintf("%s+%c", mods, r))
		return nil
	}
	s.keys = append(s.keys, k.String())
	return nil
}

// levels builds a button script from (level, count) pairs.
func levels(pairs ...any) []bool {
	var out []bool
	for i := 0; i < len(pairs); i += 2 {
		level := pairs[i].(bool)
		for n := 0; n < pairs[i+1].(int); n++ {
			out = append(out, level)
		}
	}
	return out
}

func testCfg() config.Config {
	cfg := config.Default()
	cfg.MacroFile = ""
	cfg.MacroText = "hi{ENTER}"
	cfg.KeepAliveText = "ka"
	cfg.KeepAliveFile = ""
	cfg.DoublePressGap = 50 * time.Millisecond
	cfg.LongPressDuration = 80 * time.Millisecond
	cfg.KeepAliveMin = 100 * time.Millisecond
	cfg.KeepAliveMax = 100 * time.Millisecond
	cfg.TickPeriod = 10 * time.Millisecond
	return cfg
}

func runLoop(t *testing.T, cfg config.Config, script []bool) (*captureSink, *recordPixel) {
	t.Helper()
	button := newScriptButton(script)
	pixel := &recordPixel{}
	sink := &captureSink{}
	loop := NewLoop(cfg, testLog(), Deps{
		Button: button,
		Pixel:  pixel,
		Sink:   sink,
		Clock:  &fakeClock{now: time.Unix(0, 0)},
		Rand:   rand.New(rand.NewSource(1)),
		Done:   button.done,
	})
	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return sink, pixel
}

func TestDoubleClickPlaysMacroAndFlashes(t *testing.T) {
	cfg := testCfg()
	sink, pixel := runLoop(t, cfg, levels(true, 1, false, 1, true, 1, false, 1, true, 8))

	if len(sink.texts) != 1 || sink.texts[0] != "hi" {
		t.Errorf("texts = %v, want [hi]", sink.texts)
	}
	if len(sink.keys) != 1 || sink.keys[0] != "Enter" {
		t.Errorf("keys = %v, want [Enter]", sink.keys)
	}

	peak := cfg.MacroColor.Scale(204)
	found := false
	for _, c := range pixel.colors {
		if c == peak {
			found = true
		}
	}
	if !found {
		t.Errorf("flash never reached peak %v; colors = %v", peak, pixel.colors)
	}
	if last := pixel.colors[len(pixel.colors)-1]; last != (led.Color{}) {
		t.Errorf("final color = %v, want off", last)
	}
}

func TestSingleClickPlaysNothing(t *testing.T) {
	sink, pixel := runLoop(t, testCfg(), levels(true, 1, false, 1, true, 10))

	if len(sink.texts) != 0 || len(sink.keys) != 0 {
		t.Errorf("single click injected %v %v", sink.texts, sink.keys)
	}
	for _, c := range pixel.colors {
		if c != (led.Color{}) {
			t.Errorf("single click lit the LED: %v", pixel.colors)
			break
		}
	}
}

func TestLongPressStartsKeepAlive(t *testing.T) {
	cfg := testCfg()
	// Hold past the long-press threshold, release, wait out one
	// keep-alive interval, then press once to cancel.
	script := levels(true, 1, false, 10, true, 15, false, 1, true, 3)
	sink, pixel := runLoop(t, cfg, script)

	played := 0
	for _, s := range sink.texts {
		if s == "ka" {
			played++
		}
	}
	if played == 0 {
		t.Fatalf("keep-alive never fired; texts = %v", sink.texts)
	}

	breathing := false
	pulsed := false
	for _, c := range pixel.colors {
		if c.R > 0 && c.G > 0 && c.B == 0 && c != cfg.CancelColor {
			breathing = true
		}
		if c == cfg.CancelColor {
			pulsed = true
		}
	}
	if !breathing {
		t.Error("LED never breathed during keep-alive")
	}
	if !pulsed {
		t.Error("cancel never pulsed")
	}
	if last := pixel.colors[len(pixel.colors)-1]; last != (led.Color{}) {
		t.Errorf("final color = %v, want off", last)
	}
}

func TestCancelPressIsNotAClick(t *testing.T) {
	cfg := testCfg()
	// Long press, then two rapid presses. The first cancels and must
	// not count toward a double-click.
	script := levels(true, 1, false, 10, true, 2, false, 1, true, 1, false, 1, true, 10)
	sink, _ := runLoop(t, cfg, script)

	for _, s := range sink.texts {
		if s == "hi" {
			t.Fatalf("macro played after cancel; texts = %v", sink.texts)
		}
	}
}

func TestReloadSwapsMacroText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macro.txt")
	if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := testCfg()
	cfg.MacroText = ""
	cfg.MacroFile = path

	button := newScriptButton(levels(true, 1, false, 1, true, 1, false, 1, true, 8))
	sink := &captureSink{}
	changes := make(chan string, 1)

	loop := NewLoop(cfg, testLog(), Deps{
		Button:  button,
		Pixel:   &recordPixel{},
		Sink:    sink,
		Clock:   &fakeClock{now: time.Unix(0, 0)},
		Rand:    rand.New(rand.NewSource(1)),
		Changes: changes,
		Done:    button.done,
	})

	if err := os.WriteFile(path, []byte("new"), 0o600); err != nil {
		t.Fatal(err)
	}
	changes <- path

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(sink.texts) != 1 || sink.texts[0] != "new" {
		t.Errorf("texts = %v, want the reloaded text", sink.texts)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	button := newScriptButton(nil)
	loop := NewLoop(testCfg(), testLog(), Deps{
		Button: button,
		Pixel:  &recordPixel{},
		Sink:   &captureSink{},
		Clock:  &fakeClock{now: time.Unix(0, 0)},
	})
	if err := loop.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}
