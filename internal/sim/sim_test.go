package sim

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/keywedge/keywedge/internal/key"
	"github.com/keywedge/keywedge/internal/led"
)

func newTestDevice(t *testing.T) *Device {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	d, err := NewWithScreen(screen)
	if err != nil {
		t.Fatalf("NewWithScreen error = %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func TestButtonStartsReleased(t *testing.T) {
	d := newTestDevice(t)
	if !d.Read() {
		t.Error("Read() = pressed at startup, want released")
	}
}

func TestSpaceTogglesButton(t *testing.T) {
	d := newTestDevice(t)
	sim := d.screen.(tcell.SimulationScreen)

	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	waitFor(t, func() bool { return !d.Read() })

	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	waitFor(t, func() bool { return d.Read() })
}

func TestQuitClosesDone(t *testing.T) {
	d := newTestDevice(t)
	sim := d.screen.(tcell.SimulationScreen)

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case <-d.Done():
	case <-time.After(time.Second):
		t.Fatal("Done not closed after quit key")
	}
}

func TestSinkTranscript(t *testing.T) {
	d := newTestDevice(t)

	if err := d.Text("hello"); err != nil {
		t.Fatalf("Text error = %v", err)
	}
	if err := d.Key(key.ModNone, key.KeyEnter, 0); err != nil {
		t.Fatalf("Key error = %v", err)
	}
	if err := d.Key(key.ModCtrl, key.KeyRune, 'C'); err != nil {
		t.Fatalf("Key error = %v", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.transcript) != 1 || d.transcript[0] != "hello" {
		t.Errorf("transcript = %v, want [hello]", d.transcript)
	}
	if got := d.line.String(); got != "<Ctrl+C>" {
		t.Errorf("pending line = %q, want %q", got, "<Ctrl+C>")
	}
}

func TestSetStoresColor(t *testing.T) {
	d := newTestDevice(t)
	c := led.Color{R: 191, G: 255}
	if err := d.Set(c); err != nil {
		t.Fatalf("Set error = %v", err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.color != c {
		t.Errorf("color = %v, want %v", d.color, c)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached")
}
