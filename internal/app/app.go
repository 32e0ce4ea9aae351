package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/keywedge/keywedge/internal/config"
	"github.com/keywedge/keywedge/internal/device"
	"github.com/keywedge/keywedge/internal/device/gadget"
	"github.com/keywedge/keywedge/internal/device/gpio"
	"github.com/keywedge/keywedge/internal/key"
	"github.com/keywedge/keywedge/internal/macro"
	"github.com/keywedge/keywedge/internal/sim"
)

// App owns the wired backend and the loop built on it.
type App struct {
	log     *logrus.Entry
	loop    *Loop
	closers []func() error
}

// New wires the configured backend and builds the loop.
//
// Backends:
//
//	gadget  USB HID keyboard plus GPIO button and LED (the device)
//	gpio    GPIO button and LED with keystrokes logged, not sent
//	sim     terminal simulator, no hardware
func New(cfg config.Config, log *logrus.Entry) (*App, error) {
	a := &App{log: log}
	d := Deps{Clock: device.SystemClock{}}

	switch cfg.Backend {
	case config.BackendSim:
		dev, err := sim.New()
		if err != nil {
			return nil, fmt.Errorf("app: start simulator: %w", err)
		}
		a.closers = append(a.closers, dev.Close)
		d.Button, d.Pixel, d.Sink = dev, dev, dev
		d.Done = dev.Done()

	case config.BackendGadget, config.BackendGPIO:
		if err := gpio.Open(); err != nil {
			return nil, fmt.Errorf("app: open gpio: %w", err)
		}
		a.closers = append(a.closers, gpio.Close)

		d.Button = gpio.NewButton(cfg.ButtonPin)
		pix := gpio.NewPixel(cfg.LEDPins, cfg.LEDOrder)
		a.closers = append(a.closers, pix.Close)
		d.Pixel = pix

		if cfg.Backend == config.BackendGadget {
			kb, err := gadget.Open(cfg.HIDDevice)
			if err != nil {
				a.Close()
				return nil, fmt.Errorf("app: open hid device: %w", err)
			}
			a.closers = append(a.closers, kb.Close)
			d.Sink = kb
		} else {
			d.Sink = logSink{log: log}
		}

	default:
		return nil, fmt.Errorf("app: unknown backend %q", cfg.Backend)
	}

	if files := cfg.WatchedFiles(); len(files) > 0 {
		w, err := config.NewWatcher(log, files...)
		if err != nil {
			log.WithError(err).Warn("file watching unavailable, macro edits need a restart")
		} else {
			a.closers = append(a.closers, w.Close)
			d.Changes = w.Changes()
		}
	}

	a.loop = NewLoop(cfg, log, d)
	return a, nil
}

// Run runs the loop until the context is cancelled, the backend
// closes, or a tick fails.
func (a *App) Run(ctx context.Context) error {
	return a.loop.Run(ctx)
}

// Close releases the backend, most recently opened first.
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

// logSink records keystrokes instead of sending them. The gpio
// backend uses it so the button and LED can be bench-tested without
// the USB gadget configured.
type logSink struct {
	log *logrus.Entry
}

func (s logSink) Text(t string) error {
	s.log.WithField("text", t).Info("type")
	return nil
}

func (s logSink) Key(mods key.Modifier, k key.Key, r rune) error {
	tok := macro.Token{Kind: macro.KindKey, Mods: mods, Key: k, Rune: r}
	s.log.WithField("key", tok.String()).Info("press")
	return nil
}
