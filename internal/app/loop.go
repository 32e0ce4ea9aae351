package app

import (
	"context"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/keywedge/keywedge/internal/config"
	"github.com/keywedge/keywedge/internal/device"
	"github.com/keywedge/keywedge/internal/gesture"
	"github.com/keywedge/keywedge/internal/keepalive"
	"github.com/keywedge/keywedge/internal/led"
	"github.com/keywedge/keywedge/internal/macro"
)

// Deps are the loop's collaborators. Button, Pixel and Sink are
// required; the rest default to the real implementations.
type Deps struct {
	Button device.Button
	Pixel  device.Pixel
	Sink   macro.Sink

	// Clock defaults to the system clock.
	Clock device.Clock

	// Rand is the keep-alive interval source. Defaults to a clock
	// seeded rand; tests pass a fixed seed.
	Rand *rand.Rand

	// Changes delivers macro source reload notifications. May be
	// nil; it is drained between ticks, never during dispatch.
	Changes <-chan string

	// Done stops the loop when closed. May be nil.
	Done <-chan struct{}
}

// Loop is the per-tick engine. It owns the classifier, the macro
// player, the keep-alive scheduler and the LED animator, and runs
// them on a single goroutine.
type Loop struct {
	cfg config.Config
	src config.Config // pre-resolution copy, kept for reloads
	log *logrus.Entry

	button device.Button
	clock  device.Clock

	classifier *gesture.Classifier
	player     *macro.Player
	scheduler  *keepalive.Scheduler
	animator   *led.Animator

	macroText string
	changes   <-chan string
	done      <-chan struct{}
}

// NewLoop builds a loop from the configuration. Macro sources are
// resolved here, so a broken source is logged once at startup rather
// than on every double-click.
func NewLoop(cfg config.Config, log *logrus.Entry, d Deps) *Loop {
	if d.Clock == nil {
		d.Clock = device.SystemClock{}
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewSource(d.Clock.Now().UnixNano()))
	}

	src := cfg
	cfg.ResolveMacroTexts(log)

	player := macro.NewPlayer(d.Sink)
	return &Loop{
		cfg:    cfg,
		src:    src,
		log:    log,
		button: d.Button,
		clock:  d.Clock,
		classifier: gesture.NewClassifier(gesture.Config{
			DoublePressGap:    cfg.DoublePressGap,
			LongPressDuration: cfg.LongPressDuration,
			ClickEdge:         cfg.ClickEdge,
		}),
		player: player,
		scheduler: keepalive.NewScheduler(keepalive.Config{
			Sequence: cfg.KeepAliveText,
			Min:      cfg.KeepAliveMin,
			Max:      cfg.KeepAliveMax,
		}, player, d.Rand),
		animator:  led.NewAnimator(d.Pixel, d.Clock),
		macroText: cfg.MacroText,
		changes:   d.Changes,
		done:      d.Done,
	}
}

// Run ticks until the context is cancelled or Done closes. Sink and
// LED errors are fatal; the process supervisor restarts the device.
func (l *Loop) Run(ctx context.Context) error {
	l.log.WithFields(logrus.Fields{
		"tick":       l.cfg.TickPeriod,
		"click_edge": l.cfg.ClickEdge,
	}).Info("loop running")
	defer l.animator.Off()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-l.done:
			l.log.Info("device closed, stopping")
			return nil
		default:
		}

		if err := l.tick(ctx); err != nil {
			return err
		}
		l.clock.Sleep(l.cfg.TickPeriod)
	}
}

func (l *Loop) tick(ctx context.Context) error {
	l.drainChanges()

	now := l.clock.Now()
	if ev, ok := l.classifier.Feed(l.button.Read(), now); ok {
		if err := l.dispatch(ctx, ev); err != nil {
			return err
		}
	}

	if l.classifier.KeepAliveActive() {
		if err := l.animator.Breathe(l.cfg.KeepAliveColor); err != nil {
			return err
		}
	}

	fired, err := l.scheduler.Tick(ctx, l.clock.Now())
	if err != nil {
		return err
	}
	if fired {
		l.log.Debug("keep-alive fired")
	}
	return nil
}

func (l *Loop) dispatch(ctx context.Context, ev gesture.Event) error {
	switch ev.Type {
	case gesture.EventDoubleClick:
		l.log.Info("double-click, playing macro")
		if err := l.player.Play(ctx, l.macroText); err != nil {
			return err
		}
		return l.animator.Flash(l.cfg.MacroColor)

	case gesture.EventLongPress:
		l.log.Info("long press, keep-alive on")
		l.scheduler.Activate(l.clock.Now())

	case gesture.EventKeepAliveCancelled:
		l.log.Info("keep-alive cancelled")
		l.scheduler.Cancel()
		if err := l.animator.Pulse(l.cfg.CancelColor); err != nil {
			return err
		}
		return l.animator.Off()

	case gesture.EventPressStart:
		l.log.Debug("press")

	case gesture.EventRelease:
		l.log.WithField("hold", ev.Hold).Debug("release")
	}
	return nil
}

// drainChanges applies pending macro source edits. Runs between
// ticks so playback never observes a half-swapped text.
func (l *Loop) drainChanges() {
	for l.changes != nil {
		select {
		case path, ok := <-l.changes:
			if !ok {
				l.changes = nil
				return
			}
			l.log.WithField("file", path).Info("macro source changed, reloading")
			l.reloadTexts()
		default:
			return
		}
	}
}

func (l *Loop) reloadTexts() {
	c := l.src
	c.ResolveMacroTexts(l.log)
	l.macroText = c.MacroText
	l.scheduler.SetSequence(c.KeepAliveText)
}
