package keepalive

import (
	"context"
	"math/rand"
	"time"
)

// Sequencer plays one keystroke sequence. *macro.Player satisfies it.
type Sequencer interface {
	Play(ctx context.Context, text string) error
}

// Config holds the scheduler parameters.
type Config struct {
	// Sequence is the macro text replayed on each fire.
	Sequence string

	// Min and Max bound the uniform random delay between fires.
	// Min == Max gives a fixed interval.
	Min time.Duration
	Max time.Duration
}

// Scheduler owns keep-alive activation state and the randomized
// re-fire timing. Playback is delegated to the shared macro player,
// so the sequence may use the full macro syntax.
type Scheduler struct {
	cfg    Config
	player Sequencer
	rng    *rand.Rand

	active    bool
	lastFire  time.Time
	nextDelay time.Duration
}

// NewScheduler creates a scheduler. rng is the interval source;
// tests pass a seeded rand for deterministic delays.
func NewScheduler(cfg Config, player Sequencer, rng *rand.Rand) *Scheduler {
	return &Scheduler{cfg: cfg, player: player, rng: rng}
}

// Active reports whether keep-alive mode is running.
func (s *Scheduler) Active() bool {
	return s.active
}

// Activate starts keep-alive mode and draws the first delay.
func (s *Scheduler) Activate(now time.Time) {
	s.active = true
	s.lastFire = now
	s.nextDelay = s.draw()
}

// Cancel stops keep-alive mode.
func (s *Scheduler) Cancel() {
	s.active = false
}

// SetSequence replaces the replayed text. Takes effect on the next
// fire; activation state and timing are untouched.
func (s *Scheduler) SetSequence(text string) {
	s.cfg.Sequence = text
}

// Tick fires the sequence when the current delay has elapsed and
// draws the next one. It reports whether a fire happened; the error
// is the player's (fatal for the run, per the device's error model).
func (s *Scheduler) Tick(ctx context.Context, now time.Time) (bool, error) {
	if !s.active || now.Sub(s.lastFire) <= s.nextDelay {
		return false, nil
	}

	err := s.player.Play(ctx, s.cfg.Sequence)
	s.lastFire = now
	s.nextDelay = s.draw()
	return true, err
}

// draw picks the next delay uniformly from [Min, Max].
func (s *Scheduler) draw() time.Duration {
	if s.cfg.Max <= s.cfg.Min {
		return s.cfg.Min
	}
	span := int64(s.cfg.Max - s.cfg.Min)
	return s.cfg.Min + time.Duration(s.rng.Int63n(span+1))
}
