package macro

import (
	"context"
	"fmt"

	"github.com/keywedge/keywedge/internal/key"
)

// Sink receives the keystrokes produced by macro playback. Device
// backends implement it over their injection primitive.
type Sink interface {
	// Text types a run of literal characters.
	Text(s string) error

	// Key presses and releases a key with the given modifiers held.
	// k is a named special key, or key.KeyRune with the character
	// in r.
	Key(mods key.Modifier, k key.Key, r rune) error
}

// Player executes macro text against a Sink. It holds no per-play
// state: the text is re-parsed on every Play.
type Player struct {
	sink Sink
}

// NewPlayer creates a player that emits through the given sink.
func NewPlayer(sink Sink) *Player {
	return &Player{sink: sink}
}

// Play parses text and executes the resulting tokens in order.
// Malformed macro text is not an error (it plays as literal text);
// a sink failure is, since the device has no fallback output.
// Playback stops early if ctx is cancelled.
func (p *Player) Play(ctx context.Context, text string) error {
	for _, tok := range Parse(text) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var err error
		switch tok.Kind {
		case KindText:
			err = p.sink.Text(tok.Text)
		case KindKey:
			err = p.sink.Key(tok.Mods, tok.Key, tok.Rune)
		}
		if err != nil {
			return fmt.Errorf("macro: emit %s: %w", tok, err)
		}
	}
	return nil
}
