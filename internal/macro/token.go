package macro

import (
	"fmt"

	"github.com/keywedge/keywedge/internal/key"
)

// Kind discriminates the token variants of the macro language.
type Kind uint8

const (
	// KindText is a run of literal characters typed as-is.
	KindText Kind = iota

	// KindKey is a keystroke: a named special key or a single
	// character key, with zero or more modifiers held.
	KindKey
)

// Token is one executable unit of a parsed macro.
type Token struct {
	// Kind selects which fields below are meaningful.
	Kind Kind

	// Text is the literal text for KindText tokens.
	Text string

	// Mods are the modifiers held for KindKey tokens.
	Mods key.Modifier

	// Key is the key pressed for KindKey tokens. key.KeyRune means
	// a character key; the character is in Rune.
	Key key.Key

	// Rune is the character for KindKey tokens with Key == KeyRune.
	Rune rune
}

// String returns a compact representation for logging.
func (t Token) String() string {
	switch t.Kind {
	case KindText:
		return fmt.Sprintf("text(%q)", t.Text)
	case KindKey:
		name := t.Key.String()
		if t.Key == key.KeyRune {
			name = string(t.Rune)
		}
		if t.Mods.IsEmpty() {
			return fmt.Sprintf("key(%s)", name)
		}
		return fmt.Sprintf("key(%s+%s)", t.Mods, name)
	default:
		return fmt.Sprintf("token(kind=%d)", t.Kind)
	}
}

// textToken builds a literal text token.
func textToken(s string) Token {
	return Token{Kind: KindText, Text: s}
}

// keyToken builds a keystroke token for a named special key.
func keyToken(mods key.Modifier, k key.Key) Token {
	return Token{Kind: KindKey, Mods: mods, Key: k}
}

// runeToken builds a keystroke token for a character key.
func runeToken(mods key.Modifier, r rune) Token {
	return Token{Kind: KindKey, Mods: mods, Key: key.KeyRune, Rune: r}
}
