package key

import (
	"fmt"
	"strings"
)

// Key identifies a named special key in the macro language.
// Character keys use KeyRune with the character carried separately.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	KeyEnter
	KeyTab
	KeySpace
	KeyBackspace
	KeyDelete
	KeyEscape

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// KeyRune is used for character keys (letters and digits in
	// modifier combos). The character itself is stored alongside.
	KeyRune
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeySpace:
		return "Space"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyEscape:
		return "Escape"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyRune:
		return "Rune"
	default:
		return fmt.Sprintf("Key(%d)", k)
	}
}

// IsSpecial returns true if this is a named (non-character) key.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// keyNameMap maps key names (upper-case, as written in macro text)
// to Key values.
var keyNameMap = map[string]Key{
	"ENTER":     KeyEnter,
	"TAB":       KeyTab,
	"SPACE":     KeySpace,
	"BACKSPACE": KeyBackspace,
	"DELETE":    KeyDelete,
	"ESC":       KeyEscape,
	"UP":        KeyUp,
	"DOWN":      KeyDown,
	"LEFT":      KeyLeft,
	"RIGHT":     KeyRight,
	"HOME":      KeyHome,
	"END":       KeyEnd,
	"PAGEUP":    KeyPageUp,
	"PAGEDOWN":  KeyPageDown,
}

// FromName returns the Key for a given name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func FromName(name string) Key {
	name = strings.ToUpper(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	return KeyNone
}
