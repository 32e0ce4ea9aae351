package key

import "strings"

// Modifier represents keyboard modifier keys as a bitset.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModCtrl indicates the Control key.
	ModCtrl Modifier = 1 << iota

	// ModShift indicates the Shift key.
	ModShift

	// ModAlt indicates the Alt key.
	ModAlt

	// ModGUI indicates the GUI key (Win on Windows, Cmd on macOS).
	ModGUI
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
// Adding a modifier already present is a no-op, so duplicate names
// in macro text collapse.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a representation like "Ctrl+Shift".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModGUI) {
		parts = append(parts, "GUI")
	}
	return strings.Join(parts, "+")
}

// modifierNameMap maps modifier names to Modifier values. WIN, CMD
// and SUPER are aliases for the GUI key.
var modifierNameMap = map[string]Modifier{
	"CTRL":  ModCtrl,
	"SHIFT": ModShift,
	"ALT":   ModAlt,
	"GUI":   ModGUI,
	"WIN":   ModGUI,
	"CMD":   ModGUI,
	"SUPER": ModGUI,
}

// ModifierFromName returns the Modifier for a given name
// (case-insensitive). Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	name = strings.ToUpper(strings.TrimSpace(name))
	if m, ok := modifierNameMap[name]; ok {
		return m
	}
	return ModNone
}
