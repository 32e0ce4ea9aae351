package gadget

import "github.com/keywedge/keywedge/internal/key"

// stroke is one keyboard report worth of output: a usage code and
// whether shift is held for it.
type stroke struct {
	usage uint8
	shift bool
}

// punctuation maps US-layout punctuation and symbols to strokes.
// Letters and digits are computed, not tabled.
var punctuation = map[rune]stroke{
	' ':  {usageSpace, false},
	'\n': {usageEnter, false},
	'\t': {usageTab, false},

	'-':  {usageMinus, false},
	'_':  {usageMinus, true},
	'=':  {usageEqual, false},
	'+':  {usageEqual, true},
	'[':  {usageLeftBrace, false},
	'{':  {usageLeftBrace, true},
	']':  {usageRightBrace, false},
	'}':  {usageRightBrace, true},
	'\\': {usageBackslash, false},
	'|':  {usageBackslash, true},
	';':  {usageSemicolon, false},
	':':  {usageSemicolon, true},
	'\'': {usageQuote, false},
	'"':  {usageQuote, true},
	'`':  {usageGrave, false},
	'~':  {usageGrave, true},
	',':  {usageComma, false},
	'<':  {usageComma, true},
	'.':  {usagePeriod, false},
	'>':  {usagePeriod, true},
	'/':  {usageSlash, false},
	'?':  {usageSlash, true},

	'!': {usage1, true},
	'@': {usage1 + 1, true},
	'#': {usage1 + 2, true},
	'$': {usage1 + 3, true},
	'%': {usage1 + 4, true},
	'^': {usage1 + 5, true},
	'&': {usage1 + 6, true},
	'*': {usage1 + 7, true},
	'(': {usage1 + 8, true},
	')': {usage0, true},
}

// strokeForRune resolves a US-layout character to a stroke. The
// second return is false for characters the layout cannot type.
func strokeForRune(r rune) (stroke, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return stroke{usageA + uint8(r-'a'), false}, true
	case r >= 'A' && r <= 'Z':
		return stroke{usageA + uint8(r-'A'), true}, true
	case r >= '1' && r <= '9':
		return stroke{usage1 + uint8(r-'1'), false}, true
	case r == '0':
		return stroke{usage0, false}, true
	}
	s, ok := punctuation[r]
	return s, ok
}

// specialUsage maps the macro language's named keys to usage codes.
var specialUsage = map[key.Key]uint8{
	key.KeyEnter:     usageEnter,
	key.KeyTab:       usageTab,
	key.KeySpace:     usageSpace,
	key.KeyBackspace: usageBackspace,
	key.KeyDelete:    usageDelete,
	key.KeyEscape:    usageEscape,
	key.KeyUp:        usageUp,
	key.KeyDown:      usageDown,
	key.KeyLeft:      usageLeft,
	key.KeyRight:     usageRight,
	key.KeyHome:      usageHome,
	key.KeyEnd:       usageEnd,
	key.KeyPageUp:    usagePageUp,
	key.KeyPageDown:  usagePageDown,
}

// usageForKey resolves a key token to its usage code. For KeyRune
// tokens r must be an upper-case letter or digit.
func usageForKey(k key.Key, r rune) (uint8, bool) {
	if k == key.KeyRune {
		s, ok := strokeForRune(r)
		if !ok {
			return 0, false
		}
		return s.usage, true
	}
	u, ok := specialUsage[k]
	return u, ok
}

// modMask converts macro modifiers to the report's modifier byte.
// The left-hand variants are always used; hosts do not distinguish.
func modMask(m key.Modifier) uint8 {
	var mask uint8
	if m.Has(key.ModCtrl) {
		mask |= modLeftCtrl
	}
	if m.Has(key.ModShift) {
		mask |= modLeftShift
	}
	if m.Has(key.ModAlt) {
		mask |= modLeftAlt
	}
	if m.Has(key.ModGUI) {
		mask |= modLeftGUI
	}
	return mask
}
