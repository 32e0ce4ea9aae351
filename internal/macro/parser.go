package macro

import (
	"strings"

	"github.com/keywedge/keywedge/internal/key"
)

// Parse scans macro text left to right and produces the token
// sequence to execute. Parsing never fails: anything that does not
// resolve to a key or combo degrades to literal text, including the
// braces, exactly as written.
//
// Recognized forms:
//   - plain characters, typed as-is
//   - {ENTER}, {TAB}, ... named special keys
//   - {CTRL+C}, {CTRL+SHIFT+T}, {SHIFT+TAB} modifier combos
//   - {{ and }} for literal braces
func Parse(text string) []Token {
	var tokens []Token
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, textToken(lit.String()))
			lit.Reset()
		}
	}

	i := 0
	for i < len(text) {
		// Doubled braces escape a literal brace. Only the braces
		// themselves are special-cased; the text between them is
		// scanned normally.
		if i+1 < len(text) {
			switch text[i : i+2] {
			case "{{":
				lit.WriteByte('{')
				i += 2
				continue
			case "}}":
				lit.WriteByte('}')
				i += 2
				continue
			}
		}

		if text[i] != '{' {
			lit.WriteByte(text[i])
			i++
			continue
		}

		close := strings.IndexByte(text[i:], '}')
		if close < 0 {
			// Unterminated brace is literal, not an error.
			lit.WriteByte('{')
			i++
			continue
		}
		close += i

		raw := text[i : close+1] // original spelling, braces included
		tok, ok := resolveBraced(text[i+1 : close])
		if ok {
			flush()
			tokens = append(tokens, tok)
		} else {
			// Unknown tokens round-trip exactly.
			lit.WriteString(raw)
		}
		i = close + 1
	}

	flush()
	return tokens
}

// resolveBraced interprets the text between braces as a special key
// or a modifier combo. The second return is false when nothing
// resolves and the caller should fall back to literal output.
func resolveBraced(inner string) (Token, bool) {
	seq := strings.ToUpper(inner)

	if !strings.Contains(seq, "+") {
		if k := key.FromName(seq); k != key.KeyNone {
			return keyToken(key.ModNone, k), true
		}
		return Token{}, false
	}

	var mods key.Modifier
	var named key.Key
	var char rune

	// Each part is a modifier, a special key, or a single
	// alphanumeric character. At most one non-modifier part is the
	// key; a later one replaces an earlier one.
	for _, part := range strings.Split(seq, "+") {
		part = strings.TrimSpace(part)
		if m := key.ModifierFromName(part); m != key.ModNone {
			mods = mods.With(m)
			continue
		}
		if k := key.FromName(part); k != key.KeyNone {
			named, char = k, 0
			continue
		}
		if len(part) == 1 && isComboChar(rune(part[0])) {
			named, char = key.KeyRune, rune(part[0])
		}
	}

	switch {
	case named == key.KeyRune:
		// A lone resolved key with no modifiers still emits as a
		// single keystroke.
		return runeToken(mods, char), true
	case named != key.KeyNone:
		return keyToken(mods, named), true
	default:
		return Token{}, false
	}
}

func isComboChar(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
