// Package macro implements the keystroke macro language.
//
// A macro is plain text interleaved with brace expressions:
//
//	login{TAB}hunter2{ENTER}
//	{CTRL+SHIFT+T}
//	literal {{braces}} via doubling
//
// Parse turns macro text into a token sequence; Player executes the
// tokens against an injected Sink. The language has no error states:
// an unterminated brace, an unknown key name, or a combo where no
// part resolves all degrade to literal output of the original text,
// braces included. This is load-bearing — the device's only failure
// signal is "the expected keystrokes did not appear", so playback
// must never halt on bad input.
package macro
