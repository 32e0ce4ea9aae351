package config

import "errors"

// Config errors.
var (
	// ErrBadValue indicates a setting that parsed but fails
	// validation.
	ErrBadValue = errors.New("config: invalid value")

	// ErrBadColor indicates an unparseable color spec. Callers fall
	// back to the built-in default for that slot.
	ErrBadColor = errors.New("config: invalid color")

	// ErrUnknownKey indicates an unrecognized setting name.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrBadSyntax indicates a malformed settings line.
	ErrBadSyntax = errors.New("config: malformed line")
)
