// Package config loads and validates the gadget's configuration.
//
// Two file formats are supported: TOML (keywedge.toml) and the
// legacy line-based "key: value" settings file the original device
// shipped with. All settings are optional; defaults mirror the
// original firmware. Macro text may come inline, from a plain file,
// or from a Lua script, and the files are watched for changes so a
// running device picks up edits.
package config
