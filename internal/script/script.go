// Package script evaluates Lua macro sources.
//
// A macro file ending in .lua is run instead of being read verbatim;
// the chunk must return the macro string. This lets a macro vary at
// play time (timestamps, counters) without changing the engine.
// Scripts run with a trimmed library set: no io, no os, no network.
package script

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Script errors.
var (
	// ErrNotString indicates the chunk did not return a string.
	ErrNotString = errors.New("script: macro script must return a string")
)

// safeLibs are the Lua standard libraries scripts may use.
var safeLibs = []struct {
	name string
	open lua.LGFunction
}{
	{lua.BaseLibName, lua.OpenBase},
	{lua.TabLibName, lua.OpenTable},
	{lua.StringLibName, lua.OpenString},
	{lua.MathLibName, lua.OpenMath},
}

func newState() (*lua.LState, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range safeLibs {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			L.Close()
			return nil, fmt.Errorf("script: open %s: %w", lib.name, err)
		}
	}
	return L, nil
}

// EvalFile runs the Lua chunk at path and returns its string result.
func EvalFile(path string) (string, error) {
	L, err := newState()
	if err != nil {
		return "", err
	}
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return "", fmt.Errorf("script: run %s: %w", path, err)
	}
	return result(L)
}

// EvalString runs a Lua chunk from source and returns its string
// result.
func EvalString(src string) (string, error) {
	L, err := newState()
	if err != nil {
		return "", err
	}
	defer L.Close()

	if err := L.DoString(src); err != nil {
		return "", fmt.Errorf("script: run chunk: %w", err)
	}
	return result(L)
}

func result(L *lua.LState) (string, error) {
	ret := L.Get(-1)
	if s, ok := ret.(lua.LString); ok {
		return string(s), nil
	}
	return "", fmt.Errorf("%w, got %s", ErrNotString, ret.Type())
}
