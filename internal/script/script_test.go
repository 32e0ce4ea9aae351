package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEvalStringReturnsMacro(t *testing.T) {
	got, err := EvalString(`return "hi{ENTER}"`)
	if err != nil {
		t.Fatalf("EvalString error = %v", err)
	}
	if got != "hi{ENTER}" {
		t.Errorf("EvalString = %q, want %q", got, "hi{ENTER}")
	}
}

func TestEvalStringComputed(t *testing.T) {
	got, err := EvalString(`
		local parts = {}
		for i = 1, 3 do parts[#parts+1] = "k" .. i end
		return table.concat(parts, "{TAB}")
	`)
	if err != nil {
		t.Fatalf("EvalString error = %v", err)
	}
	if got != "k1{TAB}k2{TAB}k3" {
		t.Errorf("EvalString = %q", got)
	}
}

func TestEvalStringNonString(t *testing.T) {
	if _, err := EvalString(`return 42`); !errors.Is(err, ErrNotString) {
		t.Errorf("error = %v, want ErrNotString", err)
	}
	if _, err := EvalString(`return`); !errors.Is(err, ErrNotString) {
		t.Errorf("bare return error = %v, want ErrNotString", err)
	}
}

func TestEvalStringSyntaxError(t *testing.T) {
	if _, err := EvalString(`return "unterminated`); err == nil {
		t.Error("syntax error did not surface")
	}
}

func TestUnsafeLibsUnavailable(t *testing.T) {
	for _, src := range []string{
		`return os.getenv("HOME")`,
		`return io.open("/etc/passwd")`,
	} {
		if _, err := EvalString(src); err == nil {
			t.Errorf("chunk %q ran, want error (library should be absent)", src)
		}
	}
}

func TestEvalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macro.lua")
	if err := os.WriteFile(path, []byte(`return "from-file"`), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := EvalFile(path)
	if err != nil {
		t.Fatalf("EvalFile error = %v", err)
	}
	if got != "from-file" {
		t.Errorf("EvalFile = %q, want %q", got, "from-file")
	}
}

func TestEvalFileMissing(t *testing.T) {
	if _, err := EvalFile(filepath.Join(t.TempDir(), "nope.lua")); err == nil {
		t.Error("missing file did not error")
	}
}
