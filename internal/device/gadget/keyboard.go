package gadget

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/keywedge/keywedge/internal/key"
)

// Gadget errors.
var (
	// ErrNotMapped indicates a key with no usage code; it should be
	// unreachable for tokens the macro parser produces.
	ErrNotMapped = errors.New("gadget: key has no usage code")
)

// reportLen is the boot keyboard report size: modifier byte,
// reserved byte, six usage slots.
const reportLen = 8

// keyDelay is the hold and settle time around each stroke. Hosts
// drop keystrokes that arrive faster than their debounce.
const keyDelay = 10 * time.Millisecond

// writeDeadline bounds each report write. If no host is reading the
// gadget endpoint the write would otherwise block forever.
const writeDeadline = 5 * time.Millisecond

// Keyboard emits keystrokes as boot keyboard reports. It implements
// macro.Sink over any report writer; Open wires it to a Linux USB
// gadget HID device such as /dev/hidg0.
type Keyboard struct {
	w     io.Writer
	c     io.Closer
	sleep func(time.Duration)
}

// NewKeyboard creates a keyboard writing reports to w.
func NewKeyboard(w io.Writer) *Keyboard {
	return &Keyboard{w: w, sleep: time.Sleep}
}

// Open opens the gadget HID device at path.
func Open(path string) (*Keyboard, error) {
	f, err := os.OpenFile(path, os.O_WRONLY, 0o666)
	if err != nil {
		return nil, fmt.Errorf("gadget: open %s: %w", path, err)
	}
	k := NewKeyboard(deadlineWriter{f})
	k.c = f
	return k, nil
}

// Close releases the gadget device.
func (k *Keyboard) Close() error {
	if k.c == nil {
		return nil
	}
	return k.c.Close()
}

// Text types a run of literal characters using the US layout.
// Characters the layout cannot produce are skipped; playback never
// halts on untypeable input.
func (k *Keyboard) Text(s string) error {
	for _, r := range s {
		st, ok := strokeForRune(r)
		if !ok {
			continue
		}
		var mask uint8
		if st.shift {
			mask = modLeftShift
		}
		if err := k.tap(mask, st.usage); err != nil {
			return err
		}
	}
	return nil
}

// Key presses and releases a key with the given modifiers held.
func (k *Keyboard) Key(mods key.Modifier, kk key.Key, r rune) error {
	usage, ok := usageForKey(kk, r)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotMapped, kk)
	}
	return k.tap(modMask(mods), usage)
}

// tap sends a press report followed by a release report.
func (k *Keyboard) tap(mask, usage uint8) error {
	press := [reportLen]uint8{0: mask, 2: usage}
	if err := k.send(press); err != nil {
		return err
	}
	k.sleep(keyDelay)
	return k.send([reportLen]uint8{})
}

func (k *Keyboard) send(report [reportLen]uint8) error {
	if _, err := k.w.Write(report[:]); err != nil {
		return fmt.Errorf("gadget: write report: %w", err)
	}
	return nil
}

// deadlineWriter bounds each write so an unread gadget endpoint
// cannot wedge the tick loop.
type deadlineWriter struct {
	f *os.File
}

func (w deadlineWriter) Write(p []byte) (int, error) {
	w.f.SetWriteDeadline(time.Now().Add(writeDeadline))
	return w.f.Write(p)
}
