package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"github.com/keywedge/keywedge/internal/led"
)

// fileConfig is the on-disk shape shared by the TOML loader and the
// legacy settings parser. Everything is optional; empty fields keep
// the defaults.
type fileConfig struct {
	DoublePressGap    string `toml:"double_press_gap"`
	LongPressDuration string `toml:"long_press_duration"`
	KeepAliveMin      string `toml:"keep_alive_min"`
	KeepAliveMax      string `toml:"keep_alive_max"`
	TickPeriod        string `toml:"tick_period"`
	ClickEdge         string `toml:"click_edge"`

	MacroColor     string `toml:"macro_color"`
	KeepAliveColor string `toml:"keep_alive_color"`
	CancelColor    string `toml:"cancel_color"`
	LEDOrder       string `toml:"led_order"`

	MacroText     string `toml:"macro_text"`
	MacroFile     string `toml:"macro_file"`
	KeepAliveText string `toml:"keep_alive_text"`
	KeepAliveFile string `toml:"keep_alive_file"`

	Backend   string `toml:"backend"`
	HIDDevice string `toml:"hid_device"`
	ButtonPin *int   `toml:"button_pin"`
	LEDPins   []int  `toml:"led_pins"`

	LogLevel string `toml:"log_level"`
}

// Load reads the configuration at path on top of the defaults. A
// .toml file is parsed as TOML; anything else is the legacy
// line-based "key: value" settings format the original device
// shipped with. An empty path returns the defaults.
func Load(path string, log *logrus.Entry) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	var fc fileConfig
	if filepath.Ext(path) == ".toml" {
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&fc); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	} else {
		fc, err = parseLegacy(data)
		if err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := fc.apply(&cfg, log); err != nil {
		return cfg, err
	}
	return cfg, cfg.validate()
}

// parseLegacy reads the line-based "key: value" settings format.
// '#' starts a comment; blank lines are ignored; unknown keys are
// load-time errors.
func parseLegacy(data []byte) (fileConfig, error) {
	var fc fileConfig
	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			return fc, fmt.Errorf("%w: line %d: %q", ErrBadSyntax, lineNo, line)
		}
		if err := fc.set(strings.ToLower(strings.TrimSpace(k)), strings.TrimSpace(v)); err != nil {
			return fc, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return fc, sc.Err()
}

// set assigns one legacy setting by key.
func (fc *fileConfig) set(k, v string) error {
	switch k {
	case "double_press_gap":
		fc.DoublePressGap = v
	case "long_press_duration":
		fc.LongPressDuration = v
	case "keep_alive_min":
		fc.KeepAliveMin = v
	case "keep_alive_max":
		fc.KeepAliveMax = v
	case "tick_period":
		fc.TickPeriod = v
	case "click_edge":
		fc.ClickEdge = v
	case "macro_color":
		fc.MacroColor = v
	case "keep_alive_color":
		fc.KeepAliveColor = v
	case "cancel_color":
		fc.CancelColor = v
	case "led_order":
		fc.LEDOrder = v
	case "macro_text":
		fc.MacroText = v
	case "macro_file":
		fc.MacroFile = v
	case "keep_alive_text":
		fc.KeepAliveText = v
	case "keep_alive_file":
		fc.KeepAliveFile = v
	case "backend":
		fc.Backend = v
	case "hid_device":
		fc.HIDDevice = v
	case "log_level":
		fc.LogLevel = v
	case "button_pin":
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: button_pin %q", ErrBadValue, v)
		}
		fc.ButtonPin = &n
	case "led_pins":
		for _, p := range strings.Split(v, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return fmt.Errorf("%w: led_pins %q", ErrBadValue, v)
			}
			fc.LEDPins = append(fc.LEDPins, n)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, k)
	}
	return nil
}

// apply overlays the file settings onto cfg. Durations and enums
// that fail to parse are errors; a bad color falls back to the
// default for that slot with a warning, so a typo in a cosmetic
// setting never bricks the device.
func (fc fileConfig) apply(cfg *Config, log *logrus.Entry) error {
	durs := []struct {
		raw  string
		name string
		dst  *time.Duration
	}{
		{fc.DoublePressGap, "double_press_gap", &cfg.DoublePressGap},
		{fc.LongPressDuration, "long_press_duration", &cfg.LongPressDuration},
		{fc.KeepAliveMin, "keep_alive_min", &cfg.KeepAliveMin},
		{fc.KeepAliveMax, "keep_alive_max", &cfg.KeepAliveMax},
		{fc.TickPeriod, "tick_period", &cfg.TickPeriod},
	}
	for _, d := range durs {
		if d.raw == "" {
			continue
		}
		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("%w: %s %q", ErrBadValue, d.name, d.raw)
		}
		*d.dst = v
	}

	if fc.ClickEdge != "" {
		edge, err := parseEdge(fc.ClickEdge)
		if err != nil {
			return err
		}
		cfg.ClickEdge = edge
	}

	colors := []struct {
		raw  string
		name string
		dst  *led.Color
	}{
		{fc.MacroColor, "macro_color", &cfg.MacroColor},
		{fc.KeepAliveColor, "keep_alive_color", &cfg.KeepAliveColor},
		{fc.CancelColor, "cancel_color", &cfg.CancelColor},
	}
	for _, c := range colors {
		if c.raw == "" {
			continue
		}
		v, err := parseColor(c.raw)
		if err != nil {
			log.WithField("setting", c.name).WithError(err).
				Warn("invalid color, keeping default")
			continue
		}
		*c.dst = v
	}

	if fc.LEDOrder != "" {
		order := led.Order(strings.ToUpper(strings.TrimSpace(fc.LEDOrder)))
		switch order {
		case led.OrderRGB, led.OrderGRB, led.OrderBGR:
			cfg.LEDOrder = order
		default:
			return fmt.Errorf("%w: led_order %q", ErrBadValue, fc.LEDOrder)
		}
	}

	if fc.MacroText != "" {
		cfg.MacroText = fc.MacroText
	}
	if fc.MacroFile != "" {
		cfg.MacroFile = fc.MacroFile
	}
	if fc.KeepAliveText != "" {
		cfg.KeepAliveText = fc.KeepAliveText
	}
	if fc.KeepAliveFile != "" {
		cfg.KeepAliveFile = fc.KeepAliveFile
	}
	if fc.Backend != "" {
		cfg.Backend = Backend(strings.ToLower(fc.Backend))
	}
	if fc.HIDDevice != "" {
		cfg.HIDDevice = fc.HIDDevice
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.ButtonPin != nil {
		cfg.ButtonPin = *fc.ButtonPin
	}
	if len(fc.LEDPins) > 0 {
		if len(fc.LEDPins) != 3 {
			return fmt.Errorf("%w: led_pins needs 3 pins, got %d", ErrBadValue, len(fc.LEDPins))
		}
		copy(cfg.LEDPins[:], fc.LEDPins)
	}
	return nil
}
