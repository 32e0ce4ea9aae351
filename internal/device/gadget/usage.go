package gadget

// USB HID keyboard/keypad usage codes (USB HID Usage Tables §10) and
// the modifier bitmasks used in byte 0 of the boot keyboard report.

const (
	modLeftCtrl  = 0x01
	modLeftShift = 0x02
	modLeftAlt   = 0x04
	modLeftGUI   = 0x08
)

const (
	usageA = 0x04 // ..Z contiguous
	usage1 = 0x1E // ..9 contiguous
	usage0 = 0x27

	usageEnter      = 0x28
	usageEscape     = 0x29
	usageBackspace  = 0x2A
	usageTab        = 0x2B
	usageSpace      = 0x2C
	usageMinus      = 0x2D
	usageEqual      = 0x2E
	usageLeftBrace  = 0x2F
	usageRightBrace = 0x30
	usageBackslash  = 0x31
	usageSemicolon  = 0x33
	usageQuote      = 0x34
	usageGrave      = 0x35
	usageComma      = 0x36
	usagePeriod     = 0x37
	usageSlash      = 0x38

	usageHome     = 0x4A
	usagePageUp   = 0x4B
	usageDelete   = 0x4C
	usageEnd      = 0x4D
	usagePageDown = 0x4E
	usageRight    = 0x4F
	usageLeft     = 0x50
	usageDown     = 0x51
	usageUp       = 0x52
)
