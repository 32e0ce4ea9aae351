package led

import "fmt"

// Color is a logical RGB triple. It is stored as configured and only
// scaled transiently for animation; channel reordering for the wire
// format happens in the pixel driver.
type Color struct {
	R, G, B uint8
}

// Scale returns the color dimmed to level/255 brightness.
func (c Color) Scale(level uint8) Color {
	return Color{
		R: uint8(uint16(c.R) * uint16(level) / 255),
		G: uint8(uint16(c.G) * uint16(level) / 255),
		B: uint8(uint16(c.B) * uint16(level) / 255),
	}
}

// String returns "R,G,B".
func (c Color) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// Order names a channel order used by an LED's wire format.
type Order string

const (
	// OrderRGB passes channels through unchanged.
	OrderRGB Order = "RGB"

	// OrderGRB is the WS2812 order.
	OrderGRB Order = "GRB"

	// OrderBGR is used by some strips.
	OrderBGR Order = "BGR"
)

// Apply reorders a logical RGB color into the wire order. Unknown
// orders pass through as RGB.
func (o Order) Apply(c Color) [3]uint8 {
	switch o {
	case OrderGRB:
		return [3]uint8{c.G, c.R, c.B}
	case OrderBGR:
		return [3]uint8{c.B, c.G, c.R}
	default:
		return [3]uint8{c.R, c.G, c.B}
	}
}
