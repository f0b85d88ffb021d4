// Package style holds the value types stored in hint tables and the
// interpolators used while a hint transition is animated.
package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a packed RGBA color, 0xRRGGBBAA.
type Color uint32

// Transparent is the fallback for unset colors.
const Transparent Color = 0

// RGBA packs the four channels into a Color.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// RGB is an opaque color.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

func (c Color) R() uint8 { return uint8(c >> 24) }
func (c Color) G() uint8 { return uint8(c >> 16) }
func (c Color) B() uint8 { return uint8(c >> 8) }
func (c Color) A() uint8 { return uint8(c) }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&^0xFF | Color(a)
}

// IsVisible reports whether c has any opacity.
func (c Color) IsVisible() bool {
	return c.A() != 0
}

// Interpolated blends c toward to. Progress is clamped to [0, 1]; at 1 the
// result is exactly to.
func (c Color) Interpolated(to Color, progress float64) Color {
	switch {
	case progress <= 0:
		return c
	case progress >= 1:
		return to
	}
	return RGBA(
		lerpChannel(c.R(), to.R(), progress),
		lerpChannel(c.G(), to.G(), progress),
		lerpChannel(c.B(), to.B(), progress),
		lerpChannel(c.A(), to.A(), progress),
	)
}

func lerpChannel(from, to uint8, t float64) uint8 {
	return uint8(float64(from) + (float64(to)-float64(from))*t + 0.5)
}

func (c Color) String() string {
	if c.A() == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R(), c.G(), c.B(), c.A())
}

// ParseColor accepts #RGB, #RGBA, #RRGGBB and #RRGGBBAA, and "transparent".
func ParseColor(value string) (Color, error) {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "transparent") {
		return Transparent, nil
	}
	if !strings.HasPrefix(value, "#") {
		return Transparent, fmt.Errorf("color %q: missing #", value)
	}

	hex := value[1:]

	// Expand shorthand: #RGB → #RRGGBB, #RGBA → #RRGGBBAA
	if len(hex) == 3 || len(hex) == 4 {
		long := make([]byte, 0, 2*len(hex))
		for i := range len(hex) {
			long = append(long, hex[i], hex[i])
		}
		hex = string(long)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Transparent, fmt.Errorf("color %q: expected 3, 4, 6 or 8 hex digits", value)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Transparent, fmt.Errorf("color %q: %w", value, err)
	}
	return Color(v), nil
}
