// Package colour provides the ARGB colour value used across dynatint and the
// background-aware contrast resolution built on top of it.
package colour

import (
	"fmt"
	"image/color"
)

// Color is an immutable 32-bit ARGB colour.
//
// The zero value is Unknown, a sentinel that is disjoint from every ARGB
// value (including fully transparent black). Colors are comparable with ==.
type Color struct {
	argb  uint32
	known bool
}

// Unknown is the reserved "no colour" sentinel.
var Unknown Color

var (
	// Black is opaque black.
	Black = ARGB(0xFF000000)
	// White is opaque white.
	White = ARGB(0xFFFFFFFF)
	// Transparent is fully transparent black. It is a known colour.
	Transparent = ARGB(0x00000000)
)

// ARGB returns the colour for a packed 0xAARRGGBB value.
func ARGB(v uint32) Color {
	return Color{argb: v, known: true}
}

// NRGBA returns the colour for non-premultiplied channel values.
func NRGBA(r, g, b, a uint8) Color {
	return ARGB(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromColor converts any image/color value to a Color.
// A nil colour converts to Unknown.
func FromColor(c color.Color) Color {
	if c == nil {
		return Unknown
	}
	if cc, ok := c.(Color); ok {
		return cc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NRGBA(n.R, n.G, n.B, n.A)
}

// Known reports whether c holds a real colour rather than Unknown.
func (c Color) Known() bool {
	return c.known
}

// IsZero reports whether c is Unknown. Encoders use it for omitempty.
func (c Color) IsZero() bool {
	return !c.known
}

// Value returns the packed 0xAARRGGBB value. Unknown returns 0.
func (c Color) Value() uint32 {
	return c.argb
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c.argb >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c.argb >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c.argb >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c.argb) }

// NRGBA returns the colour as a non-premultiplied image/color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements color.Color. Unknown reports fully transparent black.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Opaque reports whether the alpha channel is fully opaque.
func (c Color) Opaque() bool {
	return c.known && c.A() == 0xFF
}

// Hex returns "#RRGGBB" for opaque colours and "#AARRGGBB" otherwise.
// Unknown is rendered as "unknown".
func (c Color) Hex() string {
	if !c.known {
		return unknownName
	}
	if c.A() == 0xFF {
		return fmt.Sprintf("#%06x", c.argb&0x00FFFFFF)
	}
	return fmt.Sprintf("#%08x", c.argb)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(alpha uint8) Color {
	if !c.known {
		return c
	}
	return ARGB(c.argb&0x00FFFFFF | uint32(alpha)<<24)
}

// Or returns c when known and fallback otherwise.
func (c Color) Or(fallback Color) Color {
	if c.known {
		return c
	}
	return fallback
}
