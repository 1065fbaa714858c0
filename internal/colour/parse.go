package colour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

const unknownName = "unknown"

// ErrInvalidColor is returned when a string is not a recognised colour.
var ErrInvalidColor = errors.New("invalid colour")

// Parse parses a colour string.
//
// Accepted forms:
//   - "#RGB", "#ARGB", "#RRGGBB", "#AARRGGBB" (also with a "0x" prefix)
//   - SVG 1.1 colour keywords such as "rebeccapurple" or "white"
//   - "unknown" or "none", which yield Unknown
func Parse(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))

	switch {
	case v == "":
		return Unknown, fmt.Errorf("%w: empty string", ErrInvalidColor)
	case v == unknownName || v == "none":
		return Unknown, nil
	case strings.HasPrefix(v, "#"):
		return parseHex(s, v[1:])
	case strings.HasPrefix(v, "0x"):
		return parseHex(s, v[2:])
	}

	if named, ok := colornames.Map[v]; ok {
		return NRGBA(named.R, named.G, named.B, named.A), nil
	}

	return Unknown, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// MustParse is like Parse but panics on error. Intended for constants.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHex decodes the hex digits of a colour. original is used for errors.
func parseHex(original, digits string) (Color, error) {
	switch len(digits) {
	case 3, 4:
		// Short forms double every digit: "f0a" -> "ff00aa".
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	case 6, 8:
	default:
		return Unknown, fmt.Errorf("%w: %q has %d hex digits", ErrInvalidColor, original, len(digits))
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Unknown, fmt.Errorf("%w: %q: %w", ErrInvalidColor, original, err)
	}

	if len(digits) == 6 {
		v |= 0xFF000000
	}
	return ARGB(uint32(v)), nil
}
