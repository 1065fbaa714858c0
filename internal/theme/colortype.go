package theme

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownColorType is returned when a colour type name is not recognised.
var ErrUnknownColorType = errors.New("unknown colour type")

// ColorType names a theme colour slot that a widget can follow.
type ColorType int

// Colour types. None and Custom never resolve against the theme: None means
// the widget is not themed, Custom means it carries its own colour.
const (
	None ColorType = iota
	Custom
	Background
	Surface
	Primary
	PrimaryDark
	Accent
	AccentDark
	Error
	TintBackground
	TintSurface
	TintPrimary
	TintPrimaryDark
	TintAccent
	TintAccentDark
	TintError
)

var colorTypeNames = []string{
	None:            "none",
	Custom:          "custom",
	Background:      "background",
	Surface:         "surface",
	Primary:         "primary",
	PrimaryDark:     "primary-dark",
	Accent:          "accent",
	AccentDark:      "accent-dark",
	Error:           "error",
	TintBackground:  "tint-background",
	TintSurface:     "tint-surface",
	TintPrimary:     "tint-primary",
	TintPrimaryDark: "tint-primary-dark",
	TintAccent:      "tint-accent",
	TintAccentDark:  "tint-accent-dark",
	TintError:       "tint-error",
}

// ColorTypes returns every colour type that resolves against a theme, in
// declaration order.
func ColorTypes() []ColorType {
	types := make([]ColorType, 0, len(colorTypeNames)-2)
	for ct := Background; int(ct) < len(colorTypeNames); ct++ {
		types = append(types, ct)
	}
	return types
}

// Themed reports whether ct resolves against the theme.
func (ct ColorType) Themed() bool {
	return ct != None && ct != Custom && ct.valid()
}

func (ct ColorType) valid() bool {
	return ct >= 0 && int(ct) < len(colorTypeNames)
}

// String implements fmt.Stringer.
func (ct ColorType) String() string {
	if ct.valid() {
		return colorTypeNames[ct]
	}
	return fmt.Sprintf("colortype(%d)", int(ct))
}

// ParseColorType parses a colour type name such as "accent" or "tint_surface".
func ParseColorType(s string) (ColorType, error) {
	v := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, name := range colorTypeNames {
		if name == v {
			return ColorType(i), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownColorType, s)
}

// MarshalText implements encoding.TextMarshaler.
func (ct ColorType) MarshalText() ([]byte, error) {
	if !ct.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColorType, int(ct))
	}
	return []byte(ct.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ct *ColorType) UnmarshalText(text []byte) error {
	parsed, err := ParseColorType(string(text))
	if err != nil {
		return err
	}
	*ct = parsed
	return nil
}
