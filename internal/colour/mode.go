package colour

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMode is returned when a background-aware mode cannot be parsed.
var ErrInvalidMode = errors.New("invalid background aware mode")

// Mode controls whether background-aware contrast adjustment runs.
type Mode int

const (
	// ModeAuto defers to the theme's default mode. The zero value.
	ModeAuto Mode = iota
	// ModeDisable never adjusts colours.
	ModeDisable
	// ModeEnable always keeps colours legible against their background.
	ModeEnable
	// ModeSameBackground adjusts only when the contrast colour is the theme
	// background itself.
	ModeSameBackground
)

var modeNames = map[Mode]string{
	ModeAuto:           "auto",
	ModeDisable:        "disable",
	ModeEnable:         "enable",
	ModeSameBackground: "same-background",
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode parses a mode name. Matching is case-insensitive and accepts
// "disabled", "enabled" and underscores in place of dashes.
func ParseMode(s string) (Mode, error) {
	v := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	switch v {
	case "auto", "":
		return ModeAuto, nil
	case "disable", "disabled", "off":
		return ModeDisable, nil
	case "enable", "enabled", "on":
		return ModeEnable, nil
	case "same-background", "enable-on-same-background":
		return ModeSameBackground, nil
	}
	return ModeAuto, fmt.Errorf("%w: %q (valid: auto, disable, enable, same-background)", ErrInvalidMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if _, ok := modeNames[m]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
