// Package theme holds the theme context that themed widgets resolve their
// colours from.
//
// A Theme is a plain value. It is built once at start-up, replaced as a whole
// when the theme changes (see Store) and only ever read by widgets.
package theme

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/dynatint/internal/colour"
)

// ErrIncompleteTheme is returned when a required base colour is missing.
var ErrIncompleteTheme = errors.New("incomplete theme")

// darkVariantAmount is how much PrimaryDark and AccentDark are darkened when
// the theme does not set them.
const darkVariantAmount = 0.2

// Theme is a set of base colours plus the default background-aware mode.
//
// The tint fields are optional overrides. When Unknown, the tint is derived
// from the matching base colour with colour.TintColor.
type Theme struct {
	Name string `yaml:"name,omitempty"`

	Background  colour.Color `yaml:"background"`
	Surface     colour.Color `yaml:"surface"`
	Primary     colour.Color `yaml:"primary"`
	PrimaryDark colour.Color `yaml:"primary_dark,omitempty"`
	Accent      colour.Color `yaml:"accent"`
	AccentDark  colour.Color `yaml:"accent_dark,omitempty"`
	Error       colour.Color `yaml:"error,omitempty"`

	TintBackground  colour.Color `yaml:"tint_background,omitempty"`
	TintSurface     colour.Color `yaml:"tint_surface,omitempty"`
	TintPrimary     colour.Color `yaml:"tint_primary,omitempty"`
	TintPrimaryDark colour.Color `yaml:"tint_primary_dark,omitempty"`
	TintAccent      colour.Color `yaml:"tint_accent,omitempty"`
	TintAccentDark  colour.Color `yaml:"tint_accent_dark,omitempty"`
	TintError       colour.Color `yaml:"tint_error,omitempty"`

	// BackgroundAware is the mode widgets in ModeAuto follow.
	BackgroundAware colour.Mode `yaml:"background_aware"`

	// HideDividers asks dividers to blend into their background.
	HideDividers bool `yaml:"hide_dividers,omitempty"`
}

// Default returns the built-in dark theme.
func Default() Theme {
	return Theme{
		Name:            "default",
		Background:      colour.ARGB(0xFF121212),
		Surface:         colour.ARGB(0xFF1E1E1E),
		Primary:         colour.ARGB(0xFF3F51B5),
		PrimaryDark:     colour.ARGB(0xFF303F9F),
		Accent:          colour.ARGB(0xFFE91E63),
		AccentDark:      colour.ARGB(0xFFC2185B),
		Error:           colour.ARGB(0xFFF44336),
		BackgroundAware: colour.ModeEnable,
	}
}

// Validate checks that the required base colours are present.
func (t Theme) Validate() error {
	required := []struct {
		name  string
		color colour.Color
	}{
		{"background", t.Background},
		{"surface", t.Surface},
		{"primary", t.Primary},
		{"accent", t.Accent},
	}
	for _, r := range required {
		if !r.color.Known() {
			return fmt.Errorf("%w: %s colour is not set", ErrIncompleteTheme, r.name)
		}
	}
	if t.BackgroundAware == colour.ModeAuto {
		return fmt.Errorf("%w: background_aware cannot be auto", ErrIncompleteTheme)
	}
	return nil
}

// Resolve returns the colour for a colour type. None, Custom and unknown
// types resolve to colour.Unknown.
func (t Theme) Resolve(ct ColorType) colour.Color {
	switch ct {
	case Background:
		return t.Background
	case Surface:
		return t.Surface
	case Primary:
		return t.Primary
	case PrimaryDark:
		return t.primaryDark()
	case Accent:
		return t.Accent
	case AccentDark:
		return t.accentDark()
	case Error:
		return t.Error
	case TintBackground:
		return t.TintBackground.Or(colour.TintColor(t.Background))
	case TintSurface:
		return t.TintSurface.Or(colour.TintColor(t.Surface))
	case TintPrimary:
		return t.TintPrimary.Or(colour.TintColor(t.Primary))
	case TintPrimaryDark:
		return t.TintPrimaryDark.Or(colour.TintColor(t.primaryDark()))
	case TintAccent:
		return t.TintAccent.Or(colour.TintColor(t.Accent))
	case TintAccentDark:
		return t.TintAccentDark.Or(colour.TintColor(t.accentDark()))
	case TintError:
		return t.TintError.Or(colour.TintColor(t.Error))
	}
	return colour.Unknown
}

func (t Theme) primaryDark() colour.Color {
	return t.PrimaryDark.Or(colour.Darken(t.Primary, darkVariantAmount))
}

func (t Theme) accentDark() colour.Color {
	return t.AccentDark.Or(colour.Darken(t.Accent, darkVariantAmount))
}

// ResolveMode turns a widget's mode into the one the resolver should run.
//
// ModeAuto follows the theme default. ModeSameBackground stays active only
// when contrastWith is the theme background and is disabled otherwise.
func (t Theme) ResolveMode(mode colour.Mode, contrastWith colour.Color) colour.Mode {
	if mode == colour.ModeAuto {
		mode = t.BackgroundAware
		if mode == colour.ModeAuto {
			mode = colour.ModeEnable
		}
	}
	if mode == colour.ModeSameBackground && contrastWith != t.Background {
		return colour.ModeDisable
	}
	return mode
}

// ContrastColor resolves c against contrastWith using the theme's view of mode.
func (t Theme) ContrastColor(c, contrastWith colour.Color, mode colour.Mode) colour.Color {
	return colour.ResolveContrast(c, contrastWith, t.ResolveMode(mode, contrastWith))
}
