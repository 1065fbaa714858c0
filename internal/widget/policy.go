// Package widget implements the themed colour policy shared by every widget.
//
// A Policy is attached to a widget by composition. It turns a Config (colour
// types, explicit colours, background-aware mode) plus the current theme into
// the colour the widget should actually draw with. Widgets then derive their
// secondary colours (background tints, text state lists) from that.
package widget

import (
	"github.com/jmylchreest/dynatint/internal/colour"
	"github.com/jmylchreest/dynatint/internal/theme"
)

// Config describes how a widget picks its colours.
//
// ColorType and ContrastWithColorType take precedence over Color and
// ContrastWithColor unless they are theme.None or theme.Custom.
type Config struct {
	ColorType             theme.ColorType `yaml:"color_type"`
	ContrastWithColorType theme.ColorType `yaml:"contrast_with_color_type"`
	Color                 colour.Color    `yaml:"color,omitempty"`
	ContrastWithColor     colour.Color    `yaml:"contrast_with_color,omitempty"`
	BackgroundAware       colour.Mode     `yaml:"background_aware"`
}

// DefaultConfig is the configuration of an untyped widget: no colour of its
// own, kept legible on the theme background, following the theme's mode.
func DefaultConfig() Config {
	return Config{
		ColorType:             theme.None,
		ContrastWithColorType: theme.Background,
		BackgroundAware:       colour.ModeAuto,
	}
}

// Policy resolves a widget's colours from its Config and a theme.
// It is not safe for concurrent use; each widget owns its own Policy.
type Policy struct {
	cfg   Config
	theme theme.Theme

	color        colour.Color
	contrastWith colour.Color
	applied      colour.Color
}

// NewPolicy creates a policy and applies th to it.
func NewPolicy(cfg Config, th theme.Theme) *Policy {
	p := &Policy{cfg: cfg}
	p.Apply(th)
	return p
}

// Apply resolves the colour types against th and recomputes the applied colour.
// Call it whenever the theme changes.
func (p *Policy) Apply(th theme.Theme) {
	p.theme = th

	p.color = p.cfg.Color
	if p.cfg.ColorType.Themed() {
		p.color = th.Resolve(p.cfg.ColorType)
	}

	p.contrastWith = p.cfg.ContrastWithColor
	if p.cfg.ContrastWithColorType.Themed() {
		p.contrastWith = th.Resolve(p.cfg.ContrastWithColorType)
	}

	p.update()
}

func (p *Policy) update() {
	p.applied = p.color
	if p.IsBackgroundAware() {
		p.applied = colour.ResolveContrast(p.color, p.contrastWith, colour.ModeEnable)
	}
}

// Config returns the current configuration.
func (p *Policy) Config() Config {
	return p.cfg
}

// Theme returns the theme last applied.
func (p *Policy) Theme() theme.Theme {
	return p.theme
}

// Color returns the applied colour when resolve is true and the configured
// colour otherwise. Either may be colour.Unknown.
func (p *Policy) Color(resolve bool) colour.Color {
	if resolve {
		return p.applied
	}
	return p.color
}

// ContrastWithColor returns the background the widget is kept legible on.
func (p *Policy) ContrastWithColor() colour.Color {
	return p.contrastWith
}

// IsBackgroundAware reports whether contrast adjustment is active for the
// current theme and contrast colour.
func (p *Policy) IsBackgroundAware() bool {
	return p.theme.ResolveMode(p.cfg.BackgroundAware, p.contrastWith) != colour.ModeDisable
}

// SetColorType switches the widget to follow a theme colour type.
func (p *Policy) SetColorType(ct theme.ColorType) {
	p.cfg.ColorType = ct
	p.Apply(p.theme)
}

// SetContrastWithColorType switches the background to a theme colour type.
func (p *Policy) SetContrastWithColorType(ct theme.ColorType) {
	p.cfg.ContrastWithColorType = ct
	p.Apply(p.theme)
}

// SetColor sets an explicit colour and marks the colour type as custom.
func (p *Policy) SetColor(c colour.Color) {
	p.cfg.ColorType = theme.Custom
	p.cfg.Color = c
	p.color = c
	p.update()
}

// SetContrastWithColor sets an explicit background colour and marks the
// contrast colour type as custom.
func (p *Policy) SetContrastWithColor(c colour.Color) {
	p.cfg.ContrastWithColorType = theme.Custom
	p.cfg.ContrastWithColor = c
	p.contrastWith = c
	p.update()
}

// SetBackgroundAware changes the background-aware mode.
func (p *Policy) SetBackgroundAware(mode colour.Mode) {
	p.cfg.BackgroundAware = mode
	p.update()
}
