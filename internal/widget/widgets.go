package widget

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jmylchreest/dynatint/internal/colour"
	"github.com/jmylchreest/dynatint/internal/theme"
)

// ErrUnknownWidget is returned by New for an unregistered widget kind.
var ErrUnknownWidget = errors.New("unknown widget kind")

// StateList is a colour per interaction state.
type StateList struct {
	Disabled colour.Color
	Normal   colour.Color
	Pressed  colour.Color
}

// Slot is one named colour a widget draws with.
type Slot struct {
	Name  string
	Color colour.Color
}

// Widget is anything that owns a Policy and derives colours from it.
type Widget interface {
	Apply(th theme.Theme)
	Color(resolve bool) colour.Color
	ContrastWithColor() colour.Color
	Slots() []Slot
}

func stateSlots(prefix string, s StateList) []Slot {
	return []Slot{
		{Name: prefix + ".normal", Color: s.Normal},
		{Name: prefix + ".pressed", Color: s.Pressed},
		{Name: prefix + ".disabled", Color: s.Disabled},
	}
}

// Button is a text button. With TintBackground the button body takes the
// applied colour; otherwise it takes a tint of the background and the text
// carries the colour instead. Borderless buttons have no body.
type Button struct {
	*Policy
	Borderless     bool
	TintBackground bool
}

// ButtonConfig is the default configuration for buttons.
func ButtonConfig() Config {
	cfg := DefaultConfig()
	cfg.ColorType = theme.TintBackground
	return cfg
}

// NewButton creates a button.
func NewButton(cfg Config, th theme.Theme) *Button {
	return &Button{Policy: NewPolicy(cfg, th)}
}

// BackgroundColor returns the body colour, or transparent when borderless.
func (b *Button) BackgroundColor() colour.Color {
	if b.Borderless {
		return colour.Transparent
	}
	if b.TintBackground {
		return b.Color(true)
	}
	return colour.TintColor(b.ContrastWithColor())
}

// TextColors returns the text colour per state.
func (b *Button) TextColors() StateList {
	applied := b.Color(true)
	with := b.ContrastWithColor()

	switch {
	case b.Borderless:
		return StateList{Disabled: colour.TintColor(with), Normal: applied, Pressed: applied}
	case b.TintBackground:
		text := colour.TintColor(applied)
		return StateList{Disabled: with, Normal: text, Pressed: text}
	}
	text := colour.ResolveContrast(applied, colour.TintColor(with), colour.ModeEnable)
	return StateList{Disabled: with, Normal: text, Pressed: text}
}

// Slots implements Widget.
func (b *Button) Slots() []Slot {
	return append([]Slot{
		{Name: "applied", Color: b.Color(true)},
		{Name: "background", Color: b.BackgroundColor()},
	}, stateSlots("text", b.TextColors())...)
}

// ImageButton is an icon button. Borderless image buttons have no body.
type ImageButton struct {
	*Policy
	Borderless     bool
	TintBackground bool
}

// ImageButtonConfig is the default configuration for image buttons.
func ImageButtonConfig() Config {
	cfg := DefaultConfig()
	cfg.ColorType = theme.Accent
	return cfg
}

// NewImageButton creates an image button.
func NewImageButton(cfg Config, th theme.Theme) *ImageButton {
	return &ImageButton{Policy: NewPolicy(cfg, th)}
}

// BackgroundColor returns the body colour, or transparent when borderless.
func (b *ImageButton) BackgroundColor() colour.Color {
	if b.Borderless {
		return colour.Transparent
	}
	if b.TintBackground {
		return b.Color(true)
	}
	return colour.TintColor(b.ContrastWithColor())
}

// ImageColors returns the icon tint per state.
func (b *ImageButton) ImageColors() StateList {
	applied := b.Color(true)
	if b.TintBackground && !b.Borderless {
		tint := colour.TintColor(applied)
		return StateList{Disabled: b.ContrastWithColor(), Normal: tint, Pressed: tint}
	}
	return StateList{Disabled: b.ContrastWithColor(), Normal: applied, Pressed: applied}
}

// Slots implements Widget.
func (b *ImageButton) Slots() []Slot {
	return append([]Slot{
		{Name: "applied", Color: b.Color(true)},
		{Name: "background", Color: b.BackgroundColor()},
	}, stateSlots("image", b.ImageColors())...)
}

// TextField is an editable text input. The applied colour drives the cursor
// and underline.
type TextField struct {
	*Policy
}

// TextFieldConfig is the default configuration for text fields.
func TextFieldConfig() Config {
	cfg := DefaultConfig()
	cfg.ColorType = theme.Accent
	return cfg
}

// NewTextField creates a text field.
func NewTextField(cfg Config, th theme.Theme) *TextField {
	return &TextField{Policy: NewPolicy(cfg, th)}
}

// TextColor returns a text colour legible on the field's background.
func (f *TextField) TextColor() colour.Color {
	with := f.ContrastWithColor()
	return colour.ResolveContrast(colour.TintColor(with), with, colour.ModeEnable)
}

// HighlightColor returns the selection highlight, kept legible against the
// text drawn on top of it.
func (f *TextField) HighlightColor() colour.Color {
	text := f.TextColor()
	return colour.ResolveContrast(text, text, colour.ModeEnable)
}

// Slots implements Widget.
func (f *TextField) Slots() []Slot {
	return []Slot{
		{Name: "applied", Color: f.Color(true)},
		{Name: "text", Color: f.TextColor()},
		{Name: "highlight", Color: f.HighlightColor()},
	}
}

// ImageView is a tinted image. With colour type None it is not tinted, even
// when a colour is configured.
type ImageView struct {
	*Policy
}

// NewImageView creates an image view.
func NewImageView(cfg Config, th theme.Theme) *ImageView {
	return &ImageView{Policy: NewPolicy(cfg, th)}
}

// TintColor returns the image tint, or Unknown when the image is untinted.
func (v *ImageView) TintColor() colour.Color {
	if v.Config().ColorType == theme.None {
		return colour.Unknown
	}
	return v.Color(true)
}

// Slots implements Widget.
func (v *ImageView) Slots() []Slot {
	return []Slot{{Name: "tint", Color: v.TintColor()}}
}

// ItemView is a list row with a tinted icon and an optional divider below it.
type ItemView struct {
	*Policy
	ShowDivider bool
}

// ItemViewConfig is the default configuration for item views.
func ItemViewConfig() Config {
	cfg := DefaultConfig()
	cfg.ColorType = theme.Primary
	return cfg
}

// NewItemView creates an item view.
func NewItemView(cfg Config, th theme.Theme) *ItemView {
	return &ItemView{Policy: NewPolicy(cfg, th)}
}

// IconColor returns the icon tint. An explicit colour wins over the colour
// type; a custom type without a colour leaves the icon untinted.
func (v *ItemView) IconColor() colour.Color {
	cfg := v.Config()
	c := cfg.Color
	if !c.Known() {
		if cfg.ColorType == theme.Custom {
			return colour.Unknown
		}
		c = v.Theme().Resolve(cfg.ColorType)
	}
	if !v.IsBackgroundAware() {
		return c
	}
	return colour.ResolveContrast(c, v.ContrastWithColor(), colour.ModeEnable)
}

// DividerColor returns the divider line, or Unknown when it is hidden.
func (v *ItemView) DividerColor() colour.Color {
	if !v.ShowDivider {
		return colour.Unknown
	}
	cfg := DefaultConfig()
	cfg.ContrastWithColorType = v.Config().ContrastWithColorType
	cfg.ContrastWithColor = v.Config().ContrastWithColor
	cfg.BackgroundAware = v.Config().BackgroundAware
	return NewDivider(cfg, v.Theme()).LineColor()
}

// Slots implements Widget.
func (v *ItemView) Slots() []Slot {
	return []Slot{
		{Name: "icon", Color: v.IconColor()},
		{Name: "divider", Color: v.DividerColor()},
	}
}

// Divider is a separator line. Unconfigured dividers use the background tint.
type Divider struct {
	*Policy
}

// NewDivider creates a divider.
func NewDivider(cfg Config, th theme.Theme) *Divider {
	if cfg.ColorType == theme.None && !cfg.Color.Known() {
		cfg.ColorType = theme.TintBackground
	}
	return &Divider{Policy: NewPolicy(cfg, th)}
}

// LineColor returns the line colour. When the theme hides dividers the line
// takes the background colour and disappears.
func (d *Divider) LineColor() colour.Color {
	if d.Theme().HideDividers && d.ContrastWithColor().Known() {
		return d.ContrastWithColor()
	}
	return d.Color(true)
}

// Slots implements Widget.
func (d *Divider) Slots() []Slot {
	return []Slot{{Name: "line", Color: d.LineColor()}}
}

// PopupBackground is the body of a popup, drawn on the theme surface.
type PopupBackground struct {
	*Policy
}

// PopupBackgroundConfig is the default configuration for popups.
func PopupBackgroundConfig() Config {
	cfg := DefaultConfig()
	cfg.ContrastWithColorType = theme.Surface
	return cfg
}

// NewPopupBackground creates a popup background.
func NewPopupBackground(cfg Config, th theme.Theme) *PopupBackground {
	return &PopupBackground{Policy: NewPolicy(cfg, th)}
}

// Slots implements Widget.
func (p *PopupBackground) Slots() []Slot {
	return []Slot{
		{Name: "background", Color: p.ContrastWithColor()},
		{Name: "applied", Color: p.Color(true)},
	}
}

type factory struct {
	config func() Config
	build  func(Config, theme.Theme) Widget
}

var factories = map[string]factory{
	"button": {ButtonConfig, func(c Config, t theme.Theme) Widget { return NewButton(c, t) }},
	"borderless-button": {ButtonConfig, func(c Config, t theme.Theme) Widget {
		b := NewButton(c, t)
		b.Borderless = true
		return b
	}},
	"tinted-button": {ButtonConfig, func(c Config, t theme.Theme) Widget {
		b := NewButton(c, t)
		b.TintBackground = true
		return b
	}},
	"image-button": {ImageButtonConfig, func(c Config, t theme.Theme) Widget { return NewImageButton(c, t) }},
	"borderless-image-button": {ImageButtonConfig, func(c Config, t theme.Theme) Widget {
		b := NewImageButton(c, t)
		b.Borderless = true
		return b
	}},
	"item-view": {ItemViewConfig, func(c Config, t theme.Theme) Widget {
		v := NewItemView(c, t)
		v.ShowDivider = true
		return v
	}},
	"text-field": {TextFieldConfig, func(c Config, t theme.Theme) Widget { return NewTextField(c, t) }},
	"image-view": {DefaultConfig, func(c Config, t theme.Theme) Widget { return NewImageView(c, t) }},
	"divider":    {DefaultConfig, func(c Config, t theme.Theme) Widget { return NewDivider(c, t) }},
	"popup":      {PopupBackgroundConfig, func(c Config, t theme.Theme) Widget { return NewPopupBackground(c, t) }},
}

// Kinds returns the registered widget kinds, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(factories))
	for k := range factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// ConfigFor returns the default configuration for a widget kind.
func ConfigFor(kind string) (Config, error) {
	f, ok := factories[kind]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownWidget, kind)
	}
	return f.config(), nil
}

// New builds a widget of the given kind.
func New(kind string, cfg Config, th theme.Theme) (Widget, error) {
	f, ok := factories[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWidget, kind)
	}
	return f.build(cfg, th), nil
}
