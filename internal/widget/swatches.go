package widget

import (
	"github.com/jmylchreest/dynatint/internal/colour"
)

// Swatch is one entry of a colour picker grid.
type Swatch struct {
	Color    colour.Color
	Selected bool
	// Border outlines the swatch so it stays visible on the container.
	Border colour.Color
}

// Swatches lays out a colour picker grid drawn on ContrastWith.
type Swatches struct {
	Colors       []colour.Color
	Selected     colour.Color
	ContrastWith colour.Color
}

// Items returns the swatches in order. With an Unknown ContrastWith the
// border is the swatch colour itself.
func (s Swatches) Items() []Swatch {
	items := make([]Swatch, len(s.Colors))
	for i, c := range s.Colors {
		items[i] = Swatch{
			Color:    c,
			Selected: s.Selected.Known() && c == s.Selected,
			Border:   colour.ResolveContrast(c, s.ContrastWith, colour.ModeEnable),
		}
	}
	return items
}

// Select marks c as selected if it is one of the swatches and reports
// whether it was found.
func (s *Swatches) Select(c colour.Color) bool {
	for _, sc := range s.Colors {
		if sc == c {
			s.Selected = c
			return true
		}
	}
	return false
}
