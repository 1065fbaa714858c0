package colour

const (
	// MinContrastRatio is the legibility threshold enforced by ResolveContrast.
	// It matches WCAG AA for normal text and is always reachable, because the
	// better of black or white reaches at least sqrt(21) against any colour.
	MinContrastRatio = 4.5

	// TintFactor is how far TintColor moves lightness towards the opposite end.
	TintFactor = 0.8

	// bisectSteps bounds the lightness search. 16 halvings resolve lightness
	// well below one 8-bit channel step.
	bisectSteps = 16
)

// Request is a single contrast resolution: Color should stay legible on
// ContrastWith, subject to Mode. It is built per call and never retained.
type Request struct {
	Color        Color
	ContrastWith Color
	Mode         Mode
}

// ResolveContrast returns a colour legible against contrastWith.
//
// c is returned unchanged when it is Unknown, when contrastWith is Unknown,
// when mode is ModeDisable, or when the pair already meets MinContrastRatio.
// Otherwise the hue and saturation of c are kept and its lightness is moved
// towards whichever of white or black contrasts more with contrastWith, by
// the smallest amount that meets the threshold. Alpha is always preserved.
//
// ModeAuto and ModeSameBackground behave like ModeEnable here; deciding
// whether they apply is the theme's job (see theme.Theme.ResolveMode).
func ResolveContrast(c, contrastWith Color, mode Mode) Color {
	return Request{Color: c, ContrastWith: contrastWith, Mode: mode}.Resolve()
}

// Resolve runs the request. See ResolveContrast.
func (r Request) Resolve() Color {
	c, with := r.Color, r.ContrastWith
	if !c.known || !with.known || r.Mode == ModeDisable {
		return c
	}
	// Ties pass, so feeding a resolved colour back in is a no-op.
	if ContrastRatio(c, with) >= MinContrastRatio {
		return c
	}

	h, s, l := c.HSL()

	// The extreme end always satisfies the threshold, so bisection keeps
	// "pass" as the invariant of the outer bound.
	pass := 1.0
	if ContrastRatio(Black, with) > ContrastRatio(White, with) {
		pass = 0.0
	}
	fail := l
	best := FromHSL(h, s, pass, c.A())

	for range bisectSteps {
		mid := (pass + fail) / 2
		candidate := FromHSL(h, s, mid, c.A())
		if ContrastRatio(candidate, with) >= MinContrastRatio {
			pass, best = mid, candidate
		} else {
			fail = mid
		}
	}

	return best
}

// TintColor returns a colour of opposite lightness to c: a light tint for a
// dark colour and a dark shade for a light one. Hue, saturation and alpha
// are kept. Unknown is returned unchanged.
func TintColor(c Color) Color {
	if !c.known {
		return c
	}
	if IsDark(c) {
		return Lighten(c, TintFactor)
	}
	return Darken(c, TintFactor)
}

// Legible reports whether c meets MinContrastRatio against contrastWith.
// Unknown on either side is never legible.
func Legible(c, contrastWith Color) bool {
	if !c.known || !contrastWith.known {
		return false
	}
	return ContrastRatio(c, contrastWith) >= MinContrastRatio
}
