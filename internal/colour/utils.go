package colour

import (
	"image/color"
	"math"
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest). Alpha is ignored.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c color.Color) float64 {
	cc := FromColor(c)

	rf := gammaCorrect(float64(cc.R()) / 255.0)
	gf := gammaCorrect(float64(cc.G()) / 255.0)
	bf := gammaCorrect(float64(cc.B()) / 255.0)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 color.Color) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// IsDark reports whether white text reads better on c than black text does.
func IsDark(c Color) bool {
	return ContrastRatio(c, White) > ContrastRatio(c, Black)
}

// HSL returns hue (0-360), saturation (0-1) and lightness (0-1).
func (c Color) HSL() (h, s, l float64) {
	r := float64(c.R()) / 255.0
	g := float64(c.G()) / 255.0
	b := float64(c.B()) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l = (maxVal + minVal) / 2.0

	if delta == 0 {
		return 0, 0, l
	}

	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	h *= 60
	return h, s, l
}

// FromHSL converts HSL to a colour with the given alpha.
// s and l are clamped to [0, 1]; h wraps around the colour wheel.
func FromHSL(h, s, l float64, alpha uint8) Color {
	s = clamp01(s)
	l = clamp01(l)

	if s == 0 {
		// Achromatic (grey).
		v := channel(l)
		return NRGBA(v, v, v, alpha)
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return NRGBA(
		channel(hueToRGB(p, q, h+120)),
		channel(hueToRGB(p, q, h)),
		channel(hueToRGB(p, q, h-120)),
		alpha,
	)
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	t = math.Mod(t, 360)
	if t < 0 {
		t += 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// channel maps a unit value onto a clamped, rounded 8-bit channel.
func channel(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Lighten moves the HSL lightness of c towards white by amount (0-1).
func Lighten(c Color, amount float64) Color {
	if !c.known {
		return c
	}
	h, s, l := c.HSL()
	return FromHSL(h, s, l+(1-l)*clamp01(amount), c.A())
}

// Darken moves the HSL lightness of c towards black by amount (0-1).
func Darken(c Color, amount float64) Color {
	if !c.known {
		return c
	}
	h, s, l := c.HSL()
	return FromHSL(h, s, l-l*clamp01(amount), c.A())
}

// AdjustAlpha scales the alpha channel of c by factor, clamped to [0, 255].
func AdjustAlpha(c Color, factor float64) Color {
	if !c.known {
		return c
	}
	return c.WithAlpha(channel(float64(c.A()) / 255.0 * factor))
}

// Blend mixes a and b channel by channel; t=0 yields a and t=1 yields b.
// If either colour is Unknown the other one is returned.
func Blend(a, b Color, t float64) Color {
	switch {
	case !a.known:
		return b
	case !b.known:
		return a
	}
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x)*(1-t) + float64(y)*t))
	}
	return NRGBA(mix(a.R(), b.R()), mix(a.G(), b.G()), mix(a.B(), b.B()), mix(a.A(), b.A()))
}
