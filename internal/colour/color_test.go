package colour

import (
	"errors"
	"image/color"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{name: "rrggbb", input: "#1a2b3c", want: ARGB(0xFF1A2B3C)},
		{name: "aarrggbb", input: "#801a2b3c", want: ARGB(0x801A2B3C)},
		{name: "short rgb", input: "#f0a", want: ARGB(0xFFFF00AA)},
		{name: "short argb", input: "#8f0a", want: ARGB(0x88FF00AA)},
		{name: "0x prefix", input: "0xFF000000", want: Black},
		{name: "upper case", input: "#FFFFFF", want: White},
		{name: "whitespace", input: "  #ffffff ", want: White},
		{name: "named", input: "White", want: White},
		{name: "named rebeccapurple", input: "rebeccapurple", want: ARGB(0xFF663399)},
		{name: "unknown", input: "unknown", want: Unknown},
		{name: "none", input: "none", want: Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", "#12", "#12345", "#gggggg", "notacolour", "0x1234567890"} {
		t.Run(input, func(t *testing.T) {
			if _, err := Parse(input); !errors.Is(err, ErrInvalidColor) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidColor", input, err)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{Black, "#000000"},
		{ARGB(0xFF1A2B3C), "#1a2b3c"},
		{ARGB(0x801A2B3C), "#801a2b3c"},
		{Transparent, "#00000000"},
		{Unknown, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.color.Hex(); got != tt.want {
			t.Errorf("Hex() = %q, want %q", got, tt.want)
		}
	}
}

func TestUnknownIsDisjoint(t *testing.T) {
	if Unknown == Transparent {
		t.Fatal("Unknown must differ from transparent black")
	}
	if Unknown.Known() {
		t.Error("Unknown.Known() = true")
	}
	var zero Color
	if zero != Unknown {
		t.Error("zero value should be Unknown")
	}
}

func TestColorChannels(t *testing.T) {
	c := ARGB(0x11223344)
	if c.A() != 0x11 || c.R() != 0x22 || c.G() != 0x33 || c.B() != 0x44 {
		t.Errorf("channels = %#x %#x %#x %#x", c.A(), c.R(), c.G(), c.B())
	}
	if got := NRGBA(0x22, 0x33, 0x44, 0x11); got != c {
		t.Errorf("NRGBA() = %s, want %s", got, c)
	}
	if got := c.WithAlpha(0xFF); got != ARGB(0xFF223344) {
		t.Errorf("WithAlpha() = %s", got)
	}
}

func TestFromColor(t *testing.T) {
	if got := FromColor(color.RGBA{R: 255, A: 255}); got != ARGB(0xFFFF0000) {
		t.Errorf("FromColor(red) = %s", got)
	}
	if got := FromColor(nil); got != Unknown {
		t.Errorf("FromColor(nil) = %s, want unknown", got)
	}
	c := ARGB(0x7F102030)
	if got := FromColor(c); got != c {
		t.Errorf("FromColor(Color) = %s, want %s", got, c)
	}
}

func TestColorTextRoundTrip(t *testing.T) {
	for _, c := range []Color{Black, ARGB(0x40ABCDEF), Unknown} {
		text, err := c.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText() error = %v", err)
		}
		var got Color
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if got != c {
			t.Errorf("round trip %s -> %q -> %s", c, text, got)
		}
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for _, c := range []Color{Black, White, ARGB(0xFFFF0000), ARGB(0xFF336699), ARGB(0x80C0FFEE)} {
		h, s, l := c.HSL()
		if got := FromHSL(h, s, l, c.A()); got != c {
			t.Errorf("FromHSL(HSL(%s)) = %s", c, got)
		}
	}
}

func TestLightenDarken(t *testing.T) {
	grey := ARGB(0xFF808080)
	if got := Lighten(grey, 1); got != White {
		t.Errorf("Lighten(grey, 1) = %s, want white", got)
	}
	if got := Darken(grey, 1); got != Black {
		t.Errorf("Darken(grey, 1) = %s, want black", got)
	}
	if Luminance(Lighten(grey, 0.3)) <= Luminance(grey) {
		t.Error("Lighten did not increase luminance")
	}
}

func TestAdjustAlphaAndBlend(t *testing.T) {
	if got := AdjustAlpha(Black, 0.5); got.A() != 0x80 {
		t.Errorf("AdjustAlpha(black, 0.5) alpha = %#x, want 0x80", got.A())
	}
	if got := AdjustAlpha(Black, 3); got.A() != 0xFF {
		t.Errorf("AdjustAlpha clamps, got alpha %#x", got.A())
	}
	if got := Blend(Black, White, 0); got != Black {
		t.Errorf("Blend(t=0) = %s", got)
	}
	if got := Blend(Black, White, 1); got != White {
		t.Errorf("Blend(t=1) = %s", got)
	}
	if got := Blend(Unknown, White, 0.5); got != White {
		t.Errorf("Blend(unknown, white) = %s", got)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input string
		want  Mode
	}{
		{"auto", ModeAuto},
		{"", ModeAuto},
		{"disable", ModeDisable},
		{"Disabled", ModeDisable},
		{"enable", ModeEnable},
		{"same-background", ModeSameBackground},
		{"ENABLE_ON_SAME_BACKGROUND", ModeSameBackground},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.input)
		if err != nil {
			t.Errorf("ParseMode(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := ParseMode("sometimes"); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("ParseMode(sometimes) error = %v, want ErrInvalidMode", err)
	}
}
