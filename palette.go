package signal

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is a continuous color scale over [0, 1], defined by evenly spaced
// keypoints blended in CIE L*a*b*.
type Palette struct {
	Name  string
	stops []colorful.Color
}

// NewPalette builds a palette from hex keypoints such as "#440154".
// It panics on a malformed literal; palettes are package-level data.
func NewPalette(name string, hex ...string) Palette {
	stops := make([]colorful.Color, len(hex))
	for i, h := range hex {
		stops[i] = mustParseHex(h)
	}
	return Palette{Name: name, stops: stops}
}

func mustParseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("signal: palette: " + err.Error())
	}
	return c
}

// At returns the opaque color at position t. t is clamped to [0, 1] and every
// channel of the result lies in [0, 1].
func (p Palette) At(t float64) Color {
	switch len(p.stops) {
	case 0:
		return ColorNeutral
	case 1:
		return fromColorful(p.stops[0])
	}
	t = clamp01(t)
	span := float64(len(p.stops) - 1)
	i := int(t * span)
	if i >= len(p.stops)-1 {
		return fromColorful(p.stops[len(p.stops)-1])
	}
	local := t*span - float64(i)
	return fromColorful(p.stops[i].BlendLab(p.stops[i+1], local))
}

func fromColorful(c colorful.Color) Color {
	c = c.Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// Keypoints sampled from the matplotlib/d3 perceptual scales.
var (
	PaletteViridis = NewPalette("viridis",
		"#440154", "#482777", "#3f4a8a", "#31678e", "#26838f",
		"#1f9d8a", "#6cce5a", "#b6de2b", "#fee825")
	PaletteInferno = NewPalette("inferno",
		"#000004", "#1b0c41", "#4a0c6b", "#781c6d", "#a52c60",
		"#cf4446", "#ed6925", "#fb9b06", "#f7d13d", "#fcffa4")
	PalettePlasma = NewPalette("plasma",
		"#0d0887", "#41049d", "#6a00a8", "#8f0da4", "#b12a90",
		"#cc4778", "#e16462", "#f2844b", "#fca636", "#fcce25", "#f0f921")
	PaletteCool = NewPalette("cool",
		"#6e40aa", "#4c6edb", "#23abd8", "#1ddfa3", "#52f667", "#aff05b")
	PaletteRainbow = NewPalette("rainbow",
		"#6e40aa", "#bf3caf", "#fe4b83", "#ff7847", "#e2b72f", "#aff05b",
		"#52f667", "#1ddfa3", "#23abd8", "#4c6edb", "#6e40aa")
)

// PaletteFor returns the color scale used by a state's layout.
func PaletteFor(s State) Palette {
	switch s {
	case StateCircle:
		return PaletteViridis
	case StateHexagon:
		return PaletteCool
	case StateWave:
		return PaletteInferno
	case StateText:
		return PalettePlasma
	default:
		return PaletteRainbow
	}
}
