package property

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Lerp implements Value by blending in linear RGB space via go-colorful
// Endpoints are returned exactly so keyframe values survive round trips
func (c RGB) Lerp(to Value, t float64) Value {
	o, ok := to.(RGB)
	if !ok {
		return c
	}
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return o
	}
	blended := c.colorful().BlendRgb(o.colorful(), t).Clamped()
	return fromColorful(blended)
}

// LerpHcl blends perceptually in HCL space, which avoids the desaturated
// midpoints RGB blending produces between distant hues
func (c RGB) LerpHcl(to RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return to
	}
	blended := c.colorful().BlendHcl(to.colorful(), t).Clamped()
	return fromColorful(blended)
}

// Scale multiplies each channel by factor (for fading)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGB{}
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// Tcell converts to a terminal color for direct cell styling
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// FromTcell extracts 8-bit channels from a tcell color
func FromTcell(tc tcell.Color) RGB {
	r, g, b := tc.RGB()
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// Hex returns the #rrggbb form
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(cf colorful.Color) RGB {
	r, g, b := cf.RGB255()
	return RGB{R: r, G: g, B: b}
}
