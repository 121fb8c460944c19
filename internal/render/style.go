package render

import (
	"fmt"
	"image/color"
	"math"
)

// Style is the part of a shape's look that reacts to interaction.
type Style struct {
	Opacity     float64
	Stroke      color.RGBA
	StrokeWidth float64
}

var (
	// BaseStyle is applied to every shape at bind time and restored on leave.
	BaseStyle = Style{
		Opacity:     0.8,
		Stroke:      color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		StrokeWidth: 0.5,
	}
	// HoverStyle highlights the focused shape.
	HoverStyle = Style{
		Opacity:     1,
		Stroke:      color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff},
		StrokeWidth: 1.5,
	}
)

// StrokeHex formats the stroke color as #rrggbb.
func (s Style) StrokeHex() string {
	return fmt.Sprintf("#%02x%02x%02x", s.Stroke.R, s.Stroke.G, s.Stroke.B)
}

// Lerp interpolates between a and b; t is expected in [0, 1].
func Lerp(a, b Style, t float64) Style {
	return Style{
		Opacity:     lerp(a.Opacity, b.Opacity, t),
		Stroke:      lerpRGBA(a.Stroke, b.Stroke, t),
		StrokeWidth: lerp(a.StrokeWidth, b.StrokeWidth, t),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	ch := func(x, y uint8) uint8 {
		return uint8(math.Round(lerp(float64(x), float64(y), t)))
	}
	return color.RGBA{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: ch(a.A, b.A)}
}
