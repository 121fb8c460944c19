package output

import "strconv"

// Canvas is the logical drawing area. Shapes are drawn in [0,Width]x[0,Height]
// and the visible area extends Padding beyond it on every side.
type Canvas struct {
	Width   float64
	Height  float64
	Padding float64
}

// ViewBox returns the SVG viewBox attribute value.
func (c Canvas) ViewBox() string {
	return num(-c.Padding) + " " + num(-c.Padding) + " " +
		num(c.Width+2*c.Padding) + " " + num(c.Height+2*c.Padding)
}

// OuterSize is the padded canvas size.
func (c Canvas) OuterSize() (float64, float64) {
	return c.Width + 2*c.Padding, c.Height + 2*c.Padding
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
