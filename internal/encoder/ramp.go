package encoder

import (
	"image/color"
	"math"
)

// buGn is the nine-class blue-green sequential scheme, light to dark.
var buGn = [...][3]float64{
	{0xf7, 0xfc, 0xfd},
	{0xe5, 0xf5, 0xf9},
	{0xcc, 0xec, 0xe6},
	{0x99, 0xd8, 0xc9},
	{0x66, 0xc2, 0xa4},
	{0x41, 0xae, 0x76},
	{0x23, 0x8b, 0x45},
	{0x00, 0x6d, 0x2c},
	{0x00, 0x44, 0x1b},
}

// BuGn samples the blue-green ramp at t in [0, 1] using a uniform cubic
// B-spline through the scheme stops. t is clamped.
func BuGn(t float64) color.RGBA {
	if math.IsNaN(t) {
		t = 0
	}
	return color.RGBA{
		R: channel(basisSpline(t, 0)),
		G: channel(basisSpline(t, 1)),
		B: channel(basisSpline(t, 2)),
		A: 0xff,
	}
}

func basisSpline(t float64, ch int) float64 {
	n := len(buGn) - 1
	var i int
	switch {
	case t <= 0:
		t, i = 0, 0
	case t >= 1:
		t, i = 1, n-1
	default:
		i = int(math.Floor(t * float64(n)))
	}
	v1 := buGn[i][ch]
	v2 := buGn[i+1][ch]
	v0 := 2*v1 - v2
	if i > 0 {
		v0 = buGn[i-1][ch]
	}
	v3 := 2*v2 - v1
	if i < n-1 {
		v3 = buGn[i+2][ch]
	}
	return basis((t-float64(i)/float64(n))*float64(n), v0, v1, v2, v3)
}

func basis(t1, v0, v1, v2, v3 float64) float64 {
	t2 := t1 * t1
	t3 := t2 * t1
	return ((1-3*t1+3*t2-t3)*v0 +
		(4-6*t2+3*t3)*v1 +
		(1+3*t1+3*t2-3*t3)*v2 +
		t3*v3) / 6
}

func channel(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
