package projection

import (
	"math"

	"github.com/xxxsen/drinkmap/internal/geo"
)

// DefaultScale is the conventional scale of the Natural Earth I projection
// for a 960px wide world map.
const DefaultScale = 175.295

// IProjector maps geographic coordinates to drawing coordinates.
type IProjector interface {
	Project(p geo.Point) (x float64, y float64)
}

// NaturalEarth1 is the Natural Earth I pseudo-cylindrical projection, scaled
// and translated so that (0, 0) lands on (TX, TY). y grows downwards.
type NaturalEarth1 struct {
	Scale float64
	TX    float64
	TY    float64
}

// NewNaturalEarth1 centres the projection on a width x height canvas.
func NewNaturalEarth1(width, height, scale float64) *NaturalEarth1 {
	if scale <= 0 {
		scale = DefaultScale
	}
	return &NaturalEarth1{Scale: scale, TX: width / 2, TY: height / 2}
}

func (n *NaturalEarth1) Project(p geo.Point) (float64, float64) {
	x, y := naturalEarth1Raw(p.Lon*math.Pi/180, p.Lat*math.Pi/180)
	return n.TX + n.Scale*x, n.TY - n.Scale*y
}

func naturalEarth1Raw(lambda, phi float64) (float64, float64) {
	phi2 := phi * phi
	phi4 := phi2 * phi2
	x := lambda * (0.8707 - 0.131979*phi2 + phi4*(-0.013791+phi4*(0.003971*phi2-0.001529*phi4)))
	y := phi * (1.007226 + phi2*(0.015085+phi4*(-0.044475+0.028874*phi2-0.005916*phi4)))
	return x, y
}
