package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/xxxsen/drinkmap/internal/geo"
	"github.com/xxxsen/drinkmap/internal/projection"
)

func projectPolygons(polys []geo.Polygon, proj projection.IProjector) []Polygon {
	out := make([]Polygon, 0, len(polys))
	for _, poly := range polys {
		pp := Polygon{Rings: make([][]Vec, 0, len(poly.Rings))}
		for _, ring := range poly.Rings {
			rr := make([]Vec, 0, len(ring))
			for _, pt := range ring {
				x, y := proj.Project(pt)
				rr = append(rr, Vec{X: x, Y: y})
			}
			pp.Rings = append(pp.Rings, rr)
		}
		out = append(out, pp)
	}
	return out
}

// svgPath renders projected rings as SVG path data, one closed subpath per ring.
func svgPath(polys []Polygon) string {
	var sb strings.Builder
	for _, poly := range polys {
		for _, ring := range poly.Rings {
			if len(ring) == 0 {
				continue
			}
			for i, v := range ring {
				if i == 0 {
					sb.WriteByte('M')
				} else {
					sb.WriteByte('L')
				}
				sb.WriteString(formatCoord(v.X))
				sb.WriteByte(',')
				sb.WriteString(formatCoord(v.Y))
			}
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

func formatCoord(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
