package render

import (
	"time"

	"github.com/xxxsen/drinkmap/internal/encoder"
)

type State int

const (
	StateNormal State = iota
	StateHovered
)

func (s State) String() string {
	if s == StateHovered {
		return "hovered"
	}
	return "normal"
}

// Vec is a point in drawing coordinates.
type Vec struct {
	X float64
	Y float64
}

// Polygon is a projected polygon; Rings[0] is the outer ring.
type Polygon struct {
	Rings [][]Vec
}

type transition struct {
	from     Style
	to       Style
	start    time.Time
	duration time.Duration
	ease     EaseFunc
}

func (t *transition) at(now time.Time) (Style, bool) {
	if t.duration <= 0 {
		return t.to, true
	}
	p := float64(now.Sub(t.start)) / float64(t.duration)
	if p <= 0 {
		return t.from, false
	}
	if p >= 1 {
		return t.to, true
	}
	return Lerp(t.from, t.to, t.ease(p)), false
}

// Shape is the drawn form of one country feature.
type Shape struct {
	Name     string
	Polygons []Polygon
	Path     string
	Fill     encoder.Color
	State    State

	bounds [4]float64 // minX, minY, maxX, maxY
	style  Style
	tr     *transition
}

func newShape(name string) *Shape {
	return &Shape{Name: name, style: BaseStyle}
}

// StyleAt returns the style displayed at now, interpolating any running
// transition.
func (s *Shape) StyleAt(now time.Time) Style {
	if s.tr == nil {
		return s.style
	}
	st, _ := s.tr.at(now)
	return st
}

// Target is the style the shape settles on once its transition ends.
func (s *Shape) Target() Style {
	if s.tr == nil {
		return s.style
	}
	return s.tr.to
}

// Animating reports whether a transition is still running at now.
func (s *Shape) Animating(now time.Time) bool {
	if s.tr == nil {
		return false
	}
	_, done := s.tr.at(now)
	return !done
}

// Animate starts a transition towards to from whatever is displayed at now.
// A transition already in flight is replaced, never queued.
func (s *Shape) Animate(to Style, now time.Time, d time.Duration, ease EaseFunc) {
	if ease == nil {
		ease = EaseLinear
	}
	from := s.StyleAt(now)
	s.style = to
	s.tr = &transition{from: from, to: to, start: now, duration: d, ease: ease}
}

// Contains reports whether the drawing point lies inside the shape, holes
// excluded.
func (s *Shape) Contains(p Vec) bool {
	if p.X < s.bounds[0] || p.X > s.bounds[2] || p.Y < s.bounds[1] || p.Y > s.bounds[3] {
		return false
	}
	for _, poly := range s.Polygons {
		if polygonContains(poly, p) {
			return true
		}
	}
	return false
}

func polygonContains(poly Polygon, p Vec) bool {
	if len(poly.Rings) == 0 || !ringContains(poly.Rings[0], p) {
		return false
	}
	for _, hole := range poly.Rings[1:] {
		if ringContains(hole, p) {
			return false
		}
	}
	return true
}

// ringContains is the even-odd ray casting test.
func ringContains(ring []Vec, p Vec) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

func computeBounds(polys []Polygon) [4]float64 {
	b := [4]float64{1, 1, 0, 0} // empty: min > max
	first := true
	for _, poly := range polys {
		for _, ring := range poly.Rings {
			for _, v := range ring {
				if first {
					b = [4]float64{v.X, v.Y, v.X, v.Y}
					first = false
					continue
				}
				if v.X < b[0] {
					b[0] = v.X
				}
				if v.Y < b[1] {
					b[1] = v.Y
				}
				if v.X > b[2] {
					b[2] = v.X
				}
				if v.Y > b[3] {
					b[3] = v.Y
				}
			}
		}
	}
	return b
}
