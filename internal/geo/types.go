package geo

// Point is a WGS84 coordinate in degrees.
type Point struct {
	Lon float64
	Lat float64
}

// Polygon follows the GeoJSON convention: the first ring is the outer
// boundary, the following rings are holes.
type Polygon struct {
	Rings [][]Point
}

// Feature is one named country boundary. Polygons is empty for geometry
// types that cannot be filled (points, lines, null geometry).
type Feature struct {
	Name     string
	Polygons []Polygon
}

// RingCount returns the number of rings across all polygons.
func (f Feature) RingCount() int {
	n := 0
	for _, p := range f.Polygons {
		n += len(p.Rings)
	}
	return n
}
