package encoder

import "math"

const (
	MinIntensity = 0.1
	MaxIntensity = 1.0
)

// SqrtScale maps [0, max] onto [MinIntensity, MaxIntensity] through a square
// root, so intensity tracks area rather than raw value.
type SqrtScale struct {
	max     float64
	sqrtMax float64
}

func NewSqrtScale(max float64) SqrtScale {
	if math.IsNaN(max) || math.IsInf(max, 0) || max < 0 {
		max = 0
	}
	return SqrtScale{max: max, sqrtMax: math.Sqrt(max)}
}

func (s SqrtScale) Max() float64 {
	return s.max
}

// Degenerate reports whether the domain collapsed to a single point.
func (s SqrtScale) Degenerate() bool {
	return s.sqrtMax == 0
}

// Intensity is total: NaN and infinities count as 0 and values outside the
// domain are clamped to it. A degenerate domain always yields MinIntensity.
func (s SqrtScale) Intensity(v float64) float64 {
	v = Sanitize(v)
	if s.Degenerate() {
		return MinIntensity
	}
	if v > s.max {
		v = s.max
	}
	return MinIntensity + (MaxIntensity-MinIntensity)*math.Sqrt(v)/s.sqrtMax
}

// Sanitize maps values the scale cannot place to 0.
func Sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
