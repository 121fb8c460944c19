package render

import "math"

// EaseFunc maps normalized elapsed time in [0, 1] to progress in [0, 1].
type EaseFunc func(t float64) float64

func EaseLinear(t float64) float64 {
	return t
}

func EaseSqrt(t float64) float64 {
	return math.Sqrt(t)
}

// EaseCubicInOut is symmetric cubic easing, the usual default for UI transitions.
func EaseCubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}
