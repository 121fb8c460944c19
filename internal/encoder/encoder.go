package encoder

import (
	"fmt"
	"image/color"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Color is the encoded fill of one value.
type Color struct {
	Intensity float64
	RGBA      color.RGBA
}

// Hex formats the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.RGBA.R, c.RGBA.G, c.RGBA.B)
}

// Encoder turns a statistic value into a fill color. Encode is pure; the
// optional cache only avoids recomputing the spline.
type Encoder struct {
	scale SqrtScale
	cache *lru.Cache[float64, Color]
}

type Option func(*Encoder)

// WithCacheSize memoizes up to size distinct values. Sizes <= 0 disable it.
func WithCacheSize(size int) Option {
	return func(e *Encoder) {
		if size <= 0 {
			e.cache = nil
			return
		}
		c, err := lru.New[float64, Color](size)
		if err != nil {
			return
		}
		e.cache = c
	}
}

// New builds an encoder over the domain [0, max].
func New(max float64, opts ...Option) *Encoder {
	e := &Encoder{scale: NewSqrtScale(max)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Encoder) Scale() SqrtScale {
	return e.scale
}

func (e *Encoder) Encode(v float64) Color {
	v = Sanitize(v)
	if e.cache != nil {
		if c, ok := e.cache.Get(v); ok {
			return c
		}
	}
	t := e.scale.Intensity(v)
	c := Color{Intensity: t, RGBA: BuGn(t)}
	if e.cache != nil {
		e.cache.Add(v, c)
	}
	return c
}
