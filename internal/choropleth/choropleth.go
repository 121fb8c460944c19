package choropleth

import (
	"context"
	"fmt"

	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/drinkmap/internal/encoder"
	"github.com/xxxsen/drinkmap/internal/index"
	"github.com/xxxsen/drinkmap/internal/interaction"
	"github.com/xxxsen/drinkmap/internal/loader"
	"github.com/xxxsen/drinkmap/internal/projection"
	"github.com/xxxsen/drinkmap/internal/render"
	"go.uber.org/zap"
)

// Map is a bound choropleth: the index, the color encoding derived from it
// and the drawn shapes.
type Map struct {
	Index   *index.Index
	Encoder *encoder.Encoder
	Scene   *render.Scene
}

type options struct {
	cacheSize int
}

type Option func(*options)

// WithColorCache memoizes up to size encoded values.
func WithColorCache(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

// Build joins a loaded dataset into a drawn map.
func Build(ctx context.Context, ds *loader.Dataset, proj projection.IProjector, opts ...Option) (*Map, error) {
	if ds == nil {
		return nil, fmt.Errorf("choropleth: dataset is required")
	}
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	idx := index.Build(ds.Records)
	enc := encoder.New(idx.MaxLitres(), encoder.WithCacheSize(o.cacheSize))
	scene, err := render.Bind(ctx, ds.Features, enc, idx, proj)
	if err != nil {
		return nil, fmt.Errorf("bind shapes: %w", err)
	}
	m := &Map{Index: idx, Encoder: enc, Scene: scene}
	matched, missing := m.coverage()
	logutil.GetLogger(ctx).Info("choropleth built",
		zap.Int("countries", idx.Len()),
		zap.Float64("max_litres", idx.MaxLitres()),
		zap.Int("matched", matched),
		zap.Int("without_data", missing))
	return m, nil
}

func (m *Map) coverage() (matched int, missing int) {
	for _, sh := range m.Scene.Shapes() {
		if _, ok := m.Index.Get(sh.Name); ok {
			matched++
			continue
		}
		missing++
	}
	return matched, missing
}

// Content is the tooltip content for a country.
func (m *Map) Content(name string) interaction.Content {
	c := interaction.Content{Country: name}
	if a, ok := m.Index.Get(name); ok {
		c.Stats = &a
	}
	return c
}

// Titles returns tooltip lines, suitable as an output.TitleFunc.
func (m *Map) Titles(name string) []string {
	return m.Content(name).Lines()
}

// NewMachine starts the hover state machine over this map's shapes.
func (m *Map) NewMachine(opts ...interaction.Option) *interaction.Machine {
	return interaction.NewMachine(m.Scene, m.Index, opts...)
}
