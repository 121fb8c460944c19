package loader

import (
	"context"
	"fmt"
	"time"

	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/drinkmap/internal/geo"
	"github.com/xxxsen/drinkmap/internal/source"
	"github.com/xxxsen/drinkmap/internal/stats"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Dataset holds both inputs of the map. It is only ever returned complete.
type Dataset struct {
	Features []geo.Feature
	Records  []stats.Record
}

type options struct {
	nameKey string
}

type Option func(*options)

// WithNameKey selects the GeoJSON property holding the country name.
func WithNameKey(key string) Option {
	return func(o *options) {
		o.nameKey = key
	}
}

// Load fetches and parses the geometry and statistics sources concurrently.
// If either side fails the other is cancelled and no dataset is returned.
func Load(ctx context.Context, geometry source.ISource, statistics source.ISource, opts ...Option) (*Dataset, error) {
	if geometry == nil || statistics == nil {
		return nil, fmt.Errorf("loader: both sources are required")
	}
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	start := time.Now()
	ds := &Dataset{}
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		data, err := geometry.Fetch(ctx)
		if err != nil {
			return fmt.Errorf("load geometry failed, source:%s, err:%w", geometry.String(), err)
		}
		fs, err := geo.ParseFeatureCollection(ctx, data, o.nameKey)
		if err != nil {
			return fmt.Errorf("parse geometry failed, source:%s, err:%w", geometry.String(), err)
		}
		ds.Features = fs
		return nil
	})
	eg.Go(func() error {
		data, err := statistics.Fetch(ctx)
		if err != nil {
			return fmt.Errorf("load statistics failed, source:%s, err:%w", statistics.String(), err)
		}
		rs, err := stats.Parse(ctx, data, statistics.Format())
		if err != nil {
			return fmt.Errorf("parse statistics failed, source:%s, err:%w", statistics.String(), err)
		}
		ds.Records = rs
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	logutil.GetLogger(ctx).Info("datasets loaded",
		zap.Int("features", len(ds.Features)),
		zap.Int("records", len(ds.Records)),
		zap.Duration("cost", time.Since(start)))
	return ds, nil
}
