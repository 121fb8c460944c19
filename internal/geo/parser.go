package geo

import (
	"context"
	"fmt"
	"strings"

	geojson "github.com/paulmach/go.geojson"
	"github.com/tidwall/gjson"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

const defaultNameKey = "name"

// ParseFeatureCollection decodes a GeoJSON FeatureCollection, or a single Feature,
// taking the country name from properties[nameKey]. Features without a name are
// dropped since they cannot take part in the name join.
func ParseFeatureCollection(ctx context.Context, data []byte, nameKey string) ([]Feature, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("geojson: invalid json document")
	}
	if nameKey == "" {
		nameKey = defaultNameKey
	}
	var items []*geojson.Feature
	typ := gjson.GetBytes(data, "type").String()
	switch strings.ToLower(typ) {
	case "featurecollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("geojson: decode feature collection: %w", err)
		}
		items = fc.Features
	case "feature":
		raw, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("geojson: decode feature: %w", err)
		}
		f, ok := convertFeature(ctx, raw, nameKey)
		if !ok {
			return nil, fmt.Errorf("geojson: feature has no %q property", nameKey)
		}
		return []Feature{f}, nil
	default:
		return nil, fmt.Errorf("geojson: unsupported document type %q", typ)
	}
	features := make([]Feature, 0, len(items))
	skipped := 0
	for _, item := range items {
		f, ok := convertFeature(ctx, item, nameKey)
		if !ok {
			skipped++
			continue
		}
		features = append(features, f)
	}
	if skipped > 0 {
		logutil.GetLogger(ctx).Warn("geojson features without name skipped",
			zap.Int("skipped", skipped), zap.String("name_key", nameKey))
	}
	return features, nil
}

func convertFeature(ctx context.Context, item *geojson.Feature, nameKey string) (Feature, bool) {
	if item == nil {
		return Feature{}, false
	}
	name, _ := item.Properties[nameKey].(string)
	if name == "" {
		return Feature{}, false
	}
	f := Feature{Name: name}
	geom := item.Geometry
	switch {
	case geom == nil:
		logutil.GetLogger(ctx).Debug("geojson feature has no geometry", zap.String("name", name))
	case geom.IsPolygon():
		f.Polygons = append(f.Polygons, convertPolygon(geom.Polygon))
	case geom.IsMultiPolygon():
		for _, part := range geom.MultiPolygon {
			f.Polygons = append(f.Polygons, convertPolygon(part))
		}
	default:
		logutil.GetLogger(ctx).Debug("geojson feature has no fillable geometry",
			zap.String("name", name), zap.String("type", string(geom.Type)))
	}
	return f, true
}

func convertPolygon(rings [][][]float64) Polygon {
	var poly Polygon
	for _, ring := range rings {
		rr := make([]Point, 0, len(ring))
		for _, p := range ring {
			if len(p) < 2 {
				continue
			}
			rr = append(rr, Point{Lon: p[0], Lat: p[1]})
		}
		poly.Rings = append(poly.Rings, rr)
	}
	return poly
}
