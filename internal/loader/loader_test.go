package loader

import (
	"context"
	"errors"
	"testing"

	"github.com/xxxsen/drinkmap/internal/source"
)

type stubSource struct {
	name   string
	format string
	data   []byte
	err    error
	block  bool
}

func (s *stubSource) String() string { return s.name }
func (s *stubSource) Format() string { return s.format }
func (s *stubSource) Fetch(ctx context.Context) ([]byte, error) {
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}

const countries = `{"type":"FeatureCollection","features":[
 {"type":"Feature","properties":{"name":"Algeria"},"geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}},
 {"type":"Feature","properties":{"name":"Wonderland"},"geometry":{"type":"Polygon","coordinates":[[[2,2],[3,2],[3,3],[2,2]]]}}
]}`

const drinks = `[{"country":"algeria","beer_servings":25,"spirit_servings":0,"wine_servings":14,"total_litres_of_pure_alcohol":0.7}]`

func TestLoadBoth(t *testing.T) {
	geom := &stubSource{name: "geom", format: source.FormatGeoJSON, data: []byte(countries)}
	st := &stubSource{name: "stats", format: source.FormatJSON, data: []byte(drinks)}
	ds, err := Load(context.Background(), geom, st)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(ds.Features) != 2 || len(ds.Records) != 1 {
		t.Fatalf("unexpected dataset: %d features, %d records", len(ds.Features), len(ds.Records))
	}
}

func TestLoadFailsAsWhole(t *testing.T) {
	geom := &stubSource{name: "geom", block: true}
	st := &stubSource{name: "stats", err: errors.New("boom")}
	ds, err := Load(context.Background(), geom, st)
	if err == nil {
		t.Fatalf("expected error when statistics fail")
	}
	if ds != nil {
		t.Fatalf("no partial dataset expected")
	}
}

func TestLoadParseFailure(t *testing.T) {
	geom := &stubSource{name: "geom", data: []byte(countries)}
	st := &stubSource{name: "stats", format: source.FormatJSON, data: []byte(`{"not":"array"}`)}
	if _, err := Load(context.Background(), geom, st); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadNilSource(t *testing.T) {
	if _, err := Load(context.Background(), nil, &stubSource{}); err == nil {
		t.Fatalf("expected error for nil source")
	}
}
