package render

import (
	"context"
	"fmt"

	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/drinkmap/internal/encoder"
	"github.com/xxxsen/drinkmap/internal/geo"
	"github.com/xxxsen/drinkmap/internal/projection"
	"go.uber.org/zap"
)

// ILookup resolves the value a country is colored by; 0 when it has no data.
type ILookup interface {
	Litres(name string) float64
}

// IEncoder turns a value into a fill.
type IEncoder interface {
	Encode(v float64) encoder.Color
}

// Scene is the set of drawn shapes, keyed by country name, in draw order.
type Scene struct {
	byName map[string]*Shape
	order  []*Shape
}

// JoinResult lists the names added, refreshed and removed by a join.
type JoinResult struct {
	Entered []string
	Updated []string
	Exited  []string
}

func NewScene() *Scene {
	return &Scene{byName: make(map[string]*Shape)}
}

// Bind draws every feature into a new scene.
func Bind(ctx context.Context, features []geo.Feature, enc IEncoder, lookup ILookup, proj projection.IProjector) (*Scene, error) {
	if enc == nil || lookup == nil || proj == nil {
		return nil, fmt.Errorf("bind: encoder, lookup and projector are required")
	}
	s := NewScene()
	res := s.Join(ctx, features, enc, lookup, proj)
	logutil.GetLogger(ctx).Info("shapes bound", zap.Int("shapes", len(res.Entered)))
	return s, nil
}

// Join reconciles the scene with features by country name. New names are
// appended on top with the base style, existing shapes keep their style,
// state and draw position, and shapes whose name disappeared are removed.
// Features repeating a name are merged into that name's shape.
func (s *Scene) Join(ctx context.Context, features []geo.Feature, enc IEncoder, lookup ILookup, proj projection.IProjector) JoinResult {
	var res JoinResult
	seen := make(map[string]struct{}, len(features))
	for _, f := range features {
		if f.Name == "" {
			continue
		}
		if _, dup := seen[f.Name]; dup {
			sh := s.byName[f.Name]
			sh.Polygons = append(sh.Polygons, projectPolygons(f.Polygons, proj)...)
			sh.Path = svgPath(sh.Polygons)
			sh.bounds = computeBounds(sh.Polygons)
			logutil.GetLogger(ctx).Debug("duplicate feature name merged", zap.String("name", f.Name))
			continue
		}
		seen[f.Name] = struct{}{}
		sh, ok := s.byName[f.Name]
		if ok {
			res.Updated = append(res.Updated, f.Name)
		} else {
			sh = newShape(f.Name)
			s.byName[f.Name] = sh
			s.order = append(s.order, sh)
			res.Entered = append(res.Entered, f.Name)
		}
		sh.Polygons = projectPolygons(f.Polygons, proj)
		sh.Path = svgPath(sh.Polygons)
		sh.bounds = computeBounds(sh.Polygons)
		sh.Fill = enc.Encode(lookup.Litres(f.Name))
	}
	kept := s.order[:0]
	for _, sh := range s.order {
		if _, ok := seen[sh.Name]; ok {
			kept = append(kept, sh)
			continue
		}
		delete(s.byName, sh.Name)
		res.Exited = append(res.Exited, sh.Name)
	}
	for i := len(kept); i < len(s.order); i++ {
		s.order[i] = nil
	}
	s.order = kept
	return res
}

func (s *Scene) Get(name string) (*Shape, bool) {
	sh, ok := s.byName[name]
	return sh, ok
}

// Shapes returns the shapes in draw order, bottom first.
func (s *Scene) Shapes() []*Shape {
	return s.order
}

func (s *Scene) Len() int {
	return len(s.order)
}

// Raise moves the named shape to the top of the draw order.
func (s *Scene) Raise(name string) bool {
	for i, sh := range s.order {
		if sh.Name != name {
			continue
		}
		copy(s.order[i:], s.order[i+1:])
		s.order[len(s.order)-1] = sh
		return true
	}
	return false
}

// HitTest returns the top-most shape containing the point.
func (s *Scene) HitTest(x, y float64) (*Shape, bool) {
	p := Vec{X: x, Y: y}
	for i := len(s.order) - 1; i >= 0; i-- {
		if s.order[i].Contains(p) {
			return s.order[i], true
		}
	}
	return nil, false
}
